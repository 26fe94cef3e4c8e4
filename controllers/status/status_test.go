package statusController

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ujjwalbarange/mesa-pos/backend"
	"github.com/ujjwalbarange/mesa-pos/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAPI struct {
	orderStatus func(ctx context.Context, orderID string) (*models.Order, error)
}

func (f *fakeAPI) AuthStatus(ctx context.Context, cookie string) (string, error) { return "", nil }

func (f *fakeAPI) FetchMenu(ctx context.Context) ([]models.MenuItem, error) { return nil, nil }

func (f *fakeAPI) SystemStatus(ctx context.Context) (models.SystemFlags, error) { return nil, nil }

func (f *fakeAPI) ActiveOrders(ctx context.Context) ([]models.Order, error) { return nil, nil }

func (f *fakeAPI) OrderStatus(ctx context.Context, orderID string) (*models.Order, error) {
	if f.orderStatus == nil {
		return nil, backend.ErrNotFound
	}
	return f.orderStatus(ctx, orderID)
}

func (f *fakeAPI) PlaceOrder(ctx context.Context, payload models.OrderPayload) (int, error) {
	return 0, nil
}

func (f *fakeAPI) UpdateOrderStatus(ctx context.Context, orderID int, status models.OrderStatus) error {
	return nil
}

func (f *fakeAPI) LoginURL(next string) string { return next }

func TestViewMapsStatus(t *testing.T) {
	tests := []struct {
		status   models.OrderStatus
		progress int
		cssClass string
	}{
		{models.OrderStatusInQueue, 33, "status-queue"},
		{models.OrderStatusPreparing, 66, "status-preparing"},
		{models.OrderStatusReady, 100, "status-ready"},
		{"Mystery", 33, "status-queue"},
	}
	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			view := View("9", &models.Order{Status: tt.status, TableNumber: "3"})
			if view.Progress != tt.progress {
				t.Errorf("Progress = %d, want %d", view.Progress, tt.progress)
			}
			if view.CSSClass != tt.cssClass {
				t.Errorf("CSSClass = %q, want %q", view.CSSClass, tt.cssClass)
			}
			if view.OrderID != "9" || view.TableNumber != "3" {
				t.Errorf("view = %+v", view)
			}
			if view.Message == "" {
				t.Error("message must never be empty")
			}
		})
	}
}

func TestGetStatusHandler(t *testing.T) {
	api := &fakeAPI{
		orderStatus: func(_ context.Context, orderID string) (*models.Order, error) {
			if orderID != "42" {
				return nil, backend.ErrNotFound
			}
			return &models.Order{Status: models.OrderStatusPreparing, TableNumber: "5"}, nil
		},
	}

	r := gin.New()
	r.GET("/status", GetStatusHandler(api))

	t.Run("found", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status?orderId=42", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d", w.Code)
		}
		var view StatusView
		if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if view.Progress != 66 || view.Status != "Preparing" {
			t.Errorf("view = %+v", view)
		}
	})

	t.Run("not found", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status?orderId=999", nil))
		if w.Code != http.StatusNotFound {
			t.Fatalf("status = %d", w.Code)
		}
		var resp struct {
			NotFound bool   `json:"not_found"`
			Error    string `json:"error"`
		}
		json.Unmarshal(w.Body.Bytes(), &resp)
		if !resp.NotFound || resp.Error != "Order not found." {
			t.Errorf("response = %+v", resp)
		}
	})

	t.Run("missing orderId", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status", nil))
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d", w.Code)
		}
	})

	t.Run("backend failure", func(t *testing.T) {
		failing := &fakeAPI{
			orderStatus: func(context.Context, string) (*models.Order, error) {
				return nil, errors.New("connection refused")
			},
		}
		fr := gin.New()
		fr.GET("/status", GetStatusHandler(failing))
		w := httptest.NewRecorder()
		fr.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/status?orderId=42", nil))
		if w.Code != http.StatusBadGateway {
			t.Fatalf("status = %d", w.Code)
		}
	})
}

func TestTrackerFollowsStatusForward(t *testing.T) {
	var mu sync.Mutex
	statuses := []models.OrderStatus{
		models.OrderStatusInQueue,
		models.OrderStatusPreparing,
		models.OrderStatusReady,
	}
	calls := 0
	api := &fakeAPI{
		orderStatus: func(context.Context, string) (*models.Order, error) {
			mu.Lock()
			defer mu.Unlock()
			status := statuses[len(statuses)-1]
			if calls < len(statuses) {
				status = statuses[calls]
			}
			calls++
			return &models.Order{Status: status}, nil
		},
	}

	updates := make(chan StatusView, 16)
	tracker := NewTracker(api, "42", 20*time.Millisecond, func(v StatusView) {
		updates <- v
	})
	tracker.Start(context.Background())
	defer tracker.Stop()

	var seen []int
	deadline := time.After(2 * time.Second)
	for len(seen) == 0 || seen[len(seen)-1] != 100 {
		select {
		case v := <-updates:
			seen = append(seen, v.Progress)
		case <-deadline:
			t.Fatalf("never reached 100, saw %v", seen)
		}
	}

	for i := 1; i < len(seen); i++ {
		if seen[i] < seen[i-1] {
			t.Fatalf("progress moved backwards: %v", seen)
		}
	}
}

func TestTrackerSwallowsPollErrors(t *testing.T) {
	var mu sync.Mutex
	calls := 0
	api := &fakeAPI{
		orderStatus: func(context.Context, string) (*models.Order, error) {
			mu.Lock()
			defer mu.Unlock()
			calls++
			if calls == 1 {
				return nil, errors.New("flaky network")
			}
			return &models.Order{Status: models.OrderStatusPreparing}, nil
		},
	}

	updates := make(chan StatusView, 16)
	tracker := NewTracker(api, "42", 20*time.Millisecond, func(v StatusView) {
		updates <- v
	})
	tracker.Start(context.Background())
	defer tracker.Stop()

	select {
	case v := <-updates:
		if v.Progress != 66 {
			t.Errorf("progress = %d, want 66", v.Progress)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("tracker never recovered after a failed poll")
	}
}
