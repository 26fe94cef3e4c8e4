package menucontroller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ujjwalbarange/mesa-pos/models"
	"github.com/ujjwalbarange/mesa-pos/store"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeAPI struct {
	fetchMenu    func(ctx context.Context) ([]models.MenuItem, error)
	systemStatus func(ctx context.Context) (models.SystemFlags, error)
}

func (f *fakeAPI) AuthStatus(ctx context.Context, cookie string) (string, error) { return "", nil }

func (f *fakeAPI) FetchMenu(ctx context.Context) ([]models.MenuItem, error) {
	if f.fetchMenu == nil {
		return nil, nil
	}
	return f.fetchMenu(ctx)
}

func (f *fakeAPI) SystemStatus(ctx context.Context) (models.SystemFlags, error) {
	if f.systemStatus == nil {
		return nil, nil
	}
	return f.systemStatus(ctx)
}

func (f *fakeAPI) ActiveOrders(ctx context.Context) ([]models.Order, error) { return nil, nil }

func (f *fakeAPI) OrderStatus(ctx context.Context, orderID string) (*models.Order, error) {
	return nil, nil
}

func (f *fakeAPI) PlaceOrder(ctx context.Context, payload models.OrderPayload) (int, error) {
	return 0, nil
}

func (f *fakeAPI) UpdateOrderStatus(ctx context.Context, orderID int, status models.OrderStatus) error {
	return nil
}

func (f *fakeAPI) LoginURL(next string) string { return next }

func sampleMenu() []models.MenuItem {
	return []models.MenuItem{
		{ItemID: 1, Name: "Samosa", Price: 40, IsVeg: 1, Availability: 1, Category: "Starters"},
		{ItemID: 2, Name: "Chicken 65", Price: 180, IsVeg: 0, Availability: 0, Category: "Starters"},
		{ItemID: 3, Name: "Dal Makhani", Price: 220, IsVeg: 1, Availability: 1, Category: "Mains"},
	}
}

func getMenu(t *testing.T, api *fakeAPI, carts store.Store, path string) MenuView {
	t.Helper()
	r := gin.New()
	r.GET("/menu", GetMenuHandler(api, carts))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var view MenuView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return view
}

func TestGetMenuGroupsAndDecorates(t *testing.T) {
	api := &fakeAPI{
		fetchMenu: func(context.Context) ([]models.MenuItem, error) { return sampleMenu(), nil },
	}
	carts := store.NewMemStore()
	cart, _ := carts.Load("5")
	cart.Add(sampleMenu()[0])
	cart.Add(sampleMenu()[0])
	carts.Save(cart)

	view := getMenu(t, api, carts, "/menu?table=5")

	if view.TableNumber != "5" || view.ServicePaused {
		t.Errorf("view header = %+v", view)
	}
	if len(view.Categories) != 2 || view.Categories[0].Name != "Starters" || view.Categories[1].Name != "Mains" {
		t.Fatalf("categories = %+v", view.Categories)
	}
	if view.ActiveCategory != "Starters" {
		t.Errorf("active category = %q", view.ActiveCategory)
	}

	samosa := view.Categories[0].Items[0]
	if samosa.VegColor != "green" || !samosa.Available || samosa.Quantity != 2 {
		t.Errorf("samosa view = %+v", samosa)
	}
	chicken := view.Categories[0].Items[1]
	if chicken.VegColor != "red" || chicken.Available {
		t.Errorf("chicken view = %+v", chicken)
	}

	if view.CartBar.Disabled {
		t.Error("cart bar must be live with items in the cart")
	}
	if view.CartBar.TotalItems != 2 || view.CartBar.TotalPrice != 80 {
		t.Errorf("cart bar = %+v", view.CartBar)
	}
	if view.CartBar.CheckoutURL != "/checkout?table=5" {
		t.Errorf("checkout url = %q", view.CartBar.CheckoutURL)
	}
}

func TestGetMenuEmptyCartDisablesBar(t *testing.T) {
	api := &fakeAPI{
		fetchMenu: func(context.Context) ([]models.MenuItem, error) { return sampleMenu(), nil },
	}
	view := getMenu(t, api, store.NewMemStore(), "/menu?table=5")
	if !view.CartBar.Disabled {
		t.Error("cart bar must be disabled with an empty cart")
	}
}

func TestGetMenuDefaultsTable(t *testing.T) {
	api := &fakeAPI{
		fetchMenu: func(context.Context) ([]models.MenuItem, error) { return sampleMenu(), nil },
	}
	view := getMenu(t, api, store.NewMemStore(), "/menu")
	if view.TableNumber != DefaultTable {
		t.Errorf("table = %q, want %q", view.TableNumber, DefaultTable)
	}
}

func TestGetMenuServicePausedShortCircuits(t *testing.T) {
	menuCalled := false
	api := &fakeAPI{
		systemStatus: func(context.Context) (models.SystemFlags, error) {
			return models.SystemFlags{"global_service": 0}, nil
		},
		fetchMenu: func(context.Context) ([]models.MenuItem, error) {
			menuCalled = true
			return sampleMenu(), nil
		},
	}

	view := getMenu(t, api, store.NewMemStore(), "/menu?table=5")
	if !view.ServicePaused {
		t.Error("service_paused must be set when the global flag is 0")
	}
	if len(view.Categories) != 0 {
		t.Errorf("paused view carried categories: %+v", view.Categories)
	}
	if menuCalled {
		t.Error("menu must not be fetched while service is paused")
	}
}

func TestGetMenuStatusFetchFailure(t *testing.T) {
	api := &fakeAPI{
		systemStatus: func(context.Context) (models.SystemFlags, error) {
			return nil, errors.New("backend down")
		},
	}
	r := gin.New()
	r.GET("/menu", GetMenuHandler(api, store.NewMemStore()))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/menu?table=5", nil))
	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", w.Code)
	}
}
