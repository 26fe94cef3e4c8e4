package adminController

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/ujjwalbarange/mesa-pos/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// KDSFeed is one push to the kitchen displays.
type KDSFeed struct {
	Orders []OrderCard        `json:"orders"`
	Flags  models.SystemFlags `json:"flags"`
}

// Hub fans the refresher's snapshots out to connected kitchen displays.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func NewHub() *Hub {
	return &Hub{clients: make(map[*websocket.Conn]bool)}
}

// Broadcast sends feed to every connected display, dropping clients
// whose write fails.
func (h *Hub) Broadcast(feed KDSFeed) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if err := client.WriteJSON(feed); err != nil {
			client.Close()
			delete(h.clients, client)
		}
	}
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

// GET /admin/orders/ws
//
// A display gets the current board immediately on connect and live
// pushes from then on.
func KDSWebSocketHandler(hub *Hub, ref *Refresher) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		// The snapshot goes out before the hub learns about this
		// connection; once added, only Broadcast writes to it, under
		// the hub lock.
		snap := ref.Snapshot()
		if err := conn.WriteJSON(KDSFeed{Orders: Cards(snap.Orders), Flags: snap.Flags}); err != nil {
			return
		}

		hub.add(conn)
		defer hub.remove(conn)

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}
}
