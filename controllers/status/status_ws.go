package statusController

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/ujjwalbarange/mesa-pos/backend"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// GET /status/live?orderId=X
//
// Upgrades to a websocket and streams status view updates for one
// order. The tracker's lifetime is bound to the connection: it starts
// on upgrade and is stopped as soon as the read loop sees the socket
// close, so no poll timer outlives its viewer.
func LiveStatusHandler(api backend.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Query("orderId")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderId is required"})
			return
		}

		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		var writeMu sync.Mutex
		tracker := NewTracker(api, orderID, PollInterval, func(view StatusView) {
			writeMu.Lock()
			defer writeMu.Unlock()
			_ = conn.WriteJSON(view)
		})

		tracker.Start(c.Request.Context())
		defer tracker.Stop()

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				break
			}
		}
	}
}
