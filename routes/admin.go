package routes

import (
	"github.com/gin-gonic/gin"
	adminController "github.com/ujjwalbarange/mesa-pos/controllers/admin"
	qrcontroller "github.com/ujjwalbarange/mesa-pos/controllers/qr"
	"github.com/ujjwalbarange/mesa-pos/middleware"
)

// SetupAdminRoutes registers all “/admin/*” endpoints. The dashboard
// requires the staff JWT; the KDS websocket instead takes the static
// display key so kitchen tablets never need a login.
func SetupAdminRoutes(r *gin.Engine, deps Deps) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateStaffToken)
	{
		// ─────────── Dashboard & Tabs ───────────
		adminGroup.GET("/dashboard", adminController.GetDashboardHandler(deps.Refresher, deps.Dashboard))
		adminGroup.POST("/tab", adminController.SwitchTabHandler(deps.Refresher, deps.Dashboard))

		// ─────────── KDS Actions ───────────
		adminGroup.PUT("/orders/:orderID/status", adminController.UpdateOrderStatusHandler(deps.API, deps.Refresher))
		adminGroup.GET("/orders/export", adminController.ExportActiveOrdersToExcel(deps.Refresher))

		// ─────────── Table QR Posters ───────────
		qrMgmt := adminGroup.Group("/qr")
		{
			qrMgmt.POST("/upload", qrcontroller.HandleQRPosterUpload(deps.QRs, deps.QRUploadDir, deps.PublicBase))
			qrMgmt.GET("", qrcontroller.ListQRPosters(deps.QRs))
			qrMgmt.DELETE("/:id", qrcontroller.DeleteQRPosterHandler(deps.QRs, deps.QRUploadDir))
		}
	}

	// Kitchen displays authenticate with the static KDS key.
	kdsGroup := r.Group("/kds")
	kdsGroup.Use(middleware.ValidateKDSKey)
	{
		kdsGroup.GET("/orders/ws", adminController.KDSWebSocketHandler(deps.Hub, deps.Refresher))
	}
}
