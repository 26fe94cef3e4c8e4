package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ujjwalbarange/mesa-pos/backend"
	adminController "github.com/ujjwalbarange/mesa-pos/controllers/admin"
	checkoutController "github.com/ujjwalbarange/mesa-pos/controllers/checkout"
	"github.com/ujjwalbarange/mesa-pos/store"
)

// Deps bundles everything the route groups need. Built once in main.
type Deps struct {
	API          backend.Client
	Carts        store.Store
	QRs          store.QRStore
	CheckoutMode checkoutController.Mode
	Refresher    *adminController.Refresher
	Dashboard    *adminController.Dashboard
	Hub          *adminController.Hub
	QRUploadDir  string
	PublicBase   string
}

// SetupRoutes is the single entry point that wires up the customer,
// auth, and admin route groups.
func SetupRoutes(r *gin.Engine, deps Deps) {
	// 1️⃣ Public auth routes (no middleware)
	SetupAuthRoutes(r)

	// 2️⃣ Customer-facing ordering flow (table-scoped, no login)
	SetupCustomerRoutes(r, deps)

	// 3️⃣ Admin dashboard + KDS (staff JWT / KDS key)
	SetupAdminRoutes(r, deps)
}
