package routes

import (
	"fitchef-backend/constants"
	adminController "fitchef-backend/controllers/admin"
	authController "fitchef-backend/controllers/auth"
	chefController "fitchef-backend/controllers/chef"
	dishController "fitchef-backend/controllers/dish"
	healthController "fitchef-backend/controllers/health"
	leadController "fitchef-backend/controllers/lead"
	logisticsController "fitchef-backend/controllers/logistics"
	notificationController "fitchef-backend/controllers/notification"
	orderController "fitchef-backend/controllers/order"
	userController "fitchef-backend/controllers/user"
	"fitchef-backend/logger"
	"fitchef-backend/middleware"
	"fitchef-backend/services/notification"
	"fitchef-backend/services/orderstore"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	asyncLogger := logger.NewAsyncLogger(db)
	store := orderstore.New(db)
	sink := notification.New(db)

	authCtrl := authController.NewAuthController(db, asyncLogger)
	orderCtrl := orderController.NewOrderController(store, asyncLogger)
	userCtrl := userController.NewUserController(db, asyncLogger)
	notificationCtrl := notificationController.NewNotificationController(db, asyncLogger)
	dishCtrl := dishController.NewDishController(db, asyncLogger)
	leadCtrl := leadController.NewLeadController(db, asyncLogger)
	adminCtrl := adminController.NewAdminController(db, store, sink, asyncLogger)
	chefCtrl := chefController.NewChefController(db, store, sink, asyncLogger)
	logisticsCtrl := logisticsController.NewLogisticsController(store, sink, asyncLogger)
	healthCtrl := healthController.NewHealthController(db)

	// Start the async logger processing goroutine
	go asyncLogger.ProcessLog()

	/*=============================================================================
	| Public Routes
	===============================================================================*/
	api := app.Group("/api")
	api.Get("/health", healthCtrl.Check)

	api.Post("/auth/signup", authCtrl.Signup)
	api.Post("/auth/signin", authCtrl.SignIn)
	api.Post("/admin/auth/login", authCtrl.AdminLogin)
	api.Post("/chef/auth/login", authCtrl.ChefLogin)
	api.Post("/logistics/auth/login", authCtrl.LogisticsLogin)

	api.Get("/dishes", dishCtrl.ListDishes)
	api.Get("/dishes/categories", dishCtrl.ListCategories)
	api.Get("/dishes/:id", dishCtrl.GetDish)

	api.Post("/early-access", leadCtrl.EarlyAccess)
	api.Post("/consultations", leadCtrl.Consultation)

	/*=============================================================================
	| Customer Routes
	===============================================================================*/
	userGroup := api.Group("/user",
		middleware.Authenticate(),
		middleware.RequireRole(constants.RoleCustomer))

	userGroup.Post("/orders", orderCtrl.CreateOrder)
	userGroup.Get("/orders", orderCtrl.ListOrders)
	userGroup.Get("/orders/delivered", orderCtrl.DeliveredOrders)
	userGroup.Get("/orders/:id", orderCtrl.GetOrder)

	userGroup.Get("/profile", userCtrl.GetProfile)
	userGroup.Put("/profile", userCtrl.UpdateProfile)
	userGroup.Post("/feedback", userCtrl.CreateFeedback)
	userGroup.Post("/support", userCtrl.CreateSupportTicket)
	userGroup.Get("/support", userCtrl.ListSupportTickets)

	userGroup.Get("/notifications", notificationCtrl.List)
	userGroup.Patch("/notifications/:id/read", notificationCtrl.MarkRead)

	/*=============================================================================
	| Admin Routes
	===============================================================================*/
	adminGroup := api.Group("/admin",
		middleware.Authenticate(),
		middleware.RequireRole(constants.AdminRoles...))

	adminGroup.Get("/open-orders", adminCtrl.ListOpenOrders)
	adminGroup.Get("/open-orders/:id", adminCtrl.GetOpenOrder)
	adminGroup.Patch("/open-orders/:id/confirm", adminCtrl.ConfirmOrder)
	adminGroup.Patch("/open-orders/:id/assign", adminCtrl.AssignChef)

	adminGroup.Get("/orders", adminCtrl.ListLegacyOrders)
	adminGroup.Post("/orders", adminCtrl.CreateLegacyOrder)
	adminGroup.Put("/orders/:id", adminCtrl.UpdateLegacyOrder)
	adminGroup.Delete("/orders/:id", adminCtrl.DeleteLegacyOrder)

	adminGroup.Get("/chefs", adminCtrl.ListChefs)
	adminGroup.Post("/chefs", adminCtrl.CreateChef)
	adminGroup.Put("/chefs/:id", adminCtrl.UpdateChef)
	adminGroup.Delete("/chefs/:id", adminCtrl.DeactivateChef)

	adminGroup.Get("/dishes", adminCtrl.ListAllDishes)
	adminGroup.Post("/dishes", adminCtrl.CreateDish)
	adminGroup.Put("/dishes/:id", adminCtrl.UpdateDish)
	adminGroup.Delete("/dishes/:id", adminCtrl.HideDish)

	adminGroup.Get("/agents", adminCtrl.ListAgents)
	adminGroup.Post("/agents", adminCtrl.CreateAgent)
	adminGroup.Put("/agents/:id", adminCtrl.UpdateAgent)
	adminGroup.Delete("/agents/:id", adminCtrl.DeleteAgent)

	adminGroup.Get("/customers", adminCtrl.ListCustomers)
	adminGroup.Get("/customers/:id", adminCtrl.GetCustomer)
	adminGroup.Delete("/customers/:id", adminCtrl.DeleteCustomer)
	adminGroup.Get("/signups/pending", adminCtrl.ListPendingSignups)
	adminGroup.Patch("/signups/:id/approve", adminCtrl.ApproveSignup)
	adminGroup.Patch("/signups/:id/reject", adminCtrl.RejectSignup)

	adminGroup.Get("/leads", adminCtrl.ListLeads)
	adminGroup.Post("/leads", adminCtrl.CreateLead)
	adminGroup.Put("/leads/:id", adminCtrl.UpdateLead)
	adminGroup.Delete("/leads/:id", adminCtrl.DeleteLead)
	adminGroup.Get("/consultations", adminCtrl.ListConsultations)

	adminGroup.Get("/dashboard", adminCtrl.Dashboard)
	adminGroup.Get("/dashboard/revenue", adminCtrl.RevenueChart)
	adminGroup.Get("/finance", adminCtrl.Finance)
	adminGroup.Get("/payments", adminCtrl.ListPayments)
	adminGroup.Post("/payments", adminCtrl.CreatePayment)

	/*=============================================================================
	| Chef Routes
	===============================================================================*/
	chefGroup := api.Group("/chef",
		middleware.Authenticate(),
		middleware.RequireRole(constants.RoleChef))

	chefGroup.Get("/orders/open", chefCtrl.OpenOrders)
	chefGroup.Get("/orders/completed", chefCtrl.CompletedOrders)
	chefGroup.Patch("/orders/:id/ready", chefCtrl.MarkReady)
	chefGroup.Get("/profile", chefCtrl.Profile)

	/*=============================================================================
	| Logistics Routes
	===============================================================================*/
	logisticsGroup := api.Group("/logistics",
		middleware.Authenticate(),
		middleware.RequireRole(constants.RoleLogistics))

	logisticsGroup.Get("/orders/open", logisticsCtrl.OpenOrders)
	logisticsGroup.Get("/orders/ready", logisticsCtrl.ReadyOrders)
	logisticsGroup.Get("/orders/out", logisticsCtrl.OutOrders)
	logisticsGroup.Get("/orders/delivered", logisticsCtrl.DeliveredOrders)
	logisticsGroup.Put("/orders/:id/assign-agent", logisticsCtrl.AssignAgent)
	logisticsGroup.Put("/orders/:id/out-for-delivery", logisticsCtrl.OutForDelivery)
	logisticsGroup.Put("/orders/:id/delivered", logisticsCtrl.MarkDelivered)
	logisticsGroup.Get("/overview", logisticsCtrl.Overview)
	logisticsGroup.Get("/agents", logisticsCtrl.Agents)
}
