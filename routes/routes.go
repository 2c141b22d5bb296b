package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant/configs"
	"restaurant/controllers"
	"restaurant/entity"
	"restaurant/middlewares"
	"restaurant/repository"
	"restaurant/services"
	"restaurant/ws"
)

// Services is everything the HTTP layer needs, built once at startup.
type Services struct {
	Menu         *repository.MenuRepository
	Orders       *services.OrderService
	Payments     *services.PaymentService
	Reservations *services.ReservationService
	Auth         *services.AuthService
	Hub          *ws.StatusHub
}

func NewServices(cfg *configs.Config, stores *configs.Stores, menu *repository.MenuRepository) *Services {
	hub := ws.NewStatusHub()
	orders := services.NewOrderService(repository.NewOrderRepository(stores.Orders), menu, cfg.StrictTransitions, hub)
	return &Services{
		Menu:         menu,
		Orders:       orders,
		Payments:     services.NewPaymentService(orders, cfg.StripeSecretKey),
		Reservations: services.NewReservationService(repository.NewReservationRepository(stores.Reservations)),
		Auth:         services.NewAuthService(repository.NewUserRepository(stores.Users), cfg.JWTSecret, cfg.JWTTTL),
		Hub:          hub,
	}
}

func NewRouter(cfg *configs.Config, svc *Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(), middlewares.CORSMiddleware(cfg.CORSOrigins))
	RegisterRoutes(r, cfg, svc)
	return r
}

func RegisterRoutes(r *gin.Engine, cfg *configs.Config, svc *Services) {
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	menuCtrl := controllers.NewMenuController(svc.Menu)
	orderCtrl := controllers.NewOrderController(svc.Orders, svc.Payments)
	payCtrl := controllers.NewPaymentController(svc.Payments, cfg.FrontendURL)
	resCtrl := controllers.NewReservationController(svc.Reservations)
	adminCtrl := controllers.NewAdminController(svc.Orders, svc.Reservations)
	authCtrl := controllers.NewAuthController(svc.Auth)

	// Auth
	a := r.Group("/auth")
	{
		a.POST("/signup", authCtrl.Signup)
		a.POST("/login", authCtrl.Login)
		a.GET("/me", middlewares.AuthMiddleware(cfg.JWTSecret), authCtrl.Me)
	}

	// Menu
	r.GET("/menu", menuCtrl.List)
	r.GET("/menu/categories", menuCtrl.Categories)
	r.GET("/menu/:id", menuCtrl.Detail)

	// Orders (guest, token addressed)
	r.POST("/orders", orderCtrl.Create)
	r.GET("/orders/:token", orderCtrl.Detail)
	r.PATCH("/orders/:token", orderCtrl.UpdateStatus)
	r.GET("/ws/orders/:token", svc.Hub.Handler(svc.Orders))

	// Payment simulator
	r.GET("/payment", payCtrl.Return)

	// Reservations
	r.POST("/reservations", resCtrl.Create)
	r.GET("/reservations/:token", resCtrl.Detail)

	// Admin console
	admin := r.Group("/admin")
	if cfg.AdminAuth {
		admin.Use(middlewares.AuthMiddleware(cfg.JWTSecret, entity.RoleAdmin))
	}
	{
		admin.GET("/orders", adminCtrl.ListOrders)
		admin.PATCH("/orders", adminCtrl.UpdateOrderStatus)
		admin.GET("/reservations", adminCtrl.ListReservations)
	}
}
