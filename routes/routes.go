package routes

import (
	"github.com/choihyeonji00/project-kiosk/configs"
	"github.com/choihyeonji00/project-kiosk/controllers"
	"github.com/choihyeonji00/project-kiosk/middlewares"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Controllers
	menuCtrl := controllers.NewMenuController(db)
	comboCtrl := controllers.NewCombinationController(db)
	payCtrl := controllers.NewPaymentController(db)
	orderCtrl := controllers.NewOrderController(db)
	memberCtrl := controllers.NewMemberController(db)
	couponCtrl := controllers.NewCouponController(db)
	authCtrl := controllers.NewAuthController(db, cfg)
	adminCtrl := controllers.NewAdminController(db)

	// Kiosk (public)
	r.GET("/categories", menuCtrl.Categories)
	r.GET("/menuItems", menuCtrl.List)
	r.GET("/combinations", comboCtrl.List)
	r.GET("/paymentMethods", payCtrl.List)

	r.GET("/orders", orderCtrl.List)
	r.POST("/orders", orderCtrl.Create)

	r.GET("/members", memberCtrl.GetByPhone)
	r.POST("/members", memberCtrl.Create)
	r.PATCH("/members/:id", memberCtrl.Update)

	r.GET("/coupons", couponCtrl.GetByCode)

	// Admin auth
	r.POST("/auth/login", authCtrl.Login)

	// Admin (protected)
	admin := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.POST("/menuItems", menuCtrl.Create)
		admin.PUT("/menuItems/:id", menuCtrl.Update)
		admin.PATCH("/menuItems/:id", menuCtrl.UpdateStock)
		admin.DELETE("/menuItems/:id", menuCtrl.Delete)

		admin.GET("/admin/statistics", adminCtrl.Statistics)
	}
}
