package handler

import (
	"net/http"

	"toystore-be/internal/logger"
	"toystore-be/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Router wires every handler into one gin engine.
type Router struct {
	cart    *CartHandler
	product *ProductHandler
	auth    *AuthHandler
	admin   *AdminHandler
}

func NewRouter(cart *CartHandler, product *ProductHandler, auth *AuthHandler, admin *AdminHandler) *Router {
	return &Router{cart: cart, product: product, auth: auth, admin: admin}
}

func (r *Router) Setup() *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(logger.RequestID())
	engine.Use(logger.Logging())
	engine.Use(middleware.RateLimit())

	engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Storefront
	engine.GET("/products", r.product.ListProducts)
	engine.GET("/products/:id", r.product.GetProduct)

	cart := engine.Group("/cart")
	{
		cart.GET("", r.cart.ViewCart)
		cart.POST("/add", r.cart.AddItem)
		cart.POST("/update", r.cart.UpdateItem)
		cart.POST("/remove", r.cart.RemoveItem)
		cart.POST("/place-order", r.cart.PlaceOrder)
	}

	auth := engine.Group("/auth")
	{
		auth.POST("/admin-login", r.auth.AdminLogin)
		auth.POST("/admin-logout", r.auth.AdminLogout)
	}

	// Back-office
	admin := engine.Group("/admin")
	admin.Use(middleware.AdminAuth())
	{
		admin.GET("/dashboard", r.admin.Dashboard)
		admin.GET("/products", r.admin.ListProducts)
		admin.POST("/products", r.admin.CreateProduct)
		admin.PUT("/products/:id", r.admin.UpdateProduct)
		admin.DELETE("/products/:id", r.admin.DeleteProduct)
		admin.GET("/orders", r.admin.ListOrders)
		admin.GET("/orders/:id", r.admin.GetOrder)
		admin.PUT("/orders/:id/status", r.admin.UpdateOrderStatus)
		admin.POST("/register", r.auth.AdminRegister)
	}

	return engine
}
