package routes

import (
	"ecowaste_back_end/internal/handlers"
	"ecowaste_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mounts the full API surface. Everything touching a user's
// cart, checkout, orders or donations requires a valid token; the catalog is
// public except for image upload.
func RegisterRoutes(r *gin.Engine, h *handlers.Handler, rdb *redis.Client) {
	api := r.Group("/api")
	api.Use(middleware.APIRateLimit(rdb))

	products := api.Group("/products")
	{
		products.GET("", h.ListProducts)
		products.GET("/search", h.SearchProducts)
		products.GET("/:id", h.GetProduct)
		products.POST("/:id/image", middleware.AuthRequired(), h.UploadProductImage)
	}

	authed := api.Group("")
	authed.Use(middleware.AuthRequired())
	{
		authed.GET("/cart", h.GetCart)
		authed.POST("/cart/add", h.AddToCart)
		authed.POST("/cart/quantity", h.UpdateQuantity)
		authed.DELETE("/cart/:productId", h.RemoveFromCart)
		authed.DELETE("/cart", h.ClearCart)
		authed.GET("/cart/ws", h.CartWebSocket)

		authed.POST("/checkout/begin", h.BeginCheckout)
		authed.POST("/checkout/pay", h.SubmitPayment)
		authed.POST("/checkout/abandon", h.AbandonCheckout)

		authed.GET("/orders", h.GetMyOrders)
		authed.GET("/orders/:id", h.GetOrderByID)

		authed.POST("/donations", h.CreateDonation)
		authed.GET("/donations", h.ListMyDonations)
	}
}
