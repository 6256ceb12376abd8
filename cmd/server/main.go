package main

import (
	"log"
	"os"
	"strings"
	"time"

	"ecowaste_back_end/internal/cart"
	"ecowaste_back_end/internal/catalog"
	"ecowaste_back_end/internal/checkout"
	"ecowaste_back_end/internal/config"
	"ecowaste_back_end/internal/database"
	"ecowaste_back_end/internal/donations"
	"ecowaste_back_end/internal/handlers"
	"ecowaste_back_end/internal/orders"
	"ecowaste_back_end/internal/routes"
	"ecowaste_back_end/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const (
	cartTTL      = 30 * 24 * time.Hour
	paymentDelay = 2 * time.Second // simulated processing time
)

func main() {
	config.Load()

	database.ConnectDatabases()
	defer database.CloseScylla()

	ordersSession, err := database.GetOrdersSession()
	if err != nil {
		log.Fatalf("❌ Orders keyspace unavailable: %v", err)
	}
	catalogSession, err := database.GetCatalogSession()
	if err != nil {
		log.Fatalf("❌ Catalog keyspace unavailable: %v", err)
	}

	cartStore := cart.NewStore(storage.NewRedisKV(database.Redis, cartTTL))
	orderStore := orders.NewScyllaStore(ordersSession)
	checkoutMgr := checkout.NewManager(cartStore, orderStore, checkout.SimulatedProcessor{Delay: paymentDelay})
	searchSvc := catalog.NewSearchService(database.Elastic)

	h := &handlers.Handler{
		Cart:      cartStore,
		Orders:    orderStore,
		Checkout:  checkoutMgr,
		Catalog:   catalog.NewStore(catalogSession, database.Redis, searchSvc),
		Search:    searchSvc,
		Images:    catalog.NewImageStore(database.MinIO, os.Getenv("MINIO_ENDPOINT"), strings.ToLower(os.Getenv("MINIO_USE_SSL")) == "true"),
		Donations: donations.NewScyllaStore(ordersSession),
		Redis:     database.Redis,

		SendConfirmation: handlers.DefaultConfirmationSender,
	}

	r := gin.Default()
	r.Use(cors.New(corsConfig()))
	routes.RegisterRoutes(r, h, database.Redis)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Eco Waste Hub API listening on port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Server stopped:", err)
	}
}

func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
	} else {
		cfg.AllowOrigins = []string{"http://localhost:3000"}
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, "Authorization")
	cfg.AllowCredentials = true
	return cfg
}
