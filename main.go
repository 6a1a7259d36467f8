package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"backend/internal/config"
	"backend/internal/database"
	"backend/internal/handlers"
	"backend/internal/middleware"
)

func main() {
	config.Load()

	pg, err := database.ConnectPostgres(config.AppEnv.PostgresDSN)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	if err := pg.Migrate(); err != nil {
		log.Fatal(err)
	}
	log.Println("Postgres connected and migrated")

	mongoClient, err := database.ConnectMongo(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	trackingDB := mongoClient.Database(config.AppEnv.TrackingDBName)
	log.Println("MongoDB connected to:", trackingDB.Name())

	if err := database.EnsureTrackingIndexes(trackingDB); err != nil {
		log.Printf("tracking index warning: %v", err)
	}
	if err := database.EnsureSalesmanIndexes(trackingDB); err != nil {
		log.Printf("salesman index warning: %v", err)
	}

	secret := config.AppEnv.JWTSecret
	notifier := handlers.LogNotifier{}
	gstVerifier := handlers.StubGSTVerifier{}

	r := gin.Default()

	r.GET("/products", handlers.GetProducts(pg.DB))
	r.GET("/products/:id", handlers.GetProduct(pg.DB))

	customer := r.Group("/")
	customer.Use(middleware.CustomerAuth(secret))
	{
		customer.POST("/orders", handlers.CreateOrder(pg.DB, notifier))
		customer.GET("/orders", handlers.GetMyOrders(pg.DB))
		customer.GET("/orders/:id", handlers.GetOrder(pg.DB))
		customer.POST("/orders/:id/cancel", handlers.CancelOrder(pg.DB, notifier))
		customer.POST("/complaints", handlers.CreateComplaint(pg.DB, notifier))
		customer.POST("/refunds", handlers.RequestRefund(pg.DB))
	}

	vendor := r.Group("/vendor")
	vendor.Use(middleware.VendorAuth(secret))
	{
		vendor.GET("/orders", handlers.GetVendorOrders(pg.DB))
		vendor.POST("/orders/:id/action", handlers.VendorOrderAction(pg.DB, notifier))
		vendor.POST("/items/:id/dispatch-code", handlers.IssueDispatchCode(pg.DB, notifier))
		vendor.GET("/listings", handlers.GetVendorListings(pg.DB))
		vendor.POST("/listings", handlers.CreateListing(pg.DB))
		vendor.PUT("/listings/:id", handlers.UpdateListing(pg.DB))
		vendor.GET("/complaints", handlers.GetVendorComplaints(pg.DB))
		vendor.POST("/complaints/:id/action", handlers.VendorComplaintAction(pg.DB, notifier))
		vendor.POST("/complaints/:id/closure", handlers.RequestClosure(pg.DB))
		vendor.POST("/profile/gst", handlers.VerifyGST(pg.DB, gstVerifier))
		vendor.GET("/salesmen", handlers.GetVendorSalesmen(trackingDB))
	}

	salesman := r.Group("/salesman")
	salesman.Use(middleware.SalesmanAuth(secret))
	{
		salesman.POST("/track", handlers.TrackEvent(trackingDB))
		salesman.GET("/:id/active-day", handlers.GetActiveDay(trackingDB))
	}

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(secret, config.AppEnv.IsAdminEmail))
	{
		admin.GET("/me", func(c *gin.Context) {
			c.JSON(200, gin.H{"ok": true})
		})

		admin.GET("/products", handlers.AdminListPendingProducts(pg.DB))
		admin.PATCH("/products/:id", handlers.AdminModerateProduct(pg.DB))

		admin.PATCH("/vendors/:id", handlers.AdminModerateVendorProfile(pg.DB))
		admin.PATCH("/customers/:id", handlers.AdminModerateCustomerProfile(pg.DB))

		admin.GET("/orders", handlers.AdminListOrders(pg.DB))

		admin.GET("/complaints", handlers.AdminListComplaints(pg.DB))
		admin.PATCH("/complaints/:id", handlers.AdminPatchComplaint(pg.DB, notifier))

		admin.GET("/refunds", handlers.AdminListRefunds(pg.DB))
		admin.POST("/refunds/:id/decision", handlers.AdminRefundDecision(pg.DB))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
