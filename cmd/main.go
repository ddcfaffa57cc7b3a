package main

import (
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/kavia-common/simple-to-do-list-311518-311527/broker"
	"github.com/kavia-common/simple-to-do-list-311518-311527/config"
	"github.com/kavia-common/simple-to-do-list-311518-311527/database"
	"github.com/kavia-common/simple-to-do-list-311518-311527/middleware"
	"github.com/kavia-common/simple-to-do-list-311518-311527/routes"
	"github.com/kavia-common/simple-to-do-list-311518-311527/services"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()

	db, err := database.Setup(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Eventing is optional: the API keeps serving without a broker.
	if err := broker.InitProducer(cfg.NatsURL); err != nil {
		log.Printf("Warning: Failed to initialize NATS producer: %v", err)
		log.Println("The application will continue, but task events will not be published")
	} else {
		defer broker.CloseProducer()
	}

	if cfg.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	router.Use(middleware.RequestIDMiddleware())

	routes.RegisterHealthRoutes(router)
	routes.RegisterTaskRoutes(router, db, services.TaskServiceInstance)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-quit
		log.Println("Shutting down server...")
		broker.CloseProducer()
		db.Close()
		os.Exit(0)
	}()

	log.Printf("API server is running on port %s", cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, router); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
