package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"

	configs "github.com/retailshop/customer-services/configs"
	svcconfig "github.com/retailshop/customer-services/internal/customersvc/config"
	"github.com/retailshop/customer-services/internal/customersvc/db"
	"github.com/retailshop/customer-services/internal/customersvc/handlers"
	"github.com/retailshop/customer-services/internal/customersvc/service"
	"github.com/retailshop/customer-services/internal/customersvc/store"
	log "github.com/sirupsen/logrus"
)

const SERVICE_NAME = "customer"

var instanceId string

func init() {
	instanceId = "001"
	configs.Logging(SERVICE_NAME + "_service_" + instanceId)
	configs.LoadEnv(SERVICE_NAME)
}

func main() {
	cfg := svcconfig.Load()

	// pg connection
	dbpool, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to DB: %v", err)
	}
	defer db.ClosePool()
	log.Printf("pg connection established successfully")

	// table bootstrap, idempotent
	if err := db.CreateCustomerTable(context.Background(), dbpool); err != nil {
		log.Fatalf("Failed to create customer table: %v", err)
	}
	log.Printf("customer table ready")

	customerStore := store.NewCustomerStore(dbpool)
	customerService := service.NewCustomerService(customerStore)

	configs.CreateUniqueInstance(SERVICE_NAME)

	// Setup router
	r := chi.NewRouter()
	c := configs.CORS()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(configs.CustomLoggerMiddleware())
	r.Use(configs.JSONRecoverer())
	r.Use(c.Handler)

	// Init handlers and routes
	h := handlers.NewHandler(customerService)
	h.SetRoutes(r)

	// Create server with timeout settings
	server := &http.Server{
		Addr:         ":" + cfg.ServicePort,
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()
	log.Infof("%s service running at port %s", SERVICE_NAME, server.Addr)

	// Wait for interrupt signal to gracefully shutdown the server
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("%s service shutdown Failed:%+v", SERVICE_NAME, err)
	}
	log.Infof("%s service gracefully stopped", SERVICE_NAME)
}
