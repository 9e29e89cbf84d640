package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/muhammad-sohel131/groupStudy-backend/internal/auth"
	"github.com/muhammad-sohel131/groupStudy-backend/internal/config"
	"github.com/muhammad-sohel131/groupStudy-backend/internal/database"
	"github.com/muhammad-sohel131/groupStudy-backend/internal/routes"
	"github.com/muhammad-sohel131/groupStudy-backend/internal/store"
)

func main() {
	// Load configuration
	cfg := config.LoadConfig()

	// Connect to MongoDB
	client, err := database.ConnectMongoDB(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	codec := auth.NewCodec([]byte(cfg.JWTSecret), time.Hour)
	assignments := store.NewMongoAssignmentStore(client, cfg.DatabaseName)
	submissions := store.NewMongoSubmissionStore(client, cfg.DatabaseName)

	// Initialize router
	router := routes.SetupRouter(codec, cfg.IsProduction(), assignments, submissions)

	// Setup CORS middleware
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: c.Handler(router),
	}

	go func() {
		log.Printf("Server is running on http://localhost:%s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	// Drain in-flight requests, then close the MongoDB connection
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("Failed to disconnect from MongoDB: %v", err)
	}
}
