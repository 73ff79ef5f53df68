package main

import (
	"context"
	"log"

	"subject-panel-be/internal/bootstrap"
	"subject-panel-be/internal/config"
	"subject-panel-be/internal/server"
	"subject-panel-be/internal/tracer"
	"subject-panel-be/pkg/database"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()
	if cfg.Database.Connection == "" {
		log.Panic("DB_CONNECTION_STRING is not set. Configure it in your environment variables.")
	}
	if cfg.Database.Name == "" {
		log.Panic("DB_NAME is not set. Configure it in your environment variables.")
	}

	// 2. Initialize Database (single pooled handle, shared by reference)
	gormDB, err := database.NewGormDB(cfg.Database.Connection, cfg.Database.Name)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}
	defer func() {
		if sqlDB, err := gormDB.DB(); err == nil {
			sqlDB.Close()
		}
	}()

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)
	defer container.Logger.Sync()

	// 4. Start Background Services
	go func() {
		log.Println("Background: Starting Audit Service...")
		if err := container.AuditService.Consume(context.Background()); err != nil {
			log.Printf("Background Audit Error: %v", err)
		}
	}()

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
