package main

import (
	"log"

	"subject-panel-be/internal/config"
	"subject-panel-be/internal/model"
	"subject-panel-be/pkg/database"
)

func main() {
	cfg := config.Load()
	if cfg.Database.Connection == "" || cfg.Database.Name == "" {
		log.Panic("DB_CONNECTION_STRING and DB_NAME must be set")
	}

	gormDB, err := database.NewGormDB(cfg.Database.Connection, cfg.Database.Name)
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.Subject{}); err != nil {
		log.Panicf("Migration failed: %v", err)
	}

	log.Println("✅ Migration complete")
}
