package main

import (
	"github.com/sirupsen/logrus"

	"github.com/Vasuishere/vasudevchemopharma/config"
	"github.com/Vasuishere/vasudevchemopharma/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	if err := database.Initialize(&cfg.Database); err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	if err := database.AutoMigrate(database.GetDB()); err != nil {
		logrus.Fatalf("Migration failed: %v", err)
	}
}
