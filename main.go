package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/Vasuishere/vasudevchemopharma/config"
	"github.com/Vasuishere/vasudevchemopharma/database"
	"github.com/Vasuishere/vasudevchemopharma/web"
)

func main() {
	// Command line flags
	var (
		migrate = flag.Bool("migrate", false, "Run database migration on startup")
		seed    = flag.Bool("seed", false, "Seed database with the initial catalogue")
		help    = flag.Bool("help", false, "Show help")
	)

	flag.Parse()

	if *help {
		showHelp()
		return
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize database connection
	if err := database.Initialize(&cfg.Database); err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.Close()

	// Run migration if requested
	if *migrate {
		if err := database.AutoMigrate(database.GetDB()); err != nil {
			logrus.Fatalf("Migration failed: %v", err)
		}
	}

	// Seed data if requested
	if *seed {
		if err := database.SeedData(database.GetDB()); err != nil {
			logrus.Fatalf("Seeding failed: %v", err)
		}
	}

	// Create and start the web server
	server := web.NewServer(cfg)

	// Graceful shutdown on interrupt
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		logrus.Info("Shutting down server...")
		if err := server.Shutdown(); err != nil {
			logrus.Errorf("Server shutdown failed: %v", err)
		}
	}()

	if err := server.Start(cfg.App.Port); err != nil {
		logrus.Fatalf("Server failed: %v", err)
	}
}

func showHelp() {
	fmt.Println("Chemical catalogue website")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  app [flags]")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -migrate   Run database migration on startup")
	fmt.Println("  -seed      Seed database with the initial catalogue")
	fmt.Println("  -help      Show this help")
}
