package main

import (
	"net/http"

	"fintrack-server/src/api"
	"fintrack-server/src/config"
	"fintrack-server/src/db"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	// Connect to database
	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		logrus.Fatalf("migrations failed: %v", err)
	}

	db.InitCache()

	// Router
	router := api.NewRouter(pool, cfg)

	logrus.Infof("API server running on port %s (%s)", cfg.Port, cfg.Environment)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logrus.Fatal(err)
	}
}
