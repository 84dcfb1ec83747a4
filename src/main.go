package main

import (
	"net/http"

	"fintrack-server/src/api"
	"fintrack-server/src/config"
	"fintrack-server/src/db"
	sqlstore "fintrack-server/src/db/sql"
	"fintrack-server/src/service"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()

	logrus.SetFormatter(&logrus.JSONFormatter{})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logger := logrus.StandardLogger()

	// Connect to database
	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("DB connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(cfg.DatabaseURL); err != nil {
		logrus.Fatalf("DB migrations failed: %v", err)
	}

	db.InitCache()

	// Stores and services
	users := sqlstore.NewUserStore(pool)
	transactions := sqlstore.NewTransactionStore(pool)
	budgets := sqlstore.NewBudgetStore(pool)
	transactionSvc := service.NewTransactionService(transactions, logger)
	budgetSvc := service.NewBudgetService(budgets, transactions, logger)

	// Router
	router := api.NewRouter(users, transactionSvc, budgetSvc, cfg.DemoMode)

	logrus.Infof("API server running on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logrus.Fatal(err)
	}
}
