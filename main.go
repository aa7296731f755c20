package main

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/hpmalinova/Finance-Tracker/config"
	"github.com/hpmalinova/Finance-Tracker/repository"
	"github.com/hpmalinova/Finance-Tracker/rest"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}
	cfg := config.Load()

	db, err := repository.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("connecting to mongodb: %v", err)
	}

	users := repository.NewUserRepoMongo(db)
	transactions := repository.NewTransactionRepoMongo(db)
	expenses := repository.NewExpenseRepoMongo(db)
	budgets := repository.NewBudgetRepoMongo(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Index declarations are applied explicitly at startup; the unique
	// budget key in particular must exist before any writes.
	for _, idx := range []interface {
		EnsureIndexes(ctx context.Context) error
	}{users, transactions, expenses, budgets} {
		if err := idx.EnsureIndexes(ctx); err != nil {
			log.Fatalf("creating indexes: %v", err)
		}
	}

	// The reporting tables are filled by an external batch job; the API
	// only provisions them and starts regardless.
	if reports, err := repository.NewReportStoreMysql(cfg.MySQLDSN); err != nil {
		log.Printf("reports store unavailable: %v", err)
	} else if err := reports.InitSchema(ctx); err != nil {
		log.Printf("initializing report tables: %v", err)
	}

	a := rest.App{
		Users:        users,
		Transactions: transactions,
		Expenses:     expenses,
		Budgets:      budgets,
		JWTSecret:    []byte(cfg.JWTSecret),
		TokenTTL:     cfg.TokenTTL,
		FrontendURL:  cfg.FrontendURL,
	}
	a.Init()

	log.Printf("listening on %s", cfg.Addr)
	a.Run(cfg.Addr)
}
