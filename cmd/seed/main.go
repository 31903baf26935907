package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/schedulo-dev/staff-scheduler/backend/internal/config"
	"github.com/schedulo-dev/staff-scheduler/backend/internal/repository"
	"github.com/schedulo-dev/staff-scheduler/backend/internal/seed"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	var op string
	var n int

	flag.StringVar(&op, "op", "", "operation to run (users, locations, shifts, availability, requests)")
	flag.IntVar(&n, "n", 20, "number of records to insert")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	dbpool, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("failed to create database pool", "error", err)
		return
	}
	defer dbpool.Close()

	dbpool.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	dbpool.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	dbpool.SetConnMaxIdleTime(time.Duration(cfg.Database.MaxIdleTime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Database.ConnectTimeout)*time.Second)
	defer cancel()

	// sql.Open does not connect; ping to fail fast on a bad DSN
	if err := dbpool.PingContext(ctx); err != nil {
		logger.Error("failed to connect to database", "error", err)
		return
	}

	repo := repository.NewRepository(cfg, dbpool)

	switch op {
	case "users":
		seed.Users(repo, n, cfg.Seed.UserPassword, cfg.Email.UserDomain)
	case "locations":
		seed.Locations(repo)
	case "shifts":
		seed.Shifts(repo, n)
	case "availability":
		seed.Availability(repo, n)
	case "requests":
		seed.ShiftRequests(repo, n)
	default:
		logger.Error("unknown operation", "op", op)
		flag.Usage()
		os.Exit(1)
	}
}
