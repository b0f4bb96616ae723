package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/stemsi/campus-api/internal/config"
	"github.com/stemsi/campus-api/internal/database"
	"github.com/stemsi/campus-api/internal/logger"
)

func main() {
	flag.Usage = printUsage
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		return
	}

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	switch args[0] {
	case "up":
		if err := database.EnsureSchema(ctx, pool); err != nil {
			log.Fatal().Err(err).Msg("Failed to create schema")
		}
		fmt.Println("Schema is up to date")
	case "status":
		for _, table := range database.Tables {
			var count int64
			if err := pool.QueryRow(ctx, "SELECT count(*) FROM "+table).Scan(&count); err != nil {
				fmt.Printf("%-10s missing (%v)\n", table, err)
				continue
			}
			fmt.Printf("%-10s %d rows\n", table, count)
		}
	default:
		printUsage()
	}
}

func printUsage() {
	fmt.Println("Usage: schema <command>")
	fmt.Println("Commands: up, status")
}
