package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/stemsi/campus-api/internal/config"
	"github.com/stemsi/campus-api/internal/database"
	"github.com/stemsi/campus-api/internal/logger"
	"github.com/stemsi/campus-api/internal/repository"
	"github.com/stemsi/campus-api/internal/seed"
	"github.com/stemsi/campus-api/internal/service"
)

func main() {
	file := flag.String("file", "data.xlsx", "workbook with Campuses and Students sheets")
	flag.Parse()

	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("Failed to open workbook")
	}
	wb, err := seed.Open(f)
	f.Close()
	if err != nil {
		log.Fatal().Err(err).Str("file", *file).Msg("Failed to parse workbook")
	}

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("Failed to create schema")
	}

	campusRepo := repository.NewCampusRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)

	loader := seed.NewLoader(
		service.NewCampusService(campusRepo, studentRepo),
		service.NewStudentService(studentRepo, campusRepo),
		log,
	)

	fmt.Printf("=== Seeding from %s ===\n", *file)

	sum, err := loader.Load(ctx, wb)
	if err != nil {
		log.Fatal().Err(err).Msg("Seed failed")
	}

	for _, rowErr := range sum.Failed {
		fmt.Printf("Skipped %v\n", rowErr)
	}
	fmt.Printf("\nSeed completed! Added %d/%d campuses and %d/%d students.\n",
		sum.CampusesCreated, len(wb.Campuses),
		sum.StudentsCreated, len(wb.Students)+countSheet(wb.Skipped, seed.StudentSheet))
}

func countSheet(errs []seed.RowError, sheet string) int {
	n := 0
	for _, e := range errs {
		if e.Sheet == sheet {
			n++
		}
	}
	return n
}
