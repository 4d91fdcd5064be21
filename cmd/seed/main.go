package main

import (
	"context"
	"database/sql"
	"os"
	"time"

	_ "github.com/lib/pq"

	"timeledger/config"
)

type sampleEntry struct {
	name       string
	startHour  int
	endHour    int
	daysBefore int
}

// Sample data: a plausible working day today and a shorter one yesterday.
var samples = []sampleEntry{
	{"Morning Meeting", 9, 10, 0},
	{"Development Work", 10, 12, 0},
	{"Lunch Break", 12, 13, 0},
	{"Code Review", 14, 15, 0},
	{"Development Work", 15, 17, 0},
	{"Morning Meeting", 9, 10, 1},
	{"Client Call", 11, 12, 1},
	{"Development Work", 13, 16, 1},
}

// Clears the entries table and repopulates it with illustrative data.
func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Exit(1)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("open database", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DBTimeout)
	defer cancel()

	logger.Info("seeding database")

	if _, err := db.ExecContext(ctx, `DELETE FROM entries`); err != nil {
		logger.Error("clear entries", "err", err)
		os.Exit(1)
	}

	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	insert := `
		INSERT INTO entries (name, start_time, end_time, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
	`
	for _, s := range samples {
		day := today.AddDate(0, 0, -s.daysBefore)
		start := day.Add(time.Duration(s.startHour) * time.Hour)
		end := day.Add(time.Duration(s.endHour) * time.Hour)
		if _, err := db.ExecContext(ctx, insert, s.name, start, end); err != nil {
			logger.Error("insert sample entry", "name", s.name, "err", err)
			os.Exit(1)
		}
	}

	logger.Info("database seeded", "entries", len(samples))
}
