// Command import replaces the catalog contents with the rows of the source
// metadata spreadsheet.
package main

import (
	"context"
	"flag"
	"os"

	log "github.com/sirupsen/logrus"

	"geo-catalog-service/internal/config"
	"geo-catalog-service/internal/db"
	"geo-catalog-service/internal/importer"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	path := flag.String("file", cfg.Catalog.ImportFile, "path to the metadata .xlsx file")
	flag.Parse()

	ctx := context.Background()

	pool, err := db.NewPool(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, pool, cfg.Database.MigrationsPath); err != nil {
		log.Fatalf("run migrations: %v", err)
	}

	f, err := os.Open(*path)
	if err != nil {
		log.Fatalf("open spreadsheet: %v", err)
	}
	defer f.Close()

	table, err := importer.Parse(f)
	if err != nil {
		log.Fatalf("parse spreadsheet: %v", err)
	}

	count, err := importer.NewLoader(pool).Load(ctx, table)
	if err != nil {
		log.Fatalf("load entries: %v", err)
	}

	log.WithFields(log.Fields{
		"file":    *path,
		"columns": len(table.Columns),
		"entries": count,
	}).Info("catalog import complete")
}
