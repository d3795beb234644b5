package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// loadCatalogFile reads the food catalog from a JSON array file. Item order in
// the file is the catalog order.
func loadCatalogFile(path string) ([]foodItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var items []foodItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	if items == nil {
		items = []foodItem{}
	}
	return items, nil
}

// loadCatalogDB reads the food catalog from the food_items table, ordered by position.
func loadCatalogDB(ctx context.Context, pool *pgxpool.Pool) ([]foodItem, error) {
	rows, err := queryMany[foodItemRow](pool, ctx,
		"SELECT position, name, calories, details FROM food_items ORDER BY position",
		pgx.NamedArgs{})
	if err != nil {
		return nil, fmt.Errorf("query food_items: %w", err)
	}
	items := make([]foodItem, 0, len(rows))
	for _, r := range rows {
		items = append(items, r.toFoodItem())
	}
	return items, nil
}

// loadCatalog picks the catalog source from config: Postgres when DB_URL is set,
// otherwise the JSON file.
func loadCatalog(ctx context.Context, cfg appConfig) ([]foodItem, error) {
	if cfg.DBURL != "" {
		pool, err := getDBPool(ctx, cfg.DBURL)
		if err != nil {
			return nil, err
		}
		// The catalog is read once; the pool is not needed afterwards.
		defer pool.Close()
		items, err := loadCatalogDB(ctx, pool)
		if err != nil {
			return nil, err
		}
		log.Printf("[catalog] loaded %d items from database", len(items))
		return items, nil
	}

	items, err := loadCatalogFile(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	log.Printf("[catalog] loaded %d items from %s", len(items), cfg.CatalogPath)
	return items, nil
}
