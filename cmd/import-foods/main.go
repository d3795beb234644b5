// CLI tool to load a JSON food catalog into the food_items table.
// Replaces the whole table in one transaction so the server never sees a
// partial catalog. File order becomes the position column.
// Usage: go run ./cmd/import-foods [path/to/foodItems.json]
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

// catalogRecord is one food as found in the JSON file. Fields other than name
// and calories go to the details column untouched.
type catalogRecord map[string]any

func main() {
	path := "foodItems.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
		os.Exit(1)
	}

	records, err := readCatalog(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading catalog: %v\n", err)
		os.Exit(1)
	}
	rows, err := toRows(records)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid catalog: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	conn, err := pgx.Connect(ctx, os.Getenv("DB_URL"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer conn.Close(ctx)

	tx, err := conn.Begin(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error starting transaction: %v\n", err)
		os.Exit(1)
	}

	if _, err := tx.Exec(ctx, "DELETE FROM food_items"); err != nil {
		tx.Rollback(ctx)
		fmt.Fprintf(os.Stderr, "Error clearing food_items: %v\n", err)
		os.Exit(1)
	}

	n, err := tx.CopyFrom(ctx,
		pgx.Identifier{"food_items"},
		[]string{"position", "name", "calories", "details"},
		pgx.CopyFromRows(rows))
	if err != nil {
		tx.Rollback(ctx)
		fmt.Fprintf(os.Stderr, "Error copying food_items: %v\n", err)
		os.Exit(1)
	}

	if err := tx.Commit(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error committing: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Imported %d food item(s) from %s\n", n, path)
}

// readCatalog parses a JSON array of food objects.
func readCatalog(path string) ([]catalogRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var records []catalogRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return records, nil
}

// toRows converts records to CopyFrom rows: position, name, calories, details.
// Every record needs a non-empty name and non-negative numeric calories.
func toRows(records []catalogRecord) ([][]any, error) {
	rows := make([][]any, 0, len(records))
	for i, rec := range records {
		name, _ := rec["name"].(string)
		if name == "" {
			return nil, fmt.Errorf("item %d: name is required", i)
		}
		calories, ok := rec["calories"].(float64)
		if !ok || calories < 0 {
			return nil, fmt.Errorf("item %d (%s): calories must be a non-negative number", i, name)
		}

		details := make(map[string]any, len(rec))
		for k, v := range rec {
			if k != "name" && k != "calories" {
				details[k] = v
			}
		}
		rows = append(rows, []any{i, name, calories, details})
	}
	return rows, nil
}
