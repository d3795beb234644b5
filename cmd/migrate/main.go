// CLI tool to apply pending database migrations from db/migrations/.
// goose records applied versions in its goose_db_version table.
// Usage: go run ./cmd/migrate [-dir db/migrations] [up|down|status]
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx as database/sql driver
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
)

func main() {
	dir := flag.String("dir", "db/migrations", "directory holding goose SQL migrations")
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}

	dbURL := os.Getenv("DB_URL")
	if dbURL == "" {
		fmt.Fprintln(os.Stderr, "DB_URL is not set")
		os.Exit(1)
	}

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to open database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		fmt.Fprintf(os.Stderr, "Error setting dialect: %v\n", err)
		os.Exit(1)
	}

	if err := run(context.Background(), db, command, *dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error running %s: %v\n", command, err)
		os.Exit(1)
	}
}

// run executes a goose command. Only the commands this service needs are exposed.
func run(ctx context.Context, db *sql.DB, command, dir string) error {
	switch command {
	case "up":
		return goose.UpContext(ctx, db, dir)
	case "down":
		return goose.DownContext(ctx, db, dir)
	case "status":
		return goose.StatusContext(ctx, db, dir)
	default:
		return fmt.Errorf("unknown command %q (want up, down or status)", command)
	}
}
