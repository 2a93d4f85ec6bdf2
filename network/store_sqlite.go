package network

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS cities (
    position INTEGER PRIMARY KEY,
    name     TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS routes (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    source      TEXT NOT NULL REFERENCES cities(name),
    destination TEXT NOT NULL REFERENCES cities(name),
    cost        REAL NOT NULL CHECK (cost >= 0)
);

CREATE INDEX IF NOT EXISTS idx_routes_source ON routes(source);
`

// SQLiteStore keeps a single network in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("creating db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Init creates the database schema if it doesn't exist.
func (s *SQLiteStore) Init(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Save replaces the stored network with n in a single transaction.
// Route endpoints missing from n.Cities are stored as cities too, after the
// declared ones, so the foreign keys hold.
func (s *SQLiteStore) Save(ctx context.Context, n Network) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, `DELETE FROM routes`); err != nil {
		return fmt.Errorf("clearing routes: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM cities`); err != nil {
		return fmt.Errorf("clearing cities: %w", err)
	}

	seen := make(map[string]bool, len(n.Cities))
	insertCity := func(name string) error {
		if seen[name] {
			return nil
		}
		seen[name] = true
		_, err := tx.ExecContext(ctx, `INSERT INTO cities (position, name) VALUES (?, ?)`, len(seen), name)
		return err
	}

	for _, c := range n.Cities {
		if err := insertCity(c); err != nil {
			return fmt.Errorf("inserting city %q: %w", c, err)
		}
	}
	for _, r := range n.Records {
		if err := insertCity(r.Source); err != nil {
			return fmt.Errorf("inserting city %q: %w", r.Source, err)
		}
		if err := insertCity(r.Destination); err != nil {
			return fmt.Errorf("inserting city %q: %w", r.Destination, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO routes (source, destination, cost) VALUES (?, ?, ?)`,
			r.Source, r.Destination, r.Weight); err != nil {
			return fmt.Errorf("inserting route %s→%s: %w", r.Source, r.Destination, err)
		}
	}

	return tx.Commit()
}

// Load reads the stored network back, cities in position order and routes
// in insertion order.
func (s *SQLiteStore) Load(ctx context.Context) (Network, error) {
	var cities []string
	rows, err := s.db.QueryContext(ctx, `SELECT name FROM cities ORDER BY position`)
	if err != nil {
		return Network{}, fmt.Errorf("querying cities: %w", err)
	}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			rows.Close() //nolint:errcheck,gosec // best-effort cleanup
			return Network{}, fmt.Errorf("scanning city: %w", err)
		}
		cities = append(cities, name)
	}
	if err := rows.Err(); err != nil {
		rows.Close() //nolint:errcheck,gosec // best-effort cleanup
		return Network{}, err
	}
	rows.Close() //nolint:errcheck,gosec // best-effort cleanup

	var records []Record
	rows, err = s.db.QueryContext(ctx, `SELECT source, destination, cost FROM routes ORDER BY id`)
	if err != nil {
		return Network{}, fmt.Errorf("querying routes: %w", err)
	}
	defer rows.Close() //nolint:errcheck // best-effort cleanup
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.Source, &r.Destination, &r.Weight); err != nil {
			return Network{}, fmt.Errorf("scanning route: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return Network{}, err
	}

	return normalize(cities, records, "sqlite network")
}
