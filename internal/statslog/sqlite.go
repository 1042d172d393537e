package statslog

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

const schema = `
CREATE TABLE IF NOT EXISTS observations (
	id              INTEGER PRIMARY KEY AUTOINCREMENT,
	match_id        TEXT    NOT NULL,
	point_value     INTEGER NOT NULL,
	responded_value INTEGER NOT NULL,
	weight          INTEGER NOT NULL,
	recorded_at     TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_observations_match ON observations(match_id);`

// SQLiteSink stores observations in a SQLite database, tagged with a match id.
type SQLiteSink struct {
	db      *sql.DB
	matchID uuid.UUID
	now     func() time.Time
}

// OpenSQLite opens (or creates) the database at path and prepares the schema.
// Every sink gets a fresh match id.
func OpenSQLite(path string) (*SQLiteSink, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	db, err := sql.Open("sqlite3", sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	// A single connection keeps ":memory:" databases from splitting per connection.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("db ping: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}
	return &SQLiteSink{db: db, matchID: uuid.New(), now: time.Now}, nil
}

func sqliteDSN(path string) string {
	if strings.HasPrefix(path, "file:") || path == ":memory:" {
		return path
	}
	return fmt.Sprintf("file:%s?_busy_timeout=5000", path)
}

func (s *SQLiteSink) MatchID() uuid.UUID { return s.matchID }

func (s *SQLiteSink) Append(obs Observation) error {
	_, err := s.db.Exec(
		`INSERT INTO observations (match_id, point_value, responded_value, weight, recorded_at) VALUES (?, ?, ?, ?, ?)`,
		s.matchID.String(), obs.PointValue, obs.RespondedValue, obs.Weight, s.now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert observation: %w", err)
	}
	return nil
}

// Match loads every observation stored for matchID, in insertion order.
func (s *SQLiteSink) Match(matchID uuid.UUID) ([]Observation, error) {
	rows, err := s.db.Query(
		`SELECT point_value, responded_value, weight FROM observations WHERE match_id = ? ORDER BY id`,
		matchID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("query observations: %w", err)
	}
	defer rows.Close()

	var out []Observation
	for rows.Next() {
		var o Observation
		if err := rows.Scan(&o.PointValue, &o.RespondedValue, &o.Weight); err != nil {
			return nil, fmt.Errorf("scan observation: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (s *SQLiteSink) Close() error { return s.db.Close() }
