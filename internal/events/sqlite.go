package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/jonathan/review-schedule/internal/logfields"
)

// StoredEvent is an event read back from the SQLite log.
type StoredEvent struct {
	ID         int64           `json:"id"`
	Type       Type            `json:"type"`
	Slug       string          `json:"slug"`
	Payload    json.RawMessage `json:"payload"`
	OccurredAt time.Time       `json:"occurred_at"`
}

// SQLiteSink appends events to a SQLite table.
type SQLiteSink struct {
	db     *sql.DB
	mu     sync.RWMutex
	logger *slog.Logger
}

// NewSQLiteSink opens (or creates) the event log at dbPath.
// Use ":memory:" for an in-memory database.
func NewSQLiteSink(dbPath string, logger *slog.Logger) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// A single connection keeps ":memory:" databases alive across calls.
	db.SetMaxOpenConns(1)

	if logger == nil {
		logger = slog.Default()
	}
	sink := &SQLiteSink{db: db, logger: logger}
	if err := sink.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return sink, nil
}

func (s *SQLiteSink) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS article_events (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		event_type TEXT NOT NULL,
		slug TEXT NOT NULL,
		occurred_at INTEGER NOT NULL,
		payload BLOB NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_article_events_slug ON article_events(slug);
	CREATE INDEX IF NOT EXISTS idx_article_events_type ON article_events(event_type);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Emit appends the event. Failures are logged, not returned.
func (s *SQLiteSink) Emit(ctx context.Context, e Event) {
	if err := s.Append(ctx, e); err != nil {
		s.logger.Warn("Failed to store article event",
			logfields.Event(string(e.Type)), logfields.Slug(e.Slug), logfields.Error(err))
	}
}

// Append stores the event and reports any failure.
func (s *SQLiteSink) Append(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e.Payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}
	at := e.OccurredAt
	if at.IsZero() {
		at = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err = s.db.ExecContext(ctx,
		"INSERT INTO article_events (event_type, slug, occurred_at, payload) VALUES (?, ?, ?, ?)",
		string(e.Type), e.Slug, at.UnixMilli(), payload,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

// BySlug returns the events of one article in insertion order.
func (s *SQLiteSink) BySlug(ctx context.Context, slug string) ([]StoredEvent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, event_type, slug, occurred_at, payload FROM article_events WHERE slug = ? ORDER BY id",
		slug,
	)
	if err != nil {
		return nil, fmt.Errorf("query events: %w", err)
	}
	defer rows.Close()

	return scanEvents(rows)
}

// CountByType returns how many events of each type are stored.
func (s *SQLiteSink) CountByType(ctx context.Context) (map[Type]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT event_type, COUNT(*) FROM article_events GROUP BY event_type")
	if err != nil {
		return nil, fmt.Errorf("query event counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[Type]int)
	for rows.Next() {
		var t string
		var n int
		if err := rows.Scan(&t, &n); err != nil {
			return nil, fmt.Errorf("scan event count: %w", err)
		}
		counts[Type(t)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return counts, nil
}

func scanEvents(rows *sql.Rows) ([]StoredEvent, error) {
	var out []StoredEvent
	for rows.Next() {
		var e StoredEvent
		var t string
		var at int64
		var payload []byte
		if err := rows.Scan(&e.ID, &t, &e.Slug, &at, &payload); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		e.Type = Type(t)
		e.OccurredAt = time.UnixMilli(at)
		e.Payload = json.RawMessage(payload)
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rows: %w", err)
	}
	return out, nil
}

// Close closes the database connection.
func (s *SQLiteSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}
