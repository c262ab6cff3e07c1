package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"tripboard/internal/model"

	_ "modernc.org/sqlite"
)

const dbFileName = "tripboard.sqlite"

var ErrNotFound = errors.New("event not found")

type Store struct {
	Dir string
}

func (s Store) Ensure() error {
	if strings.TrimSpace(s.Dir) == "" {
		return errors.New("store dir is empty")
	}
	return os.MkdirAll(s.Dir, 0o755)
}

func (s Store) Path() string {
	return filepath.Join(s.Dir, dbFileName)
}

func (s Store) open(ctx context.Context) (*sql.DB, error) {
	if err := s.Ensure(); err != nil {
		return nil, err
	}
	// modernc.org/sqlite driver name is "sqlite".
	db, err := sql.Open("sqlite", s.Path())
	if err != nil {
		return nil, err
	}
	// WAL lets the CLI read while a TUI session holds the db open.
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA busy_timeout=5000;",
	}
	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, err
		}
	}
	if err := migrate(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS events (
			id TEXT PRIMARY KEY,
			position INTEGER NOT NULL,
			type TEXT NOT NULL,
			destination TEXT NOT NULL,
			date_from_unixms INTEGER NOT NULL,
			date_to_unixms INTEGER NOT NULL,
			base_price INTEGER NOT NULL,
			offers_json TEXT NOT NULL,
			is_favorite INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_events_position ON events(position);`,
	}
	for _, st := range stmts {
		if _, err := db.ExecContext(ctx, st); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

const selectColumns = `id, type, destination, date_from_unixms, date_to_unixms, base_price, offers_json, is_favorite`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEvent(r rowScanner) (model.Event, error) {
	var (
		ev         model.Event
		typ        string
		from, to   int64
		offersJSON string
		favorite   int
	)
	if err := r.Scan(&ev.ID, &typ, &ev.Destination, &from, &to, &ev.BasePrice, &offersJSON, &favorite); err != nil {
		return model.Event{}, err
	}
	ev.Type = model.EventType(typ)
	ev.DateFrom = time.UnixMilli(from).UTC()
	ev.DateTo = time.UnixMilli(to).UTC()
	ev.IsFavorite = favorite != 0
	if offersJSON != "" {
		var offers []string
		if err := json.Unmarshal([]byte(offersJSON), &offers); err != nil {
			return model.Event{}, fmt.Errorf("event %s offers: %w", ev.ID, err)
		}
		if len(offers) > 0 {
			ev.Offers = offers
		}
	}
	return ev, nil
}

// LoadEvents returns all events in load order.
func (s Store) LoadEvents(ctx context.Context) ([]model.Event, error) {
	db, err := s.open(ctx)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, `SELECT `+selectColumns+` FROM events ORDER BY position, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Event{}
	for rows.Next() {
		ev, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ev)
	}
	return out, rows.Err()
}

func (s Store) GetEvent(ctx context.Context, id string) (model.Event, error) {
	db, err := s.open(ctx)
	if err != nil {
		return model.Event{}, err
	}
	defer db.Close()

	ev, err := scanEvent(db.QueryRowContext(ctx, `SELECT `+selectColumns+` FROM events WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return model.Event{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return ev, err
}

// SaveEvent updates an existing event in place; its position is kept.
func (s Store) SaveEvent(ctx context.Context, ev model.Event) error {
	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	offers, err := marshalOffers(ev.Offers)
	if err != nil {
		return err
	}
	res, err := db.ExecContext(ctx, `UPDATE events
		SET type = ?, destination = ?, date_from_unixms = ?, date_to_unixms = ?, base_price = ?, offers_json = ?, is_favorite = ?
		WHERE id = ?`,
		string(ev.Type), ev.Destination, ev.DateFrom.UnixMilli(), ev.DateTo.UnixMilli(), ev.BasePrice, offers, boolInt(ev.IsFavorite), ev.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, ev.ID)
	}
	return nil
}

// ReplaceEvents swaps the whole collection for evs. Slice order becomes load order.
func (s Store) ReplaceEvents(ctx context.Context, evs []model.Event) error {
	seen := make(map[string]bool, len(evs))
	for _, ev := range evs {
		if strings.TrimSpace(ev.ID) == "" {
			return errors.New("event with empty id")
		}
		if seen[ev.ID] {
			return fmt.Errorf("duplicate event id: %s", ev.ID)
		}
		seen[ev.ID] = true
	}

	db, err := s.open(ctx)
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM events`); err != nil {
		return err
	}
	for i, ev := range evs {
		offers, err := marshalOffers(ev.Offers)
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, `INSERT INTO events(id, position, type, destination, date_from_unixms, date_to_unixms, base_price, offers_json, is_favorite)
			VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			ev.ID, i, string(ev.Type), ev.Destination, ev.DateFrom.UnixMilli(), ev.DateTo.UnixMilli(), ev.BasePrice, offers, boolInt(ev.IsFavorite)); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// LoadModel loads the events into an EventsModel snapshot.
func (s Store) LoadModel(ctx context.Context) (*EventsModel, error) {
	evs, err := s.LoadEvents(ctx)
	if err != nil {
		return nil, err
	}
	return NewEventsModel(evs), nil
}

func marshalOffers(offers []string) (string, error) {
	if len(offers) == 0 {
		return "[]", nil
	}
	b, err := json.Marshal(offers)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
