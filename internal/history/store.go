// Package history stores finished rounds in SQLite.
package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/xtding233/chip-duel/internal/board"
	"github.com/xtding233/chip-duel/internal/history/migrations"
	"github.com/xtding233/chip-duel/internal/round"
)

// ErrDuplicateRound is returned when a round id is recorded twice.
var ErrDuplicateRound = errors.New("round already recorded")

// DefaultListLimit caps ListRounds when no limit is given.
const DefaultListLimit = 20

// Store persists round summaries.
type Store struct {
	sqlDB *sql.DB
}

// Tally aggregates every recorded round.
type Tally struct {
	Rounds int
	P1Wins int
	P2Wins int
	Ties   int
}

// Open opens the database at path and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("history path is required")
	}
	dsn := "file:" + filepath.Clean(path) +
		"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	ctx := context.Background()
	if err := sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(ctx, sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the database handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// RecordRound stores one finished round and its slots.
func (s *Store) RecordRound(ctx context.Context, sum round.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(sum.RoundID) == "" {
		return errors.New("round id is required")
	}
	finished := sum.FinishedAt
	if finished.IsZero() {
		finished = time.Now()
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO rounds (id, finished_at, p1_total, p2_total, outcome) VALUES (?, ?, ?, ?, ?)`,
		sum.RoundID, finished.UTC().UnixMilli(), sum.P1Total, sum.P2Total, sum.Outcome,
	); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateRound
		}
		return fmt.Errorf("insert round: %w", err)
	}
	for _, p := range board.Players {
		for i, sl := range sum.Slots[p] {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO round_slots (round_id, player, slot, name, power, won) VALUES (?, ?, ?, ?, ?, ?)`,
				sum.RoundID, int(p), i, sl.Name, sl.Power, sl.Won,
			); err != nil {
				return fmt.Errorf("insert slot %s/%d: %w", p, i, err)
			}
		}
	}
	return tx.Commit()
}

// ListRounds returns the most recent rounds, newest first.
func (s *Store) ListRounds(ctx context.Context, limit int) ([]round.Summary, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, finished_at, p1_total, p2_total, outcome FROM rounds
		 ORDER BY finished_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list rounds: %w", err)
	}
	var out []round.Summary
	for rows.Next() {
		var (
			sum round.Summary
			ms  int64
		)
		if err := rows.Scan(&sum.RoundID, &ms, &sum.P1Total, &sum.P2Total, &sum.Outcome); err != nil {
			_ = rows.Close()
			return nil, fmt.Errorf("scan round: %w", err)
		}
		sum.FinishedAt = time.UnixMilli(ms).UTC()
		out = append(out, sum)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		if err := s.loadSlots(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (s *Store) loadSlots(ctx context.Context, sum *round.Summary) error {
	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT player, slot, name, power, won FROM round_slots WHERE round_id = ?`, sum.RoundID)
	if err != nil {
		return fmt.Errorf("load slots for %s: %w", sum.RoundID, err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			p, i int
			sl   round.SummarySlot
		)
		if err := rows.Scan(&p, &i, &sl.Name, &sl.Power, &sl.Won); err != nil {
			return fmt.Errorf("scan slot: %w", err)
		}
		if p < 0 || p > 1 || i < 0 || i >= board.Slots {
			return fmt.Errorf("round %s: slot %d/%d out of range", sum.RoundID, p, i)
		}
		sum.Slots[p][i] = sl
	}
	return rows.Err()
}

// Tally counts rounds by outcome.
func (s *Store) Tally(ctx context.Context) (Tally, error) {
	var t Tally
	err := s.sqlDB.QueryRowContext(ctx, `SELECT
		COUNT(*),
		COALESCE(SUM(p1_total > p2_total), 0),
		COALESCE(SUM(p2_total > p1_total), 0),
		COALESCE(SUM(p1_total = p2_total), 0)
		FROM rounds`).Scan(&t.Rounds, &t.P1Wins, &t.P2Wins, &t.Ties)
	if err != nil {
		return Tally{}, fmt.Errorf("tally rounds: %w", err)
	}
	return t, nil
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return strings.Contains(strings.ToLower(err.Error()), "unique constraint failed")
}

var _ round.Recorder = (*Store)(nil)
