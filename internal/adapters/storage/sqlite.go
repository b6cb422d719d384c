package storage

// sqlite.go — histórico de batches.
//
// Dos tablas: `batches` (una fila por ejecución, con los conteos ya
// agregados) y `outcomes` (una fila por item, en orden de batch). El
// UPSERT por run_id hace el save idempotente si un batch se re-persiste.
// Prune automático al arrancar: ejecuciones de más de 90 días.

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alejandrodnm/metalbot/internal/domain"
	_ "modernc.org/sqlite"
)

const schema = `
-- Una fila por ejecución de batch
CREATE TABLE IF NOT EXISTS batches (
    run_id      TEXT PRIMARY KEY,
    kind        TEXT     NOT NULL,
    started_at  DATETIME NOT NULL,
    finished_at DATETIME NOT NULL,
    total       INTEGER  NOT NULL DEFAULT 0,
    succeeded   INTEGER  NOT NULL DEFAULT 0,
    failed      INTEGER  NOT NULL DEFAULT 0,
    gave_up     INTEGER  NOT NULL DEFAULT 0
);

-- Una fila por item, en orden de batch
CREATE TABLE IF NOT EXISTS outcomes (
    run_id        TEXT    NOT NULL,
    position      INTEGER NOT NULL,
    item          TEXT    NOT NULL,
    token_name    TEXT,
    token_symbol  TEXT,
    token_address TEXT,
    result        TEXT    NOT NULL,
    detail        TEXT,
    PRIMARY KEY (run_id, position)
);

CREATE INDEX IF NOT EXISTS idx_batches_started ON batches(started_at DESC);
`

const retentionBatches = 90 * 24 * time.Hour

// SQLiteStorage implementa ports.BatchStore usando SQLite (pure Go, sin CGo).
type SQLiteStorage struct {
	db *sql.DB
}

// NewSQLiteStorage abre (o crea) la base de datos en la ruta dada,
// aplica el schema y limpia ejecuciones antiguas.
func NewSQLiteStorage(path string) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage.NewSQLiteStorage: open %q: %w", path, err)
	}
	db.SetMaxOpenConns(1) // SQLite es single-writer
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage.NewSQLiteStorage: apply schema: %w", err)
	}

	s := &SQLiteStorage{db: db}
	s.pruneOld(context.Background())
	return s, nil
}

// SaveBatch persiste la ejecución y sus outcomes en una transacción.
func (s *SQLiteStorage) SaveBatch(ctx context.Context, result domain.BatchResult) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("storage.SaveBatch: begin tx: %w", err)
	}
	defer tx.Rollback()

	summary := result.Summary()
	if _, err := tx.ExecContext(ctx, `
		INSERT INTO batches (run_id, kind, started_at, finished_at, total, succeeded, failed, gave_up)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id) DO UPDATE SET
			finished_at = excluded.finished_at,
			total       = excluded.total,
			succeeded   = excluded.succeeded,
			failed      = excluded.failed,
			gave_up     = excluded.gave_up
	`,
		summary.RunID, string(summary.Kind), summary.StartedAt, summary.FinishedAt,
		summary.Total, summary.Succeeded, summary.Failed, summary.GaveUp,
	); err != nil {
		return fmt.Errorf("storage.SaveBatch: upsert batch %s: %w", summary.RunID, err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO outcomes (run_id, position, item, token_name, token_symbol, token_address, result, detail)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, position) DO UPDATE SET
			item          = excluded.item,
			token_name    = excluded.token_name,
			token_symbol  = excluded.token_symbol,
			token_address = excluded.token_address,
			result        = excluded.result,
			detail        = excluded.detail
	`)
	if err != nil {
		return fmt.Errorf("storage.SaveBatch: prepare: %w", err)
	}
	defer stmt.Close()

	for i, o := range result.Outcomes {
		if _, err := stmt.ExecContext(ctx,
			result.RunID, i, o.Item, o.TokenName, o.TokenSymbol,
			o.TokenAddress, o.Kind.String(), o.Detail,
		); err != nil {
			return fmt.Errorf("storage.SaveBatch: upsert outcome %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage.SaveBatch: commit: %w", err)
	}
	return nil
}

// History devuelve las últimas limit ejecuciones, la más reciente primero.
func (s *SQLiteStorage) History(ctx context.Context, limit int) ([]domain.BatchSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT run_id, kind, started_at, finished_at, total, succeeded, failed, gave_up
		FROM batches
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage.History: query: %w", err)
	}
	defer rows.Close()

	var summaries []domain.BatchSummary
	for rows.Next() {
		var sm domain.BatchSummary
		var kind string
		if err := rows.Scan(
			&sm.RunID, &kind, &sm.StartedAt, &sm.FinishedAt,
			&sm.Total, &sm.Succeeded, &sm.Failed, &sm.GaveUp,
		); err != nil {
			return nil, fmt.Errorf("storage.History: scan row: %w", err)
		}
		sm.Kind = domain.BatchKind(kind)
		summaries = append(summaries, sm)
	}
	return summaries, rows.Err()
}

// Outcomes devuelve los outcomes de una ejecución, en orden de batch.
func (s *SQLiteStorage) Outcomes(ctx context.Context, runID string) ([]domain.Outcome, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT item, token_name, token_symbol, token_address, result, detail
		FROM outcomes
		WHERE run_id = ?
		ORDER BY position
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("storage.Outcomes: query: %w", err)
	}
	defer rows.Close()

	var outcomes []domain.Outcome
	for rows.Next() {
		var o domain.Outcome
		var result string
		if err := rows.Scan(&o.Item, &o.TokenName, &o.TokenSymbol, &o.TokenAddress, &result, &o.Detail); err != nil {
			return nil, fmt.Errorf("storage.Outcomes: scan row: %w", err)
		}
		o.Kind = parseOutcomeKind(result)
		outcomes = append(outcomes, o)
	}
	return outcomes, rows.Err()
}

// Close cierra la conexión a la base de datos.
func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

// pruneOld elimina ejecuciones antiguas para mantener la DB ligera.
func (s *SQLiteStorage) pruneOld(ctx context.Context) {
	cutoff := time.Now().UTC().Add(-retentionBatches)
	s.db.ExecContext(ctx, `DELETE FROM outcomes WHERE run_id IN (SELECT run_id FROM batches WHERE started_at < ?)`, cutoff)
	s.db.ExecContext(ctx, `DELETE FROM batches WHERE started_at < ?`, cutoff)
}

func parseOutcomeKind(s string) domain.OutcomeKind {
	switch s {
	case "success":
		return domain.OutcomeSuccess
	case "gave-up":
		return domain.OutcomeGaveUp
	default:
		return domain.OutcomeFailure
	}
}
