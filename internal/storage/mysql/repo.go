package mysql

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"biduk_site/internal/domain"
)

const maxReason = 512

// Miss is one recorded warm_misses row.
type Miss struct {
	Resource string
	ID       int64
	Status   int
	Reason   string
	Hits     int
	SeenAt   time.Time
}

func valStr(s string) any {
	if s == "" {
		return nil
	}
	return s
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) LogMiss(ctx context.Context, resource string, id int64, status int, reason string) error {
	if len(reason) > maxReason {
		reason = reason[:maxReason]
	}
	_, err := r.db.ExecContext(ctx, insertMissSQL, resource, id, status, valStr(reason))
	return err
}

func (r *Repo) RecordRun(ctx context.Context, run domain.WarmRun) error {
	_, err := r.db.ExecContext(ctx, insertRunSQL,
		run.StartedAt.UTC(),
		run.FinishedAt.UTC(),
		run.Lists,
		run.Details,
		run.Misses,
		run.Failures,
	)
	return err
}

// ListMisses returns the most recent misses, optionally for one resource.
func (r *Repo) ListMisses(ctx context.Context, resource string, limit int) ([]Miss, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	rows, err := r.db.QueryContext(ctx, listMissesSQL, resource, resource, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Miss
	for rows.Next() {
		var m Miss
		if err := rows.Scan(&m.Resource, &m.ID, &m.Status, &m.Reason, &m.Hits, &m.SeenAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// LastRun returns the newest recorded run, or ok=false when none exists.
func (r *Repo) LastRun(ctx context.Context) (domain.WarmRun, bool, error) {
	var run domain.WarmRun
	err := r.db.QueryRowContext(ctx, lastRunSQL).Scan(
		&run.StartedAt, &run.FinishedAt, &run.Lists, &run.Details, &run.Misses, &run.Failures,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.WarmRun{}, false, nil
	}
	if err != nil {
		return domain.WarmRun{}, false, err
	}
	return run, true, nil
}
