package db

import (
	"context"
	"database/sql"
	"time"

	"barberbook/internal/model"
)

// GetClientStats aggregates the client's booking history from the
// appointments table. No-shows are scheduled appointments whose date is in
// the past and were never confirmed, completed or cancelled.
func (db *DB) GetClientStats(ctx context.Context, clientID string, today string) (model.ClientStats, error) {
	var stats model.ClientStats
	err := db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			SUM(CASE WHEN status = 'cancelled' THEN 1 ELSE 0 END),
			SUM(CASE WHEN status = 'scheduled' AND date < ? THEN 1 ELSE 0 END)
		FROM appointments WHERE client_id = ?`,
		today, clientID,
	).Scan(&stats.TotalAppointments, &nullInt{&stats.CancelledAppointments}, &nullInt{&stats.NoShows})
	if err != nil {
		return model.ClientStats{}, err
	}
	return stats, nil
}

// nullInt scans a nullable integer into an int, treating NULL as zero.
type nullInt struct{ dst *int }

func (n *nullInt) Scan(src any) error {
	var v sql.NullInt64
	if err := v.Scan(src); err != nil {
		return err
	}
	if v.Valid {
		*n.dst = int(v.Int64)
	} else {
		*n.dst = 0
	}
	return nil
}

// GetActiveRestriction returns the client's active restriction, or nil.
func (db *DB) GetActiveRestriction(ctx context.Context, clientID string) (*model.ClientRestriction, error) {
	var r model.ClientRestriction
	err := db.QueryRowContext(ctx,
		"SELECT client_id, reason, is_active, created_at FROM client_restrictions WHERE client_id = ? AND is_active = 1",
		clientID,
	).Scan(&r.ClientID, &r.Reason, &r.Active, &r.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// UpsertRestriction stores a booking block for a client.
func (db *DB) UpsertRestriction(ctx context.Context, r *model.ClientRestriction) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	_, err := db.ExecContext(ctx, `
		INSERT INTO client_restrictions (client_id, reason, is_active, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(client_id) DO UPDATE SET
			reason = excluded.reason,
			is_active = excluded.is_active`,
		r.ClientID, r.Reason, r.Active, r.CreatedAt,
	)
	return err
}

// RemoveRestriction deactivates a client's restriction.
func (db *DB) RemoveRestriction(ctx context.Context, clientID string) error {
	_, err := db.ExecContext(ctx,
		"UPDATE client_restrictions SET is_active = 0 WHERE client_id = ?", clientID)
	return err
}
