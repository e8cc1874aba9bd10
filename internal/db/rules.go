package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"barberbook/internal/model"
)

const ruleColumns = `id, type, barber_id, start_date, end_date, start_time,
	end_time, recurrence, reason, is_active, created_at, updated_at`

func scanRule(row interface{ Scan(...any) error }) (*model.ScheduleRule, error) {
	var r model.ScheduleRule
	var barberID, endDate, startTime, endTime, recurrence sql.NullString
	err := row.Scan(
		&r.ID, &r.Type, &barberID, &r.StartDate, &endDate, &startTime,
		&endTime, &recurrence, &r.Reason, &r.Active, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	r.BarberID = barberID.String
	r.EndDate = endDate.String
	r.StartTime = startTime.String
	r.EndTime = endTime.String
	r.Recurrence = model.Recurrence(recurrence.String)
	return &r, nil
}

// ListRules returns schedule rules; with a barberID it returns shop-wide
// rules plus that barber's own.
func (db *DB) ListRules(ctx context.Context, barberID string) ([]model.ScheduleRule, error) {
	query := "SELECT " + ruleColumns + " FROM schedule_rules ORDER BY start_date"
	args := []any{}
	if barberID != "" {
		query = "SELECT " + ruleColumns + ` FROM schedule_rules
			WHERE barber_id IS NULL OR barber_id = '' OR barber_id = ? ORDER BY start_date`
		args = append(args, barberID)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.ScheduleRule
	for rows.Next() {
		r, err := scanRule(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *r)
	}
	return out, rows.Err()
}

// GetRule returns a rule by id, or nil when absent.
func (db *DB) GetRule(ctx context.Context, id string) (*model.ScheduleRule, error) {
	row := db.QueryRowContext(ctx, "SELECT "+ruleColumns+" FROM schedule_rules WHERE id = ?", id)
	r, err := scanRule(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// CreateRule inserts a new schedule rule.
func (db *DB) CreateRule(ctx context.Context, r *model.ScheduleRule) error {
	now := time.Now()
	r.CreatedAt = now
	r.UpdatedAt = now
	_, err := db.ExecContext(ctx, `
		INSERT INTO schedule_rules (id, type, barber_id, start_date, end_date,
			start_time, end_time, recurrence, reason, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.Type, r.BarberID, r.StartDate, r.EndDate,
		r.StartTime, r.EndTime, r.Recurrence, r.Reason, r.Active, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert rule: %w", err)
	}
	return nil
}

// UpdateRule rewrites a rule in place.
func (db *DB) UpdateRule(ctx context.Context, r *model.ScheduleRule) error {
	r.UpdatedAt = time.Now()
	res, err := db.ExecContext(ctx, `
		UPDATE schedule_rules SET type = ?, barber_id = ?, start_date = ?,
			end_date = ?, start_time = ?, end_time = ?, recurrence = ?,
			reason = ?, is_active = ?, updated_at = ?
		WHERE id = ?`,
		r.Type, r.BarberID, r.StartDate, r.EndDate, r.StartTime, r.EndTime,
		r.Recurrence, r.Reason, r.Active, r.UpdatedAt, r.ID,
	)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("rule %s not found", r.ID)
	}
	return nil
}

// DeleteRule removes a rule.
func (db *DB) DeleteRule(ctx context.Context, id string) error {
	res, err := db.ExecContext(ctx, "DELETE FROM schedule_rules WHERE id = ?", id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("rule %s not found", id)
	}
	return nil
}
