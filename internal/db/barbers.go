package db

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"barberbook/internal/model"
)

// GetBarber returns a barber with working hours attached, or nil when the
// id is unknown.
func (db *DB) GetBarber(ctx context.Context, id string) (*model.Barber, error) {
	var b model.Barber
	var specialties sql.NullString
	err := db.QueryRowContext(ctx,
		"SELECT id, name, specialties, is_active, created_at, updated_at FROM barbers WHERE id = ?",
		id,
	).Scan(&b.ID, &b.Name, &specialties, &b.Active, &b.CreatedAt, &b.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if specialties.Valid && specialties.String != "" {
		b.Specialties = strings.Split(specialties.String, ",")
	}

	hours, err := db.GetWorkingHours(ctx, id)
	if err != nil {
		return nil, err
	}
	b.WorkingHours = hours
	return &b, nil
}

// ListActiveBarbers returns all active barbers without working hours.
func (db *DB) ListActiveBarbers(ctx context.Context) ([]model.Barber, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT id, name, specialties, is_active, created_at, updated_at FROM barbers WHERE is_active = 1 ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Barber
	for rows.Next() {
		var b model.Barber
		var specialties sql.NullString
		if err := rows.Scan(&b.ID, &b.Name, &specialties, &b.Active, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		if specialties.Valid && specialties.String != "" {
			b.Specialties = strings.Split(specialties.String, ",")
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// UpsertBarber inserts or updates a barber record.
func (db *DB) UpsertBarber(ctx context.Context, b *model.Barber) error {
	now := time.Now()
	_, err := db.ExecContext(ctx, `
		INSERT INTO barbers (id, name, specialties, is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			specialties = excluded.specialties,
			is_active = excluded.is_active,
			updated_at = excluded.updated_at`,
		b.ID, b.Name, strings.Join(b.Specialties, ","), b.Active, now, now,
	)
	if err != nil {
		return fmt.Errorf("upsert barber: %w", err)
	}
	if b.WorkingHours != nil {
		return db.SetWorkingHours(ctx, b.ID, b.WorkingHours)
	}
	return nil
}

// GetWorkingHours returns the barber's weekly shifts keyed by weekday name.
func (db *DB) GetWorkingHours(ctx context.Context, barberID string) (model.WorkingHours, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT weekday, start_time, end_time FROM working_hours WHERE barber_id = ? ORDER BY weekday, start_time",
		barberID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hours := model.WorkingHours{}
	for rows.Next() {
		var weekday, start, end string
		if err := rows.Scan(&weekday, &start, &end); err != nil {
			return nil, err
		}
		hours[weekday] = append(hours[weekday], model.TimeRange{Start: start, End: end})
	}
	return hours, rows.Err()
}

// SetWorkingHours replaces the barber's weekly shifts atomically.
func (db *DB) SetWorkingHours(ctx context.Context, barberID string, hours model.WorkingHours) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM working_hours WHERE barber_id = ?", barberID); err != nil {
		return err
	}
	for weekday, ranges := range hours {
		for _, r := range ranges {
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO working_hours (barber_id, weekday, start_time, end_time) VALUES (?, ?, ?, ?)",
				barberID, weekday, r.Start, r.End,
			); err != nil {
				return fmt.Errorf("insert working hours: %w", err)
			}
		}
	}
	return tx.Commit()
}
