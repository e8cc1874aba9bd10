package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"barberbook/internal/model"
)

const appointmentColumns = `id, client_id, client_name, barber_id, barber_name,
	service_id, service_name, date, time, duration, status, price, notes,
	created_at, updated_at`

func scanAppointment(row interface{ Scan(...any) error }) (*model.Appointment, error) {
	var a model.Appointment
	var clientName, barberName, serviceName, notes sql.NullString
	err := row.Scan(
		&a.ID, &a.ClientID, &clientName, &a.BarberID, &barberName,
		&a.ServiceID, &serviceName, &a.Date, &a.Time, &a.Duration,
		&a.Status, &a.Price, &notes, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	a.ClientName = clientName.String
	a.BarberName = barberName.String
	a.ServiceName = serviceName.String
	a.Notes = notes.String
	return &a, nil
}

// GetAppointment returns an appointment by id, or nil when absent.
func (db *DB) GetAppointment(ctx context.Context, id string) (*model.Appointment, error) {
	row := db.QueryRowContext(ctx,
		"SELECT "+appointmentColumns+" FROM appointments WHERE id = ?", id)
	a, err := scanAppointment(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ListAppointmentsByBarberDate returns every appointment for the barber on
// the date, all statuses included, ordered by start time.
func (db *DB) ListAppointmentsByBarberDate(ctx context.Context, barberID, date string) ([]model.Appointment, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT "+appointmentColumns+" FROM appointments WHERE barber_id = ? AND date = ? ORDER BY time",
		barberID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAppointments(rows)
}

// ListScheduledBefore returns appointments still in scheduled status whose
// date is on or before the given day. The sweeper narrows further by exact
// start time.
func (db *DB) ListScheduledBefore(ctx context.Context, day string) ([]model.Appointment, error) {
	rows, err := db.QueryContext(ctx,
		"SELECT "+appointmentColumns+" FROM appointments WHERE status = ? AND date <= ? ORDER BY date, time",
		model.StatusScheduled, day)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectAppointments(rows)
}

func collectAppointments(rows *sql.Rows) ([]model.Appointment, error) {
	var out []model.Appointment
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, rows.Err()
}

// CreateAppointmentChecked inserts the appointment inside a transaction,
// re-running the caller's validation against the appointments read within
// that transaction. This closes the check-then-act window between an
// earlier validation and the insert.
func (db *DB) CreateAppointmentChecked(
	ctx context.Context,
	apt *model.Appointment,
	revalidate func(existing []model.Appointment) error,
) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	rows, err := tx.QueryContext(ctx,
		"SELECT "+appointmentColumns+" FROM appointments WHERE barber_id = ? AND date = ?",
		apt.BarberID, apt.Date)
	if err != nil {
		return err
	}
	existing, err := collectAppointments(rows)
	rows.Close()
	if err != nil {
		return err
	}

	if revalidate != nil {
		if err := revalidate(existing); err != nil {
			return err
		}
	}

	now := time.Now()
	apt.CreatedAt = now
	apt.UpdatedAt = now
	if apt.Status == "" {
		apt.Status = model.StatusScheduled
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO appointments (id, client_id, client_name, barber_id, barber_name,
			service_id, service_name, date, time, duration, status, price, notes,
			created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		apt.ID, apt.ClientID, apt.ClientName, apt.BarberID, apt.BarberName,
		apt.ServiceID, apt.ServiceName, apt.Date, apt.Time, apt.Duration,
		apt.Status, apt.Price, apt.Notes, apt.CreatedAt, apt.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert appointment: %w", err)
	}

	return tx.Commit()
}

// UpdateAppointmentStatus transitions an appointment to a new status.
func (db *DB) UpdateAppointmentStatus(ctx context.Context, id string, status model.AppointmentStatus) error {
	res, err := db.ExecContext(ctx,
		"UPDATE appointments SET status = ?, updated_at = ? WHERE id = ?",
		status, time.Now(), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("appointment %s not found", id)
	}
	return nil
}
