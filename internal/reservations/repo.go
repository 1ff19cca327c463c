package reservations

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/dojanjanjan/charm-reservations/internal/booking"
	"github.com/dojanjanjan/charm-reservations/internal/db"
)

// Repo is the postgres-backed Store.
type Repo struct{ db *db.DB }

func NewRepo(d *db.DB) *Repo { return &Repo{db: d} }

const reservationCols = `id, guest_name, pax, res_date, res_time, table_id, email, phone, comments`

func (r *Repo) Create(ctx context.Context, res booking.Reservation) error {
	return r.db.Exec(ctx, `
INSERT INTO reservations(id, guest_name, pax, res_date, res_time, table_id, email, phone, comments)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		res.ID, res.GuestName, res.Pax, res.Date, res.Time, res.TableID, res.Email, res.Phone, res.Comments,
	)
}

func (r *Repo) Update(ctx context.Context, res booking.Reservation) error {
	err := r.db.QueryRow(ctx, `
UPDATE reservations
SET guest_name=$2, pax=$3, res_date=$4, res_time=$5, table_id=$6, email=$7, phone=$8, comments=$9, updated_at=$10
WHERE id=$1
RETURNING id`,
		res.ID, res.GuestName, res.Pax, res.Date, res.Time, res.TableID, res.Email, res.Phone, res.Comments, time.Now().UTC(),
	).Scan(&res.ID)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	err := r.db.QueryRow(ctx, `DELETE FROM reservations WHERE id=$1 RETURNING id`, id).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

func (r *Repo) GetByID(ctx context.Context, id string) (booking.Reservation, error) {
	row := r.db.QueryRow(ctx, `SELECT `+reservationCols+` FROM reservations WHERE id=$1`, id)
	res, err := scanReservation(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return booking.Reservation{}, ErrNotFound
	}
	return res, err
}

func (r *Repo) ListByDate(ctx context.Context, date string) ([]booking.Reservation, error) {
	rows, err := r.db.Query(ctx, `
SELECT `+reservationCols+` FROM reservations
WHERE res_date=$1
ORDER BY res_time, table_id`, date)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func (r *Repo) ListBetween(ctx context.Context, from, to string) ([]booking.Reservation, error) {
	rows, err := r.db.Query(ctx, `
SELECT `+reservationCols+` FROM reservations
WHERE res_date >= $1 AND res_date <= $2
ORDER BY res_date, res_time, table_id`, from, to)
	if err != nil {
		return nil, err
	}
	return collect(rows)
}

func scanReservation(row db.Row) (booking.Reservation, error) {
	var res booking.Reservation
	err := row.Scan(&res.ID, &res.GuestName, &res.Pax, &res.Date, &res.Time, &res.TableID, &res.Email, &res.Phone, &res.Comments)
	return res, err
}

func collect(rows db.Rows) ([]booking.Reservation, error) {
	defer rows.Close()
	var out []booking.Reservation
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}
