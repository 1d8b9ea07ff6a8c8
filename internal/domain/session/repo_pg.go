package session

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

const sessionCols = `id, patient_id, pre_weight, post_weight, pre_bp, post_bp, access_condition, notes, created_at`

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) Create(ctx context.Context, s *Session) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO sessions (patient_id, pre_weight, post_weight, pre_bp, post_bp, access_condition, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`,
		s.PatientID, s.PreWeight, s.PostWeight, s.PreBP, s.PostBP, s.AccessCondition, s.Notes).
		Scan(&s.ID, &s.CreatedAt)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID int64, limit, offset int) ([]*Session, error) {
	q := `SELECT ` + sessionCols + `
		FROM sessions WHERE patient_id = $1 ORDER BY created_at DESC, id DESC`
	args := []interface{}{patientID}
	if limit > 0 {
		q += ` LIMIT $2 OFFSET $3`
		args = append(args, limit, offset)
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.PatientID, &s.PreWeight, &s.PostWeight, &s.PreBP, &s.PostBP, &s.AccessCondition, &s.Notes, &s.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &s)
	}
	return items, rows.Err()
}
