package labs

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) Create(ctx context.Context, l *LabResult) error {
	return r.pool.QueryRow(ctx, `
		INSERT INTO lab_results (patient_id, name, result)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		l.PatientID, l.Name, l.Result).Scan(&l.ID, &l.CreatedAt)
}

func (r *repoPG) ListByPatient(ctx context.Context, patientID int64, limit, offset int) ([]*LabResult, error) {
	q := `SELECT id, patient_id, name, result, created_at
		FROM lab_results WHERE patient_id = $1 ORDER BY created_at DESC, id DESC`
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

	var items []*LabResult
	for rows.Next() {
		var l LabResult
		if err := rows.Scan(&l.ID, &l.PatientID, &l.Name, &l.Result, &l.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, &l)
	}
	return items, rows.Err()
}
