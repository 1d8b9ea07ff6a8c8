package patient

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// =========== Patient Repository ===========

type patientRepoPG struct{ pool *pgxpool.Pool }

func NewPatientRepoPG(pool *pgxpool.Pool) PatientRepository {
	return &patientRepoPG{pool: pool}
}

const patientCols = `id, name, family_name, birthdate, created_at`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Name, &p.FamilyName, &p.Birthdate, &p.CreatedAt)
	return &p, err
}

func (r *patientRepoPG) CreateWithProtocol(ctx context.Context, p *Patient, proto *Protocol) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO patients (name, family_name, birthdate)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		p.Name, p.FamilyName, p.Birthdate).Scan(&p.ID, &p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert patient: %w", err)
	}

	proto.PatientID = p.ID
	err = tx.QueryRow(ctx, `
		INSERT INTO protocols (patient_id, dialyzer, access, dialysate_flow, blood_flow, duration)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING updated_at`,
		proto.PatientID, proto.Dialyzer, proto.Access, proto.DialysateFlow, proto.BloodFlow, proto.Duration).
		Scan(&proto.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert protocol: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *patientRepoPG) GetByID(ctx context.Context, id int64) (*Patient, error) {
	return scanPatient(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patients WHERE id = $1`, id))
}

func (r *patientRepoPG) List(ctx context.Context, limit, offset int) ([]*Patient, error) {
	q := `SELECT ` + patientCols + ` FROM patients ORDER BY family_name ASC, id ASC`
	args := []interface{}{}
	if limit > 0 {
		q += ` LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []*Patient
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (r *patientRepoPG) Delete(ctx context.Context, id int64) error {
	// Dependent protocol, medication, lab and session rows go with the
	// patient via ON DELETE CASCADE.
	tag, err := r.pool.Exec(ctx, `DELETE FROM patients WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// =========== Protocol Repository ===========

type protocolRepoPG struct{ pool *pgxpool.Pool }

func NewProtocolRepoPG(pool *pgxpool.Pool) ProtocolRepository {
	return &protocolRepoPG{pool: pool}
}

func (r *protocolRepoPG) GetByPatient(ctx context.Context, patientID int64) (*Protocol, error) {
	var proto Protocol
	err := r.pool.QueryRow(ctx, `
		SELECT patient_id, dialyzer, access, dialysate_flow, blood_flow, duration, updated_at
		FROM protocols WHERE patient_id = $1`, patientID).
		Scan(&proto.PatientID, &proto.Dialyzer, &proto.Access, &proto.DialysateFlow,
			&proto.BloodFlow, &proto.Duration, &proto.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &proto, nil
}

func (r *protocolRepoPG) Update(ctx context.Context, proto *Protocol) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE protocols SET dialyzer=$2, access=$3, dialysate_flow=$4, blood_flow=$5,
			duration=$6, updated_at=NOW()
		WHERE patient_id = $1`,
		proto.PatientID, proto.Dialyzer, proto.Access, proto.DialysateFlow,
		proto.BloodFlow, proto.Duration)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
