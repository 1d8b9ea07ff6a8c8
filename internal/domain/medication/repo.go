package medication

import "context"

type Repository interface {
	Create(ctx context.Context, m *Medication) error
	// ListByPatient returns entries ordered most recent first. A limit of
	// zero or less returns everything.
	ListByPatient(ctx context.Context, patientID int64, limit, offset int) ([]*Medication, error)
}
