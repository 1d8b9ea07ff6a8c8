package labs

import "context"

type Repository interface {
	Create(ctx context.Context, l *LabResult) error
	// ListByPatient returns results ordered most recent first. A limit of
	// zero or less returns everything.
	ListByPatient(ctx context.Context, patientID int64, limit, offset int) ([]*LabResult, error)
}
