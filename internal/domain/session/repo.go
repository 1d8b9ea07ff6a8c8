package session

import "context"

type Repository interface {
	Create(ctx context.Context, s *Session) error
	// ListByPatient returns sessions ordered most recent first. A limit of
	// zero or less returns everything.
	ListByPatient(ctx context.Context, patientID int64, limit, offset int) ([]*Session, error)
}
