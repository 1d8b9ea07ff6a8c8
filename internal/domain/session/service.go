package session

import (
	"context"

	"github.com/hdclinic/hdclinic/pkg/validation"
)

type Service struct {
	sessions Repository
}

func NewService(sessions Repository) *Service {
	return &Service{sessions: sessions}
}

func (s *Service) RecordSession(ctx context.Context, sess *Session) error {
	if sess.PreWeight == "" {
		return validation.Required("pre_weight")
	}
	return s.sessions.Create(ctx, sess)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64, limit, offset int) ([]*Session, error) {
	return s.sessions.ListByPatient(ctx, patientID, limit, offset)
}
