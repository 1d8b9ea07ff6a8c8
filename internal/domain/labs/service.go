package labs

import (
	"context"

	"github.com/hdclinic/hdclinic/pkg/validation"
)

type Service struct {
	results Repository
}

func NewService(results Repository) *Service {
	return &Service{results: results}
}

func (s *Service) AddResult(ctx context.Context, l *LabResult) error {
	if l.Name == "" {
		return validation.Required("name")
	}
	if l.Result == "" {
		return validation.Required("result")
	}
	return s.results.Create(ctx, l)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64, limit, offset int) ([]*LabResult, error) {
	return s.results.ListByPatient(ctx, patientID, limit, offset)
}
