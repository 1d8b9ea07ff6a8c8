package medication

import (
	"context"

	"github.com/hdclinic/hdclinic/pkg/validation"
)

type Service struct {
	medications Repository
}

func NewService(medications Repository) *Service {
	return &Service{medications: medications}
}

func (s *Service) AddMedication(ctx context.Context, m *Medication) error {
	if m.Name == "" {
		return validation.Required("name")
	}
	if m.Dosage == "" {
		return validation.Required("dosage")
	}
	return s.medications.Create(ctx, m)
}

func (s *Service) ListByPatient(ctx context.Context, patientID int64, limit, offset int) ([]*Medication, error) {
	return s.medications.ListByPatient(ctx, patientID, limit, offset)
}
