package patient

import (
	"context"

	"github.com/hdclinic/hdclinic/pkg/validation"
)

type Service struct {
	patients  PatientRepository
	protocols ProtocolRepository
}

func NewService(patients PatientRepository, protocols ProtocolRepository) *Service {
	return &Service{patients: patients, protocols: protocols}
}

// CreatePatient validates the demographic fields, seeds the default
// treatment protocol, and stores both atomically.
func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if p.Name == "" {
		return validation.Required("name")
	}
	if p.FamilyName == "" {
		return validation.Required("familyname")
	}
	if p.Birthdate == "" {
		return validation.Required("birthdate")
	}
	return s.patients.CreateWithProtocol(ctx, p, DefaultProtocol(0))
}

func (s *Service) GetPatient(ctx context.Context, id int64) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

// ListPatients returns the roster ordered by family name ascending.
func (s *Service) ListPatients(ctx context.Context, limit, offset int) ([]*Patient, error) {
	return s.patients.List(ctx, limit, offset)
}

func (s *Service) DeletePatient(ctx context.Context, id int64) error {
	return s.patients.Delete(ctx, id)
}

func (s *Service) GetProtocol(ctx context.Context, patientID int64) (*Protocol, error) {
	return s.protocols.GetByPatient(ctx, patientID)
}

// UpdateProtocol overwrites all five editable protocol fields for the
// patient. Applying the same payload twice yields the same stored state
// (timestamp aside).
func (s *Service) UpdateProtocol(ctx context.Context, proto *Protocol) error {
	if proto.Dialyzer == "" {
		return validation.Required("dialyzer")
	}
	if proto.Access == "" {
		return validation.Required("access")
	}
	if proto.DialysateFlow == "" {
		return validation.Required("dialysateFlow")
	}
	if proto.BloodFlow == "" {
		return validation.Required("bloodFlow")
	}
	if proto.Duration == "" {
		return validation.Required("duration")
	}
	return s.protocols.Update(ctx, proto)
}
