package patient

import "context"

type PatientRepository interface {
	// CreateWithProtocol inserts the patient and its protocol row in a
	// single transaction; a patient never exists without a protocol.
	CreateWithProtocol(ctx context.Context, p *Patient, proto *Protocol) error
	GetByID(ctx context.Context, id int64) (*Patient, error)
	// List returns patients ordered by family name ascending. A limit of
	// zero or less returns the full roster.
	List(ctx context.Context, limit, offset int) ([]*Patient, error)
	Delete(ctx context.Context, id int64) error
}

type ProtocolRepository interface {
	GetByPatient(ctx context.Context, patientID int64) (*Protocol, error)
	// Update overwrites all five editable fields and bumps updated_at.
	Update(ctx context.Context, proto *Protocol) error
}
