package patient

import "time"

// Patient maps to the patients table. Birthdate is kept as the caller
// supplied it (presence is the only check, matching the write contract).
type Patient struct {
	ID         int64     `db:"id" json:"id"`
	Name       string    `db:"name" json:"name"`
	FamilyName string    `db:"family_name" json:"familyname"`
	Birthdate  string    `db:"birthdate" json:"birthdate"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
}

// Protocol maps to the protocols table: the fixed hemodialysis treatment
// parameters kept one-to-one with a patient.
type Protocol struct {
	PatientID     int64     `db:"patient_id" json:"patient_id"`
	Dialyzer      string    `db:"dialyzer" json:"dialyzer"`
	Access        string    `db:"access" json:"access"`
	DialysateFlow string    `db:"dialysate_flow" json:"dialysateFlow"`
	BloodFlow     string    `db:"blood_flow" json:"bloodFlow"`
	Duration      string    `db:"duration" json:"duration"`
	UpdatedAt     time.Time `db:"updated_at" json:"updated_at"`
}

// Protocol defaults seeded when a patient is created.
const (
	DefaultDialyzer      = "F8HPS"
	DefaultAccess        = "Fistula"
	DefaultDialysateFlow = "500 ml/min"
	DefaultBloodFlow     = "300 ml/min"
	DefaultDuration      = "4 hours"
)

// DefaultProtocol returns the protocol row every new patient starts with.
func DefaultProtocol(patientID int64) *Protocol {
	return &Protocol{
		PatientID:     patientID,
		Dialyzer:      DefaultDialyzer,
		Access:        DefaultAccess,
		DialysateFlow: DefaultDialysateFlow,
		BloodFlow:     DefaultBloodFlow,
		Duration:      DefaultDuration,
	}
}
