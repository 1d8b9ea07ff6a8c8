package medication

import "time"

// Medication maps to the medications table. Entries are append-only:
// there is no update or delete route, only the patient-level cascade.
type Medication struct {
	ID        int64     `db:"id" json:"id"`
	PatientID int64     `db:"patient_id" json:"patient_id"`
	Name      string    `db:"name" json:"name"`
	Dosage    string    `db:"dosage" json:"dosage"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
