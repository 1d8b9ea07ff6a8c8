package labs

import "time"

// LabResult maps to the lab_results table. Append-only.
type LabResult struct {
	ID        int64     `db:"id" json:"id"`
	PatientID int64     `db:"patient_id" json:"patient_id"`
	Name      string    `db:"name" json:"name"`
	Result    string    `db:"result" json:"result"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}
