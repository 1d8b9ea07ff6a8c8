package session

import "time"

// Session is one dialysis treatment record. Only the pre-dialysis weight
// is mandatory at intake; the remaining vitals are filled in as the
// treatment progresses, so they stay nullable.
type Session struct {
	ID              int64     `db:"id" json:"id"`
	PatientID       int64     `db:"patient_id" json:"patient_id"`
	PreWeight       string    `db:"pre_weight" json:"pre_weight"`
	PostWeight      *string   `db:"post_weight" json:"post_weight"`
	PreBP           *string   `db:"pre_bp" json:"pre_bp"`
	PostBP          *string   `db:"post_bp" json:"post_bp"`
	AccessCondition *string   `db:"access_condition" json:"access_condition"`
	Notes           *string   `db:"notes" json:"notes"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}
