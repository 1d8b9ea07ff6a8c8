package web

import (
	"html/template"
	"io"

	"github.com/hdclinic/hdclinic/internal/domain/labs"
	"github.com/hdclinic/hdclinic/internal/domain/medication"
	"github.com/hdclinic/hdclinic/internal/domain/patient"
	"github.com/hdclinic/hdclinic/internal/domain/session"
)

// Tab names accepted by the detail view.
const (
	TabSessions    = "sessions"
	TabMedications = "medications"
	TabLabs        = "labs"
	TabProtocol    = "protocol"
)

// ViewState is everything a render call needs. It is built fresh from
// store data on every request and discarded afterwards.
type ViewState struct {
	View     string // "list" or "detail"
	Patients []*patient.Patient
	Selected *PatientDetail
	Tab      string
	Err      string
}

// PatientDetail is one patient with all dependent records attached.
type PatientDetail struct {
	Patient     *patient.Patient
	Protocol    *patient.Protocol
	Sessions    []*session.Session
	Medications []*medication.Medication
	Labs        []*labs.LabResult
}

// NormalizeTab maps unknown or empty tab names to the default.
func NormalizeTab(tab string) string {
	switch tab {
	case TabSessions, TabMedications, TabLabs, TabProtocol:
		return tab
	default:
		return TabSessions
	}
}

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

// Render writes the full HTML page for the given state.
func Render(w io.Writer, st *ViewState) error {
	return pageTmpl.Execute(w, st)
}
