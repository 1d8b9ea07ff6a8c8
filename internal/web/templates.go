package web

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>HD Clinic</title>
<style>
  * { margin: 0; padding: 0; box-sizing: border-box; }
  body { font-family: -apple-system, 'Segoe UI', Roboto, sans-serif; background: #f5f6fa; color: #2c3e50; }
  header { background: #2c3e50; color: #fff; padding: 16px 24px; }
  header a { color: #fff; text-decoration: none; font-size: 1.2em; font-weight: 600; }
  main { max-width: 960px; margin: 24px auto; padding: 0 16px; }
  .banner { background: #fdecea; border: 1px solid #e74c3c; color: #c0392b; padding: 10px 14px; border-radius: 6px; margin-bottom: 16px; }
  table { width: 100%; border-collapse: collapse; background: #fff; border-radius: 8px; overflow: hidden; box-shadow: 0 1px 3px rgba(0,0,0,.08); }
  th { text-align: left; background: #ecf0f1; padding: 10px 14px; font-size: .85em; text-transform: uppercase; color: #7f8c8d; }
  td { padding: 10px 14px; border-top: 1px solid #ecf0f1; }
  tr:hover td { background: #f8f9fb; }
  a.row-link { color: #2980b9; text-decoration: none; }
  .tabs { display: flex; gap: 8px; margin: 16px 0; }
  .tabs a { padding: 8px 14px; border-radius: 6px; text-decoration: none; color: #2c3e50; background: #ecf0f1; }
  .tabs a.active { background: #2980b9; color: #fff; }
  .card { background: #fff; border-radius: 8px; padding: 16px; box-shadow: 0 1px 3px rgba(0,0,0,.08); }
  dl { display: grid; grid-template-columns: 180px 1fr; row-gap: 8px; }
  dt { color: #7f8c8d; }
  .muted { color: #95a5a6; }
  h2 { margin-bottom: 12px; }
</style>
</head>
<body>
<header><a href="/">HD Clinic</a></header>
<main>
{{- if .Err}}
<div class="banner">{{.Err}}</div>
{{- end}}
{{- if eq .View "detail"}}{{with .Selected}}
<h2>{{.Patient.Name}} {{.Patient.FamilyName}}</h2>
<p class="muted">Born {{.Patient.Birthdate}}</p>
<nav class="tabs">
  <a href="/patients/{{.Patient.ID}}?tab=sessions"{{if eq $.Tab "sessions"}} class="active"{{end}}>Sessions</a>
  <a href="/patients/{{.Patient.ID}}?tab=medications"{{if eq $.Tab "medications"}} class="active"{{end}}>Medications</a>
  <a href="/patients/{{.Patient.ID}}?tab=labs"{{if eq $.Tab "labs"}} class="active"{{end}}>Labs</a>
  <a href="/patients/{{.Patient.ID}}?tab=protocol"{{if eq $.Tab "protocol"}} class="active"{{end}}>Protocol</a>
</nav>
{{- if eq $.Tab "sessions"}}
<table>
<tr><th>Date</th><th>Pre weight</th><th>Post weight</th><th>Pre BP</th><th>Post BP</th><th>Access</th><th>Notes</th></tr>
{{- range .Sessions}}
<tr><td>{{.CreatedAt.Format "2006-01-02 15:04"}}</td><td>{{.PreWeight}}</td><td>{{if .PostWeight}}{{.PostWeight}}{{end}}</td><td>{{if .PreBP}}{{.PreBP}}{{end}}</td><td>{{if .PostBP}}{{.PostBP}}{{end}}</td><td>{{if .AccessCondition}}{{.AccessCondition}}{{end}}</td><td>{{if .Notes}}{{.Notes}}{{end}}</td></tr>
{{- else}}
<tr><td colspan="7" class="muted">No sessions recorded.</td></tr>
{{- end}}
</table>
{{- else if eq $.Tab "medications"}}
<table>
<tr><th>Name</th><th>Dosage</th><th>Added</th></tr>
{{- range .Medications}}
<tr><td>{{.Name}}</td><td>{{.Dosage}}</td><td>{{.CreatedAt.Format "2006-01-02"}}</td></tr>
{{- else}}
<tr><td colspan="3" class="muted">No medications recorded.</td></tr>
{{- end}}
</table>
{{- else if eq $.Tab "labs"}}
<table>
<tr><th>Test</th><th>Result</th><th>Date</th></tr>
{{- range .Labs}}
<tr><td>{{.Name}}</td><td>{{.Result}}</td><td>{{.CreatedAt.Format "2006-01-02"}}</td></tr>
{{- else}}
<tr><td colspan="3" class="muted">No lab results recorded.</td></tr>
{{- end}}
</table>
{{- else}}
<div class="card">
{{- with .Protocol}}
<dl>
  <dt>Dialyzer</dt><dd>{{.Dialyzer}}</dd>
  <dt>Access</dt><dd>{{.Access}}</dd>
  <dt>Dialysate flow</dt><dd>{{.DialysateFlow}}</dd>
  <dt>Blood flow</dt><dd>{{.BloodFlow}}</dd>
  <dt>Duration</dt><dd>{{.Duration}}</dd>
  <dt>Last updated</dt><dd>{{.UpdatedAt.Format "2006-01-02 15:04"}}</dd>
</dl>
{{- else}}
<p class="muted">No protocol on file.</p>
{{- end}}
</div>
{{- end}}
{{end}}{{- else}}
<h2>Patients</h2>
<table>
<tr><th>#</th><th>Family name</th><th>Name</th><th>Birthdate</th></tr>
{{- range .Patients}}
<tr><td>{{.ID}}</td><td><a class="row-link" href="/patients/{{.ID}}">{{.FamilyName}}</a></td><td>{{.Name}}</td><td>{{.Birthdate}}</td></tr>
{{- else}}
<tr><td colspan="4" class="muted">No patients registered.</td></tr>
{{- end}}
</table>
{{- end}}
</main>
</body>
</html>
`
