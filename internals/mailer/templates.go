package mailer

import (
	"html/template"
	"strings"
)

var candidateResultTmpl = template.Must(template.New("candidateResult").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Olá, {{.CandidateName}}!</h2>
  <p>Obrigado por responder o formulário FitScore. Aqui está o seu resultado:</p>
  <table cellpadding="6" style="border-collapse: collapse;">
    <tr><td><strong>Performance</strong></td><td>{{.PerfScore}} / 40</td></tr>
    <tr><td><strong>Energia</strong></td><td>{{.EnergyScore}} / 30</td></tr>
    <tr><td><strong>Cultura</strong></td><td>{{.CultureScore}} / 30</td></tr>
    <tr><td><strong>Total</strong></td><td>{{.TotalScore}} / 100</td></tr>
  </table>
  <p>Classificação: <strong>{{.Classification}}</strong></p>
  <p style="color:#777; font-size:12px;">FitScore LEGAL</p>
</div>
`))

var highScoreReportTmpl = template.Must(template.New("highScoreReport").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 700px; margin: 0 auto;">
  <h2>Olá, {{.EvaluatorName}}!</h2>
  <p>Relatório automático: <strong>{{.TotalCandidates}}</strong> candidato(s)
  com score &ge; 80 nas últimas {{.PeriodHours}} horas.</p>
  {{if .Candidates}}
  <table cellpadding="6" border="1" style="border-collapse: collapse; width: 100%;">
    <tr>
      <th>Candidato</th><th>Email</th><th>Total</th>
      <th>Perf</th><th>Energia</th><th>Cultura</th><th>Classificação</th>
    </tr>
    {{range .Candidates}}
    <tr>
      <td>{{.Name}}</td><td>{{.Email}}</td><td>{{.TotalScore}}</td>
      <td>{{.PerfScore}}</td><td>{{.EnergyScore}}</td><td>{{.CultureScore}}</td>
      <td>{{.Classification}}</td>
    </tr>
    {{end}}
  </table>
  {{else}}
  <p>Nenhum candidato high score no período.</p>
  {{end}}
  <p style="color:#777; font-size:12px;">Gerado em {{.GeneratedAt.Format "02/01/2006 15:04"}}</p>
</div>
`))

var inviteTmpl = template.Must(template.New("invite").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2>Olá, {{.CandidateName}}!</h2>
  <p>Você foi convidado(a) para a avaliação FitScore da LEGAL.</p>
  <p><a href="{{.FormURL}}">Responder o formulário</a></p>
  <p style="color:#777; font-size:12px;">FitScore LEGAL</p>
</div>
`))

func renderCandidateResult(data CandidateResultEmail) (string, error) {
	var b strings.Builder
	if err := candidateResultTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderHighScoreReport(data ReportEmail) (string, error) {
	var b strings.Builder
	if err := highScoreReportTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

func renderInvite(data InviteEmail) (string, error) {
	var b strings.Builder
	if err := inviteTmpl.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
