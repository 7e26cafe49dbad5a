package mailer

import (
	"strings"
	"testing"
	"time"
)

func TestRenderCandidateResult(t *testing.T) {
	html, err := renderCandidateResult(CandidateResultEmail{
		CandidateName:  "Maria",
		CandidateEmail: "maria@example.com",
		PerfScore:      38,
		EnergyScore:    28,
		CultureScore:   27,
		TotalScore:     93,
		Classification: "Fit Altíssimo",
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Maria", "93", "Fit Altíssimo", "38", "28", "27"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered email missing %q", want)
		}
	}
}

func TestRenderHighScoreReportWithCandidates(t *testing.T) {
	html, err := renderHighScoreReport(ReportEmail{
		EvaluatorName:   "Avaliador",
		EvaluatorEmail:  "avaliador@fitscore.com",
		PeriodHours:     12,
		TotalCandidates: 1,
		GeneratedAt:     time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
		Candidates: []ReportEmailCandidate{
			{Name: "João", Email: "joao@example.com", TotalScore: 88, Classification: "Fit Altíssimo"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Avaliador", "João", "88", "10/03/2025"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered report missing %q", want)
		}
	}
}

func TestRenderHighScoreReportEmpty(t *testing.T) {
	html, err := renderHighScoreReport(ReportEmail{
		EvaluatorName:   "Avaliador",
		PeriodHours:     12,
		TotalCandidates: 0,
		GeneratedAt:     time.Now(),
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "Nenhum candidato high score") {
		t.Error("empty report should carry the no-candidates note")
	}
}

func TestRenderInviteEscapesURL(t *testing.T) {
	html, err := renderInvite(InviteEmail{
		CandidateName:  "Ana",
		CandidateEmail: "ana@example.com",
		FormURL:        "https://fitscore.example.com/form",
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(html, "https://fitscore.example.com/form") {
		t.Error("invite missing form URL")
	}
}
