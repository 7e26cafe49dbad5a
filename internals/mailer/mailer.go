// file: internals/mailer/mailer.go
package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
	"time"

	"fitscore_backend/internals/configs"
)

/* ===============================
   Payloads email kolaborator
=================================*/

type CandidateResultEmail struct {
	CandidateName  string
	CandidateEmail string
	PerfScore      int
	EnergyScore    int
	CultureScore   int
	TotalScore     int
	Classification string
}

type ReportEmailCandidate struct {
	Name           string
	Email          string
	TotalScore     int
	PerfScore      int
	EnergyScore    int
	CultureScore   int
	Classification string
	SubmissionDate time.Time
}

type ReportEmail struct {
	EvaluatorName   string
	EvaluatorEmail  string
	PeriodHours     int
	TotalCandidates int
	GeneratedAt     time.Time
	Candidates      []ReportEmailCandidate
}

type InviteEmail struct {
	CandidateName  string
	CandidateEmail string
	FormURL        string
}

// Mailer: kolaborator notifikasi. Kegagalan kirim TIDAK boleh
// membatalkan save yang sudah sukses; caller hanya boleh log.
type Mailer interface {
	SendCandidateResult(ctx context.Context, data CandidateResultEmail) error
	SendHighScoreReport(ctx context.Context, data ReportEmail) error
	SendInvite(ctx context.Context, data InviteEmail) error
}

/* ===============================
   SMTP implementation
=================================*/

type smtpMailer struct {
	host     string
	port     string
	user     string
	password string
	from     string
}

func NewFromEnv() Mailer {
	return &smtpMailer{
		host:     configs.SMTPHost,
		port:     configs.SMTPPort,
		user:     configs.SMTPUser,
		password: configs.SMTPPassword,
		from:     configs.FromEmail,
	}
}

func (m *smtpMailer) SendCandidateResult(ctx context.Context, data CandidateResultEmail) error {
	body, err := renderCandidateResult(data)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Seu resultado FitScore: %s", data.Classification)
	return m.send(ctx, data.CandidateEmail, subject, body)
}

func (m *smtpMailer) SendHighScoreReport(ctx context.Context, data ReportEmail) error {
	body, err := renderHighScoreReport(data)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("Relatório FitScore: %d candidato(s) high score nas últimas %dh",
		data.TotalCandidates, data.PeriodHours)
	return m.send(ctx, data.EvaluatorEmail, subject, body)
}

func (m *smtpMailer) SendInvite(ctx context.Context, data InviteEmail) error {
	body, err := renderInvite(data)
	if err != nil {
		return err
	}
	return m.send(ctx, data.CandidateEmail, "Convite: avaliação FitScore", body)
}

func (m *smtpMailer) send(ctx context.Context, to, subject, htmlBody string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var msg strings.Builder
	msg.WriteString("From: FitScore LEGAL <" + m.from + ">\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := m.host + ":" + m.port
	auth := smtp.PlainAuth("", m.user, m.password, m.host)
	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg.String()))
}
