package services

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"talentsift/resume-screener/internal/config"
	"talentsift/resume-screener/internal/matching"
	"talentsift/resume-screener/internal/models"
)

// Sender delivers one email. The SMTP implementation is swapped out for a
// fake in tests.
type Sender interface {
	Send(to, subject, body string) error
}

type smtpSender struct {
	dialer  *gomail.Dialer
	from    string
	company string
}

func newSMTPSender(cfg config.SMTPConfig) *smtpSender {
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	return &smtpSender{
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:    from,
		company: cfg.Company,
	}
}

func (s *smtpSender) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.from, fmt.Sprintf("%s HR", s.company))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email to %s: %w", to, err)
	}
	return nil
}

// InterviewMailer composes and dispatches interview invitations. Bulk
// sends report per-recipient outcomes; one recipient failing never aborts
// the batch.
type InterviewMailer struct {
	sender  Sender
	company string
	log     *zap.Logger
}

func NewInterviewMailer(cfg config.SMTPConfig, log *zap.Logger) *InterviewMailer {
	return &InterviewMailer{
		sender:  newSMTPSender(cfg),
		company: cfg.Company,
		log:     log,
	}
}

// NewInterviewMailerWithSender is used by tests to inject a fake sender.
func NewInterviewMailerWithSender(sender Sender, company string, log *zap.Logger) *InterviewMailer {
	return &InterviewMailer{sender: sender, company: company, log: log}
}

// SendInvite delivers one interview invitation.
func (m *InterviewMailer) SendInvite(req models.InterviewEmailRequest) error {
	subject := fmt.Sprintf("Interview Invitation for %s Position - %s", req.JobTitle, m.company)
	body := m.composeInviteBody(req.CandidateName, req.JobTitle, req.Dates, req.Times)

	if err := m.sender.Send(req.Email, subject, body); err != nil {
		m.log.Error("interview email failed",
			zap.String("email", req.Email),
			zap.Error(err))
		return err
	}

	m.log.Info("interview invitation sent",
		zap.String("email", req.Email),
		zap.String("job_title", req.JobTitle))
	return nil
}

// SendBulk generates fresh interview options per candidate and sends one
// invitation each, aggregating successes and failures.
func (m *InterviewMailer) SendBulk(jobTitle string, candidates []models.BulkEmailCandidate, slots *matching.SlotGenerator) models.BulkEmailSummary {
	summary := models.BulkEmailSummary{
		Results: make([]models.BulkEmailResult, 0, len(candidates)),
	}

	for _, cand := range candidates {
		options := slots.Generate(cand.Name, jobTitle)
		err := m.SendInvite(models.InterviewEmailRequest{
			CandidateName: cand.Name,
			Email:         cand.Email,
			JobTitle:      jobTitle,
			Dates:         options.Dates,
			Times:         options.Times,
		})

		result := models.BulkEmailResult{
			CandidateName: cand.Name,
			Email:         cand.Email,
			Success:       err == nil,
		}
		if err != nil {
			result.Error = err.Error()
			summary.TotalFailed++
		} else {
			summary.TotalSent++
		}
		summary.Results = append(summary.Results, result)
	}

	return summary
}

func (m *InterviewMailer) composeInviteBody(candidateName, jobTitle string, dates, times []string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Dear %s,\n\n", candidateName)
	fmt.Fprintf(&b, "Thank you for applying for the %s position at %s. "+
		"We are pleased to inform you that your profile has been shortlisted "+
		"for the next round of our hiring process.\n\n", jobTitle, m.company)
	b.WriteString(roleEmailContent(jobTitle))
	b.WriteString("\n\nWe would like to schedule an interview at your convenience. Here are the available slots:\n")

	for _, date := range dates {
		fmt.Fprintf(&b, "\nDate: %s\nAvailable times:", date)
		for _, t := range times {
			fmt.Fprintf(&b, "\n- %s", t)
		}
		b.WriteString("\n")
	}

	b.WriteString(`
Please reply to this email with your preferred slot from the above options. If none of these times work for you, please suggest alternative times that would be more convenient.

Interview Format:
- Duration: 45-60 minutes
- Mode: Video Conference (link will be shared upon confirmation)
- Please have a stable internet connection and a quiet environment

What to Prepare:
1. An updated copy of your resume
2. Any relevant portfolio or work samples
3. Questions you may have about the role or company

Best regards,
HR Team
`)
	b.WriteString(m.company)
	b.WriteString("\n")

	return b.String()
}
