package email

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/Dan9191/wealthwise/internal/config"
	"github.com/Dan9191/wealthwise/internal/models"
	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"
)

const maxActionsInEmail = 3

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// buildDisciplineReport formats the monthly discipline report email
func (s *Sender) buildDisciplineReport(to, name string, report models.MonthlyReport, actions []string) *email.Email {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Your %s Financial Discipline Report: Grade %s", report.Month, report.Grade)

	if name == "" {
		name = "there"
	}

	var body strings.Builder
	fmt.Fprintf(&body, "Dear %s,\n\n", name)
	fmt.Fprintf(&body, "Here is your financial discipline summary for %s.\n\n", report.Month)
	fmt.Fprintf(&body, "Discipline score: %d/100 (grade %s)\n", report.Score, report.Grade)
	fmt.Fprintf(&body, "Strongest habit: %s\n", report.StrongHabit)
	fmt.Fprintf(&body, "Area to improve: %s\n", report.WeakArea)
	fmt.Fprintf(&body, "Focus this month: %s\n", report.FocusedAction)

	if len(actions) > maxActionsInEmail {
		actions = actions[:maxActionsInEmail]
	}
	if len(actions) > 0 {
		body.WriteString("\nNext steps:\n")
		for i, a := range actions {
			fmt.Fprintf(&body, "%d. %s\n", i+1, a)
		}
	}

	body.WriteString("\nBest regards,\nWealthWise")
	e.Text = []byte(body.String())
	return e
}

// SendDisciplineReport emails the monthly discipline report
func (s *Sender) SendDisciplineReport(to, name string, report models.MonthlyReport, actions []string) error {
	e := s.buildDisciplineReport(to, name, report, actions)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	var auth smtp.Auth
	if s.cfg.SMTPUsername != "" {
		auth = smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	}
	err := e.Send(addr, auth)
	if err != nil {
		s.logger.Errorf("Failed to send discipline report to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
