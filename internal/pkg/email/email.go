package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"time"

	"github.com/leavedesk/leave-backend-go/internal/config"
)

//go:embed templates/*.html
var templateFS embed.FS

const maxRetries = 3

// EmailService defines the interface for sending emails
type EmailService interface {
	SendLeaveSubmitted(to, supervisorName, requesterName, startDate, endDate string, daysCount int, requestLink string) error
	SendLeaveApproved(to, requesterName, startDate, endDate string, daysCount, remainingBalance int) error
	SendLeaveRejected(to, requesterName, startDate, endDate string, reason string) error
}

type emailServiceImpl struct {
	cfg       config.SMTPConfig
	templates *template.Template
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) (EmailService, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse email templates: %w", err)
	}

	return &emailServiceImpl{
		cfg:       cfg,
		templates: tmpl,
	}, nil
}

type leaveSubmittedEmailData struct {
	SupervisorName string
	RequesterName  string
	StartDate      string
	EndDate        string
	DaysCount      int
	RequestLink    string
}

// SendLeaveSubmitted notifies a supervisor about a newly submitted request
func (s *emailServiceImpl) SendLeaveSubmitted(to, supervisorName, requesterName, startDate, endDate string, daysCount int, requestLink string) error {
	data := leaveSubmittedEmailData{
		SupervisorName: supervisorName,
		RequesterName:  requesterName,
		StartDate:      startDate,
		EndDate:        endDate,
		DaysCount:      daysCount,
		RequestLink:    requestLink,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "leave_submitted.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, fmt.Sprintf("Leave request from %s awaits your review", requesterName), body.String())
}

type leaveApprovedEmailData struct {
	RequesterName    string
	StartDate        string
	EndDate          string
	DaysCount        int
	RemainingBalance int
}

// SendLeaveApproved notifies the requester that their leave was approved
func (s *emailServiceImpl) SendLeaveApproved(to, requesterName, startDate, endDate string, daysCount, remainingBalance int) error {
	data := leaveApprovedEmailData{
		RequesterName:    requesterName,
		StartDate:        startDate,
		EndDate:          endDate,
		DaysCount:        daysCount,
		RemainingBalance: remainingBalance,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "leave_approved.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Your leave request was approved", body.String())
}

type leaveRejectedEmailData struct {
	RequesterName string
	StartDate     string
	EndDate       string
	Reason        string
}

// SendLeaveRejected notifies the requester that their leave was rejected
func (s *emailServiceImpl) SendLeaveRejected(to, requesterName, startDate, endDate string, reason string) error {
	data := leaveRejectedEmailData{
		RequesterName: requesterName,
		StartDate:     startDate,
		EndDate:       endDate,
		Reason:        reason,
	}

	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, "leave_rejected.html", data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	return s.sendHTML(to, "Your leave request was rejected", body.String())
}

func (s *emailServiceImpl) sendHTML(to, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", to)
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := smtp.SendMail(addr, auth, from, []string{to}, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(time.Duration(1<<(attempt-1)) * time.Second)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}
