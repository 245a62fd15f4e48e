package email

import (
	"bytes"
	"fmt"
	"go-interview-backend/config"
	"html/template"
	"mime"
	"net/smtp"
)

// EmailService sends candidate notifications via SMTP
type EmailService struct {
	host      string
	port      string
	username  string
	password  string
	fromEmail string
	sendMail  func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NotificationEmailData holds the data for a candidate notification
type NotificationEmailData struct {
	CandidateName  string
	CandidateEmail string
	Subject        string
	Body           string
}

// NewEmailService creates a new email service from SMTP configuration
func NewEmailService(cfg *config.Config) *EmailService {
	return &EmailService{
		host:      cfg.SMTPHost,
		port:      cfg.SMTPPort,
		username:  cfg.SMTPUsername,
		password:  cfg.SMTPPassword,
		fromEmail: cfg.NotifyFromEmail,
		sendMail:  smtp.SendMail,
	}
}

// notificationTemplate is the HTML template for candidate notifications
const notificationTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Subject}}</title>
    <style>
        body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
        .container { max-width: 600px; margin: 0 auto; padding: 20px; }
        .content { padding: 20px; background: #f9f9f9; white-space: pre-line; }
        .footer { text-align: center; padding: 20px; color: #888; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <p>{{.CandidateName}},</p>
        <div class="content">{{.Body}}</div>
        <div class="footer">
            <p>HaRry AI HR</p>
        </div>
    </div>
</body>
</html>`

var notificationTmpl = template.Must(template.New("notification").Parse(notificationTemplate))

// BuildNotificationMessage renders the full MIME message for a notification
func (s *EmailService) BuildNotificationMessage(data NotificationEmailData) ([]byte, error) {
	var body bytes.Buffer
	if err := notificationTmpl.Execute(&body, data); err != nil {
		return nil, fmt.Errorf("failed to execute email template: %w", err)
	}

	// Subjects are usually Cyrillic, so they must be RFC 2047 encoded
	subject := mime.QEncoding.Encode("utf-8", data.Subject)

	msg := []byte(fmt.Sprintf(
		"From: %s\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=UTF-8\r\n"+
			"\r\n"+
			"%s",
		s.fromEmail,
		data.CandidateEmail,
		subject,
		body.String(),
	))
	return msg, nil
}

// SendNotification delivers a notification to the candidate's address
func (s *EmailService) SendNotification(data NotificationEmailData) error {
	msg, err := s.BuildNotificationMessage(data)
	if err != nil {
		return err
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := s.sendMail(addr, auth, s.fromEmail, []string{data.CandidateEmail}, msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// IsConfigured checks if the email service has valid SMTP configuration
func (s *EmailService) IsConfigured() bool {
	return s.host != "" && s.username != "" && s.password != ""
}
