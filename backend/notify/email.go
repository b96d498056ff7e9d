package notify

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"

	"skillshub/backend/config"
	"skillshub/backend/models"
)

// Mailer sends transactional email over SMTP. With no sender configured
// it logs and drops every message, so local setups work without
// credentials.
type Mailer struct {
	host     string
	port     string
	sender   string
	password string
	logger   *log.Logger
}

func NewMailer(cfg *config.Config, logger *log.Logger) *Mailer {
	return &Mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		sender:   cfg.EmailSender,
		password: cfg.SMTPPassword,
		logger:   logger,
	}
}

func (m *Mailer) send(to []string, subject, htmlBody string) error {
	if m.sender == "" {
		m.logger.Printf("email disabled, dropping %q to %v", subject, to)
		return nil
	}

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: Digital Skills Hub <%s>\r\n", m.sender)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", m.sender, m.password, m.host)
	if err := smtp.SendMail(m.host+":"+m.port, auth, m.sender, to, []byte(msg)); err != nil {
		m.logger.Printf("send email %q to %v: %v", subject, to, err)
		return err
	}
	return nil
}

// SendWelcomeEmail greets a freshly registered user.
func (m *Mailer) SendWelcomeEmail(email, name string) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Thank you for joining Digital Skills Hub. We're excited to have you on board!</p>
		<ol>
			<li>Browse our courses</li>
			<li>Enroll in your first course</li>
			<li>Meet your mentors</li>
			<li>Start learning today!</li>
		</ol>
	`, name)
	m.send([]string{email}, "Welcome to Digital Skills Hub!", emailTemplate("Welcome to Digital Skills Hub!", body))
}

// SendEnrollmentEmail confirms a successful course enrollment.
func (m *Mailer) SendEnrollmentEmail(email, name string, course models.Course) {
	body := fmt.Sprintf(`
		<p>Hi %s,</p>
		<p>Congratulations! You've successfully enrolled in <strong>%s</strong>.</p>
		<h3>What's Next?</h3>
		<ul>
			<li>Access your course dashboard</li>
			<li>Start watching video lessons</li>
			<li>Connect with your mentor, %s</li>
		</ul>
	`, name, course.Title, course.Mentor)
	m.send([]string{email}, fmt.Sprintf("Welcome to %s!", course.Title), emailTemplate("Enrollment Confirmed", body))
}

// SendFeedbackAlert forwards a feedback submission to the admin inbox.
func (m *Mailer) SendFeedbackAlert(adminEmail string, entry models.Feedback) {
	body := fmt.Sprintf(`
		<p><strong>Name:</strong> %s</p>
		<p><strong>Email:</strong> %s</p>
		<p><strong>Course:</strong> %s</p>
		<p><strong>Rating:</strong> %d/5</p>
		<p><strong>Comments:</strong></p>
		<p>%s</p>
	`, entry.Name, entry.Email, entry.Course, entry.Rating, entry.Feedback)
	m.send([]string{adminEmail}, "New Feedback: "+entry.Course, emailTemplate("New Student Feedback", body))
}

func emailTemplate(title, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: Arial, sans-serif; background-color: #f3f4f6; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #ffffff; border-radius: 8px; overflow: hidden; }
			.header { background-color: #10B981; padding: 24px; text-align: center; }
			.header h1 { color: #ffffff; margin: 0; font-size: 22px; }
			.content { padding: 32px 24px; color: #111827; line-height: 1.6; }
			.footer { background-color: #f3f4f6; padding: 16px; text-align: center; font-size: 12px; color: #6b7280; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header"><h1>Digital Skills Hub</h1></div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">Digital Skills Hub &middot; learn, practice, grow</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}
