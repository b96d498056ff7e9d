package notify

import (
	"log"

	"skillshub/backend/config"
	"skillshub/backend/models"
)

// Notifier fans platform events out to email and the admin webhook.
// Deliveries run in goroutines and never affect the triggering request;
// failures only get logged.
type Notifier struct {
	mailer     *Mailer
	webhook    *Webhook
	adminEmail string
	logger     *log.Logger
}

func NewNotifier(cfg *config.Config, logger *log.Logger) *Notifier {
	return &Notifier{
		mailer:     NewMailer(cfg, logger),
		webhook:    NewWebhook(cfg.FeedbackWebhookURL),
		adminEmail: cfg.AdminEmail,
		logger:     logger,
	}
}

// UserRegistered sends the welcome email.
func (n *Notifier) UserRegistered(email, name string) {
	go n.mailer.SendWelcomeEmail(email, name)
}

// EnrollmentCreated sends the course welcome email.
func (n *Notifier) EnrollmentCreated(email, name string, course models.Course) {
	go n.mailer.SendEnrollmentEmail(email, name, course)
}

// FeedbackReceived alerts the admin over email and the webhook.
func (n *Notifier) FeedbackReceived(entry models.Feedback) {
	go n.mailer.SendFeedbackAlert(n.adminEmail, entry)
	go func() {
		if err := n.webhook.PostFeedback(entry); err != nil {
			n.logger.Printf("feedback webhook: %v", err)
		}
	}()
}
