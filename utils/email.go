package utils

import (
	"fmt"

	"github.com/Govind-619/BooksCourier/models"
	"gopkg.in/gomail.v2"
)

// EmailConfig holds email configuration
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends transactional email over SMTP
type Mailer struct {
	config EmailConfig
	dialer *gomail.Dialer
}

// NewMailer returns nil when no SMTP host is configured; a nil Mailer drops mail.
func NewMailer(config EmailConfig) *Mailer {
	if config.Host == "" {
		return nil
	}
	return &Mailer{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}
}

// SendPaymentConfirmation tells the buyer their payment went through and
// gives them the tracking ID for the shipment.
func (m *Mailer) SendPaymentConfirmation(payment *models.Payment) error {
	if m == nil {
		LogDebug("SMTP not configured, skipping confirmation email for %s", payment.TransactionID)
		return nil
	}
	if payment.CustomerEmail == "" {
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.config.From)
	msg.SetHeader("To", payment.CustomerEmail)
	msg.SetHeader("Subject", "Your BooksCourier payment is confirmed")

	body := fmt.Sprintf(`
		<h2>Thank you for your order!</h2>
		<p>We received your payment of <strong>%.2f %s</strong> for <em>%s</em>.</p>
		<p>Your tracking ID:</p>
		<h1 style="color: #4CAF50; font-size: 28px; letter-spacing: 3px;">%s</h1>
		<p>Transaction: %s</p>
	`, payment.Amount, payment.Currency, payment.BookTitle, payment.TrackingID, payment.TransactionID)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}
