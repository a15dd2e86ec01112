package mailer

import (
	"fmt"
	"net/smtp"

	"ticketo/internal/config"
	"ticketo/internal/logger"
	"ticketo/internal/models"
)

// Mailer sends booking confirmation emails over SMTP. A nil *Mailer is valid
// and sends nothing, which is the default when SMTP is not configured.
type Mailer struct {
	host     string
	port     string
	from     string
	password string
	log      *logger.Logger
}

// New returns nil when the SMTP host or sender address is missing.
func New(cfg config.SMTPConfig, log *logger.Logger) *Mailer {
	if cfg.Host == "" || cfg.From == "" {
		return nil
	}
	return &Mailer{
		host:     cfg.Host,
		port:     cfg.Port,
		from:     cfg.From,
		password: cfg.Password,
		log:      log,
	}
}

// SendBookingConfirmation emails the customer after a successful booking.
// Failures are logged and swallowed: email is a courtesy, never part of the
// booking transaction.
func (m *Mailer) SendBookingConfirmation(booking *models.Booking) {
	if m == nil {
		return
	}

	promo := "none"
	if booking.Promo != nil {
		promo = *booking.Promo
	}

	message := []byte(fmt.Sprintf(
		"Subject: 🎟 Your Ticketo Booking %s\r\n"+
			"MIME-version: 1.0;\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\";\r\n\r\n"+
			`<div style="font-family: Arial, sans-serif; max-width: 500px; margin: auto; border: 2px dashed #FF6600; border-radius: 10px; padding: 20px; background-color: #fff9f2;">
				<div style="text-align: center;">
					<h2 style="color: #FF6600;">🎟 Booking Confirmed</h2>
					<p style="font-size: 16px; color: #555;">%s</p>
					<p style="font-size: 14px; color: #555;">%s at %s on %s %s</p>
					<p style="font-size: 14px; color: #555;">Tickets: %d &middot; Promo: %s</p>
					<div style="font-size: 28px; font-weight: bold; color: #000; background-color: #FFE0CC; padding: 10px; display: inline-block; border-radius: 8px;">
						%.2f SAR
					</div>
					<p style="font-size: 12px; color: #888; margin-top: 15px;">Booking reference: %s</p>
				</div>
			</div>`,
		booking.ID, booking.Title, booking.Title, booking.Venue, booking.Date, booking.Time,
		booking.Tickets, promo, booking.Total, booking.ID))

	auth := smtp.PlainAuth("", m.from, m.password, m.host)
	addr := m.host + ":" + m.port

	if err := smtp.SendMail(addr, auth, m.from, []string{booking.Email}, message); err != nil {
		m.log.Error("MAILER", fmt.Sprintf("Failed to send confirmation for booking %s: %v", booking.ID, err))
		return
	}
	m.log.Info("MAILER", fmt.Sprintf("Confirmation for booking %s sent to %s", booking.ID, booking.Email))
}
