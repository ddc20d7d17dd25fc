package mail

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"cashit-backend/internal/config"
)

// Mailer sends operational email over SMTP.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Pass),
		from:   cfg.SMTP.From,
	}
}

func (m *Mailer) send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}
	return nil
}

func (m *Mailer) SendOtp(to, code string, ttlMinutes int) error {
	body := fmt.Sprintf(`
		<h2>Password reset</h2>
		<p>Your one-time code is <b>%s</b>.</p>
		<p>It expires in %d minutes. If you did not request this, ignore this mail.</p>
	`, code, ttlMinutes)
	return m.send(to, "CashIt password reset code", body)
}

func (m *Mailer) SendLoanClosed(to, customerName, loanID string, amount float64) error {
	body := fmt.Sprintf(`
		<h2>Loan closed</h2>
		<p>Dear %s,</p>
		<p>Your loan %s of %.2f has been fully repaid. Thank you.</p>
	`, customerName, loanID, amount)
	return m.send(to, "Your loan is fully repaid", body)
}
