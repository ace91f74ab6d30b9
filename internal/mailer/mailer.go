package mailer

import (
	"fmt"
	"log"

	"campus-services/config"

	"gopkg.in/gomail.v2"
)

// Mailer sends transactional notices over SMTP. It is optional
// infrastructure: NewFromEnv returns nil when SMTP_HOST is unset and
// callers treat a nil Mailer as "notifications disabled".
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewFromEnv() *Mailer {
	host := config.GetEnv("SMTP_HOST", "")
	if host == "" {
		return nil
	}
	return &Mailer{
		host: host,
		port: config.GetEnvAsInt("SMTP_PORT", 587),
		user: config.GetEnv("SMTP_USER", ""),
		pass: config.GetEnv("SMTP_PASS", ""),
		from: config.GetEnv("SMTP_FROM", "noreply@campus-services.local"),
	}
}

func (m *Mailer) SendLeaveApproved(to, leaveType, startDate, endDate string) {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Leave Approved")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Your %s leave from %s to %s has been approved.", leaveType, startDate, endDate))

	dialer := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	if err := dialer.DialAndSend(msg); err != nil {
		log.Println("mailer: failed to send leave notice:", err)
	}
}
