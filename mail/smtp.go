// Package mail delivers OTP codes over SMTP.
package mail

import (
	"context"
	"fmt"
	"net/smtp"
	"time"
)

// SMTPSender implements core.EmailSender against a plain SMTP relay.
type SMTPSender struct {
	Host     string
	Port     string
	Username string
	Password string
	From     string
}

func (s *SMTPSender) SendOTP(ctx context.Context, to, code string, ttl time.Duration) error {
	_ = ctx // net/smtp has no context support; the relay's own timeouts apply
	var auth smtp.Auth
	if s.Username != "" {
		auth = smtp.PlainAuth("", s.Username, s.Password, s.Host)
	}
	msg := buildOTPMessage(s.From, to, code, ttl)
	return smtp.SendMail(s.Host+":"+s.Port, auth, s.From, []string{to}, msg)
}

func buildOTPMessage(from, to, code string, ttl time.Duration) []byte {
	headers := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: Your bgaze verification code\r\n\r\n", from, to)
	body := fmt.Sprintf("Your verification code is %s.\n\nIt expires in %d minutes. If you did not request it, ignore this message.\n",
		code, int(ttl.Minutes()))
	return []byte(headers + body)
}
