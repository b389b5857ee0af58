package email

import (
	"context"
	"fmt"
	"net/smtp"
)

type WelcomeEmailData struct {
	Email    string
	Username string
}

type PasswordChangedData struct {
	Email    string
	Username string
}

// EmailService delivers account notifications.
type EmailService interface {
	SendWelcomeEmail(ctx context.Context, data WelcomeEmailData) error
	SendPasswordChangedEmail(ctx context.Context, data PasswordChangedData) error
}

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
}

func NewSMTPEmailService(smtpHost, smtpPort, from string) EmailService {
	return &smtpEmailService{
		smtpAddr: smtpHost + ":" + smtpPort,
		smtpFrom: from,
	}
}

func (s *smtpEmailService) SendWelcomeEmail(ctx context.Context, data WelcomeEmailData) error {
	subject := "Welcome to Photoblog"
	body := fmt.Sprintf(`Hi %s,

Your account has been created. You can now comment on posts and images once
a moderator grants you commentator trust.

If you did not register this account, please ignore this email.`, data.Username)

	return s.send(data.Email, subject, body)
}

func (s *smtpEmailService) SendPasswordChangedEmail(ctx context.Context, data PasswordChangedData) error {
	subject := "Your Photoblog password was changed"
	body := fmt.Sprintf(`Hi %s,

The password for your account was just changed.

If this was not you, contact an administrator immediately.`, data.Username)

	return s.send(data.Email, subject, body)
}

func (s *smtpEmailService) send(to, subject, body string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, to, subject, body))
	return smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{to}, msg)
}
