package email

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"mime"
	"net/smtp"
	"path/filepath"
	"strings"

	"prestova-one/internal/features/settings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type EmailService interface {
	SendEmail(ctx context.Context, to []string, subject, body string) error
	SendEmailWithAttachment(ctx context.Context, to []string, subject, body string, attachmentName string, attachmentData []byte) error
}

type EmailServiceImpl struct {
	SettingsService settings.SettingsService
	Repo            *EmailRepository
	Logger          *zap.Logger
}

func NewEmailService(settingsService settings.SettingsService, repo *EmailRepository, logger *zap.Logger) EmailService {
	return &EmailServiceImpl{
		SettingsService: settingsService,
		Repo:            repo,
		Logger:          logger,
	}
}

func (s *EmailServiceImpl) smtpConfig(ctx context.Context) (*settings.EmailConfig, string, error) {
	config, err := s.SettingsService.GetEmailConfig(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch email config: %w", err)
	}
	if config == nil {
		return nil, "", errors.New("email configuration not found")
	}
	if config.SMTPHost == "" || config.SMTPPort == 0 {
		return nil, "", errors.New("invalid email configuration: missing host or port")
	}

	from := config.FromEmail
	if from == "" {
		from = config.SMTPUser
	}
	return config, from, nil
}

func (s *EmailServiceImpl) SendEmail(ctx context.Context, to []string, subject, body string) error {
	config, from, err := s.smtpConfig(ctx)
	if err != nil {
		return err
	}

	record := &Email{
		ID:      primitive.NewObjectID(),
		From:    from,
		To:      to,
		Subject: subject,
		Body:    body,
		Status:  EmailQueued,
	}
	if s.Repo != nil {
		_ = s.Repo.Create(ctx, record)
	}

	msg := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		strings.Join(to, ", "), subject, body))

	addr := fmt.Sprintf("%s:%d", config.SMTPHost, config.SMTPPort)
	auth := smtp.PlainAuth("", config.SMTPUser, config.SMTPPassword, config.SMTPHost)

	sendErr := smtp.SendMail(addr, auth, from, to, msg)
	s.finish(ctx, record, sendErr)
	return sendErr
}

func (s *EmailServiceImpl) SendEmailWithAttachment(ctx context.Context, to []string, subject, body string, attachmentName string, attachmentData []byte) error {
	config, from, err := s.smtpConfig(ctx)
	if err != nil {
		return err
	}

	record := &Email{
		ID:         primitive.NewObjectID(),
		From:       from,
		To:         to,
		Subject:    subject,
		Body:       body,
		Attachment: attachmentName,
		Status:     EmailQueued,
	}
	if s.Repo != nil {
		_ = s.Repo.Create(ctx, record)
	}

	contentType := mime.TypeByExtension(filepath.Ext(attachmentName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	boundary := "prestova-mime-boundary"
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/mixed; boundary=%s\r\n\r\n", boundary)

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	buf.WriteString("Content-Type: text/plain; charset=utf-8\r\n\r\n")
	buf.WriteString(body)
	buf.WriteString("\r\n")

	fmt.Fprintf(&buf, "--%s\r\n", boundary)
	fmt.Fprintf(&buf, "Content-Type: %s\r\n", contentType)
	buf.WriteString("Content-Transfer-Encoding: base64\r\n")
	fmt.Fprintf(&buf, "Content-Disposition: attachment; filename=%q\r\n\r\n", attachmentName)

	encoded := base64.StdEncoding.EncodeToString(attachmentData)
	// Wrap base64 lines at 76 chars per RFC 2045
	for len(encoded) > 76 {
		buf.WriteString(encoded[:76] + "\r\n")
		encoded = encoded[76:]
	}
	buf.WriteString(encoded + "\r\n")
	fmt.Fprintf(&buf, "--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", config.SMTPHost, config.SMTPPort)
	auth := smtp.PlainAuth("", config.SMTPUser, config.SMTPPassword, config.SMTPHost)

	sendErr := smtp.SendMail(addr, auth, from, to, buf.Bytes())
	s.finish(ctx, record, sendErr)
	return sendErr
}

func (s *EmailServiceImpl) finish(ctx context.Context, record *Email, sendErr error) {
	status := EmailSent
	errMsg := ""
	if sendErr != nil {
		status = EmailFailed
		errMsg = sendErr.Error()
		s.Logger.Warn("email send failed", zap.Error(sendErr), zap.Strings("to", record.To))
	} else {
		s.Logger.Info("email sent", zap.Strings("to", record.To), zap.String("subject", record.Subject))
	}

	if s.Repo != nil {
		_ = s.Repo.UpdateStatus(ctx, record.ID, status, errMsg)
	}
}
