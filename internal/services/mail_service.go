package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"mime"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
)

var ErrMailDisabled = errors.New("mail is not configured")

type MailService struct {
	GmailClient *gmail.Service
}

// NewMailService accepts a nil client; the service then reports itself
// disabled and Send is a no-op error.
func NewMailService(client *gmail.Service) *MailService {
	if client == nil {
		log.Println("⚠️ Gmail sender disabled (no client). Check credentials.")
	}
	return &MailService{GmailClient: client}
}

func (s *MailService) Enabled() bool {
	return s != nil && s.GmailClient != nil
}

// Send delivers a plain-text email from the authorised account.
func (s *MailService) Send(ctx context.Context, to, subject, body string) error {
	if !s.Enabled() {
		return ErrMailDisabled
	}
	msg := &gmail.Message{Raw: buildMessage(to, subject, body)}
	return retry(ctx, 3, 1*time.Second, func() error {
		_, err := s.GmailClient.Users.Messages.Send("me", msg).Context(ctx).Do()
		return err
	})
}

// buildMessage renders an RFC 2822 message in the base64url form the Gmail
// API expects in Message.Raw.
func buildMessage(to, subject, body string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", subject))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return base64.URLEncoding.EncodeToString([]byte(b.String()))
}

// --- HELPERS ---

// retry executes a function with exponential backoff
func retry(ctx context.Context, attempts int, sleep time.Duration, f func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = f(); err == nil {
			return nil
		}
		// Client errors will not get better on retry
		if isPermanentError(err) {
			return err
		}
		if i == attempts-1 {
			break
		}

		log.Printf("⚠️ API Error: %v. Retrying in %v...", err, sleep)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(sleep):
		}
		sleep *= 2
	}
	return fmt.Errorf("failed after %d attempts: %w", attempts, err)
}

func isPermanentError(err error) bool {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return gErr.Code >= 400 && gErr.Code < 500 && gErr.Code != http.StatusTooManyRequests
	}
	return false
}
