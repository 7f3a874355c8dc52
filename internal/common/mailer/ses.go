// Package mailer sends transactional email through AWS SES.
package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"

	apperrors "github.com/sfadda-dotcom/wedding-planner-platform/internal/common/errors"
	"github.com/sfadda-dotcom/wedding-planner-platform/internal/common/logger"
)

// SESService is the subset of the SES client the mailer needs, defined
// here so tests can substitute a mock.
type SESService interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

// Mailer delivers outbound email.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to, resetURL string, expiresAt time.Time) error
}

type SESMailer struct {
	client    SESService
	fromEmail string
	logger    logger.Logger
}

func NewSESMailer(ctx context.Context, region, fromEmail string, log logger.Logger) (*SESMailer, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	return &SESMailer{
		client:    ses.NewFromConfig(cfg),
		fromEmail: fromEmail,
		logger:    log,
	}, nil
}

// NewSESMailerWithClient wires an existing SES client, used in tests.
func NewSESMailerWithClient(client SESService, fromEmail string, log logger.Logger) *SESMailer {
	return &SESMailer{client: client, fromEmail: fromEmail, logger: log}
}

func (m *SESMailer) SendPasswordReset(ctx context.Context, to, resetURL string, expiresAt time.Time) error {
	if !isValidEmail(to) {
		return apperrors.NewValidationFailedError(fmt.Sprintf("invalid recipient address: %s", to))
	}

	subject := "Reset your wedding planner password"
	text := fmt.Sprintf(
		"We received a request to reset your password.\n\n"+
			"Open the link below to choose a new password. The link expires at %s.\n\n%s\n\n"+
			"If you did not request this, you can safely ignore this email.",
		expiresAt.UTC().Format(time.RFC1123), resetURL,
	)
	html := fmt.Sprintf(
		"<p>We received a request to reset your password.</p>"+
			"<p><a href=%q>Reset your password</a> (expires at %s).</p>"+
			"<p>If you did not request this, you can safely ignore this email.</p>",
		resetURL, expiresAt.UTC().Format(time.RFC1123),
	)

	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Destination: &types.Destination{
			ToAddresses: []string{to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(text)},
				Html: &types.Content{Data: aws.String(html)},
			},
		},
		Source: aws.String(m.fromEmail),
	})
	if err != nil {
		return apperrors.NewMailSendFailedError(err)
	}

	m.logger.Info("Password reset email sent", map[string]interface{}{
		"to": to,
	})
	return nil
}

func isValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	parts := strings.Split(email, "@")
	if len(parts) != 2 || len(parts[0]) == 0 || len(parts[1]) == 0 {
		return false
	}
	return strings.Contains(parts[1], ".")
}

// NoOpMailer logs instead of sending, used when SES is disabled in config.
type NoOpMailer struct {
	logger logger.Logger
}

func NewNoOpMailer(log logger.Logger) *NoOpMailer {
	return &NoOpMailer{logger: log}
}

func (m *NoOpMailer) SendPasswordReset(ctx context.Context, to, resetURL string, expiresAt time.Time) error {
	m.logger.Info("Mail delivery disabled, skipping password reset email", map[string]interface{}{
		"to":       to,
		"resetUrl": resetURL,
	})
	return nil
}
