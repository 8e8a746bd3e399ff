package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"rentx-api/internal/pkg/breaker"
	"rentx-api/internal/pkg/config"
	"rentx-api/internal/pkg/errs"
	"rentx-api/internal/usecase/jobs"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sony/gobreaker/v2"
	"gopkg.in/gomail.v2"
)

// NewMailer picks the delivery driver from config and guards it with a
// circuit breaker.
func NewMailer(cfg config.MailConfig, breakerCfg config.BreakerConfig) (jobs.Mailer, error) {
	var m jobs.Mailer
	switch cfg.Driver {
	case "sendgrid":
		if cfg.SendGridAPIKey == "" {
			return nil, errs.New("SENDGRID_API_KEY is required for the sendgrid mail driver")
		}
		m = NewSendGridMailer(cfg)
	case "smtp":
		m = NewSMTPMailer(cfg)
	case "log", "":
		return NewLogMailer(), nil
	default:
		return nil, fmt.Errorf("unknown mail driver %q", cfg.Driver)
	}
	return NewBreakerMailer(m, breaker.New[struct{}]("mailer-"+cfg.Driver, breakerCfg)), nil
}

type SendGridMailer struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
}

func NewSendGridMailer(cfg config.MailConfig) *SendGridMailer {
	return &SendGridMailer{
		client:    sendgrid.NewSendClient(cfg.SendGridAPIKey),
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

func (s *SendGridMailer) Send(ctx context.Context, email jobs.Email) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail("", email.To)
	message := mail.NewSingleEmail(from, email.Subject, to, email.TextBody, email.HTMLBody)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return errs.Wrap(err, "sendgrid send")
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}

type SMTPMailer struct {
	dialer *gomail.Dialer
	from   string
}

func NewSMTPMailer(cfg config.MailConfig) *SMTPMailer {
	m := gomail.NewMessage()
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   m.FormatAddress(cfg.FromEmail, cfg.FromName),
	}
}

// Send gives up waiting when ctx ends; gomail has no context support, so the
// dial itself may still finish in the background.
func (s *SMTPMailer) Send(ctx context.Context, email jobs.Email) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", email.To)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/plain", email.TextBody)
	if email.HTMLBody != "" {
		m.AddAlternative("text/html", email.HTMLBody)
	}

	done := make(chan error, 1)
	go func() { done <- s.dialer.DialAndSend(m) }()

	select {
	case err := <-done:
		if err != nil {
			return errs.Wrap(err, "failed to send email via gomail")
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// LogMailer writes emails to the log instead of sending them.
type LogMailer struct {
	logger *slog.Logger
}

func NewLogMailer() *LogMailer {
	return &LogMailer{logger: slog.Default().With(slog.String("component", "log_mailer"))}
}

func (l *LogMailer) Send(_ context.Context, email jobs.Email) error {
	l.logger.Info("email",
		slog.String("to", email.To),
		slog.String("subject", email.Subject),
		slog.String("body", email.TextBody))
	return nil
}

type BreakerMailer struct {
	next jobs.Mailer
	cb   *gobreaker.CircuitBreaker[struct{}]
}

func NewBreakerMailer(next jobs.Mailer, cb *gobreaker.CircuitBreaker[struct{}]) *BreakerMailer {
	return &BreakerMailer{next: next, cb: cb}
}

func (b *BreakerMailer) Send(ctx context.Context, email jobs.Email) error {
	_, err := b.cb.Execute(func() (struct{}, error) {
		return struct{}{}, b.next.Send(ctx, email)
	})
	return err
}
