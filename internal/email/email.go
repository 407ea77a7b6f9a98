package email

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/namefreezers/weather-dashboard/internal/config"
)

const (
	implicitTLSPort = 465
	dialTimeout     = 10 * time.Second
)

// EmailMessage represents a single email to be sent.
type EmailMessage struct {
	To      []string // Recipient email addresses.
	Subject string   // Email subject.
	Body    string   // HTML or plain text email content.
}

// EmailSender defines an interface for sending batches of emails.
type EmailSender interface {
	// SendBatch sends multiple EmailMessage objects in a single SMTP session.
	SendBatch(ctx context.Context, messages []EmailMessage) error
}

// SMTPSender is a concrete implementation of EmailSender using SMTP.
type SMTPSender struct {
	host      string
	port      int
	from      string
	auth      smtp.Auth
	tlsConfig *tls.Config
	logger    *zap.Logger
}

// NewSMTPSender builds an SMTPSender from the settings returned by config.LoadSMTP:
//
//	SMTP_HOST: e.g. smtp.example.com
//	SMTP_PORT: e.g. 587 or 465
//	SMTP_USER: username for SMTP auth
//	SMTP_PASS: password for SMTP auth
//	SMTP_FROM: optional; defaults to SMTP_USER if unset
func NewSMTPSender(cfg *config.SMTP, logger *zap.Logger) (*SMTPSender, error) {
	if cfg.Host == "" || cfg.Port == 0 {
		return nil, fmt.Errorf("SMTP host and port are required")
	}

	auth := smtp.PlainAuth("", cfg.User, cfg.Pass, cfg.Host)
	tlsConfig := &tls.Config{ServerName: cfg.Host}

	return &SMTPSender{
		host:      cfg.Host,
		port:      cfg.Port,
		from:      cfg.From,
		auth:      auth,
		tlsConfig: tlsConfig,
		logger:    logger,
	}, nil
}

// dial opens the TCP connection, wrapping it in TLS right away on port 465.
func (s *SMTPSender) dial(ctx context.Context) (net.Conn, error) {
	addr := net.JoinHostPort(s.host, strconv.Itoa(s.port))
	d := &net.Dialer{Timeout: dialTimeout}

	if s.port == implicitTLSPort {
		conn, err := (&tls.Dialer{NetDialer: d, Config: s.tlsConfig}).DialContext(ctx, "tcp", addr)
		if err != nil {
			return nil, fmt.Errorf("failed to dial SMTPS on %s: %w", addr, err)
		}
		return conn, nil
	}
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to dial SMTP on %s: %w", addr, err)
	}
	return conn, nil
}

// openSession dials, upgrades via STARTTLS when not on implicit TLS, and authenticates.
func (s *SMTPSender) openSession(ctx context.Context) (*smtp.Client, error) {
	conn, err := s.dial(ctx)
	if err != nil {
		return nil, err
	}

	client, err := smtp.NewClient(conn, s.host)
	if err != nil {
		if cerr := conn.Close(); cerr != nil {
			s.logger.Warn("failed to close raw connection", zap.Error(cerr))
		}
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}

	abort := func(err error) (*smtp.Client, error) {
		if cerr := client.Close(); cerr != nil {
			s.logger.Warn("failed to close SMTP client", zap.Error(cerr))
		}
		return nil, err
	}

	if s.port != implicitTLSPort {
		if ok, _ := client.Extension("STARTTLS"); !ok {
			return abort(fmt.Errorf("SMTP server does not support STARTTLS"))
		}
		if err := client.StartTLS(s.tlsConfig); err != nil {
			return abort(fmt.Errorf("failed to start TLS: %w", err))
		}
	}
	if err := client.Auth(s.auth); err != nil {
		return abort(fmt.Errorf("failed to authenticate: %w", err))
	}
	return client, nil
}

// SendBatch opens a single SMTP session and sends all provided emails sequentially.
// It stops before the next message once ctx is done.
func (s *SMTPSender) SendBatch(ctx context.Context, messages []EmailMessage) (err error) {
	if len(messages) == 0 {
		return nil
	}

	client, err := s.openSession(ctx)
	if err != nil {
		s.logger.Error("SMTP session setup failed", zap.String("host", s.host), zap.Error(err))
		return err
	}
	defer func() {
		if quitErr := client.Quit(); quitErr != nil && err == nil {
			s.logger.Error("failed to close SMTP connection", zap.Error(quitErr))
			err = fmt.Errorf("failed to close SMTP connection: %w", quitErr)
		}
	}()

	for i, msg := range messages {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("batch interrupted after %d of %d messages: %w", i, len(messages), ctxErr)
		}
		// fresh envelope per message
		if err := client.Reset(); err != nil {
			return fmt.Errorf("failed to reset SMTP session: %w", err)
		}
		if err := s.send(client, msg); err != nil {
			return err
		}
	}

	s.logger.Info("all messages sent successfully", zap.Int("count", len(messages)))
	return nil
}

// send sends a single EmailMessage using an existing SMTP client session.
func (s *SMTPSender) send(client *smtp.Client, m EmailMessage) error {
	if err := client.Mail(s.from); err != nil {
		return fmt.Errorf("failed to set MAIL FROM %q: %w", s.from, err)
	}
	for _, addr := range m.To {
		if err := client.Rcpt(addr); err != nil {
			return fmt.Errorf("failed to add RCPT TO %q: %w", addr, err)
		}
	}

	wc, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to start DATA command: %w", err)
	}
	if _, err := io.WriteString(wc, buildMessage(s.from, m, time.Now())); err != nil {
		_ = wc.Close()
		return fmt.Errorf("failed to write message body: %w", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close DATA writer: %w", err)
	}

	s.logger.Debug("email sent", zap.Strings("to", m.To), zap.String("subject", m.Subject))
	return nil
}

// buildMessage renders headers and body as an RFC 5322 message.
func buildMessage(from string, m EmailMessage, now time.Time) string {
	headers := []string{
		fmt.Sprintf("Date: %s", now.Format(time.RFC1123Z)),
		fmt.Sprintf("From: %s", from),
		fmt.Sprintf("To: %s", strings.Join(m.To, ",")),
		fmt.Sprintf("Subject: %s", mime.QEncoding.Encode("utf-8", m.Subject)),
		"MIME-Version: 1.0",
		`Content-Type: text/html; charset="utf-8"`,
	}
	return strings.Join(headers, "\r\n") + "\r\n\r\n" + m.Body
}
