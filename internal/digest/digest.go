package digest

import (
	"context"
	"fmt"
	"html/template"

	"go.uber.org/zap"

	"github.com/namefreezers/weather-dashboard/internal/email"
	"github.com/namefreezers/weather-dashboard/internal/presenter"
	"github.com/namefreezers/weather-dashboard/internal/weather"
)

// Service mails each configured city's current conditions and 3-day forecast.
type Service struct {
	entries []Entry
	fetcher weather.Fetcher
	sender  email.EmailSender
	tmpl    *template.Template
	logger  *zap.Logger
}

// NewService wires up service dependencies.
func NewService(cfg *Config, fetcher weather.Fetcher, sender email.EmailSender, logger *zap.Logger) *Service {
	return &Service{
		entries: cfg.Digests,
		fetcher: fetcher,
		sender:  sender,
		tmpl:    presenter.Templates(),
		logger:  logger,
	}
}

// Run does one fetch per entry and sends every successful digest in one batch.
// A failed fetch or render skips only that entry.
func (s *Service) Run(ctx context.Context) error {
	var messages []email.EmailMessage
	for _, e := range s.entries {
		rec, err := s.fetcher.Fetch(ctx, e.City)
		if err != nil {
			s.logger.Error("digest weather fetch failed",
				zap.String("city", e.City),
				zap.Strings("recipients", e.Recipients),
				zap.Error(err))
			continue
		}

		body, err := presenter.RenderDigest(s.tmpl, rec)
		if err != nil {
			s.logger.Error("digest render failed", zap.String("city", e.City), zap.Error(err))
			continue
		}

		messages = append(messages, email.EmailMessage{
			To:      e.Recipients,
			Subject: fmt.Sprintf("Weather forecast for %s, %s", rec.City, rec.Country),
			Body:    body,
		})
	}

	if len(messages) == 0 {
		s.logger.Warn("no digests to send", zap.Int("configured", len(s.entries)))
		return nil
	}
	if err := s.sender.SendBatch(ctx, messages); err != nil {
		return fmt.Errorf("send digests: %w", err)
	}
	s.logger.Info("sent weather digests", zap.Int("count", len(messages)))
	return nil
}
