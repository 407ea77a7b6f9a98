package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/namefreezers/weather-dashboard/internal/config"
	"github.com/namefreezers/weather-dashboard/internal/digest"
	"github.com/namefreezers/weather-dashboard/internal/email"
	"github.com/namefreezers/weather-dashboard/internal/telemetry"
	"github.com/namefreezers/weather-dashboard/internal/weather"
)

// runTimeout bounds a single digest run, fetches and SMTP session included.
const runTimeout = 2 * time.Minute

func main() {
	once := flag.Bool("once", false, "send the digests once and exit")
	flag.Parse()

	// 1) Load config
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}
	smtpCfg, err := config.LoadSMTP()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	// 2) Init logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize logger: %v", err)
	}
	defer logger.Sync()

	digestCfg, err := digest.LoadConfig(cfg.DigestConfigPath)
	if err != nil {
		logger.Fatal("failed to load digest config", zap.String("path", cfg.DigestConfigPath), zap.Error(err))
	}

	shutdownTracing, err := telemetry.Setup(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Warn("tracer shutdown failed", zap.Error(err))
		}
	}()

	// 3) Wire up email sender, weather fetcher, digest service
	smtpSender, err := email.NewSMTPSender(smtpCfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize SMTP sender", zap.Error(err))
	}

	weatherFetcher, err := weather.BuildFetcher(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize weather fetcher", zap.Error(err))
	}

	svc := digest.NewService(digestCfg, weatherFetcher, smtpSender, logger)

	run := func() {
		ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
		defer cancel()
		if err := svc.Run(ctx); err != nil {
			logger.Error("digest run failed", zap.Error(err))
		}
	}

	if *once {
		run()
		return
	}

	// 4) Build cron (standard 5-field, minute resolution)
	c := cron.New()
	if _, err := c.AddFunc(digestCfg.Schedule, run); err != nil {
		logger.Fatal("unable to schedule cron job", zap.String("cronSpec", digestCfg.Schedule), zap.Error(err))
	}

	logger.Info("starting scheduler",
		zap.String("cronSpec", digestCfg.Schedule),
		zap.Int("digests", len(digestCfg.Digests)))
	c.Start()

	// block until signalled, then let a running job finish
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	sig := <-stop
	logger.Info("stopping scheduler", zap.String("signal", sig.String()))
	<-c.Stop().Done()
}
