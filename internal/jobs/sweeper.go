// Package jobs runs background maintenance on a gocron scheduler.
package jobs

import (
	"context"
	"fmt"
	"time"

	"hotelos/config"
	"hotelos/infras/otel"
	reservationService "hotelos/internal/domains/reservation/service"
	"hotelos/shared/constant"
	"hotelos/shared/timezone"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

type Scheduler interface {
	Start() error
	Stop() error
	Sweep(ctx context.Context)
}

type sweeper struct {
	reservation reservationService.Reservation
	cfg         *config.Config
	otel        otel.Otel
	scheduler   gocron.Scheduler
}

// NewSweeper expires overdue pending reservations every APP_SWEEPER_INTERVAL_SECONDS.
// The read paths sweep anyway; this only keeps quiet systems tidy.
func NewSweeper(reservation reservationService.Reservation, cfg *config.Config, otel otel.Otel) Scheduler {
	return &sweeper{
		reservation: reservation,
		cfg:         cfg,
		otel:        otel,
	}
}

func (s *sweeper) Start() error {
	if !s.cfg.App.Sweeper.Enable {
		log.Info().Msg("reservation sweeper disabled")

		return nil
	}

	scheduler, err := gocron.NewScheduler(gocron.WithLocation(timezone.GetLocation()))
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}

	interval := time.Duration(max(1, s.cfg.App.Sweeper.IntervalSeconds)) * time.Second

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.Sweep, context.Background()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule reservation sweep: %w", err)
	}

	scheduler.Start()
	s.scheduler = scheduler

	log.Info().Dur("interval", interval).Msg("reservation sweeper started")

	return nil
}

func (s *sweeper) Stop() error {
	if s.scheduler == nil {
		return nil
	}

	if err := s.scheduler.Shutdown(); err != nil {
		return fmt.Errorf("failed to stop scheduler: %w", err)
	}

	return nil
}

// Sweep runs one expiration pass as of today.
func (s *sweeper) Sweep(ctx context.Context) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelJobScopeName, constant.OtelJobScopeName+".Sweep")
	defer scope.End()

	expired, err := s.reservation.ExpireOverdue(ctx, timezone.Today())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("scheduled reservation sweep failed")

		return
	}

	if expired > 0 {
		log.Info().Int("expired", expired).Msg("scheduled reservation sweep expired reservations")
	}
}
