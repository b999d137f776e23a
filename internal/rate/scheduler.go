package rate

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Scheduler runs the generation pipeline once a day at a configured local
// time, so the public boards refresh without an admin touching anything.
type Scheduler struct {
	gen *Generator
	at  string
	// -----
	sched gocron.Scheduler
}

func NewScheduler(gen *Generator, at string) *Scheduler {
	return &Scheduler{gen: gen, at: at}
}

func (s *Scheduler) Start(ctx context.Context) error {
	atTime, err := time.Parse("15:04", s.at)
	if err != nil {
		return fmt.Errorf("parse schedule time %q: %w", s.at, err)
	}

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}
	s.sched = scheduler

	job := func(jobCtx context.Context) {
		report, genErr := s.gen.Generate(jobCtx, time.Now(), uuid.NullUUID{})
		if genErr != nil {
			logrus.Errorf("Scheduled generation failed: %v", genErr)
			return
		}
		if report.PartialFailure() {
			logrus.Warnf("Scheduled generation partially failed: rates=%q gold=%q", report.Rates.Error, report.Gold.Error)
		}
	}

	_, err = scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(
			gocron.NewAtTime(uint(atTime.Hour()), uint(atTime.Minute()), 0),
		)),
		gocron.NewTask(job),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)

	if err != nil {
		return err
	}

	scheduler.Start()

	// Stop scheduler when the provided context is canceled.
	go func() {
		<-ctx.Done()
		if sdErr := s.Shutdown(); sdErr != nil {
			logrus.Errorf("Scheduler shutdown error: %v", sdErr)
		}
	}()
	return nil
}

func (s *Scheduler) Shutdown() error {
	if s.sched == nil {
		return nil
	}
	err := s.sched.Shutdown()
	s.sched = nil
	return err
}
