// Package jobs berisi pekerjaan terjadwal di background
package jobs

import (
	"context"
	"time"

	"smartcare-admin/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Refresher adalah sesuatu yang bisa menghitung ulang snapshot
type Refresher interface {
	Refresh(ctx context.Context) error
}

// RefresherFunc mengubah fungsi biasa menjadi Refresher
type RefresherFunc func(ctx context.Context) error

func (f RefresherFunc) Refresh(ctx context.Context) error { return f(ctx) }

// Scheduler membungkus cron dengan logger aplikasi
type Scheduler struct {
	cron *cron.Cron
}

func NewScheduler() *Scheduler {
	cronLogger := cron.VerbosePrintfLogger(logger.Log)
	return &Scheduler{
		cron: cron.New(cron.WithChain(
			cron.Recover(cronLogger),
			cron.SkipIfStillRunning(cronLogger),
		)),
	}
}

// Register menjadwalkan refresher; run berikutnya dilewati kalau run sebelumnya belum selesai
func (s *Scheduler) Register(name, spec string, timeout time.Duration, r Refresher) error {
	_, err := s.cron.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		start := time.Now()
		if err := r.Refresh(ctx); err != nil {
			logger.Op("jobs."+name).WithError(err).Error("Job gagal")
			return
		}
		logger.Op("jobs."+name).WithField("duration", time.Since(start).String()).Debug("Job selesai")
	})
	return err
}

func (s *Scheduler) Start() { s.cron.Start() }

// Stop menghentikan jadwal & menunggu job yang sedang jalan
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}
