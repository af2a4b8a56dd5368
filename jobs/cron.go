package jobs

import (
	"context"
	"time"

	"hotelbooking/services/logger"

	"github.com/robfig/cron/v3"
)

const (
	completionSchedule = "@hourly"
	completionTimeout  = 5 * time.Minute
)

// BookingCompleter moves finished stays to COMPLETED.
type BookingCompleter interface {
	CompleteFinished(ctx context.Context) (int64, error)
}

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, completer BookingCompleter, log logger.Logger) error {
	if _, err := c.AddFunc(completionSchedule, CompletionJob(completer, log)); err != nil {
		return err
	}

	c.Start()
	log.Info("cron jobs initialized", "schedule", completionSchedule)
	return nil
}

func CompletionJob(completer BookingCompleter, log logger.Logger) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), completionTimeout)
		defer cancel()

		n, err := completer.CompleteFinished(ctx)
		if err != nil {
			log.Error("booking completion job failed", "error", err)
			return
		}
		log.Debug("booking completion job finished", "completed", n)
	}
}
