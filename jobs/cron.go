package jobs

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// CacheInvalidator drops stale cached statuses in bulk
type CacheInvalidator interface {
	InvalidateAll(ctx context.Context) int
}

var cacheInvalidator CacheInvalidator

// SetCacheInvalidator sets the implementation used by the nightly job
func SetCacheInvalidator(invalidator CacheInvalidator) {
	cacheInvalidator = invalidator
}

// InitCronJobs registers the scheduled jobs and starts the scheduler
func InitCronJobs(c *cron.Cron) error {
	// Nightly at 02:00: drop every cached employee status so the first
	// request of the day recomputes from the record store.
	_, err := c.AddFunc("0 2 * * *", func() {
		if cacheInvalidator == nil {
			log.Printf("cache invalidator is not configured, skipping run")
			return
		}
		start := time.Now()
		deleted := cacheInvalidator.InvalidateAll(context.Background())
		log.Printf("nightly cache sweep removed %d entries in %v", deleted, time.Since(start))
	})
	if err != nil {
		return err
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}
