package services

import (
	"context"
	"log"
	"time"
)

// StartAutoCheckout runs the closer once a day at the given local time
// ("15:04" format). Deployments that trigger checkout via the /cron endpoint
// leave this disabled.
func StartAutoCheckout(cl *Closer, at string, loc *time.Location) {
	go func() {
		log.Printf("auto-checkout scheduler started (daily at %s %s)", at, loc)
		ticker := time.NewTicker(1 * time.Minute)
		defer ticker.Stop()

		var lastRun string // YYYY-MM-DD of the last trigger, one run per day
		for range ticker.C {
			now := time.Now().In(loc)
			if now.Format("15:04") != at {
				continue
			}
			today := now.Format("2006-01-02")
			if today == lastRun {
				continue
			}
			lastRun = today

			ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
			report, err := cl.CloseOpenSessions(ctx)
			cancel()
			if err != nil {
				log.Printf("auto-checkout failed: %v", err)
				continue
			}
			log.Printf("auto-checkout: %d attempted, %d succeeded", report.Attempted, report.Succeeded)
		}
	}()
}
