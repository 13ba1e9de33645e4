package cron

import (
	"context"
	"time"

	"unifix/config"
	"unifix/models"

	"cloud.google.com/go/firestore"
	robfig "github.com/robfig/cron/v3"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
)

// StartDebugQueueSweeper periodically deletes debug push queue documents
// that a failed invocation left behind. Handled documents are deleted inline
// by the engine; the sweep only catches orphans.
func StartDebugQueueSweeper(client *firestore.Client, logger *zap.Logger) *robfig.Cron {
	c := robfig.New()

	schedule := config.AppConfig.DebugSweepSchedule
	maxAge := time.Duration(config.AppConfig.DebugSweepMaxAgeHours) * time.Hour

	_, err := c.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		deleted, err := sweepDebugQueue(ctx, client, maxAge)
		if err != nil {
			logger.Warn("debug queue sweep failed", zap.Error(err))
			return
		}
		if deleted > 0 {
			logger.Info("debug queue swept", zap.Int("deleted", deleted))
		}
	})
	if err != nil {
		logger.Error("invalid sweep schedule, sweeper disabled",
			zap.String("schedule", schedule), zap.Error(err))
		return c
	}

	c.Start()
	return c
}

func sweepDebugQueue(ctx context.Context, client *firestore.Client, maxAge time.Duration) (int, error) {
	cutoff := time.Now().Add(-maxAge)

	iter := client.Collection(models.CollectionDebugPushQueue).Documents(ctx)
	defer iter.Stop()

	deleted := 0
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return deleted, err
		}
		if snap.CreateTime.After(cutoff) {
			continue
		}
		if _, err := snap.Ref.Delete(ctx); err != nil {
			return deleted, err
		}
		deleted++
	}
	return deleted, nil
}
