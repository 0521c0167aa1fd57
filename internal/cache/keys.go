package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	ProfileKeyPrefix         = "profile:%d"
	ProducerCatalogKeyPrefix = "producer:%d:catalog"
	WeekCatalogKeyPrefix     = "catalog:%s:%s"
)

const (
	ProfileTTL         = 5 * time.Minute
	ProducerCatalogTTL = 2 * time.Minute
	WeekCatalogTTL     = time.Minute
)

func ProfileKey(userID uint) string {
	return fmt.Sprintf(ProfileKeyPrefix, userID)
}

func ProducerCatalogKey(producerID uint) string {
	return fmt.Sprintf(ProducerCatalogKeyPrefix, producerID)
}

// WeekCatalogKey keys a weekly query result by window start and filter mode.
func WeekCatalogKey(weekStart string, filter string) string {
	return fmt.Sprintf(WeekCatalogKeyPrefix, weekStart, filter)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateProfile(ctx context.Context, userID uint) {
	Invalidate(ctx, ProfileKey(userID))
}

func InvalidateProducerCatalog(ctx context.Context, producerID uint) {
	Invalidate(ctx, ProducerCatalogKey(producerID))
}

// InvalidateWeekCatalog drops all cached weekly windows. Product writes can
// move availability across arbitrary weeks, so a scan-and-delete is the only
// safe invalidation.
func InvalidateWeekCatalog(ctx context.Context) {
	if client == nil {
		return
	}
	iter := client.Scan(ctx, 0, "catalog:*", 0).Iterator()
	for iter.Next(ctx) {
		client.Del(ctx, iter.Val())
	}
}
