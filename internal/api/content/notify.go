package content

import (
	"time"

	"mosque-app/cache"
	"mosque-app/pkg/logger"
)

const (
	slidesCacheKey  = "content:slides:public"
	galleryCacheKey = "content:gallery:public"

	cacheTTL = 5 * time.Minute
)

// contentChanged drops the cached public lists and tells subscribed
// clients which collection moved. Clients re-pull; there is no stronger
// guarantee than eventually reflecting the latest write.
func contentChanged(collection string) {
	if err := cache.Delete(slidesCacheKey, galleryCacheKey); err != nil {
		logger.Warn("Failed to invalidate content cache", map[string]interface{}{
			"error": err.Error(),
		})
	}
	if err := cache.Publish(cache.ContentChannel, collection); err != nil {
		logger.Warn("Failed to publish content change", map[string]interface{}{
			"error": err.Error(),
		})
	}
}
