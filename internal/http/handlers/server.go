package handlers

import (
	"github.com/waffyhq/waffy-dashboard/internal/cache"
	"github.com/waffyhq/waffy-dashboard/internal/source"
)

var (
	recordSource  source.Source
	snapshotCache *cache.SnapshotCache
)

func SetSource(s source.Source) {
	recordSource = s
}

// SetSnapshotCache installs the optional Redis snapshot cache. A nil cache
// means every request fetches fresh collections.
func SetSnapshotCache(c *cache.SnapshotCache) {
	snapshotCache = c
}
