// Package cache provides the generic LRU cache backing content loading.
//
// Cache spreads entries over independently locked shards selected by key
// hash, so the concurrent LoadContent phase — every system loading at
// once — rarely contends on a lock. Each shard keeps its own recency
// order and evicts its least recently used entry when full.
//
//	images := cache.New[string, image.Image](64)
//	images.Set("hud/crosshair.png", img)
//	img, ok := images.Get("hud/crosshair.png")
//
// GetOrCreate computes a missing value under the shard lock, so several
// loaders asking for the same asset decode it exactly once:
//
//	img := images.GetOrCreate(name, func() image.Image { return decode(name) })
//
// Stats exposes hit, miss, and eviction counters for sizing the cache.
//
// A Cache is safe for concurrent use and must not be copied after
// creation.
package cache
