package harvest

import (
	"context"
	"time"
)

// ModifiedCache stores derived modification instants across requests so
// repeated harvests do not recompute the audit-log union for unchanged
// records. Filter semantics are unaffected: a cached value is exactly what
// the tracker would compute, only fresher than the configured TTL.
//
// Implementations are best-effort. A failing cache degrades to
// recomputation, never to a failed harvest.
type ModifiedCache interface {
	Get(context context.Context, key string) (time.Time, bool)
	Set(context context.Context, key string, value time.Time)
	Flush(context context.Context) error
}

// NopModifiedCache caches nothing. It is the active implementation when
// the cache TTL is configured to zero.
type NopModifiedCache struct{}

func (NopModifiedCache) Get(context.Context, string) (time.Time, bool) { return time.Time{}, false }
func (NopModifiedCache) Set(context.Context, string, time.Time)       {}
func (NopModifiedCache) Flush(context.Context) error                  { return nil }
