package schema

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/quenchsim/quench/internal/cachemanager"
	"github.com/quenchsim/quench/internal/log"
)

// Loader parses schema files, caching the parsed result keyed by path and
// modification time so the watch loop does not re-read an unchanged file.
type Loader struct {
	cache cachemanager.CacheManager[*Schema]
	ttl   time.Duration
}

// NewLoader creates a caching schema loader.
func NewLoader() *Loader {
	return &Loader{
		cache: cachemanager.NewInMemoryCacheManager[*Schema]("schema",
			cachemanager.DefaultExpiration, cachemanager.DefaultCleanupInterval),
		ttl: cachemanager.DefaultExpiration,
	}
}

// Load returns the parsed schema for path, from cache when the file is
// unchanged since it was last parsed.
func (l *Loader) Load(ctx context.Context, path string) (*Schema, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading schema: %w", err)
	}
	key := fmt.Sprintf("%s@%d", path, info.ModTime().UnixNano())

	if s, ok := l.cache.Get(ctx, key); ok {
		return s, nil
	}

	s, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	l.cache.Set(ctx, key, s, l.ttl)
	log.Debug(log.CatSchema, "schema parsed", "path", path, "keywords", len(s.Keywords))
	return s, nil
}
