package server

import (
	"encoding/json"
	"errors"

	"github.com/coocood/freecache"

	"github.com/katalvlaran/pathviz/config"
)

// resultCache memoizes POST search responses keyed by the normalized
// scenario. Searches are deterministic, so a hit is always exact.
type resultCache struct {
	store *freecache.Cache
	ttl   int // seconds
}

// newResultCache returns nil when size is negative; a nil cache misses.
func newResultCache(size, ttlSeconds int) *resultCache {
	if size < 0 {
		return nil
	}

	return &resultCache{store: freecache.NewCache(size), ttl: max(ttlSeconds, 1)}
}

// key is the scenario with defaults applied, so equivalent requests share
// an entry. Name and delay do not affect the result and are dropped.
func cacheKey(sc config.Scenario) ([]byte, error) {
	sc = sc.WithDefaults()
	sc.Name, sc.Delay = "", ""

	return json.Marshal(sc)
}

func (c *resultCache) get(key []byte) (SearchResponse, bool) {
	var res SearchResponse
	if c == nil {
		return res, false
	}
	raw, err := c.store.Get(key)
	if err != nil {
		return res, false
	}
	if err := json.Unmarshal(raw, &res); err != nil {
		c.store.Del(key)
		return res, false
	}

	return res, true
}

// put stores res without its per-request fields. Oversized entries are
// skipped.
func (c *resultCache) put(key []byte, res SearchResponse) error {
	if c == nil {
		return nil
	}
	res.RequestID, res.Name, res.DurationMS = "", "", 0
	raw, err := json.Marshal(res)
	if err != nil {
		return err
	}
	err = c.store.Set(key, raw, c.ttl)
	if errors.Is(err, freecache.ErrLargeKey) || errors.Is(err, freecache.ErrLargeEntry) {
		return nil
	}

	return err
}
