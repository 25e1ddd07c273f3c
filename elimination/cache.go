package elimination

import (
	"context"
	"sync"

	"github.com/rotisserie/eris"
	"golang.org/x/sync/singleflight"
)

// DecideFunc computes the Result for one team.
type DecideFunc func(ctx context.Context, team string) (Result, error)

// Cache memoizes one Result per team for the lifetime of a repository.
//
// Each team is computed at most once: concurrent misses for the same team
// share a single in-flight computation, and later callers read the stored
// entry. Failed computations are not stored, so a cancelled call leaves the
// team NotComputed. A flight runs under the context of the caller that
// started it; when that context is cancelled, joined callers whose own
// context is still live start a new flight instead of failing.
type Cache struct {
	decide  DecideFunc
	mu      sync.RWMutex
	results map[string]Result
	flights singleflight.Group
}

// NewCache returns an empty Cache that fills misses with decide.
func NewCache(decide DecideFunc) *Cache {
	return &Cache{
		decide:  decide,
		results: make(map[string]Result),
	}
}

// Get returns the cached Result for team, computing it on first use.
// The returned certificate is a copy the caller may keep.
func (c *Cache) Get(ctx context.Context, team string) (Result, error) {
	if res, ok := c.lookup(team); ok {
		return res.clone(), nil
	}

	for {
		v, err, shared := c.flights.Do(team, func() (interface{}, error) {
			// a flight that finished between lookup and Do already stored the entry
			if res, ok := c.lookup(team); ok {
				return res, nil
			}
			res, err := c.decide(ctx, team)
			if err != nil {
				return nil, err
			}
			c.mu.Lock()
			c.results[team] = res
			c.mu.Unlock()

			return res, nil
		})
		if err != nil {
			if shared && isContextErr(err) && ctx.Err() == nil {
				continue
			}
			return Result{}, err
		}

		return v.(Result).clone(), nil
	}
}

func isContextErr(err error) bool {
	return eris.Is(err, context.Canceled) || eris.Is(err, context.DeadlineExceeded)
}

// Peek returns the stored Result without computing; absent teams report NotComputed.
func (c *Cache) Peek(team string) Result {
	res, _ := c.lookup(team)
	return res.clone()
}

// Len returns the number of stored results.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.results)
}

func (c *Cache) lookup(team string) (Result, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	res, ok := c.results[team]

	return res, ok
}
