// Package cooldown rate-limits card draws per (user, server) pair using a
// fixed window anchored at the first request in the window.
package cooldown

import (
	"context"
	"fmt"
	"time"

	"github.com/hoardcraft/bot/hoardcraft/config"
	"github.com/hoardcraft/bot/hoardcraft/database/repositories"
	lru "github.com/hashicorp/golang-lru"
)

// Result is the outcome of a cooldown check. RetryAfter is advisory and set
// only when the check was denied.
type Result struct {
	Allowed    bool
	RetryAfter time.Duration
}

// Tracker enforces the draw rate limit. The store is the source of truth;
// the LRU cache only short-circuits repeated denials and is never consulted
// to allow a request.
type Tracker struct {
	requests repositories.RequestRepository
	denials  *lru.Cache
	window   time.Duration
	max      int
	now      func() time.Time
}

func NewTracker(requests repositories.RequestRepository) *Tracker {
	cache, _ := lru.New(config.CooldownCacheSize)
	return &Tracker{
		requests: requests,
		denials:  cache,
		window:   config.DrawWindow,
		max:      config.MaxDrawsPerWindow,
		now:      time.Now,
	}
}

func denialKey(userID, serverID string) string {
	return userID + ":" + serverID
}

// CheckAndConsume consumes one draw slot if the user is under the limit.
// The window resets once it has fully elapsed; until then the count may
// grow to the cap and further requests are denied with the time remaining.
func (t *Tracker) CheckAndConsume(ctx context.Context, userID, serverID string) (Result, error) {
	now := t.now()
	key := denialKey(userID, serverID)

	if v, ok := t.denials.Get(key); ok {
		end := v.(time.Time)
		if now.Before(end) {
			return Result{RetryAfter: end.Sub(now)}, nil
		}
		t.denials.Remove(key)
	}

	// Each conditional write applies only if the row still looks like it
	// did when read, so a lost race falls through to a re-read. Two
	// attempts cover every single interleaving.
	for attempt := 0; attempt < 3; attempt++ {
		req, err := t.requests.Get(ctx, userID, serverID)
		if err != nil {
			if repositories.IsNotFound(err) {
				created, err := t.requests.Create(ctx, userID, serverID, now)
				if err != nil {
					return Result{}, err
				}
				if created {
					return Result{Allowed: true}, nil
				}
				continue
			}
			return Result{}, err
		}

		elapsed := now.Sub(req.FirstRequestTime)

		if elapsed >= t.window {
			reset, err := t.requests.ResetWindow(ctx, userID, serverID, req.FirstRequestTime, now)
			if err != nil {
				return Result{}, err
			}
			if reset {
				return Result{Allowed: true}, nil
			}
			continue
		}

		if req.RequestCount < t.max {
			ok, err := t.requests.Increment(ctx, userID, serverID, req.FirstRequestTime, t.max)
			if err != nil {
				return Result{}, err
			}
			if ok {
				return Result{Allowed: true}, nil
			}
			continue
		}

		end := req.FirstRequestTime.Add(t.window)
		t.denials.Add(key, end)
		return Result{RetryAfter: end.Sub(now)}, nil
	}

	return Result{}, fmt.Errorf("cooldown state for %s on %s changed too often, giving up", userID, serverID)
}

// Reset removes the stored window and any cached denial, returning the user
// to the fresh state. Admin override.
func (t *Tracker) Reset(ctx context.Context, userID, serverID string) error {
	if err := t.requests.Delete(ctx, userID, serverID); err != nil {
		return err
	}
	t.denials.Remove(denialKey(userID, serverID))
	return nil
}
