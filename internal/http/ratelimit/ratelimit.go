package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Registry hands out one token-bucket limiter per client key and forgets
// clients that go quiet.
type Registry struct {
	mu      sync.Mutex
	clients map[string]*client
	rps     rate.Limit
	burst   int
}

func NewRegistry(rps rate.Limit, burst int) *Registry {
	return &Registry{
		clients: make(map[string]*client),
		rps:     rps,
		burst:   burst,
	}
}

// Allow reports whether the client identified by key may proceed.
func (reg *Registry) Allow(key string) bool {
	reg.mu.Lock()
	defer reg.mu.Unlock()

	c, ok := reg.clients[key]
	if !ok {
		c = &client{limiter: rate.NewLimiter(reg.rps, reg.burst)}
		reg.clients[key] = c
	}
	c.lastSeen = time.Now()
	return c.limiter.Allow()
}

// StartCleanupLoop evicts clients idle for more than five minutes.
func (reg *Registry) StartCleanupLoop() {
	for {
		time.Sleep(time.Minute)
		reg.mu.Lock()
		for key, c := range reg.clients {
			if time.Since(c.lastSeen) > 5*time.Minute {
				delete(reg.clients, key)
			}
		}
		reg.mu.Unlock()
	}
}
