package middleware

import (
	"encoding/json"
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/notedrop/notedrop-go/internal/model"
)

const clientIdleExpiry = 10 * time.Minute

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// clientTable tracks one token bucket per remote IP. Entries idle longer
// than clientIdleExpiry are dropped by a background sweep.
type clientTable struct {
	mu      sync.Mutex
	clients map[string]*client
	rps     rate.Limit
	burst   int
}

func newClientTable(rps float64, burst int) *clientTable {
	t := &clientTable{
		clients: make(map[string]*client),
		rps:     rate.Limit(rps),
		burst:   burst,
	}
	go t.sweep()
	return t
}

func (t *clientTable) allow(ip string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	c, ok := t.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(t.rps, t.burst)}
		t.clients[ip] = c
	}
	c.lastSeen = time.Now()
	return c.limiter.Allow()
}

func (t *clientTable) sweep() {
	ticker := time.NewTicker(clientIdleExpiry)
	for range ticker.C {
		t.mu.Lock()
		for ip, c := range t.clients {
			if time.Since(c.lastSeen) > clientIdleExpiry {
				delete(t.clients, ip)
			}
		}
		t.mu.Unlock()
	}
}

// RateLimit returns middleware that limits requests per remote IP. It
// guards the credential endpoints against brute forcing; rps is the
// sustained allowance and burst the short-term one.
func RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	table := newClientTable(rps, burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				ip = r.RemoteAddr
			}

			if !table.allow(ip) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				json.NewEncoder(w).Encode(model.MessageResponse{Message: "Too many requests", Success: false})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
