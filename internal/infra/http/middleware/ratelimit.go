package middleware

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// RateLimiter admite requisições por janela deslizante: guarda o timestamp de
// cada requisição por cliente e conta só as que ainda estão dentro da janela.
// Sem reset em blocos fixos, então não tem rajada dupla na virada da janela.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string][]time.Time
	limit   int
	window  time.Duration
}

// RateLimitInfo acompanha cada decisão do Allow
type RateLimitInfo struct {
	Limit        int `json:"limit"`
	Remaining    int `json:"remaining"`
	ResetSeconds int `json:"reset_seconds"`
}

// RateLimiterStats é o agregado read-only do Stats
type RateLimiterStats struct {
	ActiveClients    int `json:"active_clients"`
	RequestsInWindow int `json:"requests_in_window"`
}

func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		clients: make(map[string][]time.Time),
		limit:   limit,
		window:  window,
	}
}

// Allow purga os timestamps vencidos do cliente e decide. Rejeitou: o
// reset_seconds diz quanto falta pro timestamp mais antigo sair da janela.
func (rl *RateLimiter) Allow(clientID string) (bool, RateLimitInfo) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	timestamps := rl.purge(clientID, now)

	if len(timestamps) >= rl.limit {
		reset := rl.window - now.Sub(timestamps[0])
		seconds := int(reset.Seconds())
		if seconds < 1 {
			seconds = 1
		}
		return false, RateLimitInfo{
			Limit:        rl.limit,
			Remaining:    0,
			ResetSeconds: seconds,
		}
	}

	rl.clients[clientID] = append(timestamps, now)

	return true, RateLimitInfo{
		Limit:        rl.limit,
		Remaining:    rl.limit - len(timestamps) - 1,
		ResetSeconds: int(rl.window.Seconds()),
	}
}

// purge mantém só os timestamps dentro de [now-window, now]. Chamar com o
// lock em mãos.
func (rl *RateLimiter) purge(clientID string, now time.Time) []time.Time {
	cutoff := now.Add(-rl.window)
	timestamps := rl.clients[clientID]

	kept := timestamps[:0]
	for _, ts := range timestamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	rl.clients[clientID] = kept
	return kept
}

// Stats não muda estado nenhum: conta clientes e requisições ainda na janela
func (rl *RateLimiter) Stats() RateLimiterStats {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	cutoff := now.Add(-rl.window)

	stats := RateLimiterStats{}
	for _, timestamps := range rl.clients {
		inWindow := 0
		for _, ts := range timestamps {
			if ts.After(cutoff) {
				inWindow++
			}
		}
		if inWindow > 0 {
			stats.ActiveClients++
			stats.RequestsInWindow += inWindow
		}
	}

	return stats
}

// Prune remove clientes sem nenhum timestamp vivo, senão o mapa só cresce.
// Chamado periodicamente pelo LimiterPruneWorker.
func (rl *RateLimiter) Prune() int {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	removed := 0
	for clientID := range rl.clients {
		if len(rl.purge(clientID, now)) == 0 {
			delete(rl.clients, clientID)
			removed++
		}
	}
	return removed
}

// Middleware aplica o limiter por IP do cliente e devolve os headers padrão
// de rate limit
func (rl *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, info := rl.Allow(GetClientIP(r))

		w.Header().Set("X-RateLimit-Limit", strconv.Itoa(info.Limit))
		w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(info.Remaining))

		if !allowed {
			RecordRateLimitRejection()
			w.Header().Set("Retry-After", strconv.Itoa(info.ResetSeconds))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			json.NewEncoder(w).Encode(map[string]any{
				"success":             false,
				"message":             "Too many requests. Please try again later.",
				"retry_after_seconds": info.ResetSeconds,
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func GetClientIP(r *http.Request) string {

	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		return xff
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	return r.RemoteAddr
}
