package worker

import (
	"context"
	"log"
	"time"

	"github.com/mottivme/socialfy/internal/infra/http/middleware"
)


// LimiterPruneWorker varre o rate limiter periodicamente e descarta clientes
// sem requisição viva na janela, senão o mapa de clientes só cresce.
type LimiterPruneWorker struct {
	limiter      *middleware.RateLimiter
	tickInterval time.Duration
}


func NewLimiterPruneWorker(limiter *middleware.RateLimiter) *LimiterPruneWorker {
	return &LimiterPruneWorker{
		limiter:      limiter,
		tickInterval: 5 * time.Minute,
	}
}


func (w *LimiterPruneWorker) Start(ctx context.Context) {
	log.Println("🕒 Limiter Prune Worker iniciado")

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Limiter Prune Worker encerrado")
			return
		case <-ticker.C:
			if removed := w.limiter.Prune(); removed > 0 {
				log.Printf("🧹 Limiter: %d clientes ociosos removidos", removed)
			}
		}
	}
}
