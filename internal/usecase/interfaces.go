package usecase

import (
	"context"
	"time"

	"github.com/mottivme/socialfy/internal/infra/queue"
)

// SendLogRepositoryInterface é a fonte da verdade de uso das contas: os
// contadores sent_today/sent_this_hour saem daqui, nunca da linha da conta.
type SendLogRepositoryInterface interface {
	CountSends(ctx context.Context, accountID string, since time.Time) (int, error)
	LogSend(ctx context.Context, accountID, tenantID, targetUsername, message string) error
}

type LeadRepositoryInterface interface {
	Upsert(ctx context.Context, lead *ScoredLead) error
}

type QueueProducerInterface interface {
	PublishDispatch(ctx context.Context, payload queue.DispatchPayload) error
}

// AlertService avisa o operador do tenant quando uma conta é bloqueada
type AlertService interface {
	SendAccountBlockedAlert(tenantID, accountUsername, reason string, blockedUntil time.Time) error
}
