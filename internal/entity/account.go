package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

const (
	AccountStatusActive  = "active"
	AccountStatusBlocked = "blocked"
)

// Entidade: SendingAccount
// Conta de envio de um tenant. Status/blocked_until/last_used_at só mudam via
// QuotaManager; os contadores SentToday/SentThisHour são derivados do send log
// a cada consulta, nunca gravados na conta.
type SendingAccount struct {
	ID           string     `json:"id"`
	TenantID     string     `json:"tenant_id"`
	Username     string     `json:"username"`
	Status       string     `json:"status"` // active | blocked
	DailyLimit   int        `json:"daily_limit"`
	HourlyLimit  int        `json:"hourly_limit"`
	LastUsedAt   *time.Time `json:"last_used_at,omitempty"`
	BlockedUntil *time.Time `json:"blocked_until,omitempty"`
	Notes        string     `json:"notes,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Derivados (recontados do send log, não persistidos aqui)
	SentToday    int `json:"sent_today"`
	SentThisHour int `json:"sent_this_hour"`
}

// Factory
func NewSendingAccount(tenantID, username string, dailyLimit, hourlyLimit int) (*SendingAccount, error) {
	if dailyLimit <= 0 {
		dailyLimit = 50
	}
	if hourlyLimit <= 0 {
		hourlyLimit = 10
	}

	account := &SendingAccount{
		ID:          uuid.New().String(),
		TenantID:    tenantID,
		Username:    username,
		Status:      AccountStatusActive,
		DailyLimit:  dailyLimit,
		HourlyLimit: hourlyLimit,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := account.Validate(); err != nil {
		return nil, err
	}

	return account, nil
}

func (a *SendingAccount) Validate() error {
	if a.TenantID == "" {
		return errors.New("tenant_id is required")
	}
	if a.Username == "" {
		return errors.New("username is required")
	}
	if a.HourlyLimit > a.DailyLimit {
		return errors.New("hourly_limit must not exceed daily_limit")
	}
	return nil
}

// AvailableAt é o "status efetivo": o status gravado continua blocked depois
// que o cooldown expira, mas a conta volta a contar como disponível. A troca
// para active só acontece num Unblock explícito.
func (a *SendingAccount) AvailableAt(now time.Time) bool {
	if a.Status != AccountStatusActive && !a.cooldownExpired(now) {
		return false
	}
	if a.SentToday >= a.DailyLimit {
		return false
	}
	if a.SentThisHour >= a.HourlyLimit {
		return false
	}
	return true
}

func (a *SendingAccount) cooldownExpired(now time.Time) bool {
	return a.Status == AccountStatusBlocked && a.BlockedUntil != nil && !a.BlockedUntil.After(now)
}

func (a *SendingAccount) RemainingToday() int {
	if r := a.DailyLimit - a.SentToday; r > 0 {
		return r
	}
	return 0
}

func (a *SendingAccount) RemainingThisHour() int {
	if r := a.HourlyLimit - a.SentThisHour; r > 0 {
		return r
	}
	return 0
}

type SendingAccountRepositoryInterface interface {
	Create(ctx context.Context, account *SendingAccount) error
	FindByID(ctx context.Context, id string) (*SendingAccount, error)
	FindByTenant(ctx context.Context, tenantID string) ([]*SendingAccount, error)
	UpdateLastUsed(ctx context.Context, id string, usedAt time.Time) error
	UpdateBlock(ctx context.Context, id, status string, blockedUntil *time.Time, notes string) error
	Delete(ctx context.Context, id string) error
}
