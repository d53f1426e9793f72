package usecase

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/mottivme/socialfy/internal/entity"
)

// QuotaManager governa quantos envios cada conta pode fazer por hora/dia e
// qual conta usar em seguida. A seção crítica "recontar → filtrar → escolher →
// reservar" é serializada por tenant: dois selects concorrentes do mesmo
// tenant não podem enxergar a mesma última vaga livre. A reserva segura a vaga
// até o envio entrar no send log (RecordUsage) ou o despacho falhar
// (ReleaseReservation); sem ela, o intervalo entre a seleção e o LogSend do
// worker deixaria a recontagem cega para envios em voo.
type QuotaManager struct {
	AccountRepo  entity.SendingAccountRepositoryInterface
	SendLog      SendLogRepositoryInterface
	Alerts       AlertService
	UsageTimeout time.Duration

	mu          sync.Mutex
	tenantLocks map[string]*sync.Mutex
	inflight    map[string]int // reservas por conta, guardado por mu
}

func NewQuotaManager(
	accountRepo entity.SendingAccountRepositoryInterface,
	sendLog SendLogRepositoryInterface,
	alerts AlertService,
) *QuotaManager {
	return &QuotaManager{
		AccountRepo:  accountRepo,
		SendLog:      sendLog,
		Alerts:       alerts,
		UsageTimeout: 10 * time.Second,
		tenantLocks:  make(map[string]*sync.Mutex),
		inflight:     make(map[string]int),
	}
}

func (m *QuotaManager) tenantLock(tenantID string) *sync.Mutex {
	m.mu.Lock()
	defer m.mu.Unlock()

	lock, ok := m.tenantLocks[tenantID]
	if !ok {
		lock = &sync.Mutex{}
		m.tenantLocks[tenantID] = lock
	}
	return lock
}

// GetAvailableAccounts reconta o uso de cada conta do tenant a partir do send
// log e filtra pelo predicado de disponibilidade. Erro na recontagem derruba a
// chamada inteira (fail closed).
func (m *QuotaManager) GetAvailableAccounts(ctx context.Context, tenantID string) ([]*entity.SendingAccount, error) {
	accounts, err := m.loadWithUsage(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var available []*entity.SendingAccount
	for _, a := range accounts {
		if a.AvailableAt(now) {
			available = append(available, a)
		}
	}
	return available, nil
}

// SelectAccount escolhe a melhor conta disponível do tenant e reserva a vaga:
// 1. Maior quota diária restante
// 2. Empate: menos usada recentemente; conta nunca usada ganha
// A reserva entra na recontagem das próximas seleções até virar linha do send
// log (RecordUsage) ou ser devolvida (ReleaseReservation).
func (m *QuotaManager) SelectAccount(ctx context.Context, tenantID string) (*entity.SendingAccount, error) {
	lock := m.tenantLock(tenantID)
	lock.Lock()
	defer lock.Unlock()

	available, err := m.GetAvailableAccounts(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	if len(available) == 0 {
		log.Printf("⚠️ Nenhuma conta disponível para o tenant %s", tenantID)
		return nil, ErrNoAccountAvailable
	}

	sort.SliceStable(available, func(i, j int) bool {
		ri, rj := available[i].RemainingToday(), available[j].RemainingToday()
		if ri != rj {
			return ri > rj
		}
		return lastUsedBefore(available[i].LastUsedAt, available[j].LastUsedAt)
	})

	best := available[0]
	m.reserve(best.ID)

	log.Printf("✅ Conta @%s selecionada para o tenant %s (restam %d hoje, %d nesta hora)",
		best.Username, tenantID, best.RemainingToday(), best.RemainingThisHour())

	return best, nil
}

func (m *QuotaManager) reserve(accountID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inflight[accountID]++
}

// ReleaseReservation devolve a vaga reservada no SelectAccount. Chamar quando
// o despacho não vira envio: publicação falhou, sender recusou, conta
// bloqueada no meio do caminho.
func (m *QuotaManager) ReleaseReservation(accountID string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.inflight[accountID] <= 1 {
		delete(m.inflight, accountID)
		return
	}
	m.inflight[accountID]--
}

func (m *QuotaManager) inflightFor(accountID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inflight[accountID]
}

// lastUsedBefore: nil (nunca usada) vem antes de qualquer timestamp
func lastUsedBefore(a, b *time.Time) bool {
	if a == nil {
		return true
	}
	if b == nil {
		return false
	}
	return a.Before(*b)
}

// RecordUsage marca o momento do envio confirmado e devolve a reserva, que a
// partir daqui o próprio send log cobre. Chamar só depois que o colaborador de
// envio reportar sucesso e o envio estiver gravado no send log.
func (m *QuotaManager) RecordUsage(ctx context.Context, accountID string) error {
	m.ReleaseReservation(accountID)
	return m.AccountRepo.UpdateLastUsed(ctx, accountID, time.Now())
}

// MarkBlocked põe a conta em cooldown. O status gravado vira blocked e SÓ
// volta a active num Unblock explícito; a expiração do blocked_until libera a
// conta apenas no filtro de disponibilidade.
func (m *QuotaManager) MarkBlocked(ctx context.Context, accountID string, durationHours int, reason string) error {
	if durationHours <= 0 {
		return &DomainError{Code: "INVALID_BLOCK_DURATION", Message: "block duration must be positive"}
	}

	account, err := m.AccountRepo.FindByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}

	blockedUntil := time.Now().Add(time.Duration(durationHours) * time.Hour)
	notes := ""
	if reason != "" {
		notes = "Blocked: " + reason
	}

	if err := m.AccountRepo.UpdateBlock(ctx, accountID, entity.AccountStatusBlocked, &blockedUntil, notes); err != nil {
		return err
	}

	log.Printf("🚫 Conta @%s bloqueada até %s (%s)", account.Username, blockedUntil.Format(time.RFC3339), reason)

	if m.Alerts != nil {
		if err := m.Alerts.SendAccountBlockedAlert(account.TenantID, account.Username, reason, blockedUntil); err != nil {
			// Alerta é cortesia, não pode derrubar o bloqueio
			log.Printf("⚠️ Falha ao enviar alerta de bloqueio: %v", err)
		}
	}

	return nil
}

func (m *QuotaManager) Unblock(ctx context.Context, accountID string) error {
	account, err := m.AccountRepo.FindByID(ctx, accountID)
	if err != nil {
		return err
	}
	if account == nil {
		return ErrAccountNotFound
	}

	if err := m.AccountRepo.UpdateBlock(ctx, accountID, entity.AccountStatusActive, nil, ""); err != nil {
		return err
	}

	log.Printf("🔓 Conta @%s desbloqueada", account.Username)
	return nil
}

// TenantStats agrega capacidade/uso de todas as contas do tenant
func (m *QuotaManager) TenantStats(ctx context.Context, tenantID string) (*TenantStats, error) {
	accounts, err := m.loadWithUsage(ctx, tenantID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	stats := &TenantStats{TenantID: tenantID}

	for _, a := range accounts {
		available := a.AvailableAt(now)

		stats.TotalAccounts++
		if a.Status == entity.AccountStatusActive {
			stats.ActiveAccounts++
			stats.TotalDailyCapacity += a.DailyLimit
		}
		if available {
			stats.AvailableAccounts++
			stats.TotalRemainingToday += a.RemainingToday()
		}
		stats.TotalSentToday += a.SentToday

		stats.Accounts = append(stats.Accounts, AccountStats{
			Username:          a.Username,
			Status:            a.Status,
			IsAvailable:       available,
			RemainingToday:    a.RemainingToday(),
			RemainingThisHour: a.RemainingThisHour(),
		})
	}

	return stats, nil
}

// loadWithUsage carrega as contas do tenant e reconta sent_today e
// sent_this_hour contra o send log, com timeout próprio por consulta. As
// reservas em voo entram nos dois contadores: despacho selecionado mas ainda
// não logado continua ocupando a vaga.
func (m *QuotaManager) loadWithUsage(ctx context.Context, tenantID string) ([]*entity.SendingAccount, error) {
	accounts, err := m.AccountRepo.FindByTenant(ctx, tenantID)
	if err != nil {
		log.Printf("❌ Erro ao carregar contas do tenant %s: %v", tenantID, err)
		return nil, ErrQuotaUnavailable
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	oneHourAgo := now.Add(-time.Hour)

	for _, a := range accounts {
		usageCtx, cancel := context.WithTimeout(ctx, m.UsageTimeout)

		today, err := m.SendLog.CountSends(usageCtx, a.ID, startOfDay)
		if err != nil {
			cancel()
			log.Printf("❌ Erro ao recontar envios de @%s: %v", a.Username, err)
			return nil, ErrQuotaUnavailable
		}

		lastHour, err := m.SendLog.CountSends(usageCtx, a.ID, oneHourAgo)
		cancel()
		if err != nil {
			log.Printf("❌ Erro ao recontar envios de @%s: %v", a.Username, err)
			return nil, ErrQuotaUnavailable
		}

		pending := m.inflightFor(a.ID)
		a.SentToday = today + pending
		a.SentThisHour = lastHour + pending
	}

	return accounts, nil
}
