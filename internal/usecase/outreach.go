package usecase

import (
	"context"
	"log"

	"github.com/mottivme/socialfy/internal/entity"
	"github.com/mottivme/socialfy/internal/infra/queue"
)

// OutreachUseCase amarra o fluxo de decisão: pontua o lead, compõe a
// mensagem, pede uma conta ao QuotaManager e publica o despacho na fila.
// O envio de verdade acontece no worker, fora daqui.
type OutreachUseCase struct {
	Scorer   *LeadScorer
	Composer *MessageComposer
	Quota    *QuotaManager
	Queue    QueueProducerInterface
	LeadRepo LeadRepositoryInterface
}

func NewOutreachUseCase(
	scorer *LeadScorer,
	composer *MessageComposer,
	quota *QuotaManager,
	producer QueueProducerInterface,
	leadRepo LeadRepositoryInterface,
) *OutreachUseCase {
	return &OutreachUseCase{
		Scorer:   scorer,
		Composer: composer,
		Quota:    quota,
		Queue:    producer,
		LeadRepo: leadRepo,
	}
}

func (uc *OutreachUseCase) Execute(ctx context.Context, input OutreachInput) (*OutreachOutput, error) {
	if errs := ValidateOutreachInput(input); len(errs) > 0 {
		return nil, &DomainError{Code: "INVALID_INPUT", Message: errs[0].Error()}
	}

	mode := input.Mode
	if mode == "" {
		mode = entity.ModeHybrid
	}

	// 1. Pontuar
	score := uc.Scorer.ComputeScore(&input.Profile)

	// 2. Persistir o snapshot pontuado (best effort, o fluxo segue sem CRM)
	if uc.LeadRepo != nil {
		lead := &ScoredLead{
			Username:           input.Profile.Username,
			FullName:           input.Profile.FullName,
			Bio:                input.Profile.Bio,
			TotalScore:         score.TotalScore,
			Priority:           string(score.Priority),
			DetectedProfession: score.DetectedProfession,
			ApproachNotes:      score.ApproachNotes,
			TenantID:           input.TenantID,
		}
		if err := uc.LeadRepo.Upsert(ctx, lead); err != nil {
			log.Printf("⚠️ Falha ao salvar lead @%s no CRM: %v", input.Profile.Username, err)
		}
	}

	// Lead frio demais: não compõe nem gasta quota
	if score.Priority == entity.PriorityNurturing {
		return &OutreachOutput{
			Score: score,
			Msg:   "lead em nurturing, DM não recomendado",
		}, nil
	}

	// 3. Compor
	message := uc.Composer.Compose(&input.Profile, score, mode)

	// 4. Selecionar conta (fail closed se a quota estiver inapurável)
	account, err := uc.Quota.SelectAccount(ctx, input.TenantID)
	if err != nil {
		if err == ErrNoAccountAvailable || err == ErrQuotaUnavailable {
			return &OutreachOutput{
				Score:   score,
				Message: message,
				Msg:     err.Error(),
			}, err
		}
		return nil, err
	}

	// 5. Publicar o despacho
	payload := queue.DispatchPayload{
		TenantID:        input.TenantID,
		AccountID:       account.ID,
		AccountUsername: account.Username,
		TargetUsername:  input.Profile.Username,
		Message:         message.Message,
		TemplateUsed:    message.TemplateUsed,
		Priority:        string(score.Priority),
	}

	if err := uc.Queue.PublishDispatch(ctx, payload); err != nil {
		// Despacho não saiu: devolve a vaga reservada na seleção
		uc.Quota.ReleaseReservation(account.ID)
		log.Printf("❌ Falha ao publicar despacho para @%s: %v", input.Profile.Username, err)
		return nil, &TechnicalError{Code: "DISPATCH_PUBLISH_FAILED", Message: err.Error()}
	}

	return &OutreachOutput{
		Score:           score,
		Message:         message,
		AccountID:       account.ID,
		AccountUsername: account.Username,
		Dispatched:      true,
	}, nil
}
