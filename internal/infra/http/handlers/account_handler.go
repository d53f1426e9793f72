package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mottivme/socialfy/internal/entity"
	"github.com/mottivme/socialfy/internal/infra/http/middleware"
	"github.com/mottivme/socialfy/internal/usecase"
)

type AccountHandler struct {
	AccountRepo entity.SendingAccountRepositoryInterface
	Quota       *usecase.QuotaManager
}

func NewAccountHandler(repo entity.SendingAccountRepositoryInterface, quota *usecase.QuotaManager) *AccountHandler {
	return &AccountHandler{
		AccountRepo: repo,
		Quota:       quota,
	}
}

// HandleCreate (POST /api/accounts)
func (h *AccountHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateAccountInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	if errs := usecase.ValidateCreateAccountInput(input); len(errs) > 0 {
		http.Error(w, errs[0].Error(), http.StatusBadRequest)
		return
	}

	account, err := entity.NewSendingAccount(input.TenantID, input.Username, input.DailyLimit, input.HourlyLimit)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.AccountRepo.Create(r.Context(), account); err != nil {
		http.Error(w, "Failed to create account", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, account)
}

// HandleList (GET /api/accounts/{tenantId})
func (h *AccountHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	tenantID := chi.URLParam(r, "tenantId")
	if tenantID == "" {
		http.Error(w, "tenantId is required", http.StatusBadRequest)
		return
	}

	accounts, err := h.AccountRepo.FindByTenant(r.Context(), tenantID)
	if err != nil {
		http.Error(w, "Failed to list accounts", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, accounts)
}

// HandleDelete (DELETE /api/accounts/{id})
func (h *AccountHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	if err := h.AccountRepo.Delete(r.Context(), id); err != nil {
		http.Error(w, "Failed to delete account", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type BlockAccountRequest struct {
	DurationHours int    `json:"duration_hours"`
	Reason        string `json:"reason"`
}

// HandleBlock (POST /api/accounts/{id}/block)
// Chamado pelo colaborador de envio quando a plataforma restringe a conta
func (h *AccountHandler) HandleBlock(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req BlockAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}
	if req.DurationHours <= 0 {
		req.DurationHours = 24
	}

	if err := h.Quota.MarkBlocked(r.Context(), id, req.DurationHours, req.Reason); err != nil {
		if err == usecase.ErrAccountNotFound {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		if usecase.IsDomainError(err) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	middleware.RecordAccountBlocked()
	writeJSON(w, http.StatusOK, map[string]bool{"blocked": true})
}

// HandleUnblock (POST /api/accounts/{id}/unblock)
func (h *AccountHandler) HandleUnblock(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.Quota.Unblock(r.Context(), id); err != nil {
		if err == usecase.ErrAccountNotFound {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"unblocked": true})
}

// HandleTenantStats (GET /api/stats/{tenantId})
func (h *AccountHandler) HandleTenantStats(w http.ResponseWriter, r *http.Request) {
	tenantID := chi.URLParam(r, "tenantId")
	if tenantID == "" {
		http.Error(w, "tenantId is required", http.StatusBadRequest)
		return
	}

	stats, err := h.Quota.TenantStats(r.Context(), tenantID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
