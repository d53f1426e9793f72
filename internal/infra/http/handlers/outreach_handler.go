package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/mottivme/socialfy/internal/infra/http/middleware"
	"github.com/mottivme/socialfy/internal/usecase"
)

type OutreachHandler struct {
	OutreachUC *usecase.OutreachUseCase
}

func NewOutreachHandler(uc *usecase.OutreachUseCase) *OutreachHandler {
	return &OutreachHandler{OutreachUC: uc}
}

// Handle (POST /webhook/outreach)
// Fluxo completo: score → mensagem → conta → fila de despacho
func (h *OutreachHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.OutreachInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "JSON inválido: "+err.Error(), http.StatusBadRequest)
		return
	}

	output, err := h.OutreachUC.Execute(r.Context(), input)
	if err != nil {
		switch err {
		case usecase.ErrNoAccountAvailable:
			middleware.RecordQuotaExhausted(input.TenantID)
			writeJSON(w, http.StatusConflict, output)
		case usecase.ErrQuotaUnavailable:
			writeJSON(w, http.StatusServiceUnavailable, output)
		default:
			if usecase.IsDomainError(err) {
				http.Error(w, err.Error(), http.StatusBadRequest)
			} else {
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
		}
		return
	}

	if output.Message != nil {
		middleware.RecordMessageComposed(string(input.Mode), string(output.Message.PersonalizationLevel))
	}

	writeJSON(w, http.StatusOK, output)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
