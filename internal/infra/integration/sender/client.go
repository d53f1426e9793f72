// Package sender fala com o serviço de automação que executa o envio da DM.
// Esse serviço (browser, sessão, seletores) fica fora deste repositório; aqui
// é só o cliente HTTP dele.
package sender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/mottivme/socialfy/internal/infra/queue"
)

type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	APIKey     string
}

func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 60 * time.Second},
		BaseURL:    baseURL,
		APIKey:     apiKey,
	}
}

type sendRequest struct {
	AccountUsername string `json:"account_username"`
	TargetUsername  string `json:"target_username"`
	Message         string `json:"message"`
}

type sendResponse struct {
	Success bool   `json:"success"`
	Blocked bool   `json:"blocked"` // plataforma restringiu a conta de envio
	Error   string `json:"error,omitempty"`
}

// Send despacha a DM pelo serviço de automação. Retorna
// queue.ErrAccountBlocked quando o serviço sinaliza restrição da conta, para
// o worker acionar o cooldown.
func (c *Client) Send(ctx context.Context, accountUsername, targetUsername, message string) error {
	body, err := json.Marshal(sendRequest{
		AccountUsername: accountUsername,
		TargetUsername:  targetUsername,
		Message:         message,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/send-dm", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.APIKey)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("falha ao chamar o sender: %w", err)
	}
	defer resp.Body.Close()

	var out sendResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("resposta inválida do sender: %w", err)
	}

	if out.Blocked {
		return queue.ErrAccountBlocked
	}
	if !out.Success {
		return fmt.Errorf("sender recusou o envio: %s", out.Error)
	}

	return nil
}
