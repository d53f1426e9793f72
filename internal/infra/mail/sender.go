package mail

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     "alertas@socialfy.app",
	}
}

// SendAccountBlockedAlert avisa o operador do tenant que uma conta de envio
// entrou em cooldown. O destinatário é o e-mail operacional do tenant
// (convenção: ops+<tenant>@socialfy.app, sobrescrevível via From/To futuros).
func (s *EmailSender) SendAccountBlockedAlert(tenantID, accountUsername, reason string, blockedUntil time.Time) error {
	body := fmt.Sprintf(
		"<p>A conta <b>@%s</b> do tenant <b>%s</b> foi colocada em cooldown.</p>"+
			"<p>Motivo: %s</p>"+
			"<p>Bloqueada até: %s</p>"+
			"<p>O envio continua pelas demais contas disponíveis. Se a conta foi "+
			"restringida pela plataforma, aguarde o cooldown antes de desbloquear.</p>",
		accountUsername, tenantID, reason, blockedUntil.Format("02/01/2006 15:04"),
	)

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", fmt.Sprintf("ops+%s@socialfy.app", tenantID))
	m.SetHeader("Subject", fmt.Sprintf("⚠️ Conta @%s bloqueada (%s)", accountUsername, tenantID))
	m.SetBody("text/html", body)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar alerta SMTP: %w", err)
	}

	return nil
}
