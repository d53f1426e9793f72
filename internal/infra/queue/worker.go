package queue

import (
	"context"
	"encoding/json"
	"errors"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ErrAccountBlocked é o sinal do colaborador de envio de que a plataforma
// restringiu a conta. O worker reage bloqueando a conta no quota manager.
var ErrAccountBlocked = errors.New("conta restringida pela plataforma")

// Horas de cooldown aplicadas quando a plataforma sinaliza restrição
const blockCooldownHours = 24

// Sender define o contrato do executor de envio (automação de browser,
// colaborador externo — não mora neste serviço)
type Sender interface {
	Send(ctx context.Context, accountUsername, targetUsername, message string) error
}

// UsageRecorder é o pedaço do quota manager que o worker precisa. Todo
// despacho consumido carrega uma reserva de vaga feita na seleção: envio
// confirmado fecha a reserva via RecordUsage, qualquer outro desfecho devolve
// a vaga via ReleaseReservation.
type UsageRecorder interface {
	RecordUsage(ctx context.Context, accountID string) error
	MarkBlocked(ctx context.Context, accountID string, durationHours int, reason string) error
	ReleaseReservation(accountID string)
}

// SendLogger grava o envio confirmado no send log (base da recontagem)
type SendLogger interface {
	LogSend(ctx context.Context, accountID, tenantID, targetUsername, message string) error
}

type Worker struct {
	Channel *amqp.Channel
	Sender  Sender
	Quota   UsageRecorder
	SendLog SendLogger
}

func NewWorker(ch *amqp.Channel, sender Sender, quota UsageRecorder, sendLog SendLogger) *Worker {
	return &Worker{
		Channel: ch,
		Sender:  sender,
		Quota:   quota,
		SendLog: sendLog,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload DispatchPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON Inválido: %s", err)
				// Mensagem podre (malformada). Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			log.Printf("📤 [WORKER] Despachando DM de @%s para @%s", payload.AccountUsername, payload.TargetUsername)

			if err := w.processDispatch(context.Background(), payload); err != nil {
				log.Printf("❌ [WORKER] Falha no envio: %s", err)
				d.Nack(false, false)
			} else {
				log.Printf("✅ [WORKER] DM entregue para @%s", payload.TargetUsername)
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}

func (w *Worker) processDispatch(ctx context.Context, payload DispatchPayload) error {
	err := w.Sender.Send(ctx, payload.AccountUsername, payload.TargetUsername, payload.Message)

	if errors.Is(err, ErrAccountBlocked) {
		// Plataforma restringiu a conta: entra em cooldown e a mensagem vai
		// pra DLQ (outro despacho vai sair por outra conta)
		if blockErr := w.Quota.MarkBlocked(ctx, payload.AccountID, blockCooldownHours, "platform restriction"); blockErr != nil {
			log.Printf("❌ [WORKER] Falha ao bloquear conta %s: %s", payload.AccountID, blockErr)
		}
		w.Quota.ReleaseReservation(payload.AccountID)
		return err
	}

	if err != nil {
		w.Quota.ReleaseReservation(payload.AccountID)
		return err
	}

	// Envio confirmado: alimenta o send log antes de soltar a reserva, senão
	// a recontagem fica cega pra esse envio no intervalo
	if err := w.SendLog.LogSend(ctx, payload.AccountID, payload.TenantID, payload.TargetUsername, payload.Message); err != nil {
		log.Printf("⚠️ [WORKER] Envio ok mas LogSend falhou: %s", err)
	}
	if err := w.Quota.RecordUsage(ctx, payload.AccountID); err != nil {
		log.Printf("⚠️ [WORKER] Envio ok mas RecordUsage falhou: %s", err)
	}

	return nil
}
