package queue

import (
	"context"
	"encoding/json"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)


// DispatchPayload é o despacho de DM pronto para o worker executar
type DispatchPayload struct {
	TenantID        string `json:"tenant_id"`
	AccountID       string `json:"account_id"`
	AccountUsername string `json:"account_username"`
	TargetUsername  string `json:"target_username"`
	Message         string `json:"message"`
	TemplateUsed    string `json:"template_used"`
	Priority        string `json:"priority"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}


func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishDispatch(ctx context.Context, payload DispatchPayload) error {

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName, // ex.outreach
		RoutingKey,   // k.dispatch
		false,        // Mandatory
		false,        // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco (segurança!)
		},
	)

	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}
