package queue

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// ============ MOCKS ============

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, accountUsername, targetUsername, message string) error {
	args := m.Called(ctx, accountUsername, targetUsername, message)
	return args.Error(0)
}

type MockUsageRecorder struct {
	mock.Mock
}

func (m *MockUsageRecorder) RecordUsage(ctx context.Context, accountID string) error {
	args := m.Called(ctx, accountID)
	return args.Error(0)
}

func (m *MockUsageRecorder) MarkBlocked(ctx context.Context, accountID string, durationHours int, reason string) error {
	args := m.Called(ctx, accountID, durationHours, reason)
	return args.Error(0)
}

func (m *MockUsageRecorder) ReleaseReservation(accountID string) {
	m.Called(accountID)
}

type MockSendLogger struct {
	mock.Mock
}

func (m *MockSendLogger) LogSend(ctx context.Context, accountID, tenantID, targetUsername, message string) error {
	args := m.Called(ctx, accountID, tenantID, targetUsername, message)
	return args.Error(0)
}

func testPayload() DispatchPayload {
	return DispatchPayload{
		TenantID:        "acme",
		AccountID:       "acc-a",
		AccountUsername: "conta_a",
		TargetUsername:  "joao.ceo",
		Message:         "Oi João\n\nPosso te fazer uma pergunta?",
		TemplateUsed:    "hybrid:ultra",
		Priority:        "hot",
	}
}

// ============ TESTES DO DISPATCH WORKER ============

// TestProcessDispatchSuccess - Envio ok registra uso e alimenta o send log
func TestProcessDispatchSuccess(t *testing.T) {
	sender := new(MockSender)
	quota := new(MockUsageRecorder)
	sendLog := new(MockSendLogger)
	payload := testPayload()

	sender.On("Send", mock.Anything, "conta_a", "joao.ceo", payload.Message).Return(nil)
	quota.On("RecordUsage", mock.Anything, "acc-a").Return(nil)
	sendLog.On("LogSend", mock.Anything, "acc-a", "acme", "joao.ceo", payload.Message).Return(nil)

	worker := NewWorker(nil, sender, quota, sendLog)
	err := worker.processDispatch(context.Background(), payload)

	assert.Nil(t, err)
	sender.AssertExpectations(t)
	quota.AssertExpectations(t)
	sendLog.AssertExpectations(t)
	// A reserva fecha dentro do RecordUsage, o worker não solta por fora
	quota.AssertNotCalled(t, "ReleaseReservation", mock.Anything)
}

// TestProcessDispatchAccountBlocked - Restrição da plataforma vira cooldown
func TestProcessDispatchAccountBlocked(t *testing.T) {
	sender := new(MockSender)
	quota := new(MockUsageRecorder)
	sendLog := new(MockSendLogger)
	payload := testPayload()

	sender.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(ErrAccountBlocked)
	quota.On("MarkBlocked", mock.Anything, "acc-a", 24, "platform restriction").Return(nil)
	quota.On("ReleaseReservation", "acc-a").Return()

	worker := NewWorker(nil, sender, quota, sendLog)
	err := worker.processDispatch(context.Background(), payload)

	assert.ErrorIs(t, err, ErrAccountBlocked)
	quota.AssertExpectations(t)
	// Envio não aconteceu: nada de uso nem send log
	quota.AssertNotCalled(t, "RecordUsage", mock.Anything, mock.Anything)
	sendLog.AssertNotCalled(t, "LogSend", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestProcessDispatchGenericFailure - Falha genérica volta pro caller (Nack)
func TestProcessDispatchGenericFailure(t *testing.T) {
	sender := new(MockSender)
	quota := new(MockUsageRecorder)
	sendLog := new(MockSendLogger)

	sendErr := errors.New("browser session died")
	sender.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(sendErr)
	quota.On("ReleaseReservation", "acc-a").Return()

	worker := NewWorker(nil, sender, quota, sendLog)
	err := worker.processDispatch(context.Background(), testPayload())

	assert.Equal(t, sendErr, err)
	// Envio não saiu: a vaga reservada volta pro pool
	quota.AssertExpectations(t)
	quota.AssertNotCalled(t, "MarkBlocked", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	quota.AssertNotCalled(t, "RecordUsage", mock.Anything, mock.Anything)
}

// TestProcessDispatchBookkeepingFailureIsNotFatal - DM já saiu, não re-entrega
func TestProcessDispatchBookkeepingFailureIsNotFatal(t *testing.T) {
	sender := new(MockSender)
	quota := new(MockUsageRecorder)
	sendLog := new(MockSendLogger)

	sender.On("Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	quota.On("RecordUsage", mock.Anything, "acc-a").Return(errors.New("db timeout"))
	sendLog.On("LogSend", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(errors.New("db timeout"))

	worker := NewWorker(nil, sender, quota, sendLog)
	err := worker.processDispatch(context.Background(), testPayload())

	assert.Nil(t, err)
}
