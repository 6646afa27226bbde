package consumer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/dto"
)

// MockDispatcher is a mock implementation of dispatch.EventDispatcher
type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Dispatch(ctx context.Context, events []dto.WebhookEvent) []dto.EventResult {
	args := m.Called(ctx, events)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]dto.EventResult)
}

func testEvent(eventType string) *dto.WebhookEvent {
	return &dto.WebhookEvent{
		ExecutionMetadata: dto.ExecutionMetadata{
			DevRevEndpoint: "https://api.devrev.ai",
			EventType:      eventType,
		},
	}
}

func TestProcessor_ProcessEnvelope_DispatchesAndAcks(t *testing.T) {
	dispatcher := new(MockDispatcher)
	dispatcher.On("Dispatch", mock.Anything, mock.AnythingOfType("[]dto.WebhookEvent")).
		Return([]dto.EventResult{{DeliveryID: "d-1", EventType: dto.EventTypeRegistrationCreated, Success: true}})

	acked := false
	envelope := NewEnvelope(testEvent(dto.EventTypeRegistrationCreated),
		func(ctx context.Context) error {
			acked = true
			return nil
		}, nil)

	p := NewProcessor(dispatcher, zap.NewNop())
	p.processEnvelope(context.Background(), envelope)

	assert.True(t, acked)
	dispatcher.AssertNumberOfCalls(t, "Dispatch", 1)
}

func TestProcessor_ProcessEnvelope_AcksOnBusinessFailure(t *testing.T) {
	dispatcher := new(MockDispatcher)
	dispatcher.On("Dispatch", mock.Anything, mock.AnythingOfType("[]dto.WebhookEvent")).
		Return([]dto.EventResult{{
			DeliveryID: "d-1",
			EventType:  dto.EventTypeRegistrationCreated,
			Success:    false,
			Error:      "Missing registrant data",
		}})

	acked := false
	envelope := NewEnvelope(testEvent(dto.EventTypeRegistrationCreated),
		func(ctx context.Context) error {
			acked = true
			return nil
		}, nil)

	p := NewProcessor(dispatcher, zap.NewNop())
	p.processEnvelope(context.Background(), envelope)

	assert.True(t, acked)
}

func TestProcessor_Start_DrainsChannelInOrder(t *testing.T) {
	dispatcher := new(MockDispatcher)

	var seen []string
	dispatcher.On("Dispatch", mock.Anything, mock.AnythingOfType("[]dto.WebhookEvent")).
		Run(func(args mock.Arguments) {
			events := args.Get(1).([]dto.WebhookEvent)
			seen = append(seen, events[0].ExecutionMetadata.EventType)
		}).
		Return([]dto.EventResult{{Success: true}})

	in := make(chan *Envelope, 2)
	in <- NewEnvelope(testEvent(dto.EventTypeEventCreated), nil, nil)
	in <- NewEnvelope(testEvent(dto.EventTypeRegistrationCreated), nil, nil)
	close(in)

	p := NewProcessor(dispatcher, zap.NewNop())

	done := make(chan struct{})
	go func() {
		p.Start(context.Background(), in)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("processor did not stop after channel close")
	}

	assert.Equal(t, []string{dto.EventTypeEventCreated, dto.EventTypeRegistrationCreated}, seen)
}

func TestProcessor_Start_StopsOnContextCancel(t *testing.T) {
	dispatcher := new(MockDispatcher)
	p := NewProcessor(dispatcher, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	in := make(chan *Envelope)

	done := make(chan struct{})
	go func() {
		p.Start(ctx, in)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("processor did not stop after context cancellation")
	}

	dispatcher.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}
