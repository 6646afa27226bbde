package consumer

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/config"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/dispatch"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/queue"
)

// Consumer orchestrates a pipeline of stages processing queue-delivered
// webhook envelopes: receive from SQS, parse, dispatch sequentially
type Consumer struct {
	receiver  *Receiver
	parser    *ParserStage
	processor *Processor
	buffer    int
}

// NewConsumer creates a new consumer with a pipeline architecture
func NewConsumer(cfg *config.Config, queueConsumer queue.QueueConsumer, dispatcher dispatch.EventDispatcher, log *zap.Logger) *Consumer {
	receiver := NewReceiver(queueConsumer, cfg.Consumer, log)

	parser := NewParserStage(queueConsumer, NewJSONEnvelopeParser(), log)

	processor := NewProcessor(dispatcher, log)

	return &Consumer{
		receiver:  receiver,
		parser:    parser,
		processor: processor,
		buffer:    cfg.Consumer.BufferSize,
	}
}

// Start begins the consumer pipeline
func (c *Consumer) Start(ctx context.Context) error {
	messageChan := make(chan types.Message, c.buffer)
	envelopeChan := make(chan *Envelope, c.buffer)

	var wg sync.WaitGroup

	wg.Add(3)

	// Stage 1: Receive messages from SQS
	go func() {
		defer wg.Done()
		c.receiver.Start(ctx, messageChan)
	}()

	// Stage 2: Parse messages into envelopes
	go func() {
		defer wg.Done()
		c.parser.Start(ctx, messageChan, envelopeChan)
	}()

	// Stage 3: Dispatch envelopes in delivery order
	go func() {
		defer wg.Done()
		c.processor.Start(ctx, envelopeChan)
	}()

	wg.Wait()
	return nil
}
