package consumer

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awssqs "github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	"go.uber.org/zap"

	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/config"
	"github.com/Utkarsh7545/Airmeet-Snap-In/internal/queue"
)

// receiveBackoff is how long the receiver waits after a failed poll
const receiveBackoff = time.Second

// Receiver long-polls SQS for webhook deliveries and feeds them to the
// parser stage
type Receiver struct {
	consumer queue.QueueConsumer
	cfg      config.Consumer
	log      *zap.Logger
}

// NewReceiver creates a new SQS receiver
func NewReceiver(consumer queue.QueueConsumer, cfg config.Consumer, log *zap.Logger) *Receiver {
	return &Receiver{
		consumer: consumer,
		cfg:      cfg,
		log:      log,
	}
}

// Start polls until the context is cancelled, sending received messages to
// the output channel
func (r *Receiver) Start(ctx context.Context, out chan<- types.Message) {
	defer close(out)

	for ctx.Err() == nil {
		messages, err := r.poll(ctx)
		if err != nil {
			if ctx.Err() != nil {
				break
			}
			r.log.Error("Error receiving messages from SQS", zap.Error(err))
			time.Sleep(receiveBackoff)
			continue
		}

		if len(messages) == 0 {
			continue
		}

		r.log.Info("Received messages from SQS", zap.Int("message_count", len(messages)))

		for _, msg := range messages {
			select {
			case <-ctx.Done():
				r.log.Info("Receiver shutting down while sending messages")
				return
			case out <- msg:
			}
		}
	}

	r.log.Info("Receiver shutting down")
}

// poll issues one long-poll receive
func (r *Receiver) poll(ctx context.Context) ([]types.Message, error) {
	result, err := r.consumer.ReceiveMessages(ctx, &awssqs.ReceiveMessageInput{
		QueueUrl:              aws.String(r.consumer.QueueURL()),
		MaxNumberOfMessages:   int32(r.cfg.MaxMessages),
		WaitTimeSeconds:       int32(r.cfg.WaitTimeSeconds),
		MessageAttributeNames: []string{"All"},
	})
	if err != nil {
		return nil, err
	}
	return result.Messages, nil
}
