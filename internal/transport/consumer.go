package transport

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/ezpay/ezpay/internal/domain"
	"github.com/ezpay/ezpay/internal/metrics"
)

const (
	maxAttempts   = 3
	retryInterval = time.Second * 1
)

const (
	errorHeader      = "x-error"
	routingKeyHeader = "x-routing-key"
)

type Processor interface {
	ProcessTransfer(ctx context.Context, cmd domain.TransferCommand) error
}

type Archiver interface {
	Record(ctx context.Context, topic, routingKey, payload, errorMessage string)
}

// Consumer pulls transfer commands from the primary queue, drives the
// processor with the fixed retry policy and moves exhausted commands to the
// dead-letter queue. The dead-letter queue is drained by an independent
// consumer that archives every record and never re-raises.
type Consumer struct {
	conn      *amqp.Connection
	ch        *amqp.Channel
	dlqCh     *amqp.Channel
	processor Processor
	archiver  Archiver
	pool      WorkerPoolI

	retryInterval time.Duration
}

func NewConsumer(amqpURL string, processor Processor, archiver Archiver, pool WorkerPoolI) (*Consumer, error) {
	cleanURL, err := sanitizeAmqpURL(amqpURL)
	if err != nil {
		return nil, err
	}

	conn, err := amqp.DialConfig(cleanURL, amqp.Config{Dial: amqp.DefaultDial(dialTimeout)})
	if err != nil {
		return nil, fmt.Errorf("failed to dial AMQP broker: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open AMQP channel: %w", err)
	}
	dlqCh, err := conn.Channel()
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to open AMQP dead-letter channel: %w", err)
	}

	return &Consumer{
		conn:          conn,
		ch:            ch,
		dlqCh:         dlqCh,
		processor:     processor,
		archiver:      archiver,
		pool:          pool,
		retryInterval: retryInterval,
	}, nil
}

// Start declares the topology and launches the primary and dead-letter
// consume loops. It returns after the loops are running.
func (c *Consumer) Start(ctx context.Context) error {
	if err := c.ch.ExchangeDeclare(TransfersExchange, "topic", true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}
	q, err := c.ch.QueueDeclare(TransferCommandsQueue, true, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}
	if err := c.ch.QueueBind(q.Name, TransferRequestedKey, TransfersExchange, false, nil); err != nil {
		return fmt.Errorf("failed to bind queue: %w", err)
	}
	if _, err := c.dlqCh.QueueDeclare(TransferCommandsDLQ, true, false, false, false, nil); err != nil {
		return fmt.Errorf("failed to declare dead-letter queue: %w", err)
	}

	// One in-flight command at a time keeps processing in submission order.
	if err := c.ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("failed to set prefetch: %w", err)
	}

	msgs, err := c.ch.Consume(q.Name, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming: %w", err)
	}
	dlqMsgs, err := c.dlqCh.Consume(TransferCommandsDLQ, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("failed to start consuming dead-letter queue: %w", err)
	}

	go c.runPrimary(ctx, msgs)
	go c.runDeadLetter(ctx, dlqMsgs)

	zap.L().Info("Transfer consumer started")
	return nil
}

func (c *Consumer) runPrimary(ctx context.Context, msgs <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping primary consumer")
			return
		case d, ok := <-msgs:
			if !ok {
				return
			}
			c.handleDelivery(ctx, d)
		}
	}
}

func (c *Consumer) handleDelivery(ctx context.Context, d amqp.Delivery) {
	err := c.processWithRetry(ctx, d.Body)
	if err == nil {
		if ackErr := d.Ack(false); ackErr != nil {
			zap.L().Error("failed to ack delivery", zap.Error(ackErr))
		}
		return
	}
	if ctx.Err() != nil {
		// Shutting down: leave the delivery unacked for redelivery.
		return
	}

	if !c.deadLetter(ctx, d, err) {
		// The command must not be lost: put it back on the primary queue.
		if nackErr := d.Nack(false, true); nackErr != nil {
			zap.L().Error("failed to nack delivery", zap.Error(nackErr))
		}
		return
	}
	metrics.TransfersDeadLettered.Inc()
	if ackErr := d.Ack(false); ackErr != nil {
		zap.L().Error("failed to ack dead-lettered delivery", zap.Error(ackErr))
	}
}

// processWithRetry decodes and processes one command, retrying with a fixed
// backoff. The returned error is the one raised by the final attempt.
func (c *Consumer) processWithRetry(ctx context.Context, body []byte) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		err = c.processOnce(ctx, body)
		if err == nil {
			metrics.TransfersProcessed.Inc()
			return nil
		}
		metrics.TransferAttemptsFailed.Inc()
		zap.L().Warn("transfer processing attempt failed",
			zap.Int("attempt", attempt),
			zap.Error(err),
		)
		if attempt < maxAttempts {
			time.Sleep(c.retryInterval)
		}
	}
	return err
}

func (c *Consumer) processOnce(ctx context.Context, body []byte) error {
	var cmd domain.TransferCommand
	if err := json.Unmarshal(body, &cmd); err != nil {
		return fmt.Errorf("failed to decode transfer command: %w", err)
	}
	return c.processor.ProcessTransfer(ctx, cmd)
}

func (c *Consumer) deadLetter(ctx context.Context, d amqp.Delivery, procErr error) bool {
	err := c.ch.PublishWithContext(ctx,
		"",
		TransferCommandsDLQ,
		false,
		false,
		amqp.Publishing{
			ContentType:  d.ContentType,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
			Body:         d.Body,
			Headers: amqp.Table{
				errorHeader:      procErr.Error(),
				routingKeyHeader: d.RoutingKey,
			},
		},
	)
	if err != nil {
		zap.L().Error("failed to publish to dead-letter queue", zap.Error(err))
		return false
	}
	zap.L().Error("transfer command dead-lettered after retries",
		zap.String("routingKey", d.RoutingKey),
		zap.Error(procErr),
	)
	return true
}

func (c *Consumer) runDeadLetter(ctx context.Context, msgs <-chan amqp.Delivery) {
	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping dead-letter consumer")
			return
		case d, ok := <-msgs:
			if !ok {
				return
			}
			c.handleDeadLetter(ctx, d)
		}
	}
}

// handleDeadLetter forwards the record to the archive and always acks:
// the dead-letter path never feeds back into the retry loop.
func (c *Consumer) handleDeadLetter(ctx context.Context, d amqp.Delivery) {
	payload := string(d.Body)
	errorMessage := headerString(d.Headers, errorHeader)
	routingKey := headerString(d.Headers, routingKeyHeader)

	if err := c.pool.AddTask(ctx, func() error {
		archiveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		c.archiver.Record(archiveCtx, TransfersExchange, routingKey, payload, errorMessage)
		return nil
	}); err != nil {
		zap.L().Error("failed to schedule failed event archival", zap.Error(err))
	}

	if err := d.Ack(false); err != nil {
		zap.L().Error("failed to ack dead-letter delivery", zap.Error(err))
	}
}

func headerString(headers amqp.Table, key string) string {
	if headers == nil {
		return ""
	}
	if v, ok := headers[key].(string); ok {
		return v
	}
	return ""
}

func (c *Consumer) Close() {
	if c.ch != nil {
		c.ch.Close()
	}
	if c.dlqCh != nil {
		c.dlqCh.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
