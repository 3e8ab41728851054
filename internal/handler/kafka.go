package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/SergeyBogomolovv/order-coordinator/internal/config"
	"github.com/SergeyBogomolovv/order-coordinator/internal/entities"
	"github.com/SergeyBogomolovv/order-coordinator/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/segmentio/kafka-go"
)

type PaymentUpdater interface {
	UpdatePayment(ctx context.Context, actor entities.Actor, orderID string, p entities.PaymentUpdate) (entities.Order, error)
}

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// kafkaHandler applies payment processor events. Events that fail are parked in <topic>-dlq
// and the offset is committed once the event is either applied or parked.
type kafkaHandler struct {
	dlq      MessageWriter
	reader   MessageReader
	logger   *slog.Logger
	validate *validator.Validate
	payments PaymentUpdater
}

func NewKafkaHandler(logger *slog.Logger, cfg config.Kafka, payments PaymentUpdater) *kafkaHandler {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: cfg.Brokers,
		GroupID: cfg.GroupID,
		Topic:   cfg.Topic,
		MaxWait: cfg.ReaderMaxWait,
	})
	dlq := &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Balancer:     &kafka.LeastBytes{},
		BatchTimeout: cfg.BatchTimeout,
	}
	return newKafkaHandler(logger, reader, dlq, payments)
}

func newKafkaHandler(logger *slog.Logger, reader MessageReader, dlq MessageWriter, payments PaymentUpdater) *kafkaHandler {
	return &kafkaHandler{
		logger:   logger.With(slog.String("handler", "kafka")),
		reader:   reader,
		dlq:      dlq,
		validate: utils.NewValidator(),
		payments: payments,
	}
}

func (h *kafkaHandler) Consume(ctx context.Context) {
	for {
		m, err := h.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				break
			}
			h.logger.Error("failed to fetch message", slog.Any("error", err))
			continue
		}

		h.handle(ctx, m)
	}
}

func (h *kafkaHandler) handle(ctx context.Context, m kafka.Message) {
	start := time.Now()
	defer func() {
		paymentProcessingDuration.Observe(time.Since(start).Seconds())
	}()

	if err := h.handlePayment(ctx, m); err != nil {
		paymentsFailed.Inc()
		h.logger.Error("failed to handle payment event", slog.Any("error", err), slog.Int64("offset", m.Offset))

		// store writes are already retried inside the service
		if err := h.WriteToDLQ(ctx, m); err != nil {
			h.logger.Error("failed to write message to DLQ", slog.Any("error", err))
			return
		}
		paymentsDLQ.Inc()
	}

	if err := h.reader.CommitMessages(ctx, m); err != nil {
		commitErrors.Inc()
		h.logger.Error("failed to commit message", slog.Any("error", err))
	}
}

func (h *kafkaHandler) handlePayment(ctx context.Context, m kafka.Message) error {
	var event PaymentEvent
	if err := json.Unmarshal(m.Value, &event); err != nil {
		return fmt.Errorf("%w: failed to unmarshal payment event: %w", entities.ErrValidation, err)
	}
	if err := h.validate.Struct(event); err != nil {
		return fmt.Errorf("%w: invalid payment event: %w", entities.ErrValidation, err)
	}

	_, err := h.payments.UpdatePayment(ctx, entities.SystemActor, event.OrderID, entities.PaymentUpdate{
		Status:    entities.PaymentStatus(event.PaymentStatus),
		Reference: event.Reference,
	})
	if err != nil {
		return err
	}

	paymentsProcessed.WithLabelValues(event.PaymentStatus).Inc()
	return nil
}

func (h *kafkaHandler) WriteToDLQ(ctx context.Context, m kafka.Message) error {
	return h.dlq.WriteMessages(ctx, kafka.Message{
		Topic:   fmt.Sprintf("%s-dlq", m.Topic),
		Key:     m.Key,
		Value:   m.Value,
		Headers: m.Headers,
	})
}

func (h *kafkaHandler) Close() error {
	return errors.Join(h.reader.Close(), h.dlq.Close())
}
