package listener

import (
	"context"
	"encoding/json"
	"time"

	"github.com/fekuna/omnipos-report-service/internal/report"
	"github.com/fekuna/omnipos-report-service/pkg/logger"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by pkg/broker.KafkaConsumer.
type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

// Events that change data the reports are built from.
var invalidatingEvents = map[string]bool{
	"OrderCreated":      true,
	"OrderUpdated":      true,
	"OrderDelivered":    true,
	"ReturnRequested":   true,
	"InventoryAdjusted": true,
	"ProductUpdated":    true,
}

type Event struct {
	EventID   string    `json:"event_id"`
	EventType string    `json:"event_type"`
	Timestamp time.Time `json:"timestamp"`
}

// ReportListener drops cached reports whenever orders, returns or stock change.
type ReportListener struct {
	consumer MessageReader
	uc       report.UseCase
	logger   logger.ZapLogger
	backoff  time.Duration
}

func NewReportListener(consumer MessageReader, uc report.UseCase, logger logger.ZapLogger) *ReportListener {
	return &ReportListener{
		consumer: consumer,
		uc:       uc,
		logger:   logger,
		backoff:  time.Second,
	}
}

// Start blocks until ctx is cancelled.
func (l *ReportListener) Start(ctx context.Context) {
	l.logger.Info("Starting report cache Kafka listener")
	for {
		select {
		case <-ctx.Done():
			l.logger.Info("Stopping report cache Kafka listener")
			return
		default:
			msg, err := l.consumer.ReadMessage(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				l.logger.Error("Failed to read kafka message", zap.Error(err))
				select {
				case <-ctx.Done():
					return
				case <-time.After(l.backoff):
				}
				continue
			}
			l.processMessage(ctx, msg.Value)
		}
	}
}

func (l *ReportListener) processMessage(ctx context.Context, value []byte) {
	var event Event
	if err := json.Unmarshal(value, &event); err != nil {
		l.logger.Warn("Failed to unmarshal event", zap.Error(err))
		return
	}

	if !invalidatingEvents[event.EventType] {
		return
	}

	if err := l.uc.InvalidateCache(ctx); err != nil {
		l.logger.Warn("Failed to invalidate report cache",
			zap.String("event_id", event.EventID),
			zap.String("event_type", event.EventType),
			zap.Error(err),
		)
		return
	}
	l.logger.Debug("Report cache invalidated",
		zap.String("event_id", event.EventID),
		zap.String("event_type", event.EventType),
	)
}
