package events

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/nats-io/nats.go"
)

// Event subjects, published under the configured prefix.
const (
	SubjectPaymentRecorded = "payment.recorded"
	SubjectLeaveDecided    = "leave_request.decided"
)

type PaymentRecorded struct {
	PaymentID int     `json:"payment_id"`
	StudentID int     `json:"student_id"`
	Amount    float64 `json:"amount"`
}

type LeaveDecided struct {
	LeaveRequestID int    `json:"leave_request_id"`
	Status         string `json:"status"`
}

// Producer publishes domain events to NATS. A nil Producer is valid and
// drops every publish, so the API keeps working without a broker.
type Producer struct {
	conn   *nats.Conn
	prefix string
	logger *slog.Logger
}

func NewProducer(url string, subjectPrefix string, logger *slog.Logger) (*Producer, error) {
	nc, err := nats.Connect(url)
	if err != nil {
		return nil, err
	}

	logger.Info("NATS producer initialized", "url", url, "subject_prefix", subjectPrefix)

	return &Producer{
		conn:   nc,
		prefix: subjectPrefix,
		logger: logger,
	}, nil
}

func (p *Producer) Publish(ctx context.Context, subject string, value interface{}) error {
	if p == nil || p.conn == nil {
		return nil
	}

	valueBytes, err := json.Marshal(value)
	if err != nil {
		p.logger.ErrorContext(ctx, "failed to marshal event", "error", err)
		return err
	}

	full := p.prefix + "." + subject
	if err := p.conn.Publish(full, valueBytes); err != nil {
		p.logger.ErrorContext(ctx, "failed to publish event", "subject", full, "error", err)
		return err
	}

	p.logger.InfoContext(ctx, "event published", "subject", full)
	return nil
}

func (p *Producer) Close() error {
	if p == nil || p.conn == nil {
		return nil
	}
	p.conn.Close()
	return nil
}
