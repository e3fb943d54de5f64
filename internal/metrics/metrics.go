package metrics

import (
	"context"
	"database/sql"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Metrics struct {
	Database *DatabaseMetrics

	meter            metric.Meter
	loginAttempts    metric.Int64Counter
	recordsCreated   metric.Int64Counter
	leaveDecisions   metric.Int64Counter
	paymentsRecorded metric.Float64Counter
	logger           *slog.Logger
}

func New(serviceName string, logger *slog.Logger) (*Metrics, error) {
	meter := otel.Meter(serviceName)

	database, err := NewDatabaseMetrics(meter)
	if err != nil {
		return nil, err
	}

	m := &Metrics{
		Database: database,
		meter:    meter,
		logger:   logger,
	}

	m.loginAttempts, err = meter.Int64Counter(
		"fitcircle.logins",
		metric.WithDescription("Total number of login attempts"),
		metric.WithUnit("{attempt}"),
	)
	if err != nil {
		return nil, err
	}

	m.recordsCreated, err = meter.Int64Counter(
		"fitcircle.records.created",
		metric.WithDescription("Total number of records created per resource"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, err
	}

	m.leaveDecisions, err = meter.Int64Counter(
		"fitcircle.leave_requests.decided",
		metric.WithDescription("Total number of leave request decisions"),
		metric.WithUnit("{decision}"),
	)
	if err != nil {
		return nil, err
	}

	m.paymentsRecorded, err = meter.Float64Counter(
		"fitcircle.payments.amount",
		metric.WithDescription("Total payment amount recorded"),
		metric.WithUnit("{amount}"),
	)
	if err != nil {
		return nil, err
	}

	logger.Info("metrics collectors initialized successfully")

	return m, nil
}

// NewMock creates a no-op Metrics instance for testing
// The returned Metrics will safely ignore all Record* calls
func NewMock() *Metrics {
	return &Metrics{
		Database: &DatabaseMetrics{},
	}
}

// RegisterDB hooks connection pool gauges up to the meter.
func (m *Metrics) RegisterDB(db *sql.DB) error {
	if m == nil || m.meter == nil {
		return nil
	}
	return m.Database.RegisterDB(db, m.meter)
}

func (m *Metrics) RecordLogin(ctx context.Context, success bool) {
	if m == nil || m.loginAttempts == nil {
		return
	}
	m.loginAttempts.Add(ctx, 1, metric.WithAttributes(attribute.Bool("success", success)))
}

func (m *Metrics) RecordCreated(ctx context.Context, resource string) {
	if m == nil || m.recordsCreated == nil {
		return
	}
	m.recordsCreated.Add(ctx, 1, metric.WithAttributes(attribute.String("resource", resource)))
}

func (m *Metrics) RecordLeaveDecision(ctx context.Context, status string) {
	if m == nil || m.leaveDecisions == nil {
		return
	}
	m.leaveDecisions.Add(ctx, 1, metric.WithAttributes(attribute.String("status", status)))
}

func (m *Metrics) RecordPayment(ctx context.Context, amount float64) {
	if m == nil || m.paymentsRecorded == nil {
		return
	}
	m.paymentsRecorded.Add(ctx, amount)
}
