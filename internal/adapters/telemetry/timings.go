package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.trai.ch/recipe/internal/core/ports"
)

// TimingReporter implements sdktrace.SpanProcessor and logs how long each
// successful root span took. Child spans and failed spans are not reported.
type TimingReporter struct {
	logger ports.Logger
}

// NewTimingReporter returns a new TimingReporter.
func NewTimingReporter(logger ports.Logger) *TimingReporter {
	return &TimingReporter{logger: logger}
}

// OnStart is called when a span starts.
func (r *TimingReporter) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd is called when a span ends.
func (r *TimingReporter) OnEnd(s sdktrace.ReadOnlySpan) {
	if s.Parent().IsValid() || s.Status().Code == codes.Error {
		return
	}
	elapsed := s.EndTime().Sub(s.StartTime()).Round(time.Millisecond)
	r.logger.Info(s.Name() + " finished in " + elapsed.String())
}

// ForceFlush does nothing.
func (r *TimingReporter) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (r *TimingReporter) Shutdown(_ context.Context) error {
	return nil
}

// NewProvider creates a tracer provider reporting root span timings to logger.
func NewProvider(logger ports.Logger) *sdktrace.TracerProvider {
	return sdktrace.NewTracerProvider(
		sdktrace.WithSpanProcessor(NewTimingReporter(logger)),
	)
}
