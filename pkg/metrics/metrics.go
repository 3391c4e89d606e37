// Package metrics holds the OpenTelemetry instruments of the service. The
// meter provider exports through the Prometheus registry served by the API.
package metrics

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30} //nolint: gochecknoglobals

const meterName = "atsconnect"

// NewMeterProvider creates a meter provider exporting to the given Prometheus
// registerer and installs it as the global provider.
func NewMeterProvider(reg prometheus.Registerer) (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(reg))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp))
	otel.SetMeterProvider(mp)

	return mp, nil
}

// Recorder records domain metrics. A nil *Recorder is valid and records
// nothing.
type Recorder struct {
	deliveries       metric.Int64Counter
	deliveryDuration metric.Float64Histogram
	providerCalls    metric.Int64Counter
	inboundWebhooks  metric.Int64Counter
}

// NewRecorder creates the instruments on a meter of mp.
func NewRecorder(mp metric.MeterProvider) (*Recorder, error) {
	meter := mp.Meter(meterName)

	deliveries, err := meter.Int64Counter("webhook_deliveries",
		metric.WithDescription("Outbound webhook delivery attempts by outcome"))
	if err != nil {
		return nil, fmt.Errorf("could not create deliveries counter: %w", err)
	}

	deliveryDuration, err := meter.Float64Histogram("webhook_delivery_duration",
		metric.WithDescription("Duration of outbound webhook POSTs"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create delivery duration histogram: %w", err)
	}

	providerCalls, err := meter.Int64Counter("provider_calls",
		metric.WithDescription("Calls to external provider APIs by provider and result"))
	if err != nil {
		return nil, fmt.Errorf("could not create provider calls counter: %w", err)
	}

	inboundWebhooks, err := meter.Int64Counter("inbound_webhooks",
		metric.WithDescription("Inbound provider webhooks by response status"))
	if err != nil {
		return nil, fmt.Errorf("could not create inbound webhooks counter: %w", err)
	}

	return &Recorder{
		deliveries:       deliveries,
		deliveryDuration: deliveryDuration,
		providerCalls:    providerCalls,
		inboundWebhooks:  inboundWebhooks,
	}, nil
}

// Delivery records one delivery attempt.
func (r *Recorder) Delivery(ctx context.Context, outcome string, took time.Duration) {
	if r == nil {
		return
	}

	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	r.deliveries.Add(ctx, 1, attrs)
	r.deliveryDuration.Record(ctx, took.Seconds(), attrs)
}

// ProviderCall records one provider API call.
func (r *Recorder) ProviderCall(ctx context.Context, provider string, err error) {
	if r == nil {
		return
	}

	result := "ok"
	if err != nil {
		result = "error"
	}
	r.providerCalls.Add(ctx, 1, metric.WithAttributes(
		attribute.String("provider", provider),
		attribute.String("result", result),
	))
}

// Inbound records one inbound webhook response.
func (r *Recorder) Inbound(ctx context.Context, status int) {
	if r == nil {
		return
	}

	r.inboundWebhooks.Add(ctx, 1, metric.WithAttributes(attribute.String("status", strconv.Itoa(status))))
}
