package metrics

import (
	"context"
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// OTelExporter provides OpenTelemetry metrics export following OTel standards
type OTelExporter struct {
	meterProvider *sdkmetric.MeterProvider
	collector     Collector

	// OTel meters and instruments
	meter             metric.Meter
	outcomeCountGauge metric.Int64ObservableGauge
	retryPendingGauge metric.Int64ObservableGauge
	retryAvgGauge     metric.Float64ObservableGauge
	exhaustedGauge    metric.Int64ObservableGauge
	mirrorSizeGauge   metric.Int64ObservableGauge
}

// NewOTelExporter creates a new OpenTelemetry metrics exporter with Prometheus format
func NewOTelExporter(collector Collector) (*OTelExporter, error) {
	// Create Prometheus exporter
	exporter, err := prometheus.New()
	if err != nil {
		return nil, fmt.Errorf("creating prometheus exporter: %w", err)
	}

	// Create meter provider
	meterProvider := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
	)
	otel.SetMeterProvider(meterProvider)

	// Create meter with service info
	meter := meterProvider.Meter(
		"honeycommb-bridge",
		metric.WithInstrumentationVersion("1.0.0"),
	)

	oe := &OTelExporter{
		meterProvider: meterProvider,
		collector:     collector,
		meter:         meter,
	}

	// Register metrics instruments
	if err := oe.registerInstruments(); err != nil {
		return nil, fmt.Errorf("registering instruments: %w", err)
	}

	return oe, nil
}

// registerInstruments creates and registers all OpenTelemetry metric instruments
func (oe *OTelExporter) registerInstruments() error {
	var err error

	// Outcome count gauge (per outcome)
	oe.outcomeCountGauge, err = oe.meter.Int64ObservableGauge(
		"webhook.log.count",
		metric.WithDescription("Number of webhook log entries by outcome"),
		metric.WithUnit("{webhooks}"),
		metric.WithInt64Callback(oe.observeOutcomeCounts),
	)
	if err != nil {
		return fmt.Errorf("creating outcome count gauge: %w", err)
	}

	// Pending retries gauge
	oe.retryPendingGauge, err = oe.meter.Int64ObservableGauge(
		"webhook.retries.pending",
		metric.WithDescription("Number of failed webhooks still eligible for retry"),
		metric.WithUnit("{webhooks}"),
		metric.WithInt64Callback(oe.observePendingRetries),
	)
	if err != nil {
		return fmt.Errorf("creating pending retries gauge: %w", err)
	}

	// Average retry count gauge across failed entries
	oe.retryAvgGauge, err = oe.meter.Float64ObservableGauge(
		"webhook.retries.average",
		metric.WithDescription("Mean retry count across failed webhooks"),
		metric.WithUnit("{retries}"),
		metric.WithFloat64Callback(oe.observeAvgRetries),
	)
	if err != nil {
		return fmt.Errorf("creating average retries gauge: %w", err)
	}

	// Exhausted retries gauge, the main alerting signal: it only moves
	// when a webhook ran out of attempts and needs a human
	oe.exhaustedGauge, err = oe.meter.Int64ObservableGauge(
		"webhook.retries.exhausted",
		metric.WithDescription("Number of webhooks that used up every retry attempt"),
		metric.WithUnit("{webhooks}"),
		metric.WithInt64Callback(oe.observeExhausted),
	)
	if err != nil {
		return fmt.Errorf("creating exhausted retries gauge: %w", err)
	}

	// Mirror size gauge (per mirror)
	oe.mirrorSizeGauge, err = oe.meter.Int64ObservableGauge(
		"mirror.size",
		metric.WithDescription("Number of rows in each read-model mirror"),
		metric.WithUnit("{rows}"),
		metric.WithInt64Callback(oe.observeMirrorSizes),
	)
	if err != nil {
		return fmt.Errorf("creating mirror size gauge: %w", err)
	}

	return nil
}

// observeOutcomeCounts is a callback that reports log entry counts by outcome
func (oe *OTelExporter) observeOutcomeCounts(ctx context.Context, observer metric.Int64Observer) error {
	outcomeCounts, err := oe.collector.GetOutcomeCounts(ctx)
	if err != nil {
		return err
	}

	for outcome, count := range outcomeCounts {
		observer.Observe(count, metric.WithAttributes(
			attribute.String("outcome", outcome),
		))
	}

	return nil
}

// observePendingRetries is a callback that reports the retry backlog
func (oe *OTelExporter) observePendingRetries(ctx context.Context, observer metric.Int64Observer) error {
	retries, err := oe.collector.GetRetryMetrics(ctx)
	if err != nil {
		return err
	}

	observer.Observe(retries.Pending)
	return nil
}

// observeAvgRetries is a callback that reports the mean retry count
func (oe *OTelExporter) observeAvgRetries(ctx context.Context, observer metric.Float64Observer) error {
	retries, err := oe.collector.GetRetryMetrics(ctx)
	if err != nil {
		return err
	}

	observer.Observe(retries.AvgRetries)
	return nil
}

// observeExhausted is a callback that reports permanently failed webhooks
func (oe *OTelExporter) observeExhausted(ctx context.Context, observer metric.Int64Observer) error {
	retries, err := oe.collector.GetRetryMetrics(ctx)
	if err != nil {
		return err
	}

	observer.Observe(retries.Exhausted)
	return nil
}

// observeMirrorSizes is a callback that reports read-model row counts
func (oe *OTelExporter) observeMirrorSizes(ctx context.Context, observer metric.Int64Observer) error {
	mirror, err := oe.collector.GetMirrorMetrics(ctx)
	if err != nil {
		return err
	}

	observer.Observe(mirror.Users, metric.WithAttributes(
		attribute.String("mirror", "users"),
	))
	observer.Observe(mirror.Events, metric.WithAttributes(
		attribute.String("mirror", "events"),
	))

	return nil
}

// ServeHTTP returns the HTTP handler that serves metrics in Prometheus format
func (oe *OTelExporter) ServeHTTP() http.Handler {
	return promhttp.Handler()
}

// Shutdown gracefully shuts down the meter provider
func (oe *OTelExporter) Shutdown(ctx context.Context) error {
	if oe.meterProvider != nil {
		return oe.meterProvider.Shutdown(ctx)
	}
	return nil
}
