package observability

import (
	"context"
	"log"
	"strings"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	otelTrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

// Vendor represents a vendor of observability services.
type Vendor string

const (
	// VendorDisabled is a special vendor that disables tracing and metrics.
	VendorDisabled Vendor = "Disabled"

	// VendorOpenTelemetry is the OpenTelemetry vendor, using OpenTelemetry
	// for everything (tracing, metrics), exported over OTLP/gRPC.
	VendorOpenTelemetry Vendor = "OpenTelemetry"
)

func ParseVendor(vendor string) (Vendor, error) {
	switch strings.ToLower(vendor) {
	case "disabled":
		return VendorDisabled, nil
	case "opentelemetry":
		return VendorOpenTelemetry, nil
	default:
		return "", errors.Errorf("unknown observability vendor: %s", vendor)
	}
}

// Setup configures tracing and metrics for the current vendor and returns a
// function to start them; starting returns the matching stop function.
func Setup(ctx context.Context, serviceName string, vendor Vendor) (start func() (stop func())) {
	if vendor == VendorDisabled {
		return func() func() {
			return func() {}
		}
	}

	r, err := resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
	if err != nil {
		log.Panic(errors.Wrap(err, "failed to create OTEL resource"))
	}

	traceExporter, err := otlptracegrpc.New(ctx)
	if err != nil {
		log.Panic(errors.Wrap(err, "failed to create OTEL trace exporter"))
	}

	tp := otelTrace.NewTracerProvider(
		otelTrace.WithBatcher(traceExporter),
		otelTrace.WithResource(r),
	)

	metricExporter, err := otlpmetricgrpc.New(ctx)
	if err != nil {
		log.Panic(errors.Wrap(err, "failed to create OTEL metric exporter"))
	}

	mp := metric.NewMeterProvider(
		metric.WithResource(r),
		metric.WithReader(metric.NewPeriodicReader(metricExporter)),
	)

	return func() (stop func()) {
		otel.SetTracerProvider(tp)
		otel.SetMeterProvider(mp)

		return func() {
			_ = tp.Shutdown(ctx)
			_ = mp.Shutdown(ctx)
		}
	}
}
