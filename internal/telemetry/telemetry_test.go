package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNewTracerProvider_ExportsSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	tp, err := newTracerProvider(exporter, Config{ServiceName: "annotation-registry", ServiceVersion: "test"})
	require.NoError(t, err)

	_, span := tp.Tracer("test").Start(context.Background(), "TaskService.CreateTask")
	span.End()

	require.NoError(t, tp.ForceFlush(context.Background()))
	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "TaskService.CreateTask", spans[0].Name)

	var service string
	for _, kv := range spans[0].Resource.Attributes() {
		if kv.Key == attribute.Key("service.name") {
			service = kv.Value.AsString()
		}
	}
	assert.Equal(t, "annotation-registry", service)

	require.NoError(t, tp.Shutdown(context.Background()))
}

func TestInit_RequiresServiceName(t *testing.T) {
	_, err := Init(context.Background(), Config{})

	assert.Error(t, err)
}
