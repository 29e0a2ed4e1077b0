package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

// setupTestTracer installs a recording tracer provider for the test
func setupTestTracer(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()

	sr := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
	prevTP := otel.GetTracerProvider()
	prevProp := otel.GetTextMapPropagator()
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	t.Cleanup(func() {
		_ = tp.Shutdown(t.Context())
		otel.SetTracerProvider(prevTP)
		otel.SetTextMapPropagator(prevProp)
	})

	return sr
}

func spanAttrs(span sdktrace.ReadOnlySpan) map[attribute.Key]attribute.Value {
	attrs := make(map[attribute.Key]attribute.Value)
	for _, kv := range span.Attributes() {
		attrs[kv.Key] = kv.Value
	}
	return attrs
}

func TestTracing_Disabled(t *testing.T) {
	sr := setupTestTracer(t)

	router := gin.New()
	router.Use(Tracing("tenantbill-test", false))
	router.GET("/api/bills", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/bills", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, sr.Ended())
}

func TestTracing_RecordsRouteAndAttributes(t *testing.T) {
	sr := setupTestTracer(t)

	router := gin.New()
	router.Use(RequestID(), Tracing("tenantbill-test", true), SpanErrorMarker())
	router.Use(func(c *gin.Context) {
		c.Set(JWTUserIDKey, int64(7))
		c.Next()
	}, TracingAttributeInjector())
	router.GET("/api/bills/:id", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/bills/42", nil)
	req.Header.Set(RequestIDHeader, "req-42")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	spans := sr.Ended()
	require.Len(t, spans, 1)
	span := spans[0]
	assert.Contains(t, span.Name(), "/api/bills/:id")
	assert.Equal(t, codes.Error, span.Status().Code)

	attrs := spanAttrs(span)
	assert.Equal(t, "req-42", attrs["request_id"].AsString())
	assert.Equal(t, int64(7), attrs["user_id"].AsInt64())
	assert.Equal(t, int64(http.StatusNotFound), attrs["http.status_code"].AsInt64())
}

func TestSpanErrorMarker_SuccessLeavesStatus(t *testing.T) {
	sr := setupTestTracer(t)

	router := gin.New()
	router.Use(Tracing("tenantbill-test", true), SpanErrorMarker())
	router.GET("/api/tenants", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/tenants", nil))

	spans := sr.Ended()
	require.Len(t, spans, 1)
	assert.NotEqual(t, codes.Error, spans[0].Status().Code)
}
