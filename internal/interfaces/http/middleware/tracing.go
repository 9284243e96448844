// Package middleware provides HTTP middleware for the ops API.
package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// TracingConfig holds configuration for the tracing middleware.
type TracingConfig struct {
	// ServiceName is the name of the service for trace identification.
	ServiceName string
	// Enabled controls whether tracing is active.
	Enabled bool
}

// TracingWithConfig returns OpenTelemetry tracing middleware.
// Spans are named "HTTP METHOD route_pattern", e.g. "POST /api/v1/jobs/:name/run".
func TracingWithConfig(cfg TracingConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	return otelgin.Middleware(cfg.ServiceName)
}

// SpanAttributes tags the active span with the request ID and marks
// 4xx/5xx responses as errors. Place it after TracingWithConfig.
func SpanAttributes() gin.HandlerFunc {
	return func(c *gin.Context) {
		span := trace.SpanFromContext(c.Request.Context())
		if span.IsRecording() {
			if requestID := GetRequestID(c); requestID != "" {
				span.SetAttributes(attribute.String("request_id", requestID))
			}
		}

		c.Next()

		if !span.IsRecording() {
			return
		}
		statusCode := c.Writer.Status()
		if statusCode < http.StatusBadRequest {
			return
		}
		switch {
		case statusCode >= http.StatusInternalServerError:
			span.SetStatus(codes.Error, "Internal Server Error")
		case statusCode == http.StatusNotFound:
			span.SetStatus(codes.Error, "Not Found")
		case statusCode == http.StatusConflict:
			span.SetStatus(codes.Error, "Conflict")
		default:
			span.SetStatus(codes.Error, "Client Error")
		}
		span.SetAttributes(attribute.Int("http.status_code", statusCode))
	}
}
