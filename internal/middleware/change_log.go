// Package middleware provides change logging utilities.
package middleware

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/carton-service/internal/domain/model"
	"github.com/guttosm/carton-service/internal/service"
)

// ChangeLog logs a mutating action for traceability.
// This should be used for actions that alter stored state, like field
// configuration updates or packing runs.
func ChangeLog(loggingService service.LoggingService, c *gin.Context, action string, message string, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields["action"] = action

	requestID := GetRequestID(c)
	entry := &model.LogEntry{
		Timestamp: time.Now(),
		Level:     "info",
		Message:   message,
		RequestID: requestID,
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Fields:    fields,
	}

	// Store asynchronously to avoid blocking
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}

// ChangeLogError logs a failed mutating action for traceability.
func ChangeLogError(loggingService service.LoggingService, c *gin.Context, action string, message string, err error, fields map[string]interface{}) {
	if loggingService == nil {
		return
	}

	if fields == nil {
		fields = make(map[string]interface{})
	}
	fields["action"] = action

	requestID := GetRequestID(c)
	entry := &model.LogEntry{
		Timestamp: time.Now(),
		Level:     "error",
		Message:   message,
		RequestID: requestID,
		Method:    c.Request.Method,
		Path:      c.Request.URL.Path,
		IP:        c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
		Error:     err.Error(),
		Fields:    fields,
	}

	// Store asynchronously to avoid blocking
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = loggingService.CreateLog(ctx, entry)
	}()
}
