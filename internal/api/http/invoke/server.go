package invoke

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oshokin/alarm-notify/internal/domain/alarm"
	"github.com/oshokin/alarm-notify/internal/logger"
	"github.com/oshokin/alarm-notify/internal/service/notifier"
)

// Service abstracts the notification operation the transport depends on.
type Service interface {
	Notify(ctx context.Context, event notifier.Envelope) (*notifier.Result, error)
}

// Server maps HTTP requests onto the notification service.
type Server struct {
	// service runs one notification per request.
	service Service
}

// NewServer wires the provided service into HTTP handlers.
func NewServer(service Service) *Server {
	return &Server{
		service: service,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", Healthz)
	router.POST("/invoke", s.Invoke)

	return router
}

// Healthz reports that the server is up.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Invoke runs the notification for the SNS envelope in the request body.
func (s *Server) Invoke(c *gin.Context) {
	ctx := c.Request.Context()

	var event notifier.Envelope
	if err := c.ShouldBindJSON(&event); err != nil {
		logger.WarnKV(ctx, "Failed to parse envelope", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid envelope"})

		return
	}

	result, err := s.service.Notify(ctx, event)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})

		return
	}

	body, err := result.Message.Encode()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})

		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status_code":  result.StatusCode,
		"response":     result.Response,
		"chat_message": json.RawMessage(body),
	})
}

// statusFor maps an error kind to an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, alarm.ErrMissingField), errors.Is(err, alarm.ErrMalformedIdentifier):
		return http.StatusUnprocessableEntity
	case errors.Is(err, alarm.ErrTransportFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
