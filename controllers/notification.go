package controllers

import (
	"strings"

	apperrors "hotelbooking/errors"
	"hotelbooking/response"
	"hotelbooking/services/logger"
	"hotelbooking/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/olahol/melody"
)

// NotificationController serves the dashboard websocket feed. Booking events reach it
// through the melody broadcaster; admins can also push a free-text notice.
type NotificationController struct {
	logger logger.Logger
	melody *melody.Melody
}

type NotificationControllerOptions struct {
	Logger logger.Logger
}

func NewNotificationController(opts NotificationControllerOptions, m *melody.Melody) *NotificationController {
	nc := &NotificationController{
		logger: opts.Logger,
		melody: m,
	}
	m.HandleConnect(func(s *melody.Session) {
		nc.logger.Debug("websocket connected", "remote_addr", s.Request.RemoteAddr)
	})
	m.HandleDisconnect(func(s *melody.Session) {
		nc.logger.Debug("websocket disconnected", "remote_addr", s.Request.RemoteAddr)
	})
	return nc
}

func (nc *NotificationController) HandleWebSocket(c *gin.Context) {
	if err := nc.melody.HandleRequest(c.Writer, c.Request); err != nil {
		nc.logger.Error("websocket upgrade", "error", err)
	}
}

func (nc *NotificationController) NotifyAll(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		response.FromError(c, apperrors.InvalidInput("message is required"))
		return
	}

	notice := map[string]string{"type": "notice", "message": strings.TrimSpace(req.Message)}
	if err := notification.BroadcastJSON(c.Request.Context(), notification.NewMelodyService(nc.melody), notice); err != nil {
		response.FromError(c, apperrors.Upstream("could not send notification", err))
		return
	}
	response.Success(c, notice)
}
