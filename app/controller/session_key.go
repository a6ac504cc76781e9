package controller

import (
	"errors"
	"net/http"

	dto "github.com/vibast-solutions/ms-go-session-keys/app/dto/http"
	"github.com/vibast-solutions/ms-go-session-keys/app/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
)

const indexGreeting = "welcome, index here"

type SessionKeyController struct {
	sessionKeyService service.SessionKeyService
}

func NewSessionKeyController(sessionKeyService service.SessionKeyService) *SessionKeyController {
	return &SessionKeyController{sessionKeyService: sessionKeyService}
}

func (c *SessionKeyController) Index(ctx echo.Context) error {
	return ctx.String(http.StatusOK, indexGreeting)
}

// ListKeys never exposes storage error details; failures are logged and
// answered with an empty 500.
func (c *SessionKeyController) ListKeys(ctx echo.Context) error {
	keys, err := c.sessionKeyService.List(ctx.Request().Context())
	if err != nil {
		logrus.WithError(err).Error("Failed to list session keys")
		return ctx.NoContent(http.StatusInternalServerError)
	}

	return ctx.JSON(http.StatusOK, dto.NewSessionKeyListResponse(keys))
}

func (c *SessionKeyController) GetKey(ctx echo.Context) error {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		logrus.WithField("id", ctx.Param("id")).Debug("Rejected malformed session key id")
		return ctx.NoContent(http.StatusBadRequest)
	}

	key, err := c.sessionKeyService.Get(ctx.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSessionKeyNotFound) {
			logrus.WithField("id", id.String()).Debug("Session key not found")
			return ctx.NoContent(http.StatusNotFound)
		}
		logrus.WithError(err).WithField("id", id.String()).Error("Failed to load session key")
		return ctx.NoContent(http.StatusInternalServerError)
	}

	return ctx.JSON(http.StatusOK, dto.NewSessionKeyResponse(key))
}
