package router

import (
	"github.com/vibast-solutions/ms-go-session-keys/app/controller"
	"github.com/vibast-solutions/ms-go-session-keys/app/metrics"
	"github.com/vibast-solutions/ms-go-session-keys/app/middleware"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// New builds the Echo instance serving the read-only session key API.
func New(sessionKeyController *controller.SessionKeyController) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogRemoteIP:  true,
		LogLatency:   true,
		LogUserAgent: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			fields := logrus.Fields{
				"remote_ip":  v.RemoteIP,
				"host":       v.Host,
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency":    v.Latency.String(),
				"latency_ns": v.Latency.Nanoseconds(),
				"user_agent": v.UserAgent,
			}
			entry := logrus.WithFields(fields)
			if v.Error != nil {
				entry = entry.WithError(v.Error)
			}
			entry.Info("http_request")
			return nil
		},
	}))
	e.Use(echomiddleware.Recover())
	e.Use(middleware.Metrics)

	e.GET("/", sessionKeyController.Index)
	e.GET("/keys", sessionKeyController.ListKeys)
	e.GET("/key/:id", sessionKeyController.GetKey)
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))

	return e
}
