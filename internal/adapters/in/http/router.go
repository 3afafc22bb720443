package http

import (
	"log/slog"
	"net/http"
	"strings"

	"pressing/internal/adapters/in/http/openapi"
	"pressing/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// LiveUpdates upgrades a request to a push connection for one user.
type LiveUpdates interface {
	ServeWS(w http.ResponseWriter, r *http.Request, userID string) error
}

// NewRouter mounts the API, its docs, the live update endpoint, health and
// metrics on a new echo instance. API requests are validated against the
// embedded document before they reach server.
func NewRouter(server *Server, live LiveUpdates, metrics http.Handler, logger *slog.Logger) (*echo.Echo, error) {
	doc, err := openapi.LoadDocument()
	if err != nil {
		return nil, err
	}
	validator, err := openapi.RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/metrics", echo.WrapHandler(metrics))
	e.GET("/ws", liveHandler(live, logger.With("component", "live_updates")))

	if err = openapi.RegisterDocs(e, doc); err != nil {
		return nil, err
	}

	servers.RegisterHandlers(e, server)
	return e, nil
}

func liveHandler(live LiveUpdates, logger *slog.Logger) echo.HandlerFunc {
	return func(c echo.Context) error {
		userID := strings.TrimSpace(c.QueryParam("user_id"))
		if userID == "" {
			return c.JSON(http.StatusUnprocessableEntity, servers.Error{
				Code:    http.StatusUnprocessableEntity,
				Message: "value is required: user_id",
			})
		}

		// The upgrader has already answered the client when this fails.
		if err := live.ServeWS(c.Response(), c.Request(), userID); err != nil {
			logger.WarnContext(c.Request().Context(), "live connection refused",
				"user_id", userID, "error", err)
		}
		return nil
	}
}
