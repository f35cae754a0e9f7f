package worker

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"marketplace/config"
	"marketplace/internal/delivery"
	"marketplace/internal/delivery/middleware"
	"marketplace/internal/delivery/worker/handler"
	"marketplace/internal/domain/lifecycle"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	healthPath = "/health"
	pushPath   = "/push"

	// Pub/Sub caps a message at 10MB and the envelope base64-encodes it
	pushBodyLimit = "14M"
)

type workerServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for the worker server
type ServerParams struct {
	fx.In

	Lc          fx.Lifecycle
	Cfg         *config.Config
	Logger      *slog.Logger
	PushHandler *handler.PushHandler
}

// NewServer creates the HTTP server receiving application events from Pub/Sub
func NewServer(params ServerParams) (delivery.Delivery, error) {
	e := newEcho(params)

	srv := &workerServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: e,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(params ServerParams) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Recover first, then request ID so the logger line carries it
	e.Use(echomiddleware.Recover())
	e.Use(middleware.NewRequestIDMiddleware(params.Logger).Process)
	e.Use(middleware.NewLoggerMiddleware(params.Logger, params.Cfg).Handle)

	// Pub/Sub only reads the status code, plain errors are enough
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var httpErr *echo.HTTPError
		if errors.As(err, &httpErr) {
			code = httpErr.Code
		}
		if code >= http.StatusInternalServerError {
			params.Logger.Error("[Worker] Unhandled error", slog.Any("error", err))
		}

		_ = c.NoContent(code)
	}

	serviceName := params.Cfg.Env.ServiceName + "-worker"
	e.GET(healthPath, func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": serviceName})
	})

	e.POST(pushPath, params.PushHandler.HandlePush, echomiddleware.BodyLimit(pushBodyLimit))

	return e
}

// Serve starts the worker HTTP server
func (s *workerServer) Serve(_ context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("[Worker] Starting push server", slog.String("hostPort", hostPort))

	if err := s.server.Start(hostPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *workerServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("[Worker] Shutting down push server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
