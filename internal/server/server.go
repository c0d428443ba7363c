package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	appleagues "fantasy-hud-service/internal/app/leagues"
	appplayers "fantasy-hud-service/internal/app/players"
	apptrending "fantasy-hud-service/internal/app/trending"
	"fantasy-hud-service/internal/config"
	"fantasy-hud-service/internal/domain/trending"
	httpserver "fantasy-hud-service/internal/http"
	"fantasy-hud-service/internal/http/handlers"
	"fantasy-hud-service/internal/http/middleware"
	"fantasy-hud-service/internal/logging"
	"fantasy-hud-service/internal/metrics"
	"fantasy-hud-service/internal/poller"
	"fantasy-hud-service/internal/providers"
	"fantasy-hud-service/internal/synchronizer"
)

var metricsSetup = metrics.Setup

// Server owns the synchronizers, their pollers and the HTTP surfaces.
type Server struct {
	cfg     config.Config
	logger  *slog.Logger
	metrics *metrics.Recorder

	provider  providers.DataProvider
	directory *synchronizer.Directory
	trending  *synchronizer.Trending
	roster    *synchronizer.Roster

	httpServer    httpServer
	metricsServer httpServer
	pollers       []Poller
	leagues       leagueSync
	metricsStop   func(context.Context) error

	mu       sync.Mutex
	cancel   context.CancelFunc
	onFailed func(error)
}

// New constructs a server with default provider and poller wiring.
func New(cfg config.Config, logger *slog.Logger) *Server {
	return newServerWithProvider(cfg, logger, nil, nil)
}

func newServerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.DataProvider, recorder *metrics.Recorder) *Server {
	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(cfg, provider)
	}

	query := trending.Query{
		Sport:         cfg.Sleeper.Sport,
		LookbackHours: cfg.Sync.LookbackHours,
		Limit:         cfg.Sync.TrendingLimit,
	}
	dir := synchronizer.NewDirectory(provider, query.WithDefaults().Sport, logger)
	board := synchronizer.NewTrending(provider, query, logger)
	roster := synchronizer.NewRoster(provider, logger, recorder)

	trendingPoller := poller.New(board, logger, recorder, cfg.Sync.TrendingInterval)
	directoryPoller := poller.New(dir, logger, recorder, cfg.Sync.DirectoryEvery)

	svc := handlers.Services{
		Players:  appplayers.NewService(dir),
		Trending: apptrending.NewService(board, dir),
		Leagues:  appleagues.NewService(roster, dir),
	}
	httpSrv := buildHTTPServer(cfg, svc, logger, recorder, trendingPoller, directoryPoller)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		provider:      provider,
		directory:     dir,
		trending:      board,
		roster:        roster,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		pollers:       []Poller{trendingPoller, directoryPoller},
		leagues:       roster,
		metricsStop:   metricsShutdown,
	}
}

// newServerWithDeps is used for testing to inject custom components.
func newServerWithDeps(cfg config.Config, logger *slog.Logger, httpSrv httpServer, leagues leagueSync, pollers ...Poller) *Server {
	return &Server{
		cfg:        cfg,
		logger:     logger,
		httpServer: httpSrv,
		pollers:    pollers,
		leagues:    leagues,
	}
}

func buildHTTPServer(cfg config.Config, svc handlers.Services, logger *slog.Logger, recorder *metrics.Recorder, pollers ...Poller) httpServer {
	statusFns := make([]func() poller.Status, 0, len(pollers))
	for _, p := range pollers {
		statusFns = append(statusFns, p.Status)
	}

	handler := handlers.NewHandler(svc, logger, statusFns...)
	router := httpserver.NewRouter(handler)
	wrapped := middleware.LoggingMiddleware(logger, recorder, httpserver.WithCORS(router, cfg.HTTP.AllowedOrigins))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}
	return netHTTPServer{srv: srv}
}

// OnServeError registers fn to run when a listener fails after Start.
func (s *Server) OnServeError(fn func(error)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onFailed = fn
}

// Start launches the HTTP servers, the pollers and the roster synchronizer.
// Background work runs until Shutdown; ctx only bounds startup.
func (s *Server) Start(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	runCtx, cancel := context.WithCancel(context.Background())
	s.mu.Lock()
	if s.cancel != nil {
		s.mu.Unlock()
		cancel()
		return errors.New("server already started")
	}
	s.cancel = cancel
	s.mu.Unlock()

	s.startMetrics()
	s.startServer()
	for _, p := range s.pollers {
		p.Start(runCtx)
	}
	if s.leagues != nil {
		s.leagues.Start(runCtx)
		if id := s.cfg.Sync.LeagueID; id != "" {
			s.leagues.SetLeagueID(id)
		}
	}
	return nil
}

// Shutdown stops background work and the HTTP servers, and releases the provider.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.logger != nil {
		s.logger.Info("shutdown started")
	}
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	var errs []error
	if s.metricsStop != nil {
		if err := s.metricsStop(ctx); err != nil {
			logging.Warn(s.logger, "metrics shutdown failed", slog.Any("error", err))
		}
	}
	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(ctx); err != nil {
			logging.Warn(s.logger, "metrics server shutdown failed", slog.Any("error", err))
		}
	}

	for _, p := range s.pollers {
		if err := p.Stop(ctx); err != nil {
			logging.Error(s.logger, "failed to stop poller", err)
			errs = append(errs, err)
		}
	}
	if s.leagues != nil {
		if err := s.leagues.Stop(ctx); err != nil {
			logging.Error(s.logger, "failed to stop roster sync", err)
			errs = append(errs, err)
		}
	}

	if err := s.httpServer.Shutdown(ctx); err != nil {
		logging.Error(s.logger, "graceful shutdown failed", err)
		errs = append(errs, err)
	}

	if c, ok := s.provider.(interface{ Close() }); ok {
		c.Close()
	}

	logging.Info(s.logger, "shutdown complete")
	return errors.Join(errs...)
}

// Run starts the server and blocks until ctx is cancelled, then shuts down gracefully.
// A listener failure calls stop.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	if stop != nil {
		s.OnServeError(func(error) { stop() })
	}
	if err := s.Start(ctx); err != nil {
		logging.Error(s.logger, "server start failed", err)
		return
	}

	<-ctx.Done()
	logging.Info(s.logger, "shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	_ = s.Shutdown(shutdownCtx)
}

func (s *Server) startServer() {
	launchServer("http", s.httpServer, s.logger, s.serveFailed)
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) serveFailed(err error) {
	s.mu.Lock()
	fn := s.onFailed
	s.mu.Unlock()
	if fn != nil {
		fn(err)
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", slog.Any("error", err))
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              ":" + recCfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: readTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		logging.Info(logger, "starting "+name+" server", slog.String("addr", srv.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, name+" server failed", slog.Any("error", err))
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}
