package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/riskibarqy/seriea-gateway/external/apifootball"
	"github.com/riskibarqy/seriea-gateway/internal/config"
	"github.com/riskibarqy/seriea-gateway/internal/domain/clubalias"
	"github.com/riskibarqy/seriea-gateway/internal/domain/clubinfo"
	"github.com/riskibarqy/seriea-gateway/internal/domain/clubstats"
	"github.com/riskibarqy/seriea-gateway/internal/domain/playerstats"
	"github.com/riskibarqy/seriea-gateway/internal/infrastructure/lock"
	cacherepo "github.com/riskibarqy/seriea-gateway/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/seriea-gateway/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/seriea-gateway/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/seriea-gateway/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/seriea-gateway/internal/platform/cache"
	"github.com/riskibarqy/seriea-gateway/internal/platform/logging"
	"github.com/riskibarqy/seriea-gateway/internal/platform/resilience"
	"github.com/riskibarqy/seriea-gateway/internal/usecase"
)

const shutdownTimeout = 10 * time.Second

type closer struct {
	name string
	fn   func() error
}

// App owns the HTTP server and every backend it was wired with.
type App struct {
	cfg     config.Config
	logger  *logging.Logger
	server  *http.Server
	warmup  *usecase.WarmupService
	closers []closer
}

type stores struct {
	clubs   clubinfo.Repository
	stats   clubstats.Repository
	players playerstats.Repository
	aliases clubalias.Repository
}

// New wires the gateway. Anything opened before a failure is closed again.
func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (_ *App, err error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	a := &App{cfg: cfg, logger: logger}
	defer func() {
		if err != nil {
			_ = a.Close()
		}
	}()

	repos, err := a.buildStores(ctx)
	if err != nil {
		return nil, err
	}
	locker, err := a.buildLocker(ctx)
	if err != nil {
		return nil, err
	}

	provider := apifootball.NewClient(apifootball.ClientConfig{
		BaseURL:         cfg.UpstreamBaseURL,
		APIKey:          cfg.UpstreamAPIKey,
		Season:          cfg.UpstreamSeason,
		LeagueID:        int64(cfg.UpstreamLeagueID),
		LeagueName:      cfg.UpstreamLeagueName,
		Timeout:         cfg.UpstreamTimeout,
		MaxPages:        cfg.UpstreamMaxPages,
		PageConcurrency: cfg.UpstreamPageConcurrency,
		Logger:          logger.Named("apifootball"),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.UpstreamCircuitEnabled,
			FailureThreshold: cfg.UpstreamCircuitFailures,
			OpenTimeout:      cfg.UpstreamCircuitOpenFor,
			HalfOpenMaxReq:   cfg.UpstreamCircuitHalfOpen,
		},
	})

	clubSvc := usecase.NewClubService(repos.clubs, repos.stats, repos.aliases, provider, locker, logger)
	playerSvc := usecase.NewPlayerService(clubSvc, repos.players, provider, locker, logger)
	a.warmup = usecase.NewWarmupService(clubSvc, playerSvc, cfg.WarmupWorkers, logger.Named("warmup"))

	handler := httpapi.NewHandler(clubSvc, playerSvc, logger)
	router := httpapi.NewRouter(handler, httpapi.RouterConfig{
		APIKey:             cfg.GatewayAPIKey,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		RateLimit: httpapi.RateLimitConfig{
			Enabled:  cfg.RateLimitEnabled,
			Requests: cfg.RateLimitRequests,
			Window:   cfg.RateLimitWindow,
		},
	}, logger)

	a.server = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	return a, nil
}

func (a *App) Handler() http.Handler {
	return a.server.Handler
}

// Run serves until ctx is cancelled or the listener fails, then shuts down
// gracefully and releases every backend.
func (a *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", a.server.Addr, err)
	}
	return a.serve(ctx, ln)
}

func (a *App) serve(ctx context.Context, ln net.Listener) error {
	serveErr := make(chan error, 1)
	go func() {
		a.logger.Info("http server starting", "addr", ln.Addr().String())
		if err := a.server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	warmCtx, stopWarmup := context.WithCancel(ctx)
	defer stopWarmup()
	if len(a.cfg.WarmupTeams) > 0 {
		go a.runWarmup(warmCtx)
	}

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-serveErr:
		runErr = fmt.Errorf("http server failed: %w", err)
	}

	stopWarmup()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		runErr = errors.Join(runErr, fmt.Errorf("graceful shutdown: %w", err))
	}
	a.logger.Info("http server stopped")

	return errors.Join(runErr, a.Close())
}

func (a *App) runWarmup(ctx context.Context) {
	result, err := a.warmup.Run(ctx, a.cfg.WarmupTeams)
	if err != nil {
		a.logger.WarnContext(ctx, "warmup aborted", "error", err)
		return
	}
	a.logger.InfoContext(ctx, "warmup finished",
		"success", result.SuccessCount,
		"failed", result.FailedCount,
	)
}

// Close releases backends in reverse order of opening. It is safe to call twice.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		c := a.closers[i]
		if err := c.fn(); err != nil {
			errs = append(errs, fmt.Errorf("close %s: %w", c.name, err))
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}

func (a *App) buildStores(ctx context.Context) (stores, error) {
	var repos stores

	switch a.cfg.StoreBackend {
	case config.StoreBackendPostgres:
		db, err := openDatabase(ctx, a.cfg, a.logger)
		if err != nil {
			return stores{}, err
		}
		a.closers = append(a.closers, closer{name: "postgres", fn: db.Close})
		repos = stores{
			clubs:   postgres.NewClubInfoRepository(db),
			stats:   postgres.NewClubStatsRepository(db),
			players: postgres.NewPlayerStatsRepository(db),
			aliases: postgres.NewClubAliasRepository(db),
		}
	case config.StoreBackendMemory:
		a.logger.Warn("memory store selected, records are lost on restart")
		repos = stores{
			clubs:   memory.NewClubInfoRepository(),
			stats:   memory.NewClubStatsRepository(),
			players: memory.NewPlayerStatsRepository(),
			aliases: memory.NewClubAliasRepository(),
		}
	default:
		return stores{}, fmt.Errorf("unsupported store backend %q", a.cfg.StoreBackend)
	}

	if !a.cfg.CacheEnabled {
		return repos, nil
	}

	store := basecache.NewStore(a.cfg.CacheTTL)
	return stores{
		clubs:   cacherepo.NewClubInfoRepository(repos.clubs, store),
		stats:   cacherepo.NewClubStatsRepository(repos.stats, store),
		players: cacherepo.NewPlayerStatsRepository(repos.players, store),
		aliases: cacherepo.NewClubAliasRepository(repos.aliases, store),
	}, nil
}

func (a *App) buildLocker(ctx context.Context) (usecase.KeyLocker, error) {
	switch a.cfg.LockBackend {
	case config.LockBackendMemory:
		return lock.NewMemoryLocker(), nil
	case config.LockBackendRedis:
		opts, err := redis.ParseURL(a.cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("parse REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		a.closers = append(a.closers, closer{name: "redis", fn: client.Close})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			return nil, fmt.Errorf("ping redis %s: %w", opts.Addr, err)
		}
		a.logger.Info("redis lock backend connected", "addr", opts.Addr)

		return lock.NewRedisLocker(client, lock.RedisLockerConfig{
			TTL:    a.cfg.LockTTL,
			Logger: a.logger.Named("lock"),
		}), nil
	default:
		return nil, fmt.Errorf("unsupported lock backend %q", a.cfg.LockBackend)
	}
}
