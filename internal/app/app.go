package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/lol-fantasy-league/internal/config"
	"github.com/riskibarqy/lol-fantasy-league/internal/infrastructure/account/anubis"
	"github.com/riskibarqy/lol-fantasy-league/internal/infrastructure/jobqueue"
	repocache "github.com/riskibarqy/lol-fantasy-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/lol-fantasy-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/lol-fantasy-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/lol-fantasy-league/internal/interfaces/httpapi"
	"github.com/riskibarqy/lol-fantasy-league/internal/platform/cache"
	idgen "github.com/riskibarqy/lol-fantasy-league/internal/platform/id"
	"github.com/riskibarqy/lol-fantasy-league/internal/platform/logging"
	"github.com/riskibarqy/lol-fantasy-league/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
)

// App is the assembled API process: its HTTP server plus whatever must be closed on shutdown.
type App struct {
	Server *http.Server

	closers []func() error
}

// Close releases storage handles. Safe to call on a partially built App.
func (a *App) Close() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}

type storage struct {
	repos usecase.FantasyRepositories
	tx    usecase.LeagueTransactor
	close func() error
}

func New(ctx context.Context, cfg config.Config, logger *logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	store, err := newStorage(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	application := &App{closers: []func() error{store.close}}

	repos := store.repos
	if cfg.CacheEnabled {
		catalogCache := cache.NewStore(cfg.CacheTTL)
		repos.SourceLeagues = repocache.NewSourceLeagueRepository(repos.SourceLeagues, catalogCache)
		repos.Players = repocache.NewProPlayerRepository(repos.Players, catalogCache)
		logger.Info("catalog cache enabled", "ttl", cfg.CacheTTL.String())
	}

	var queue usecase.JobQueue
	if cfg.QStashEnabled {
		queue = jobqueue.NewQStashPublisher(jobqueue.QStashPublisherConfig{
			BaseURL:          cfg.QStashBaseURL,
			Token:            cfg.QStashToken,
			TargetBaseURL:    cfg.QStashTargetBaseURL,
			Retries:          cfg.QStashRetries,
			InternalJobToken: cfg.InternalJobToken,
			CircuitBreaker:   cfg.QStashCircuit,
		}, logger)
	} else {
		logger.Info("qstash disabled", "reason", "QSTASH_ENABLED=false")
	}

	userSvc := usecase.NewUserService(repos.Users, logger)
	sourceLeagueSvc := usecase.NewSourceLeagueService(repos.SourceLeagues, repos.Players)
	fantasyLeagueSvc := usecase.NewFantasyLeagueService(repos, store.tx, idgen.NewUUIDGenerator(), logger)
	fantasyTeamSvc := usecase.NewFantasyTeamService(repos, store.tx, logger)
	weekRolloverSvc := usecase.NewWeekRolloverService(repos, store.tx, queue, usecase.WeekRolloverConfig{
		SeasonWeeks: cfg.FantasySeasonWeeks,
		Workers:     cfg.WeekRolloverWorkers,
		Interval:    cfg.WeekRolloverInterval,
	}, logger)

	anubisClient := anubis.NewClient(
		&http.Client{Timeout: cfg.AnubisTimeout},
		anubis.Config{
			BaseURL:        cfg.AnubisBaseURL,
			IntrospectPath: cfg.AnubisIntrospectURL,
			AdminKey:       cfg.AnubisAdminKey,
			CacheTTL:       cfg.AnubisTokenCacheTTL,
			CircuitBreaker: cfg.AnubisCircuit,
		},
		logger,
	)

	handler := httpapi.NewHandler(userSvc, sourceLeagueSvc, fantasyLeagueSvc, fantasyTeamSvc, weekRolloverSvc, logger)
	router := httpapi.NewRouter(handler, anubisClient, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	application.Server = &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
	}

	return application, nil
}

func newStorage(ctx context.Context, cfg config.Config, logger *logging.Logger) (storage, error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openDatabase(ctx, cfg)
		if err != nil {
			return storage{}, err
		}
		logger.Info("storage ready", "driver", cfg.StorageDriver, "db_name", dbNameFromURL(cfg.DBURL))
		return storage{
			repos: usecase.FantasyRepositories{
				Leagues:       postgres.NewFantasyLeagueRepository(db),
				Memberships:   postgres.NewMembershipRepository(db),
				DraftOrder:    postgres.NewDraftOrderRepository(db),
				Scoring:       postgres.NewScoringSettingsRepository(db),
				Teams:         postgres.NewFantasyTeamRepository(db),
				Players:       postgres.NewProPlayerRepository(db),
				SourceLeagues: postgres.NewSourceLeagueRepository(db),
				Users:         postgres.NewUserRepository(db),
			},
			tx:    postgres.NewLeagueTransactor(db),
			close: db.Close,
		}, nil
	case config.StorageMemory, "":
		logger.Warn("storage ready", "driver", config.StorageMemory, "note", "state is lost on restart")
		return storage{
			repos: usecase.FantasyRepositories{
				Leagues:       memory.NewFantasyLeagueRepository(),
				Memberships:   memory.NewMembershipRepository(),
				DraftOrder:    memory.NewDraftOrderRepository(),
				Scoring:       memory.NewScoringSettingsRepository(),
				Teams:         memory.NewFantasyTeamRepository(),
				Players:       memory.NewProPlayerRepository(memory.SeedProPlayers(), memory.SeedProPlayerRosters()),
				SourceLeagues: memory.NewSourceLeagueRepository(memory.SeedSourceLeagues()),
				Users:         memory.NewUserRepository(),
			},
			tx:    memory.NewLeagueTransactor(),
			close: func() error { return nil },
		}, nil
	default:
		return storage{}, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func openDatabase(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)

	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "postgresql")),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if cfg.DBMaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.DBMaxOpenConns)
		db.SetMaxIdleConns(cfg.DBMaxOpenConns)
	}
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	return db, nil
}
