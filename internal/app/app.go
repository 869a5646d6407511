package app

import (
	"fmt"
	"net/http"

	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/config"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/player"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/playerstats"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/team"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/domain/teamstats"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/infrastructure/repository/breaker"
	cacherepo "github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/infrastructure/repository/cache"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/infrastructure/repository/memory"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/infrastructure/repository/postgres"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/interfaces/httpapi"
	basecache "github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/platform/cache"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/platform/logging"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/platform/resilience"
	"github.com/StevenMabasa/Sports-Stats-Tracker-sub001/internal/usecase"
	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

type repositories struct {
	teams       team.Repository
	players     player.Repository
	matchStats  teamstats.Repository
	playerStats playerstats.Repository
}

// NewHTTPServer wires repositories, services and the router. The returned
// closer releases the database pool and must be called after shutdown.
func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, closer, err := buildRepositories(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	teamStatsSvc := usecase.NewTeamStatsService(
		repos.teams,
		repos.matchStats,
		usecase.TeamStatsConfig{
			FormLength:      cfg.StatsFormLength,
			CompareWorkers:  cfg.ReportWorkerCount,
			CompareMaxTeams: cfg.ReportMaxTeams,
		},
		logger,
	)
	playerStatsSvc := usecase.NewPlayerStatsService(
		repos.teams,
		repos.players,
		repos.playerStats,
		cfg.ReportWorkerCount,
	)

	handler := httpapi.NewHandler(teamStatsSvc, playerStatsSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return server, closer, nil
}

func buildRepositories(cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	var (
		repos  repositories
		closer = func() error { return nil }
	)

	if cfg.UsesDatabase() {
		db, err := openDB(cfg)
		if err != nil {
			return repositories{}, nil, err
		}
		cb := resilience.NewCircuitBreakerFromConfig(cfg.DBCircuitBreaker)
		repos = repositories{
			teams:       breaker.NewTeamRepository(postgres.NewTeamRepository(db), cb),
			players:     breaker.NewPlayerRepository(postgres.NewPlayerRepository(db), cb),
			matchStats:  breaker.NewMatchStatsRepository(postgres.NewMatchStatsRepository(db), cb),
			playerStats: breaker.NewPlayerStatsRepository(postgres.NewPlayerStatsRepository(db), cb),
		}
		closer = db.Close
		logger.Info("repositories ready",
			"backend", "postgres",
			"db_name", dbNameFromURL(cfg.DBURL),
			"circuit_breaker", cfg.DBCircuitBreaker.Enabled,
		)
	} else {
		seed, err := memory.LoadSeed()
		if err != nil {
			return repositories{}, nil, errors.Wrap(err, "load memory seed")
		}
		repos = repositories{
			teams:       memory.NewTeamRepository(seed.Teams),
			players:     memory.NewPlayerRepository(seed.Players),
			matchStats:  memory.NewMatchStatsRepository(seed.MatchStats),
			playerStats: memory.NewPlayerStatsRepository(seed.PlayerStats),
		}
		logger.Info("repositories ready",
			"backend", "memory",
			"teams", len(seed.Teams),
			"match_rows", len(seed.MatchStats),
		)
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		repos.teams = cacherepo.NewTeamRepository(repos.teams, store)
		repos.players = cacherepo.NewPlayerRepository(repos.players, store)
		repos.matchStats = cacherepo.NewMatchStatsRepository(repos.matchStats, store)
		logger.Info("repository cache enabled", "ttl", cfg.CacheTTL.String())
	}

	return repos, closer, nil
}

func openDB(cfg config.Config) (*sqlx.DB, error) {
	dsn := normalizeDBURL(cfg.DBURL, cfg.DBDisablePreparedBinary)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, errors.Wrap(err, "open postgres")
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping postgres")
	}
	return db, nil
}
