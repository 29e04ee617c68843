package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/futsalhq/leaderboard/internal/config"
	"github.com/futsalhq/leaderboard/internal/domain/formation"
	"github.com/futsalhq/leaderboard/internal/domain/match"
	"github.com/futsalhq/leaderboard/internal/domain/player"
	"github.com/futsalhq/leaderboard/internal/domain/team"
	"github.com/futsalhq/leaderboard/internal/infrastructure/repository/memory"
	"github.com/futsalhq/leaderboard/internal/infrastructure/repository/postgres"
	"github.com/futsalhq/leaderboard/internal/interfaces/httpapi"
	basecache "github.com/futsalhq/leaderboard/internal/platform/cache"
	idgen "github.com/futsalhq/leaderboard/internal/platform/id"
	"github.com/futsalhq/leaderboard/internal/platform/logging"
	"github.com/futsalhq/leaderboard/internal/usecase"
)

type repositories struct {
	teams      team.Repository
	players    player.Repository
	matches    match.Repository
	formations formation.Repository
}

// NewHTTPServer wires storage, services, and the HTTP router. The returned
// close func releases storage resources and must run during shutdown.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func() error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, closeStorage, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	var resultCache *basecache.Store
	if cfg.CacheEnabled {
		resultCache = basecache.NewStore(cfg.CacheTTL)
	}

	idGen := idgen.NewRandomGenerator()

	teamSvc := usecase.NewTeamService(repos.teams, idGen)
	playerSvc := usecase.NewPlayerService(repos.players, idGen)
	matchSvc := usecase.NewMatchService(repos.matches, repos.teams, idGen)
	leaderboardSvc := usecase.NewLeaderboardService(
		repos.teams,
		repos.players,
		repos.matches,
		resultCache,
		cfg.LeaderboardWorkers,
	)
	formationSvc := usecase.NewFormationService(repos.formations, idGen)

	handler := httpapi.NewHandler(teamSvc, playerSvc, matchSvc, leaderboardSvc, formationSvc, cfg.StorageDriver, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		closeStorage()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, closeStorage, nil
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		logger.Info("storage configured", "driver", cfg.StorageDriver)
		return repositories{
			teams:      memory.NewTeamRepository(),
			players:    memory.NewPlayerRepository(),
			matches:    memory.NewMatchRepository(),
			formations: memory.NewFormationRepository(),
		}, func() error { return nil }, nil
	case config.StorageDriverPostgres:
		db, err := openDatabase(ctx, cfg)
		if err != nil {
			return repositories{}, nil, fmt.Errorf("open database: %w", err)
		}
		if err := postgres.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return repositories{}, nil, fmt.Errorf("ensure schema: %w", err)
		}
		logger.Info("storage configured", "driver", cfg.StorageDriver, "database", dbNameFromURL(cfg.DBURL))
		return repositories{
			teams:      postgres.NewTeamRepository(db),
			players:    postgres.NewPlayerRepository(db),
			matches:    postgres.NewMatchRepository(db),
			formations: postgres.NewFormationRepository(db),
		}, db.Close, nil
	default:
		return repositories{}, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}
