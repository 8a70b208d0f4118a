package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"github.com/vats-app/vats-api/internal/config"
	"github.com/vats-app/vats-api/internal/domain/roster"
	"github.com/vats-app/vats-api/internal/domain/score"
	"github.com/vats-app/vats-api/internal/domain/sport"
	"github.com/vats-app/vats-api/internal/domain/user"
	"github.com/vats-app/vats-api/internal/infrastructure/account/directory"
	cacherepo "github.com/vats-app/vats-api/internal/infrastructure/repository/cache"
	"github.com/vats-app/vats-api/internal/infrastructure/repository/dynamo"
	"github.com/vats-app/vats-api/internal/infrastructure/repository/memory"
	"github.com/vats-app/vats-api/internal/infrastructure/repository/postgres"
	"github.com/vats-app/vats-api/internal/interfaces/httpapi"
	"github.com/vats-app/vats-api/internal/platform/cache"
	idgen "github.com/vats-app/vats-api/internal/platform/id"
	"github.com/vats-app/vats-api/internal/platform/resilience"
	"github.com/vats-app/vats-api/internal/usecase"

	_ "github.com/lib/pq"
)

func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, error) {
	repos, err := buildRepositories(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.CacheEnabled {
		store := cache.NewStore(cfg.CacheTTL)
		repos.roster = cacherepo.NewRosterRepository(repos.roster, store)
		repos.score = cacherepo.NewScoreRepository(repos.score, store)
	}

	sports := sport.ApplyInactive(sport.Config(), cfg.InactiveSports)

	var (
		dir      user.Directory
		verifier httpapi.TokenVerifier
	)
	if cfg.RepoBackend == config.BackendMemory {
		// Local runs have no directory service; serve the seeded users
		// and accept any bearer token as the first seeded account.
		mem := memory.NewDirectory(memory.SeedUsers())
		dir = mem
		verifier = seededVerifier{directory: mem}
	} else {
		client := directory.NewClient(nil, directory.Config{
			BaseURL:        cfg.DirectoryBaseURL,
			UsersPath:      cfg.DirectoryUsersPath,
			IntrospectPath: cfg.DirectoryIntrospectPath,
			AdminKey:       cfg.DirectoryAdminKey,
			Timeout:        cfg.DirectoryTimeout,
			CacheTTL:       cfg.DirectoryCacheTTL,
			Breaker: resilience.CircuitBreakerConfig{
				Enabled:          cfg.DirectoryCircuitEnabled,
				FailureThreshold: cfg.DirectoryCircuitFailureCount,
				OpenTimeout:      cfg.DirectoryCircuitOpenTimeout,
				HalfOpenMaxReq:   cfg.DirectoryCircuitHalfOpenMax,
			},
		}, logger)
		dir = client
		verifier = client
	}

	leaderboardSvc := usecase.NewLeaderboardService(dir, repos.roster, repos.score, nil, sports)
	rosterSvc := usecase.NewRosterService(repos.roster)
	scoreSvc := usecase.NewScoreService(repos.score, nil, idgen.NewRandomGenerator())
	sportSvc := usecase.NewSportService(sports)

	handler := httpapi.NewHandler(leaderboardSvc, rosterSvc, scoreSvc, sportSvc, logger)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins, cfg.AdminToken)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}

type repositories struct {
	roster roster.Repository
	score  score.Repository
}

func buildRepositories(cfg config.Config) (repositories, error) {
	switch cfg.RepoBackend {
	case config.BackendMemory:
		return repositories{
			roster: memory.NewRosterRepository(memory.SeedSelections()),
			score:  memory.NewScoreRepository(memory.SeedScores()),
		}, nil
	case config.BackendPostgres:
		db, err := openPostgres(cfg)
		if err != nil {
			return repositories{}, err
		}
		return repositories{
			roster: postgres.NewRosterRepository(db),
			score:  postgres.NewScoreRepository(db),
		}, nil
	case config.BackendDynamo:
		client := dynamo.NewClient(cfg.DynamoRegion, cfg.DynamoEndpoint)
		return repositories{
			roster: dynamo.NewRosterRepository(client, cfg.DynamoSelectionsTable),
			score:  dynamo.NewScoreRepository(client, cfg.DynamoScoresTable),
		}, nil
	default:
		return repositories{}, fmt.Errorf("unsupported repo backend %q", cfg.RepoBackend)
	}
}

func openPostgres(cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Connect("postgres", cfg.DBURL,
		otelsql.WithDBName(dbNameFromURL(cfg.DBURL)),
	)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	return db, nil
}

// seededVerifier backs auth in the memory backend: any non-empty token maps
// to the first seeded user.
type seededVerifier struct {
	directory *memory.Directory
}

func (v seededVerifier) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	users, err := v.directory.ListUsers(ctx)
	if err != nil || len(users) == 0 {
		return user.Principal{}, fmt.Errorf("%w: no seeded users", usecase.ErrUnauthorized)
	}

	return user.Principal{UserID: users[0].ID}, nil
}
