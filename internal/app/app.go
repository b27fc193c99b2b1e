package app

import (
	"context"
	"log"

	"github.com/reelcritic/core/internal/config"
	http_auth "github.com/reelcritic/core/internal/delivery/http/auth"
	http_init "github.com/reelcritic/core/internal/delivery/http/init"
	http_auth_middleware "github.com/reelcritic/core/internal/delivery/http/middleware/auth"
	http_movie "github.com/reelcritic/core/internal/delivery/http/movie"
	http_preference "github.com/reelcritic/core/internal/delivery/http/preference"
	http_review "github.com/reelcritic/core/internal/delivery/http/review"
	http_sentiment "github.com/reelcritic/core/internal/delivery/http/sentiment"
	http_stats "github.com/reelcritic/core/internal/delivery/http/stats"
	infra_pg_init "github.com/reelcritic/core/internal/infra/postgres/init"
	infra_postgres_movie "github.com/reelcritic/core/internal/infra/postgres/movie"
	infra_postgres_preference "github.com/reelcritic/core/internal/infra/postgres/preference"
	infra_postgres_review "github.com/reelcritic/core/internal/infra/postgres/review"
	infra_postgres_user "github.com/reelcritic/core/internal/infra/postgres/user"
	infra_redis_init "github.com/reelcritic/core/internal/infra/redis/init"
	infra_session_cache "github.com/reelcritic/core/internal/infra/redis/session"
	"github.com/reelcritic/core/internal/seed"
	session_auth "github.com/reelcritic/core/internal/service/auth/session"
	service_sentiment "github.com/reelcritic/core/internal/service/sentiment"
	usecase_movie "github.com/reelcritic/core/internal/usecase/movie"
	usecase_preference "github.com/reelcritic/core/internal/usecase/preference"
	usecase_review "github.com/reelcritic/core/internal/usecase/review"
)

func Go(cfg *config.Config) {
	redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
	pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)

	movieRepository := infra_postgres_movie.New(pgConn)
	reviewRepository := infra_postgres_review.New(pgConn)
	preferenceRepository := infra_postgres_preference.New(pgConn)
	userRepository := infra_postgres_user.New(pgConn)

	neutralPolicy, err := service_sentiment.ParseNeutralPolicy(cfg.Sentiment.NeutralPolicy)
	if err != nil {
		log.Fatalf("invalid sentiment config: %v", err)
	}
	scorer := service_sentiment.New(service_sentiment.WithNeutralPolicy(neutralPolicy))

	movieUC := usecase_movie.New(movieRepository, reviewRepository)
	reviewUC := usecase_review.New(reviewRepository, movieRepository, preferenceRepository, scorer)
	preferenceUC := usecase_preference.New(preferenceRepository)

	if err := movieUC.Seed(context.Background(), seed.Catalog()); err != nil {
		log.Fatalf("failed to seed movie catalog: %v", err)
	}

	sessionCache := infra_session_cache.New(redisConn, "session_cache")
	authService := session_auth.New(cfg.Session.TTL, userRepository, sessionCache)
	authMiddleware := http_auth_middleware.New(authService, cfg.Session.CookieName)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Add(http_auth.New(authService, authMiddleware, cfg.Session.CookieName, cfg.Session.Secure))
	controllerPool.Add(http_movie.New(movieUC))
	controllerPool.Add(http_review.New(reviewUC, authMiddleware))
	controllerPool.Add(http_sentiment.New(scorer, authMiddleware))
	controllerPool.Add(http_preference.New(preferenceUC, authMiddleware))
	controllerPool.Add(http_stats.New(reviewUC, authMiddleware))

	controllerPool.Register()
	controllerPool.RunAll(cfg.HTTP.Port)
}
