// @title         GitWrapped API
// @version       0.1.0
// @description   Yearly GitHub activity snapshots with a persona on top

package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	gh "gitwrapped/internal/adapters/github"
	"gitwrapped/internal/platform/config"
	"gitwrapped/internal/platform/logger"
	phttp "gitwrapped/internal/platform/net/http"

	"gitwrapped/internal/services/api"
)

func main() {
	// optional .env for local development, real env always wins
	_ = godotenv.Load()

	// service-scoped config for HTTP etc (WRAPPED_API_*)
	root := config.New()
	apiCfg := root.Prefix("WRAPPED_API_")
	ghCfg := root.Prefix("GITHUB_")

	// bring up logging early
	l := logger.Get()

	client := gh.NewClient(gh.Options{
		BaseURL:    ghCfg.MayString("BASE_URL", ""),
		UserAgent:  ghCfg.MayString("USER_AGENT", "gitwrapped"),
		Timeout:    ghCfg.MayDuration("TIMEOUT", 10*time.Second),
		MaxRetries: ghCfg.MayInt("MAX_RETRIES", 3),
		RetryBase:  ghCfg.MayDuration("RETRY_BASE", 500*time.Millisecond),
	})

	// http server (reads WRAPPED_API_PORT / WRAPPED_API_ADDR)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config:        root,
			Logger:        l,
			GitHub:        client,
			EnableSwagger: apiCfg.MayBool("SWAGGER", true),
		},
	)

	// run
	if err := srv.Run(context.Background()); err != nil {
		l.Panic().Err(err).Msg("http server stopped")
	}
}
