package main

import (
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"

	"github.com/pouchbudget/backend/internal/config"
	"github.com/pouchbudget/backend/internal/models"
	"github.com/pouchbudget/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// Create the directory the database lives in
	err = os.MkdirAll(filepath.Dir(cfg.Database.Path), os.ModePerm)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	err = models.Connect(cfg.Database.Path)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// The API URL defaults to the local listener. Deployments behind a
	// reverse proxy override it so that links in responses are absolute
	apiURL, ok := os.LookupEnv("API_URL")
	if !ok {
		apiURL = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}

	url, err := url.Parse(apiURL)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, teardown, err := router.Config(url, cfg.CORS.AllowOrigins)
	defer teardown()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(r.Group(""))

	if err := r.Run(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
