package main

import (
	"net/http"
	"os"

	"github.com/gorilla/handlers"
	"github.com/namsral/flag"
	"github.com/rs/zerolog/log"

	"compile-js/internal/config"
	"compile-js/internal/routing"
)

func main() {
	var (
		address  string
		logLevel string
	)

	fs := flag.NewFlagSetWithEnvPrefix("compile-echo", "COMPILE_ECHO", flag.ExitOnError)
	fs.StringVar(&address, "address", ":8080", "")
	fs.StringVar(&logLevel, "log-level", "info", "")

	_ = fs.Parse(os.Args[1:])

	if err := config.ConfigureLogger(os.Stderr, config.GetCurrentEnvironment(), logLevel); err != nil {
		log.Fatal().Err(err).Msg("failed to configure logging")
	}

	log.Info().Msgf("listening on %s", address)

	if listenErr := http.ListenAndServe(address, handlers.LoggingHandler(os.Stderr, routing.NewRouter())); listenErr != nil {
		log.Fatal().Err(listenErr).Msg("failed to listen")
	}
}
