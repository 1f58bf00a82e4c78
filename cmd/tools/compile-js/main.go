package main

import (
	"context"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"compile-js/internal/compile"
	"compile-js/internal/config"
	"compile-js/internal/files"
	"compile-js/internal/parser"
)

// run compiles the given paths. Invalid configuration only fails the run
// when there are sources to send; with no paths the defaults are used and the
// no code message is still printed.
func run(ctx context.Context, paths []string, environ []string, stdout io.Writer) error {
	args, err := parser.ParseEnvironmentArguments(environ)

	if err != nil {
		if len(paths) > 0 {
			return errors.Wrap(err, "failed to parse configuration")
		}

		log.Warn().Err(err).Msg("ignoring invalid configuration, no sources given")
	} else if err := config.ConfigureLogger(os.Stderr, config.GetCurrentEnvironment(), args.LogLevel); err != nil {
		return errors.Wrap(err, "failed to configure logging")
	}

	log.Logger = log.With().Str("invocation", uuid.NewString()).Logger()

	runner := compile.Runner{
		Files:   files.NewLocalFiles(),
		Client:  compile.NewClient(args.CompileEndpoint(), compile.NewHTTPClient()),
		Options: args.Options(),
		Output:  stdout,
	}

	return runner.Run(ctx, paths)
}

func main() {
	// logging goes to stderr until the configured level is known.
	_ = config.ConfigureLogger(os.Stderr, config.GetCurrentEnvironment(), "")

	if err := run(context.Background(), os.Args[1:], os.Environ(), os.Stdout); err != nil {
		var fileErr *compile.FileAccessError
		var networkErr *compile.NetworkError

		switch {
		case errors.As(err, &fileErr):
			log.Fatal().Err(err).Str("path", fileErr.Path).Msg("failed to read source file")
		case errors.As(err, &networkErr):
			log.Fatal().Err(err).Str("endpoint", networkErr.Endpoint).Msg("failed to compile sources")
		default:
			log.Fatal().Err(err).Msg("failed to run compile-js")
		}
	}
}
