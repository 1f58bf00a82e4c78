package parser

import (
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/namsral/flag"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	enTranslations "github.com/go-playground/validator/v10/translations/en"

	"compile-js/internal/compile"
	"compile-js/internal/config"
	"compile-js/internal/validation"
)

// EnvPrefix prefixes every environment variable the tool reads, e.g.
// COMPILE_JS_ENDPOINT.
const EnvPrefix = "COMPILE_JS"

type Arguments struct {
	Endpoint         string `validate:"required,url"`
	CompilationLevel string `validate:"required,oneof=WHITESPACE_ONLY SIMPLE_OPTIMIZATIONS ADVANCED_OPTIMIZATIONS"`
	OutputFormat     string `validate:"required,oneof=text json xml"`
	OutputInfo       string `validate:"required,oneof=compiled_code warnings errors statistics"`
	LogLevel         string `validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
}

// ParseEnvironmentArguments reads the configuration from the given
// environment. Command line arguments are never parsed as flags since every
// one of them is a source file path.
func ParseEnvironmentArguments(environ []string) (Arguments, error) {
	args := Arguments{}
	defaults := compile.DefaultOptions()

	fs := flag.NewFlagSetWithEnvPrefix("compile-js", EnvPrefix, flag.ContinueOnError)

	fs.StringVar(&args.Endpoint, "endpoint", compile.DefaultURL, "")
	fs.StringVar(&args.CompilationLevel, "compilation-level", defaults.CompilationLevel, "")
	fs.StringVar(&args.OutputFormat, "output-format", defaults.OutputFormat, "")
	fs.StringVar(&args.OutputInfo, "output-info", defaults.OutputInfo, "")
	fs.StringVar(&args.LogLevel, "log-level", config.DefaultLogLevel, "")

	if err := fs.ParseEnv(environ); err != nil {
		return args, errors.Wrap(err, "failed to parse environment")
	}

	if err := args.Validate(); err != nil {
		return args, err
	}

	log.Debug().Msgf("%+v parsed arguments", args)

	return args, nil
}

// Validate checks every argument, returning the readable validation messages
// joined into one error.
func (a Arguments) Validate() error {
	validate := validator.New()
	translator := getTranslator()

	_ = enTranslations.RegisterDefaultTranslations(validate, translator)

	return errors.Wrap(validation.Check(validate, translator, a), "invalid configuration")
}

// Options returns the compilation options the arguments describe.
func (a Arguments) Options() compile.Options {
	return compile.Options{
		CompilationLevel: a.CompilationLevel,
		OutputFormat:     a.OutputFormat,
		OutputInfo:       a.OutputInfo,
	}
}

// CompileEndpoint returns where the compile request is sent.
func (a Arguments) CompileEndpoint() compile.Endpoint {
	return compile.Endpoint{URL: a.Endpoint, ContentType: compile.DefaultContentType}
}

func getTranslator() ut.Translator {
	english := en.New()
	uni := ut.New(english, english)
	translator, _ := uni.GetTranslator("en")

	return translator
}
