package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compile-js/internal/compile"
)

func TestParseEnvironmentArguments(t *testing.T) {
	tests := []struct {
		name    string
		environ []string
		want    Arguments
		wantErr string
	}{{
		name:    "should use the defaults with no environment",
		environ: nil,
		want: Arguments{
			Endpoint:         "http://closure-compiler.appspot.com/compile",
			CompilationLevel: "SIMPLE_OPTIMIZATIONS",
			OutputFormat:     "text",
			OutputInfo:       "compiled_code",
			LogLevel:         "warn",
		},
	}, {
		name: "should read prefixed variables",
		environ: []string{
			"COMPILE_JS_ENDPOINT=http://localhost:8080/compile",
			"COMPILE_JS_COMPILATION_LEVEL=ADVANCED_OPTIMIZATIONS",
			"COMPILE_JS_OUTPUT_FORMAT=json",
			"COMPILE_JS_OUTPUT_INFO=warnings",
			"COMPILE_JS_LOG_LEVEL=debug",
		},
		want: Arguments{
			Endpoint:         "http://localhost:8080/compile",
			CompilationLevel: "ADVANCED_OPTIMIZATIONS",
			OutputFormat:     "json",
			OutputInfo:       "warnings",
			LogLevel:         "debug",
		},
	}, {
		name:    "should ignore variables without the prefix",
		environ: []string{"ENDPOINT=http://localhost:8080/compile", "OUTPUT_FORMAT=xml"},
		want: Arguments{
			Endpoint:         "http://closure-compiler.appspot.com/compile",
			CompilationLevel: "SIMPLE_OPTIMIZATIONS",
			OutputFormat:     "text",
			OutputInfo:       "compiled_code",
			LogLevel:         "warn",
		},
	}, {
		name:    "should reject an unknown compilation level",
		environ: []string{"COMPILE_JS_COMPILATION_LEVEL=EXTREME"},
		wantErr: "CompilationLevel must be one of",
	}, {
		name:    "should reject an invalid endpoint",
		environ: []string{"COMPILE_JS_ENDPOINT=not a url"},
		wantErr: "Endpoint must be a valid URL",
	}, {
		name:    "should reject an unknown output format",
		environ: []string{"COMPILE_JS_OUTPUT_FORMAT=yaml"},
		wantErr: "OutputFormat must be one of",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEnvironmentArguments(tt.environ)

			if tt.wantErr != "" {
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArgumentsConversion(t *testing.T) {
	args := Arguments{
		Endpoint:         "http://localhost:8080/compile",
		CompilationLevel: "WHITESPACE_ONLY",
		OutputFormat:     "xml",
		OutputInfo:       "statistics",
	}

	assert.Equal(t, compile.Options{
		CompilationLevel: "WHITESPACE_ONLY",
		OutputFormat:     "xml",
		OutputInfo:       "statistics",
	}, args.Options())

	assert.Equal(t, compile.Endpoint{
		URL:         "http://localhost:8080/compile",
		ContentType: "application/x-www-form-urlencoded",
	}, args.CompileEndpoint())
}
