package compile

import (
	"net/url"
	"strings"
)

const (
	SourceKey           = "js_code"
	CompilationLevelKey = "compilation_level"
	OutputFormatKey     = "output_format"
	OutputInfoKey       = "output_info"
)

// Options are the fixed compilation settings sent after the sources. They are
// opaque to this program and passed through to the service unchanged.
type Options struct {
	// How aggressively the service optimises the code, e.g.
	// WHITESPACE_ONLY, SIMPLE_OPTIMIZATIONS or ADVANCED_OPTIMIZATIONS.
	CompilationLevel string
	// The format of the response, text, json or xml.
	OutputFormat string
	// What the service should report back, compiled_code by default.
	OutputInfo string
}

// DefaultOptions returns the options the service is called with unless
// configured otherwise.
func DefaultOptions() Options {
	return Options{
		CompilationLevel: "SIMPLE_OPTIMIZATIONS",
		OutputFormat:     "text",
		OutputInfo:       "compiled_code",
	}
}

type Parameter struct {
	Key   string
	Value string
}

// Parameters is an ordered list of form fields. Unlike url.Values it keeps
// duplicate keys in the order they were added.
type Parameters []Parameter

// NewParameters builds the request fields: one js_code field per source in
// the order given, followed by the three option fields.
func NewParameters(sources []string, options Options) Parameters {
	params := make(Parameters, 0, len(sources)+3)

	for _, source := range sources {
		params = append(params, Parameter{Key: SourceKey, Value: source})
	}

	return append(params,
		Parameter{Key: CompilationLevelKey, Value: options.CompilationLevel},
		Parameter{Key: OutputFormatKey, Value: options.OutputFormat},
		Parameter{Key: OutputInfoKey, Value: options.OutputInfo},
	)
}

// Encode returns the application/x-www-form-urlencoded form of the
// parameters, keeping their order.
func (p Parameters) Encode() string {
	var builder strings.Builder

	for i, param := range p {
		if i > 0 {
			builder.WriteByte('&')
		}

		builder.WriteString(url.QueryEscape(param.Key))
		builder.WriteByte('=')
		builder.WriteString(url.QueryEscape(param.Value))
	}

	return builder.String()
}
