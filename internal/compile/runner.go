package compile

import (
	"context"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"compile-js/internal/files"
)

// NoCodeMessage is printed instead of making a request when no source files
// were given.
const NoCodeMessage = "No code :("

var errInvalidText = errors.New("content is not valid UTF-8 text")

type Runner struct {
	Files   files.Files
	Client  *Client
	Options Options
	Output  io.Writer
}

// Run reads every path, posts the sources to the compile service and writes
// the response body to the output untouched. Every file is read before any
// request is made, so an unreadable path never results in network activity.
func (r Runner) Run(ctx context.Context, paths []string) error {
	sources, err := r.readSources(paths)

	if err != nil {
		return err
	}

	if len(sources) == 0 {
		_, err := fmt.Fprintln(r.Output, NoCodeMessage)
		return errors.Wrap(err, "failed to write output")
	}

	log.Debug().Int("sources", len(sources)).Msg("submitting sources")

	data, err := r.Client.Compile(ctx, NewParameters(sources, r.Options))

	if err != nil {
		return err
	}

	if _, err := r.Output.Write(data); err != nil {
		return errors.Wrap(err, "failed to write output")
	}

	return nil
}

func (r Runner) readSources(paths []string) ([]string, error) {
	sources := make([]string, 0, len(paths))

	for _, path := range paths {
		data, err := r.Files.GetFile(path)

		if err != nil {
			return nil, &FileAccessError{Path: path, Err: err}
		}

		if !utf8.Valid(data) {
			return nil, &FileAccessError{Path: path, Err: errInvalidText}
		}

		log.Debug().Str("path", path).Int("bytes", len(data)).Msg("read source")
		sources = append(sources, string(data))
	}

	return sources, nil
}
