// Package bourne is the facade of the bourne JSON library: it parses
// already-materialized JSON text (or whole files) into the json.Value
// tree. Rendering a tree back to text is the job of a separate renderer
// and is deliberately not provided here.
package bourne

import (
	"os"

	"github.com/bournejson/bourne/json"
	"github.com/bournejson/bourne/log"
	"github.com/bournejson/bourne/options"
	"github.com/bournejson/bourne/xerrors"
)

// ParseString parses src into a JSON value tree.
func ParseString(src string, setters ...options.Option) (*json.Value, error) {
	return json.Parse(src, setters...)
}

// ParseFile reads the file at path fully into memory and parses it. The
// core never streams: the whole input is buffered first. Parse failures
// are annotated with the file path and offending byte index.
func ParseFile(path string, setters ...options.Option) (*json.Value, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, xerrors.WithStack(err)
	}
	log.Debugf("parsing %s: %d bytes", path, len(d))
	val, err := json.Parse(string(d), setters...)
	if err != nil {
		return nil, annotate(err, path)
	}
	return val, nil
}

func annotate(err error, path string) error {
	perr, ok := err.(*json.ParseError)
	if !ok {
		return xerrors.WithMessageKV(err, xerrors.KeyFile, path)
	}
	return xerrors.WithMessageKV(err,
		xerrors.KeyFile, path,
		xerrors.KeyCode, perr.Code,
		xerrors.KeyIndex, perr.Index,
	)
}
