package lnk

import (
	"errors"
	"fmt"

	"github.com/joshuapare/lnkkit/internal/mmfile"
	"github.com/joshuapare/lnkkit/pkg/types"
)

// OpenOptions controls how Open loads a link file.
type OpenOptions struct {
	// ZeroCopy keeps the file mapped so the views in Link alias the
	// mapping. They stay valid until Close. When false the contents are
	// copied to the heap and the mapping is released before Open returns.
	ZeroCopy bool
}

// File is a decoded link file.
type File struct {
	Path string
	Link *types.Link

	data    []byte
	release func() error
}

// Open loads and decodes the link file at path. A nil opts means the
// defaults. Failures to read the file are reported as types.ErrIO.
func Open(path string, opts *OpenOptions) (*File, error) {
	if opts == nil {
		opts = &OpenOptions{}
	}
	l := log().With().Str("path", path).Bool("zero_copy", opts.ZeroCopy).Logger()

	data, release, err := mmfile.Map(path)
	if err != nil {
		l.Debug().Err(err).Msg("cannot load link file")
		return nil, types.WrapIO(err, fmt.Sprintf("open %s", path))
	}
	if !opts.ZeroCopy {
		owned := make([]byte, len(data))
		copy(owned, data)
		if err := release(); err != nil {
			return nil, types.WrapIO(err, fmt.Sprintf("release %s", path))
		}
		data, release = owned, nil
	}
	l.Debug().Int("size", len(data)).Msg("loaded link file")

	link, err := Decode(data)
	if err != nil {
		if release != nil {
			err = errors.Join(err, release())
		}
		l.Debug().Err(err).Msg("decode failed")
		return nil, err
	}
	return &File{Path: path, Link: link, data: data, release: release}, nil
}

// Bytes returns the raw file contents the link was decoded from.
func (f *File) Bytes() []byte { return f.data }

// Close releases the file mapping, if any. Views in f.Link must not be
// used after Close when the file was opened with ZeroCopy. Close is
// idempotent.
func (f *File) Close() error {
	if f == nil || f.release == nil {
		return nil
	}
	release := f.release
	f.release = nil
	if err := release(); err != nil {
		return types.WrapIO(err, fmt.Sprintf("close %s", f.Path))
	}
	return nil
}

// ReadFile is like Open with default options but returns only the link.
func ReadFile(path string) (*types.Link, error) {
	f, err := Open(path, nil)
	if err != nil {
		return nil, err
	}
	return f.Link, nil
}
