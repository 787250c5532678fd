// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package desc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"cogentcore.org/blade/base/errors"
	"gopkg.in/yaml.v3"
)

var (
	// ErrRead means the description file could not be read.
	ErrRead = errors.New("desc: cannot read scene description")

	// ErrDecode means the description is malformed.
	ErrDecode = errors.New("desc: malformed scene description")
)

// Formats are the supported encodings of a scene description.
type Formats int32 //enums:enum

const (
	JSON Formats = iota
	YAML
)

func (f Formats) String() string {
	switch f {
	case JSON:
		return "JSON"
	case YAML:
		return "YAML"
	}
	return fmt.Sprintf("Formats(%d)", int32(f))
}

// ExtToFormat returns the format for the given filename
// extension, which can start with a . or not.
func ExtToFormat(ext string) (Formats, error) {
	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	switch ext {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	}
	return JSON, fmt.Errorf("%w: extension %q not recognized", ErrDecode, ext)
}

// Open reads the scene description in the given file,
// with the format inferred from the filename extension.
func Open(filename string) (*Scene, error) {
	f, err := ExtToFormat(filepath.Ext(filename))
	if err != nil {
		return nil, err
	}
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return Decode(b, f)
}

// OpenFS reads the scene description in the given file of the
// given filesystem, with the format inferred from the extension.
func OpenFS(fsys fs.FS, filename string) (*Scene, error) {
	f, err := ExtToFormat(path.Ext(filename))
	if err != nil {
		return nil, err
	}
	b, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return Decode(b, f)
}

// Read reads a scene description in the given format from r.
func Read(r io.Reader, f Formats) (*Scene, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return Decode(b, f)
}

// Decode decodes a scene description in the given format.
func Decode(b []byte, f Formats) (*Scene, error) {
	sc := &Scene{}
	var err error
	switch f {
	case JSON:
		err = json.Unmarshal(b, sc)
	case YAML:
		dec := yaml.NewDecoder(bytes.NewReader(b))
		err = dec.Decode(sc)
		if errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		err = fmt.Errorf("format %v not valid", f)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return sc, nil
}
