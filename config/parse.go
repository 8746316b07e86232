// seehuhn.de/go/boxdraw - procedural glyphs for terminal cells
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/pdf/graphics"
)

// ParseError records a problem in one line of a configuration file.
type ParseError struct {
	Line int
	Key  string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s: %v", e.Line, e.Key, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var errSyntax = errors.New("invalid value")

// Parse reads settings in kitty.conf syntax.
//
// Each non-empty line holds a key and a value, separated by white space.
// Lines starting with '#' are comments.  Keys which do not affect glyph
// rendering are ignored, so that a complete terminal configuration file can
// be used as input.  Settings not mentioned keep their default values.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value := line, ""
		if i := strings.IndexAny(line, " \t"); i >= 0 {
			key, value = line[:i], strings.TrimSpace(line[i+1:])
		}

		var err error
		switch key {
		case "box_drawing_scale":
			err = parseScale(value, &cfg.BoxDrawingScale)
		case "undercurl_style":
			cfg.UndercurlStyle, err = parseUndercurl(value)
		case "cursor_beam_thickness":
			cfg.CursorBeamThickness, err = strconv.ParseFloat(value, 64)
		case "cursor_underline_thickness":
			cfg.CursorUnderlineThickness, err = strconv.ParseFloat(value, 64)
		case "curve_stamp":
			cfg.CurveStamp, err = parseStamp(value)
		default:
			continue
		}
		if err != nil {
			return nil, &ParseError{Line: lineNo, Key: key, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads the configuration file at the given path.
func Load(fname string) (cfg *Config, err error) {
	f, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	cfg, err = Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return cfg, nil
}

// parseScale reads four comma separated numbers.
func parseScale(value string, out *[NumLevels]float64) error {
	parts := strings.Split(value, ",")
	if len(parts) != NumLevels {
		return fmt.Errorf("need %d values, got %d: %w", NumLevels, len(parts), errSyntax)
	}
	var scale [NumLevels]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return err
		}
		scale[i] = v
	}
	*out = scale
	return nil
}

func parseUndercurl(value string) (UndercurlStyle, error) {
	switch value {
	case "thin-sparse":
		return 0, nil
	case "thin-dense":
		return UndercurlDense, nil
	case "thick-sparse":
		return UndercurlThick, nil
	case "thick-dense":
		return UndercurlThick | UndercurlDense, nil
	}
	return 0, fmt.Errorf("%q: %w", value, errSyntax)
}

func parseStamp(value string) (graphics.LineCapStyle, error) {
	switch value {
	case "square":
		return graphics.LineCapSquare, nil
	case "round":
		return graphics.LineCapRound, nil
	}
	return 0, fmt.Errorf("%q: %w", value, errSyntax)
}
