// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tftcfg

import (
	"fmt"
	"strings"
)

// Font is a glyph set that can be linked into the firmware.
type Font uint16

// Fonts known to TFT_eSPI.
const (
	GLCD      Font = 1 << iota // Adafruit 5x7 bitmap font.
	Font2                      // 16 pixel high bitmap font.
	Font4                      // 26 pixel high bitmap font.
	Font6                      // 48 pixel high digits.
	Font7                      // 48 pixel high 7-segment digits.
	Font8                      // 75 pixel high digits.
	FreeFonts                  // Adafruit GFX free fonts.
	Smooth                     // Anti-aliased fonts loaded from flash.

	lastFont = Smooth
)

var fontNames = map[Font]struct{ name, define string }{
	GLCD:      {"GLCD", "LOAD_GLCD"},
	Font2:     {"FONT2", "LOAD_FONT2"},
	Font4:     {"FONT4", "LOAD_FONT4"},
	Font6:     {"FONT6", "LOAD_FONT6"},
	Font7:     {"FONT7", "LOAD_FONT7"},
	Font8:     {"FONT8", "LOAD_FONT8"},
	FreeFonts: {"GFXFF", "LOAD_GFXFF"},
	Smooth:    {"SMOOTH", "SMOOTH_FONT"},
}

func (f Font) String() string {
	if n, ok := fontNames[f]; ok {
		return n.name
	}
	return fmt.Sprintf("Font(%#x)", uint16(f))
}

// Define returns the preprocessor symbol linking this font.
func (f Font) Define() string {
	return fontNames[f].define
}

// Set sets the Font to a value represented by the string s. Set implements
// the flag.Value interface.
func (f *Font) Set(s string) error {
	u := strings.ToUpper(strings.TrimSpace(s))
	u = strings.TrimPrefix(u, "LOAD_")
	u = strings.TrimSuffix(u, "_FONT")
	for v, n := range fontNames {
		if n.name == u {
			*f = v
			return nil
		}
	}
	return fmt.Errorf("unknown font %q: expected GLCD, FONT2, FONT4, FONT6, FONT7, FONT8, GFXFF or SMOOTH", s)
}

// Fonts is a set of fonts.
type Fonts uint16

// AllFonts links every known font.
const AllFonts = Fonts(lastFont<<1 - 1)

// NewFonts returns the set containing fs.
func NewFonts(fs ...Font) Fonts {
	var s Fonts
	for _, f := range fs {
		s |= Fonts(f)
	}
	return s
}

// Has reports whether f is in the set.
func (s Fonts) Has(f Font) bool {
	return s&Fonts(f) != 0
}

// With returns the set with f added.
func (s Fonts) With(f Font) Fonts {
	return s | Fonts(f)
}

// Without returns the set with f removed.
func (s Fonts) Without(f Font) Fonts {
	return s &^ Fonts(f)
}

// List returns the fonts in the set, in ascending order.
func (s Fonts) List() []Font {
	var out []Font
	for f := GLCD; f <= lastFont; f <<= 1 {
		if s.Has(f) {
			out = append(out, f)
		}
	}
	return out
}

func (s Fonts) String() string {
	l := s.List()
	names := make([]string, len(l))
	for i, f := range l {
		names[i] = f.String()
	}
	return strings.Join(names, ",")
}

// Set parses a comma separated list of fonts. Set implements the flag.Value
// interface.
func (s *Fonts) Set(v string) error {
	var out Fonts
	for _, n := range strings.Split(v, ",") {
		if strings.TrimSpace(n) == "" {
			continue
		}
		var f Font
		if err := f.Set(n); err != nil {
			return err
		}
		out = out.With(f)
	}
	*s = out
	return nil
}

func (s Fonts) valid() bool {
	return s&^AllFonts == 0
}
