// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tftcfg

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

const cydYAML = `
chip: ESP32
driver: ILI9341_2
pins:
  miso: 12
  mosi: 13
  sclk: 14
  cs: 15
  dc: 2
  rst: shared
  bl: 21
  touch_cs: 33
backlight_on: HIGH
fonts: [GLCD, FONT2, FONT4, FONT6, FONT7, FONT8, GFXFF, SMOOTH]
spi:
  write: 55MHz
  read: 20MHz
  touch: 2500kHz
`

func TestLoad(t *testing.T) {
	for _, tc := range []struct {
		name string
		in   string
		want Config
	}{
		{
			name: "ESP32_2432S028R",
			in:   cydYAML,
			want: ESP32_2432S028R(),
		},
		{
			name: "unwired pins",
			in:   strings.Replace(strings.Replace(cydYAML, "cs: 15", "cs: -1", 1), "  touch_cs: 33\n", "", 1),
			want: func() Config {
				c := ESP32_2432S028R()
				c.CS = NoPin
				c.TouchCS = NoPin
				return c
			}(),
		},
		{
			name: "minimal",
			in: `
driver: st7789
pins: {mosi: 23, sclk: 18, dc: 16, rst: 4}
backlight_on: low
spi: {write: 40MHz}
`,
			want: Config{
				Chip:        ESP32,
				Driver:      ST7789,
				MISO:        NoPin,
				MOSI:        23,
				SCLK:        18,
				CS:          NoPin,
				DC:          16,
				RST:         DedicatedPin(4),
				BL:          NoPin,
				BacklightOn: gpio.Low,
				TouchCS:     NoPin,
				Frequency:   40 * physic.MegaHertz,
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Load(strings.NewReader(tc.in))
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			if diff := cmp.Diff(*got, tc.want, cmp.AllowUnexported(Reset{})); diff != "" {
				t.Errorf("Load() difference (-got +want):\n%s", diff)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	for _, tc := range []struct {
		name    string
		in      string
		wantErr error
	}{
		{name: "unknown key", in: cydYAML + "rotation: 1\n"},
		{name: "unknown driver", in: strings.Replace(cydYAML, "ILI9341_2", "HX8357D", 1)},
		{name: "bad reset", in: strings.Replace(cydYAML, "rst: shared", "rst: maybe", 1)},
		{name: "bad polarity", in: strings.Replace(cydYAML, "HIGH", "FLOATING", 1)},
		{name: "bad font", in: strings.Replace(cydYAML, "FONT8", "FONT9", 1)},
		{name: "bad frequency", in: strings.Replace(cydYAML, "55MHz", "fast", 1)},
		{
			name:    "pin conflict",
			in:      strings.Replace(cydYAML, "dc: 2", "dc: 15", 1),
			wantErr: ErrPinConflict,
		},
		{
			name:    "negative pin",
			in:      strings.Replace(cydYAML, "cs: 15", "cs: -5", 1),
			wantErr: ErrInvalidPin,
		},
		{
			name:    "too fast",
			in:      strings.Replace(cydYAML, "55MHz", "100MHz", 1),
			wantErr: ErrFrequency,
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tc.in))
			if err == nil {
				t.Fatal("Load() succeeded")
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("Load() = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "cyd.yaml")
	if err := os.WriteFile(p, []byte(cydYAML), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFile(p)
	if err != nil {
		t.Fatalf("LoadFile() failed: %v", err)
	}
	if diff := cmp.Diff(*got, ESP32_2432S028R(), cmp.AllowUnexported(Reset{})); diff != "" {
		t.Errorf("LoadFile() difference (-got +want):\n%s", diff)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("LoadFile(missing) = %v", err)
	}
}
