// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tftcfg

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v2"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// file is the on-disk form of a Config.
//
//	chip: ESP32
//	driver: ILI9341_2
//	pins:
//	  miso: 12
//	  mosi: 13
//	  sclk: 14
//	  cs: 15
//	  dc: 2
//	  rst: shared
//	  bl: 21
//	  touch_cs: 33
//	backlight_on: HIGH
//	fonts: [GLCD, FONT2, FONT4, FONT6, FONT7, FONT8, GFXFF, SMOOTH]
//	spi:
//	  write: 55MHz
//	  read: 20MHz
//	  touch: 2500kHz
type file struct {
	Chip        string   `yaml:"chip"`
	Driver      string   `yaml:"driver"`
	Pins        filePins `yaml:"pins"`
	BacklightOn string   `yaml:"backlight_on"`
	Fonts       []string `yaml:"fonts"`
	SPI         struct {
		Write string `yaml:"write"`
		Read  string `yaml:"read"`
		Touch string `yaml:"touch"`
	} `yaml:"spi"`
}

type filePins struct {
	MISO    *int   `yaml:"miso"`
	MOSI    *int   `yaml:"mosi"`
	SCLK    *int   `yaml:"sclk"`
	CS      *int   `yaml:"cs"`
	DC      *int   `yaml:"dc"`
	RST     string `yaml:"rst"`
	BL      *int   `yaml:"bl"`
	TouchCS *int   `yaml:"touch_cs"`
}

// LoadFile reads and validates a YAML configuration file.
func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load reads and validates a YAML configuration. Omitted pins and -1 are
// NoPin, an omitted chip is ESP32 and an omitted reset is SharedWithSystem.
func Load(r io.Reader) (*Config, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var f file
	if err := yaml.UnmarshalStrict(raw, &f); err != nil {
		return nil, fmt.Errorf("tftcfg: %w", err)
	}
	c, err := f.config()
	if err != nil {
		return nil, fmt.Errorf("tftcfg: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (f *file) config() (*Config, error) {
	c := &Config{
		Chip:    ESP32,
		MISO:    optPin(f.Pins.MISO),
		MOSI:    optPin(f.Pins.MOSI),
		SCLK:    optPin(f.Pins.SCLK),
		CS:      optPin(f.Pins.CS),
		DC:      optPin(f.Pins.DC),
		BL:      optPin(f.Pins.BL),
		TouchCS: optPin(f.Pins.TouchCS),
	}
	if f.Chip != "" {
		if err := c.Chip.Set(f.Chip); err != nil {
			return nil, err
		}
	}
	if err := c.Driver.Set(f.Driver); err != nil {
		return nil, err
	}
	var err error
	if c.RST, err = parseReset(f.Pins.RST); err != nil {
		return nil, err
	}
	if c.BacklightOn, err = parseLevel(f.BacklightOn); err != nil {
		return nil, err
	}
	for _, n := range f.Fonts {
		var ft Font
		if err := ft.Set(n); err != nil {
			return nil, err
		}
		c.Fonts = c.Fonts.With(ft)
	}
	for _, fr := range []struct {
		name string
		s    string
		dst  *physic.Frequency
	}{
		{"spi.write", f.SPI.Write, &c.Frequency},
		{"spi.read", f.SPI.Read, &c.ReadFrequency},
		{"spi.touch", f.SPI.Touch, &c.TouchFrequency},
	} {
		if fr.s == "" {
			continue
		}
		if err := fr.dst.Set(fr.s); err != nil {
			return nil, fmt.Errorf("%s: %v", fr.name, err)
		}
	}
	return c, nil
}

// optPin maps an omitted pin to NoPin. Other values, including negative
// ones, are kept for Validate to judge.
func optPin(p *int) Pin {
	if p == nil {
		return NoPin
	}
	return Pin(*p)
}

func parseReset(s string) (Reset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "shared", "-1":
		return SharedWithSystem, nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return Reset{}, fmt.Errorf("pins.rst: expected \"shared\" or a GPIO number, got %q", s)
	}
	return DedicatedPin(Pin(n)), nil
}

func parseLevel(s string) (gpio.Level, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "HIGH":
		return gpio.High, nil
	case "LOW":
		return gpio.Low, nil
	}
	return gpio.Low, fmt.Errorf("backlight_on: expected HIGH or LOW, got %q", s)
}
