// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tftcfg

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// Validation errors. Errors returned by Config.Validate wrap one of these.
var (
	ErrUnknownChip   = errors.New("tftcfg: unknown chip")
	ErrUnknownDriver = errors.New("tftcfg: unknown driver")
	ErrUnknownFont   = errors.New("tftcfg: unknown font")
	ErrInvalidPin    = errors.New("tftcfg: invalid pin")
	ErrMissingPin    = errors.New("tftcfg: missing pin")
	ErrPinConflict   = errors.New("tftcfg: pin conflict")
	ErrFrequency     = errors.New("tftcfg: frequency out of range")
)

// MaxTouchFrequency is the highest DCLK rate of the XPT2046 touch controller.
const MaxTouchFrequency = 2500 * physic.KiloHertz

// Config is the wiring and driver setup of a TFT panel.
type Config struct {
	Chip   Chip
	Driver Driver

	MISO Pin // NoPin if the panel is write only.
	MOSI Pin
	SCLK Pin
	CS   Pin // NoPin if CS is tied low.
	DC   Pin
	RST  Reset
	BL   Pin // NoPin if the backlight is always on.

	// BacklightOn is the level on BL that lights the panel.
	BacklightOn gpio.Level

	TouchCS Pin // NoPin if there is no touch controller.

	Fonts Fonts

	// Frequency is the SPI clock used to write to the panel.
	Frequency physic.Frequency
	// ReadFrequency is the SPI clock used to read back from the panel.
	ReadFrequency physic.Frequency
	// TouchFrequency is the SPI clock of the touch controller.
	TouchFrequency physic.Frequency
}

// ESP32_2432S028R returns the setup of the ESP32-2432S028R board, also known
// as the Cheap Yellow Display. Each call returns a fresh copy.
func ESP32_2432S028R() Config {
	return Config{
		Chip:           ESP32,
		Driver:         ILI9341_2,
		MISO:           12,
		MOSI:           13,
		SCLK:           14,
		CS:             15,
		DC:             2,
		RST:            SharedWithSystem,
		BL:             21,
		BacklightOn:    gpio.High,
		TouchCS:        33,
		Fonts:          NewFonts(GLCD, Font2, Font4, Font6, Font7, Font8, FreeFonts, Smooth),
		Frequency:      55 * physic.MegaHertz,
		ReadFrequency:  20 * physic.MegaHertz,
		TouchFrequency: MaxTouchFrequency,
	}
}

func (c *Config) String() string {
	return fmt.Sprintf("tftcfg.Config{%s, %s, %v, BL active %s, fonts %s, %s/%s/%s}",
		c.Chip, c.Driver, c.Pins(), c.BacklightOn, c.Fonts, c.Frequency, c.ReadFrequency, c.TouchFrequency)
}

// Pins returns the signal bindings in header order. A shared reset is
// reported as NoPin.
func (c *Config) Pins() []Binding {
	rst, _ := c.RST.Pin()
	return []Binding{
		{MISO, c.MISO},
		{MOSI, c.MOSI},
		{SCLK, c.SCLK},
		{CS, c.CS},
		{DC, c.DC},
		{RST, rst},
		{BL, c.BL},
		{TouchCS, c.TouchCS},
	}
}

// StrappingPins returns the bound pins the chip samples at boot.
func (c *Config) StrappingPins() []Binding {
	var out []Binding
	for _, b := range c.Pins() {
		if b.Pin != NoPin && c.Chip.IsStrapping(b.Pin) {
			out = append(out, b)
		}
	}
	return out
}

// Validate checks that the pins exist on the chip and are used once, and
// that the clocks are within what the driver, the chip and the touch
// controller support. All problems found are returned joined.
func (c *Config) Validate() error {
	var errs []error
	if _, ok := chips[c.Chip]; !ok {
		errs = append(errs, fmt.Errorf("%w %q", ErrUnknownChip, c.Chip))
	}
	if !c.Driver.valid() {
		errs = append(errs, fmt.Errorf("%w %q", ErrUnknownDriver, c.Driver))
	}
	// Pin and clock limits depend on the chip and the driver.
	if len(errs) == 0 {
		errs = append(errs, c.validatePins()...)
		errs = append(errs, c.validateFrequencies()...)
	}
	if !c.Fonts.valid() {
		errs = append(errs, fmt.Errorf("%w in set %#x", ErrUnknownFont, uint16(c.Fonts)))
	}
	return errors.Join(errs...)
}

func (c *Config) validatePins() []error {
	var errs []error
	if p, ok := c.RST.Pin(); ok && p == NoPin {
		errs = append(errs, fmt.Errorf("%w: %s: dedicated reset needs a pin, use SharedWithSystem instead", ErrInvalidPin, RST))
	}
	used := map[Pin]Role{}
	for _, b := range c.Pins() {
		if b.Pin == NoPin {
			switch b.Role {
			case MOSI, SCLK, DC:
				errs = append(errs, fmt.Errorf("%w: %s is required", ErrMissingPin, b.Role))
			}
			continue
		}
		if err := c.Chip.checkPin(b.Pin, b.Role != MISO); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s: %v", ErrInvalidPin, b.Role, err))
			continue
		}
		if other, ok := used[b.Pin]; ok {
			errs = append(errs, fmt.Errorf("%w: %s and %s both use %s", ErrPinConflict, other, b.Role, b.Pin))
			continue
		}
		used[b.Pin] = b.Role
	}
	return errs
}

func (c *Config) validateFrequencies() []error {
	var errs []error
	maxWrite, maxRead := c.Driver.MaxFrequency()
	if m := c.Chip.MaxSPIFrequency(); m < maxWrite {
		maxWrite = m
	}
	check := func(name string, f, limit physic.Frequency, required bool) {
		if f == 0 && !required {
			return
		}
		if f <= 0 || f > limit {
			errs = append(errs, fmt.Errorf("%w: %s %s must be in (0, %s]", ErrFrequency, name, f, limit))
		}
	}
	check("write", c.Frequency, maxWrite, true)
	check("read", c.ReadFrequency, maxRead, c.MISO != NoPin)
	check("touch", c.TouchFrequency, MaxTouchFrequency, c.TouchCS != NoPin)
	return errs
}
