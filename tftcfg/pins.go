// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tftcfg

import (
	"fmt"
	"strconv"
	"strings"

	"periph.io/x/conn/v3/physic"
)

// Pin is a GPIO number on the microcontroller.
type Pin int

// NoPin marks a signal that is not wired.
const NoPin Pin = -1

func (p Pin) String() string {
	if p == NoPin {
		return "NC"
	}
	return "GPIO" + strconv.Itoa(int(p))
}

// Chip is the microcontroller family the panel is wired to.
type Chip string

const (
	ESP32   Chip = "ESP32"
	ESP32S3 Chip = "ESP32S3"
)

type chip struct {
	count     int
	missing   []Pin
	flash     []Pin
	inputOnly []Pin
	strapping []Pin
	maxSPI    physic.Frequency
}

var chips = map[Chip]chip{
	ESP32: {
		count:     40,
		missing:   []Pin{20, 24, 28, 29, 30, 31},
		flash:     []Pin{6, 7, 8, 9, 10, 11},
		inputOnly: []Pin{34, 35, 36, 37, 38, 39},
		strapping: []Pin{0, 2, 5, 12, 15},
		maxSPI:    80 * physic.MegaHertz,
	},
	ESP32S3: {
		count:     49,
		missing:   []Pin{22, 23, 24, 25},
		flash:     []Pin{26, 27, 28, 29, 30, 31, 32},
		strapping: []Pin{0, 3, 45, 46},
		maxSPI:    80 * physic.MegaHertz,
	},
}

func (c Chip) String() string {
	return string(c)
}

// Set sets the Chip to a value represented by the string s. Set implements
// the flag.Value interface.
func (c *Chip) Set(s string) error {
	v := Chip(strings.ToUpper(strings.ReplaceAll(s, "-", "")))
	if _, ok := chips[v]; !ok {
		return fmt.Errorf("unknown chip %q: expected ESP32 or ESP32S3", s)
	}
	*c = v
	return nil
}

// MaxSPIFrequency returns the highest SPI clock the chip's SPI peripheral
// produces through the IO_MUX.
func (c Chip) MaxSPIFrequency() physic.Frequency {
	return chips[c].maxSPI
}

// IsStrapping reports whether p is sampled at boot to select the boot mode.
// Such pins can be used but the attached hardware must not pull them.
func (c Chip) IsStrapping(p Pin) bool {
	return contains(chips[c].strapping, p)
}

// checkPin returns why p cannot carry a signal, or nil.
func (c Chip) checkPin(p Pin, output bool) error {
	v := chips[c]
	switch {
	case p < 0 || int(p) >= v.count || contains(v.missing, p):
		return fmt.Errorf("%s does not exist on %s", p, c)
	case contains(v.flash, p):
		return fmt.Errorf("%s is reserved for the SPI flash on %s", p, c)
	case output && contains(v.inputOnly, p):
		return fmt.Errorf("%s is input only on %s", p, c)
	}
	return nil
}

func contains(pins []Pin, p Pin) bool {
	for _, q := range pins {
		if q == p {
			return true
		}
	}
	return false
}

// Reset describes how the panel's reset line is driven.
//
// The zero value is SharedWithSystem.
type Reset struct {
	pin Pin
	set bool
}

// SharedWithSystem means the panel reset is tied to the chip's EN line and
// resets with it.
var SharedWithSystem = Reset{}

// DedicatedPin returns a Reset driven from GPIO p.
func DedicatedPin(p Pin) Reset {
	return Reset{pin: p, set: true}
}

// Pin returns the reset GPIO, or false if the reset is shared with the
// system.
func (r Reset) Pin() (Pin, bool) {
	if !r.set {
		return NoPin, false
	}
	return r.pin, true
}

func (r Reset) String() string {
	if !r.set {
		return "shared"
	}
	return r.pin.String()
}

// Role names the signal a Pin carries.
type Role string

// Signals, named after the header symbols.
const (
	MISO    Role = "TFT_MISO"
	MOSI    Role = "TFT_MOSI"
	SCLK    Role = "TFT_SCLK"
	CS      Role = "TFT_CS"
	DC      Role = "TFT_DC"
	RST     Role = "TFT_RST"
	BL      Role = "TFT_BL"
	TouchCS Role = "TOUCH_CS"
)

// Binding is a signal bound to a GPIO.
type Binding struct {
	Role Role
	Pin  Pin
}

func (b Binding) String() string {
	return fmt.Sprintf("%s=%s", b.Role, b.Pin)
}
