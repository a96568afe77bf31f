// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tftcfg

import (
	"bytes"
	"fmt"
	"io"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
)

// WriteHeader writes c as a TFT_eSPI User_Setup.h header.
//
// A shared reset is written as TFT_RST -1. An unbound backlight or touch
// chip select is left undefined, as the library expects.
func WriteHeader(w io.Writer, c *Config) error {
	if err := c.Validate(); err != nil {
		return err
	}
	var b bytes.Buffer
	fmt.Fprintf(&b, "// %s panel on %s. Generated by tftsetup, do not edit.\n\n", c.Driver, c.Chip)
	b.WriteString("#define USER_SETUP_LOADED\n\n")
	fmt.Fprintf(&b, "#define %s\n\n", c.Driver.Define())

	for _, p := range c.Pins() {
		switch p.Role {
		case BL, TouchCS:
			continue
		}
		fmt.Fprintf(&b, "#define %s %d\n", p.Role, p.Pin)
	}
	if c.BL != NoPin {
		fmt.Fprintf(&b, "#define %s %d\n", BL, c.BL)
		fmt.Fprintf(&b, "#define TFT_BACKLIGHT_ON %s\n", levelDefine(c.BacklightOn))
	}
	if c.TouchCS != NoPin {
		fmt.Fprintf(&b, "\n#define %s %d\n", TouchCS, c.TouchCS)
	}

	if fonts := c.Fonts.List(); len(fonts) != 0 {
		b.WriteString("\n")
		for _, f := range fonts {
			fmt.Fprintf(&b, "#define %s\n", f.Define())
		}
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "#define SPI_FREQUENCY %d\n", hertz(c.Frequency))
	if c.ReadFrequency != 0 {
		fmt.Fprintf(&b, "#define SPI_READ_FREQUENCY %d\n", hertz(c.ReadFrequency))
	}
	if c.TouchFrequency != 0 {
		fmt.Fprintf(&b, "#define SPI_TOUCH_FREQUENCY %d\n", hertz(c.TouchFrequency))
	}

	_, err := w.Write(b.Bytes())
	return err
}

func levelDefine(l gpio.Level) string {
	if l == gpio.High {
		return "HIGH"
	}
	return "LOW"
}

func hertz(f physic.Frequency) int64 {
	return int64(f / physic.Hertz)
}
