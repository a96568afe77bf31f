// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tftcfg

import (
	"fmt"
	"sort"
	"strings"

	"periph.io/x/conn/v3/physic"
)

// Driver is the display controller variant the panel is driven as.
type Driver string

const (
	ILI9341   Driver = "ILI9341"   // ILI9341 240x320. Datasheet: https://cdn-shop.adafruit.com/datasheets/ILI9341.pdf
	ILI9341_2 Driver = "ILI9341_2" // ILI9341 with the alternative gamma/init sequence used on the ESP32-2432S028R.
	ST7735    Driver = "ST7735"    // ST7735 128x160. Datasheet: https://www.displayfuture.com/Display/datasheet/controller/ST7735.pdf
	ST7789    Driver = "ST7789"    // ST7789 240x320. Datasheet: https://www.rhydolabz.com/documents/33/ST7789.pdf
	ST7796    Driver = "ST7796"    // ST7796 320x480.
	ILI9486   Driver = "ILI9486"   // ILI9486 320x480.
	ILI9488   Driver = "ILI9488"   // ILI9488 320x480.
	GC9A01    Driver = "GC9A01"    // GC9A01 240x240 round panel.
)

type driver struct {
	define   string
	width    int
	height   int
	maxWrite physic.Frequency
	maxRead  physic.Frequency
}

var drivers = map[Driver]driver{
	ILI9341:   {define: "ILI9341_DRIVER", width: 240, height: 320, maxWrite: 80 * physic.MegaHertz, maxRead: 20 * physic.MegaHertz},
	ILI9341_2: {define: "ILI9341_2_DRIVER", width: 240, height: 320, maxWrite: 80 * physic.MegaHertz, maxRead: 20 * physic.MegaHertz},
	ST7735:    {define: "ST7735_DRIVER", width: 128, height: 160, maxWrite: 27 * physic.MegaHertz, maxRead: 20 * physic.MegaHertz},
	ST7789:    {define: "ST7789_DRIVER", width: 240, height: 320, maxWrite: 80 * physic.MegaHertz, maxRead: 20 * physic.MegaHertz},
	ST7796:    {define: "ST7796_DRIVER", width: 320, height: 480, maxWrite: 80 * physic.MegaHertz, maxRead: 20 * physic.MegaHertz},
	ILI9486:   {define: "ILI9486_DRIVER", width: 320, height: 480, maxWrite: 27 * physic.MegaHertz, maxRead: 16 * physic.MegaHertz},
	ILI9488:   {define: "ILI9488_DRIVER", width: 320, height: 480, maxWrite: 40 * physic.MegaHertz, maxRead: 20 * physic.MegaHertz},
	GC9A01:    {define: "GC9A01_DRIVER", width: 240, height: 240, maxWrite: 80 * physic.MegaHertz, maxRead: 20 * physic.MegaHertz},
}

// Drivers returns the known driver variants, sorted by name.
func Drivers() []Driver {
	out := make([]Driver, 0, len(drivers))
	for d := range drivers {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (d Driver) String() string {
	return string(d)
}

// Set sets the Driver to a value represented by the string s. Set implements
// the flag.Value interface.
func (d *Driver) Set(s string) error {
	v := Driver(strings.TrimSuffix(strings.ToUpper(strings.TrimSpace(s)), "_DRIVER"))
	if _, ok := drivers[v]; !ok {
		return fmt.Errorf("unknown driver %q: expected one of %v", s, Drivers())
	}
	*d = v
	return nil
}

// Define returns the preprocessor symbol selecting this driver in the
// generated header.
func (d Driver) Define() string {
	return drivers[d].define
}

// Size returns the native width and height of the panel, in portrait
// orientation.
func (d Driver) Size() (int, int) {
	v := drivers[d]
	return v.width, v.height
}

// MaxFrequency returns the highest write and read SPI clock the controller
// tolerates.
func (d Driver) MaxFrequency() (write, read physic.Frequency) {
	v := drivers[d]
	return v.maxWrite, v.maxRead
}

func (d Driver) valid() bool {
	_, ok := drivers[d]
	return ok
}
