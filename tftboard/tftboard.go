// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tftboard

import (
	"errors"
	"fmt"
	"io"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/tftsetup/tftcfg"
)

var sleep = time.Sleep

// Dev is the wired panel: its SPI connections and control pins.
type Dev struct {
	cfg tftcfg.Config

	c conn.Conn
	t conn.Conn

	dc  gpio.PinOut
	rst gpio.PinOut
	bl  gpio.PinOut

	closers []io.Closer
}

// New connects the display port at the write clock and, when the panel has
// a touch controller, the touch port at the touch clock.
//
// rst is only used with a dedicated reset and bl only when the backlight is
// bound. touch may be nil when the configuration has no touch chip select.
// The backlight is left off; call Reset then Backlight once the panel driver
// has initialized the controller.
func New(display, touch spi.Port, dc, rst, bl gpio.PinOut, cfg *tftcfg.Config) (*Dev, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	d := &Dev{cfg: *cfg, dc: dc}
	if dc == nil {
		return nil, errors.New("tftboard: dc pin is required")
	}
	if _, ok := cfg.RST.Pin(); ok {
		if rst == nil {
			return nil, errors.New("tftboard: configuration has a dedicated reset but no rst pin was given")
		}
		d.rst = rst
	}
	if cfg.BL != tftcfg.NoPin {
		if bl == nil {
			return nil, errors.New("tftboard: configuration has a backlight but no bl pin was given")
		}
		d.bl = bl
	}

	c, err := display.Connect(cfg.Frequency, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("tftboard: display: %w", err)
	}
	d.c = c

	if cfg.TouchCS != tftcfg.NoPin && touch != nil {
		t, err := touch.Connect(cfg.TouchFrequency, spi.Mode0, 8)
		if err != nil {
			return nil, fmt.Errorf("tftboard: touch: %w", err)
		}
		d.t = t
	}

	eh := errorHandler{}
	eh.out(d.dc, gpio.Low)
	eh.out(d.bl, !cfg.BacklightOn)
	if eh.err != nil {
		return nil, fmt.Errorf("tftboard: %w", eh.err)
	}
	return d, nil
}

// Open initializes periph, opens the named SPI buses from spireg and looks
// up the control pins in gpioreg by name, e.g. "GPIO2".
//
// cfg.Chip describes the microcontroller the panel is wired to in the
// configuration; it is not checked against the host. The pin numbers are
// looked up as is on the host running Open.
//
// touchBus is only opened when the configuration has a touch chip select.
// The returned Dev owns the buses; release them with Close.
func Open(displayBus, touchBus string, cfg *tftcfg.Config) (*Dev, error) {
	if _, err := host.Init(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dc, err := pinByNumber(tftcfg.DC, cfg.DC)
	if err != nil {
		return nil, err
	}
	var rst, bl gpio.PinOut
	if p, ok := cfg.RST.Pin(); ok {
		if rst, err = pinByNumber(tftcfg.RST, p); err != nil {
			return nil, err
		}
	}
	if cfg.BL != tftcfg.NoPin {
		if bl, err = pinByNumber(tftcfg.BL, cfg.BL); err != nil {
			return nil, err
		}
	}

	var closers []io.Closer
	closeAll := func() {
		for _, c := range closers {
			c.Close()
		}
	}
	display, err := spireg.Open(displayBus)
	if err != nil {
		return nil, fmt.Errorf("tftboard: display bus: %w", err)
	}
	closers = append(closers, display)

	var touch spi.Port
	if cfg.TouchCS != tftcfg.NoPin {
		t, err := spireg.Open(touchBus)
		if err != nil {
			closeAll()
			return nil, fmt.Errorf("tftboard: touch bus: %w", err)
		}
		closers = append(closers, t)
		touch = t
	}

	d, err := New(display, touch, dc, rst, bl, cfg)
	if err != nil {
		closeAll()
		return nil, err
	}
	d.closers = closers
	return d, nil
}

func pinByNumber(r tftcfg.Role, p tftcfg.Pin) (gpio.PinIO, error) {
	pin := gpioreg.ByName(p.String())
	if pin == nil {
		return nil, fmt.Errorf("tftboard: %s: %s not found", r, p)
	}
	return pin, nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("tftboard.Dev{%s, %s, %s}", d.cfg.Driver, d.c, d.cfg.Frequency)
}

// Config returns a copy of the configuration the panel was brought up with.
func (d *Dev) Config() tftcfg.Config {
	return d.cfg
}

// Display returns the display connection, clocked at the write frequency.
func (d *Dev) Display() conn.Conn {
	return d.c
}

// Touch returns the touch controller connection, or nil without one.
func (d *Dev) Touch() conn.Conn {
	return d.t
}

// DC returns the data/command select pin.
func (d *Dev) DC() gpio.PinOut {
	return d.dc
}

// Reset pulses the dedicated reset line. It does nothing when the panel
// reset is shared with the system reset, as the panel was reset at boot.
func (d *Dev) Reset() error {
	if d.rst == nil {
		return nil
	}
	eh := errorHandler{}
	eh.out(d.rst, gpio.High)
	eh.wait(5 * time.Millisecond)
	eh.out(d.rst, gpio.Low)
	eh.wait(20 * time.Millisecond)
	eh.out(d.rst, gpio.High)
	eh.wait(150 * time.Millisecond)
	if eh.err != nil {
		return fmt.Errorf("tftboard: reset: %w", eh.err)
	}
	return nil
}

// Backlight turns the backlight on or off. It does nothing when the
// backlight is not wired to a pin.
func (d *Dev) Backlight(on bool) error {
	if d.bl == nil {
		return nil
	}
	l := d.cfg.BacklightOn
	if !on {
		l = !l
	}
	if err := d.bl.Out(l); err != nil {
		return fmt.Errorf("tftboard: backlight: %w", err)
	}
	return nil
}

// Halt implements conn.Resource.
//
// It turns the backlight off.
func (d *Dev) Halt() error {
	return d.Backlight(false)
}

// Close turns the backlight off and closes the buses opened by Open.
func (d *Dev) Close() error {
	err := d.Halt()
	for _, c := range d.closers {
		if cerr := c.Close(); err == nil {
			err = cerr
		}
	}
	d.closers = nil
	return err
}
