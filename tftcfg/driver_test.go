// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tftcfg

import (
	"testing"

	"periph.io/x/conn/v3/physic"
)

func TestDriverSet(t *testing.T) {
	for _, tc := range []struct {
		in      string
		want    Driver
		wantErr bool
	}{
		{in: "ILI9341_2", want: ILI9341_2},
		{in: "ili9341", want: ILI9341},
		{in: "ST7789_DRIVER", want: ST7789},
		{in: "ili9341_2_driver", want: ILI9341_2},
		{in: "SSD1306", wantErr: true},
		{in: "", wantErr: true},
	} {
		t.Run(tc.in, func(t *testing.T) {
			var d Driver
			err := d.Set(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Set(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if d != tc.want {
				t.Errorf("Set(%q) = %q, want %q", tc.in, d, tc.want)
			}
		})
	}
}

func TestDriverLimits(t *testing.T) {
	for _, d := range Drivers() {
		w, r := d.MaxFrequency()
		if w <= 0 || r <= 0 || r > w {
			t.Errorf("%s: MaxFrequency() = %s, %s", d, w, r)
		}
		if x, y := d.Size(); x <= 0 || y < x {
			t.Errorf("%s: Size() = %d, %d", d, x, y)
		}
		if d.Define() == "" {
			t.Errorf("%s: no define", d)
		}
	}
	if w, _ := ILI9341_2.MaxFrequency(); 55*physic.MegaHertz > w {
		t.Errorf("ILI9341_2 write limit %s below the ESP32-2432S028R clock", w)
	}
}

func TestChip(t *testing.T) {
	var c Chip
	if err := c.Set("esp32-s3"); err != nil || c != ESP32S3 {
		t.Errorf("Set(esp32-s3) = %v, %v", c, err)
	}
	if err := c.Set("rp2040"); err == nil {
		t.Error("Set(rp2040) succeeded")
	}
	for _, tc := range []struct {
		pin    Pin
		output bool
		ok     bool
	}{
		{pin: 0, output: true, ok: true},
		{pin: 11, output: true},
		{pin: 24, output: true},
		{pin: 34, output: false, ok: true},
		{pin: 34, output: true},
		{pin: 40, output: false},
		{pin: NoPin, output: false},
	} {
		if err := ESP32.checkPin(tc.pin, tc.output); (err == nil) != tc.ok {
			t.Errorf("checkPin(%s, %t) = %v", tc.pin, tc.output, err)
		}
	}
}
