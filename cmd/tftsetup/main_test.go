// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/GermanBionicSystems/tftsetup/tftcfg"
)

func presetHeader(t *testing.T) string {
	var b bytes.Buffer
	cfg := tftcfg.ESP32_2432S028R()
	if err := tftcfg.WriteHeader(&b, &cfg); err != nil {
		t.Fatal(err)
	}
	return b.String()
}

func TestMainImpl(t *testing.T) {
	header := presetHeader(t)
	for _, tc := range []struct {
		name       string
		args       []string
		wantErr    error
		wantOut    string
		wantStatus []string
	}{
		{
			name:       "default preset",
			wantOut:    header,
			wantStatus: []string{"ILI9341_2 on ESP32: ok", "TFT_CS=GPIO15 is a strapping pin"},
		},
		{
			name:       "check only",
			args:       []string{"-check"},
			wantStatus: []string{"ILI9341_2 on ESP32: ok"},
		},
		{
			name:       "shipped configuration file",
			args:       []string{"-config", "esp32-2432s028r.yaml"},
			wantOut:    header,
			wantStatus: []string{"ILI9341_2 on ESP32: ok"},
		},
		{
			name:       "driver too slow for the write clock",
			args:       []string{"-driver", "ili9488"},
			wantErr:    errInvalid,
			wantStatus: []string{"invalid configuration", "write 55MHz must be in (0, 40MHz]"},
		},
		{
			name:       "driver override",
			args:       []string{"-driver", "ili9341", "-check"},
			wantStatus: []string{"ILI9341 on ESP32: ok"},
		},
		{
			name: "unknown driver",
			args: []string{"-driver", "hx8357d"},
		},
		{
			name: "missing configuration file",
			args: []string{"-config", "missing.yaml"},
		},
		{
			name: "stray argument",
			args: []string{"header.h"},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := mainImpl(tc.args, &stdout, &stderr, false)
			wantFail := tc.wantErr != nil || (tc.wantOut == "" && len(tc.wantStatus) == 0)
			if (err != nil) != wantFail {
				t.Fatalf("mainImpl(%q) = %v, want failure %t", tc.args, err, wantFail)
			}
			if tc.wantErr != nil && !errors.Is(err, tc.wantErr) {
				t.Errorf("mainImpl(%q) = %v, want %v", tc.args, err, tc.wantErr)
			}
			if diff := cmp.Diff(stdout.String(), tc.wantOut); diff != "" {
				t.Errorf("header difference (-got +want):\n%s", diff)
			}
			for _, s := range tc.wantStatus {
				if !strings.Contains(stderr.String(), s) {
					t.Errorf("status %q does not contain %q", stderr.String(), s)
				}
			}
		})
	}
}

func TestMainImplOutputFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "User_Setup.h")
	var stdout, stderr bytes.Buffer
	if err := mainImpl([]string{"-o", p}, &stdout, &stderr, false); err != nil {
		t.Fatalf("mainImpl() failed: %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("header also written to stdout: %q", stdout.String())
	}
	got, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(got), presetHeader(t)); diff != "" {
		t.Errorf("%s difference (-got +want):\n%s", p, diff)
	}
}

func TestPrinter(t *testing.T) {
	for _, tc := range []struct {
		name  string
		color bool
		want  string
	}{
		{name: "plain", want: "ILI9341_2: ok\n"},
		{name: "color", color: true, want: ansiGreen + "ILI9341_2: ok\n" + ansiReset},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var b bytes.Buffer
			p := printer{w: &b, color: tc.color}
			p.printf(ansiGreen, "%s: ok\n", "ILI9341_2")
			if got := b.String(); got != tc.want {
				t.Errorf("printf() = %q, want %q", got, tc.want)
			}
		})
	}
}
