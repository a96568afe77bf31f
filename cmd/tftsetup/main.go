// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// tftsetup validates a TFT panel configuration and writes the TFT_eSPI
// User_Setup.h header for it.
//
// Without -config the ESP32-2432S028R setup is used.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/golang/glog"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/GermanBionicSystems/tftsetup/tftcfg"
)

const (
	ansiRed    = "\033[31m"
	ansiYellow = "\033[33m"
	ansiGreen  = "\033[32m"
	ansiReset  = "\033[0m"
)

type printer struct {
	w     io.Writer
	color bool
}

func (p *printer) printf(color, format string, args ...interface{}) {
	if p.color {
		fmt.Fprint(p.w, color)
		defer fmt.Fprint(p.w, ansiReset)
	}
	fmt.Fprintf(p.w, format, args...)
}

// errInvalid is returned for a configuration that fails validation.
var errInvalid = errors.New("configuration rejected")

// mainImpl runs the command with args, excluding the program name. The
// header goes to stdout unless -o is given, status lines to stderr.
func mainImpl(args []string, stdout, stderr io.Writer, colored bool) error {
	fs := flag.NewFlagSet("tftsetup", flag.ContinueOnError)
	fs.SetOutput(stderr)
	// glog registers its flags on flag.CommandLine.
	flag.CommandLine.VisitAll(func(f *flag.Flag) {
		fs.Var(f.Value, f.Name, f.Usage)
	})
	config := fs.String("config", "", "YAML panel configuration; defaults to the ESP32-2432S028R")
	out := fs.String("o", "", "header file to write; defaults to stdout")
	check := fs.Bool("check", false, "only validate the configuration")
	var driver tftcfg.Driver
	fs.Var(&driver, "driver", "override the driver variant")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 0 {
		return errors.New("unexpected argument, try -help")
	}

	cfg := tftcfg.ESP32_2432S028R()
	if *config != "" {
		c, err := tftcfg.LoadFile(*config)
		if err != nil {
			return err
		}
		cfg = *c
	}
	if driver != "" {
		cfg.Driver = driver
	}
	glog.V(1).Infof("configuration: %s", &cfg)

	status := &printer{w: stderr, color: colored}
	if err := cfg.Validate(); err != nil {
		status.printf(ansiRed, "invalid configuration:\n%v\n", err)
		return errInvalid
	}
	for _, b := range cfg.StrappingPins() {
		status.printf(ansiYellow, "warning: %s is a strapping pin on %s, keep it unpulled at boot\n", b, cfg.Chip)
	}
	status.printf(ansiGreen, "%s on %s: ok\n", cfg.Driver, cfg.Chip)
	if *check {
		return nil
	}

	if *out == "" {
		return tftcfg.WriteHeader(stdout, &cfg)
	}
	f, err := os.Create(*out)
	if err != nil {
		return err
	}
	if err := tftcfg.WriteHeader(f, &cfg); err != nil {
		f.Close()
		return err
	}
	glog.V(1).Infof("wrote %s", *out)
	return f.Close()
}

func main() {
	defer glog.Flush()
	stderr := colorable.NewColorableStderr()
	if err := mainImpl(os.Args[1:], os.Stdout, stderr, isatty.IsTerminal(os.Stderr.Fd())); err != nil {
		if err != flag.ErrHelp {
			fmt.Fprintf(os.Stderr, "tftsetup: %s.\n", err)
		}
		glog.Flush()
		os.Exit(1)
	}
}
