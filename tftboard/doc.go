// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tftboard brings up the SPI buses and control pins of a TFT panel
// described by a tftcfg.Config.
//
// It connects the display and touch SPI ports at the configured clocks,
// drives the panel reset when it has a dedicated pin and switches the
// backlight honoring its polarity. Drawing and touch decoding are left to
// the panel driver that takes over the connections.
package tftboard
