// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tftsetup is a container for the TFT panel configuration packages.
//
// tftcfg describes the wiring and driver setup of a panel, tftboard brings
// the wiring up through periph.io and cmd/tftsetup renders the setup as a
// TFT_eSPI header.
package tftsetup
