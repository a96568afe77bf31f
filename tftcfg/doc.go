// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package tftcfg describes how a TFT panel and its touch controller are wired
// to an ESP32 and how the panel is driven.
//
// A Config is a plain value: pin bindings, driver variant, backlight
// polarity, linked fonts and SPI clocks. It is validated with
// Config.Validate, handed to the hardware initialization code (see package
// tftboard) and can be rendered as the User_Setup.h header read by the
// TFT_eSPI Arduino library with WriteHeader.
//
// # Boards
//
// ESP32-2432S028R ("Cheap Yellow Display"): 2.8" 240x320 ILI9341 panel with
// XPT2046 resistive touch.
//
// https://github.com/witnessmenow/ESP32-Cheap-Yellow-Display
//
// # Datasheets
//
// https://cdn-shop.adafruit.com/datasheets/ILI9341.pdf
//
// https://www.espressif.com/sites/default/files/documentation/esp32_datasheet_en.pdf
package tftcfg
