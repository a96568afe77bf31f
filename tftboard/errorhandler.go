// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package tftboard

import (
	"time"

	"periph.io/x/conn/v3/gpio"
)

// errorHandler chains pin operations and keeps the first error.
type errorHandler struct {
	err error
}

func (eh *errorHandler) out(p gpio.PinOut, l gpio.Level) {
	if eh.err != nil || p == nil {
		return
	}
	eh.err = p.Out(l)
}

func (eh *errorHandler) wait(d time.Duration) {
	if eh.err != nil {
		return
	}
	sleep(d)
}
