package rak811

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
)

// Reset timing: hold the line low briefly, then give the module time to
// boot before talking to it.
const (
	resetHold   = 10 * time.Millisecond
	resetSettle = 2 * time.Second
)

// ResetLine drives the module's hardware reset pin. On the pHAT the pin is
// wired active-low to BCM 17 and is held high during normal operation.
type ResetLine interface {
	High() error
	Low() error
}

// GPIOResetLine is a ResetLine backed by a periph GPIO pin.
type GPIOResetLine struct {
	Pin gpio.PinIO
}

func (l GPIOResetLine) High() error { return l.Pin.Out(gpio.High) }
func (l GPIOResetLine) Low() error  { return l.Pin.Out(gpio.Low) }

// HardReset pulses the reset line and waits for the module to boot.
//
// A hard reset should not be required in normal operation. It needs to be
// issued once after host boot or module restart. The line is left high
// afterwards.
func (d *Device) HardReset() error {
	if d.reset == nil {
		return ErrNoResetLine
	}
	if err := d.reset.Low(); err != nil {
		return fmt.Errorf("drive reset low: %w", err)
	}
	time.Sleep(resetHold)
	if err := d.reset.High(); err != nil {
		return fmt.Errorf("drive reset high: %w", err)
	}
	time.Sleep(resetSettle)
	return nil
}
