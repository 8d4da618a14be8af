package rak811

import (
	"testing"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
)

func TestGPIOResetLine(t *testing.T) {
	pin := &gpiotest.Pin{N: "GPIO17", Num: 17}
	line := GPIOResetLine{Pin: pin}

	if err := line.Low(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pin.L != gpio.Low {
		t.Errorf("expected pin low, got %v", pin.L)
	}

	if err := line.High(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pin.L != gpio.High {
		t.Errorf("expected pin high, got %v", pin.L)
	}
}
