package sensors

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// MotionSensor watches the digital output of a PIR sensor for rising
// edges.
type MotionSensor struct {
	logger *log.Logger
	pin    gpio.PinIn
}

// NewMotionSensor claims the named GPIO pin and configures it for edge
// detection.
func NewMotionSensor(logger *log.Logger, pinName string) (*MotionSensor, error) {
	pin := gpioreg.ByName(pinName)
	if pin == nil {
		return nil, fmt.Errorf("gpio pin %s: %w", pinName, ErrNoSensor)
	}
	if err := pin.In(gpio.PullDown, gpio.RisingEdge); err != nil {
		return nil, fmt.Errorf("configuring gpio pin %s: %w", pinName, err)
	}
	logger.Info("motion sensor initialized", "pin", pinName)
	return &MotionSensor{logger: logger, pin: pin}, nil
}

// WaitForMotion blocks until a rising edge arrives or the timeout
// passes.
func (s *MotionSensor) WaitForMotion(timeout time.Duration) bool {
	return s.pin.WaitForEdge(timeout)
}
