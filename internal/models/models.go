package models

import "time"

type PowerState string

const (
	PowerOn      PowerState = "on"
	PowerOff     PowerState = "off"
	PowerUnknown PowerState = "unknown"
)

type ControlMethod string

const (
	MethodDDCCI     ControlMethod = "ddcci"
	MethodDPMS      ControlMethod = "dpms"
	MethodCEC       ControlMethod = "cec"
	MethodTVService ControlMethod = "tvservice"
)

// every method can switch the panel on/off, only DDC/CI can dim it
func (m ControlMethod) SupportsPower() bool { return true }

func (m ControlMethod) SupportsBrightness() bool { return m == MethodDDCCI }

// BrightnessUnknown marks a brightness that has never been verified against
// the hardware (or was lost after a failed call).
const BrightnessUnknown = -1

// MonitorState is the last state confirmed by the hardware. It is owned by
// the monitor controller and only updated after a successful call or a
// confirmed read-back.
type MonitorState struct {
	Power          PowerState
	Brightness     int
	LastVerifiedAt time.Time
}

// TargetState is recomputed on every orchestration tick and never stored.
type TargetState struct {
	Power      PowerState
	Brightness int
}

// SensorReading is the fused snapshot of the motion and light sensors.
type SensorReading struct {
	MotionActive  bool
	LightLevelLux float64
	Timestamp     time.Time
}
