package monitor

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/theglow000/HallwayDisplay/internal/constants"
	"github.com/theglow000/HallwayDisplay/internal/models"
)

// CEC frames addressed from us (logical device 1) to the TV (device 0)
const cecImageViewOn = "tx 10:04"
const cecStandby = "tx 10:36"
const cecPowerQuery = "pow 0"

// CECBackend sends power commands over HDMI-CEC using cec-client in
// single-command mode. Power only.
type CECBackend struct {
	logger *log.Logger
	runner commandRunner
}

func NewCECBackend(logger *log.Logger, runner commandRunner) *CECBackend {
	return &CECBackend{logger: logger, runner: runner}
}

func (b *CECBackend) Method() models.ControlMethod { return models.MethodCEC }

func (b *CECBackend) send(ctx context.Context, command string) (string, error) {
	// -s exits after the piped command, -d 1 keeps the log quiet
	return b.runner.Run(ctx, constants.CommandTimeout, command, "cec-client", "-s", "-d", "1")
}

func (b *CECBackend) Probe(ctx context.Context) error {
	out, err := b.runner.Run(ctx, constants.ProbeTimeout, cecPowerQuery, "cec-client", "-s", "-d", "1")
	if err != nil {
		return err
	}
	if !strings.Contains(out, "power status") {
		return fmt.Errorf("no cec adapter answered: %w", ErrNoDevice)
	}
	return nil
}

func (b *CECBackend) SetPower(ctx context.Context, on bool) error {
	command := cecStandby
	if on {
		command = cecImageViewOn
	}
	_, err := b.send(ctx, command)
	return err
}

func (b *CECBackend) SetBrightness(ctx context.Context, value int) error {
	return fmt.Errorf("cec cannot set brightness: %w", ErrUnsupported)
}

func (b *CECBackend) GetPower(ctx context.Context) (models.PowerState, error) {
	out, err := b.send(ctx, cecPowerQuery)
	if err != nil {
		return models.PowerUnknown, err
	}
	return parseCECPower(out)
}

func (b *CECBackend) GetBrightness(ctx context.Context) (int, error) {
	return models.BrightnessUnknown, fmt.Errorf("cec cannot read brightness: %w", ErrUnsupported)
}

// cec-client answers "power status: on", "power status: standby" or one of
// the transition states while the TV is waking
func parseCECPower(output string) (models.PowerState, error) {
	switch {
	case strings.Contains(output, "power status: on"),
		strings.Contains(output, "power status: in transition from standby to on"):
		return models.PowerOn, nil
	case strings.Contains(output, "power status: standby"),
		strings.Contains(output, "power status: in transition from on to standby"):
		return models.PowerOff, nil
	}
	return models.PowerUnknown, fmt.Errorf("no power status in cec-client output: %w", ErrUnexpectedOutput)
}
