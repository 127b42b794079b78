package monitor

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/theglow000/HallwayDisplay/internal/constants"
	"github.com/theglow000/HallwayDisplay/internal/models"
)

// DPMSBackend switches the panel through the X server with xset. Power
// only, brightness is not part of DPMS.
type DPMSBackend struct {
	logger *log.Logger
	runner commandRunner
}

func NewDPMSBackend(logger *log.Logger, runner commandRunner) *DPMSBackend {
	return &DPMSBackend{logger: logger, runner: runner}
}

func (b *DPMSBackend) Method() models.ControlMethod { return models.MethodDPMS }

func (b *DPMSBackend) Probe(ctx context.Context) error {
	out, err := b.runner.Run(ctx, constants.ProbeTimeout, "", "xset", "q")
	if err != nil {
		return err
	}
	if !strings.Contains(out, "DPMS is Enabled") {
		return fmt.Errorf("dpms disabled on this display: %w", ErrUnsupported)
	}
	return nil
}

func (b *DPMSBackend) SetPower(ctx context.Context, on bool) error {
	state := "off"
	if on {
		state = "on"
	}
	_, err := b.runner.Run(ctx, constants.CommandTimeout, "", "xset", "dpms", "force", state)
	return err
}

func (b *DPMSBackend) SetBrightness(ctx context.Context, value int) error {
	return fmt.Errorf("dpms cannot set brightness: %w", ErrUnsupported)
}

func (b *DPMSBackend) GetPower(ctx context.Context) (models.PowerState, error) {
	out, err := b.runner.Run(ctx, constants.CommandTimeout, "", "xset", "q")
	if err != nil {
		return models.PowerUnknown, err
	}
	return parseDPMSPower(out)
}

func (b *DPMSBackend) GetBrightness(ctx context.Context) (int, error) {
	return models.BrightnessUnknown, fmt.Errorf("dpms cannot read brightness: %w", ErrUnsupported)
}

// the relevant xset q lines look like "  Monitor is On" or
// "  Monitor is in Standby"
func parseDPMSPower(output string) (models.PowerState, error) {
	switch {
	case strings.Contains(output, "Monitor is On"):
		return models.PowerOn, nil
	case strings.Contains(output, "Monitor is Off"),
		strings.Contains(output, "Monitor is in Standby"),
		strings.Contains(output, "Monitor is in Suspend"):
		return models.PowerOff, nil
	}
	return models.PowerUnknown, fmt.Errorf("no monitor state in xset output: %w", ErrUnexpectedOutput)
}
