package monitor

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/theglow000/HallwayDisplay/internal/constants"
	"github.com/theglow000/HallwayDisplay/internal/models"
)

// TVServiceBackend drives the HDMI port directly through the legacy
// Raspberry Pi tvservice tool. Power only, last resort.
type TVServiceBackend struct {
	logger *log.Logger
	runner commandRunner
}

func NewTVServiceBackend(logger *log.Logger, runner commandRunner) *TVServiceBackend {
	return &TVServiceBackend{logger: logger, runner: runner}
}

func (b *TVServiceBackend) Method() models.ControlMethod { return models.MethodTVService }

func (b *TVServiceBackend) Probe(ctx context.Context) error {
	_, err := b.runner.Run(ctx, constants.ProbeTimeout, "", "tvservice", "-s")
	return err
}

func (b *TVServiceBackend) SetPower(ctx context.Context, on bool) error {
	arg := "--off"
	if on {
		// powers the HDMI output back up in its preferred mode
		arg = "--preferred"
	}
	_, err := b.runner.Run(ctx, constants.CommandTimeout, "", "tvservice", arg)
	return err
}

func (b *TVServiceBackend) SetBrightness(ctx context.Context, value int) error {
	return fmt.Errorf("tvservice cannot set brightness: %w", ErrUnsupported)
}

func (b *TVServiceBackend) GetPower(ctx context.Context) (models.PowerState, error) {
	out, err := b.runner.Run(ctx, constants.CommandTimeout, "", "tvservice", "-s")
	if err != nil {
		return models.PowerUnknown, err
	}
	return parseTVServicePower(out)
}

func (b *TVServiceBackend) GetBrightness(ctx context.Context) (int, error) {
	return models.BrightnessUnknown, fmt.Errorf("tvservice cannot read brightness: %w", ErrUnsupported)
}

// status output is e.g. "state 0x120002 [TV is off]" when off, or
// "state 0xa [HDMI CUSTOM RGB full 4:3], 1024x768 @ 60.00Hz" when driving
// the panel
func parseTVServicePower(output string) (models.PowerState, error) {
	switch {
	case strings.Contains(output, "TV is off"):
		return models.PowerOff, nil
	case strings.Contains(output, "state 0x"):
		return models.PowerOn, nil
	}
	return models.PowerUnknown, fmt.Errorf("no state in tvservice output: %w", ErrUnexpectedOutput)
}
