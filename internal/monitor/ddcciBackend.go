package monitor

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/theglow000/HallwayDisplay/internal/constants"
	"github.com/theglow000/HallwayDisplay/internal/models"
)

const vcpBrightness = "10"
const vcpPower = "D6"

// VCP D6 values, 1 is on and 4 is standby
const vcpPowerOn = "1"
const vcpPowerStandby = "4"

// DDCCIBackend drives the panel over the video cable using ddcutil. It is
// the only backend that can also set brightness.
type DDCCIBackend struct {
	logger *log.Logger
	runner commandRunner
	bus    string
	sudo   bool
}

func NewDDCCIBackend(logger *log.Logger, runner commandRunner, bus string, sudo bool) *DDCCIBackend {
	return &DDCCIBackend{logger: logger, runner: runner, bus: bus, sudo: sudo}
}

func (b *DDCCIBackend) Method() models.ControlMethod { return models.MethodDDCCI }

func (b *DDCCIBackend) run(ctx context.Context, timeout time.Duration, args ...string) (string, error) {
	full := append([]string{"--sleep-multiplier", ".1", "--bus", b.bus}, args...)
	name := "ddcutil"
	if b.sudo {
		name = "sudo"
		full = append([]string{"ddcutil"}, full...)
	}
	return b.runner.Run(ctx, timeout, "", name, full...)
}

func (b *DDCCIBackend) Probe(ctx context.Context) error {
	_, err := b.run(ctx, constants.ProbeTimeout, "getvcp", vcpBrightness)
	return err
}

func (b *DDCCIBackend) SetPower(ctx context.Context, on bool) error {
	value := vcpPowerStandby
	if on {
		value = vcpPowerOn
	}
	// --noverify skips the read-back, panels in standby tend to fail it
	_, err := b.run(ctx, constants.CommandTimeout, "setvcp", "--noverify", vcpPower, value)
	return err
}

func (b *DDCCIBackend) SetBrightness(ctx context.Context, value int) error {
	_, err := b.run(ctx, constants.CommandTimeout, "setvcp", vcpBrightness, strconv.Itoa(value))
	return err
}

func (b *DDCCIBackend) GetPower(ctx context.Context) (models.PowerState, error) {
	out, err := b.run(ctx, constants.CommandTimeout, "getvcp", vcpPower)
	if err != nil {
		return models.PowerUnknown, err
	}
	return parseVCPPower(out)
}

func (b *DDCCIBackend) GetBrightness(ctx context.Context) (int, error) {
	out, err := b.run(ctx, constants.CommandTimeout, "getvcp", vcpBrightness)
	if err != nil {
		return models.BrightnessUnknown, err
	}
	return parseVCPBrightness(out)
}

// getvcp D6 output varies between panels:
//
//	VCP code 0xd6 (Power mode): SL: 0x04 (DPMS: Standby)
//	VCP code 0xd6 (Power mode): SL: 0x01 (DPM: On, DPMS: Off)
//	VCP code 0xd6 (Power mode): current value = x01, max value = x04
func parseVCPPower(output string) (models.PowerState, error) {
	if strings.Contains(output, "DPMS: Standby") {
		return models.PowerOff, nil
	}
	if strings.Contains(output, "DPM: On") {
		return models.PowerOn, nil
	}

	raw, err := parseVCPValue(output)
	if err != nil {
		return models.PowerUnknown, err
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return models.PowerUnknown, fmt.Errorf("non numeric power value %q: %w", raw, ErrUnexpectedOutput)
	}
	if value == 1 {
		return models.PowerOn, nil
	}
	return models.PowerOff, nil
}

// example output: "VCP code 0x10 (Brightness): current value = 50, max value = 100"
func parseVCPBrightness(output string) (int, error) {
	raw, err := parseVCPValue(output)
	if err != nil {
		return models.BrightnessUnknown, err
	}
	brightness, err := strconv.Atoi(raw)
	if err != nil {
		return models.BrightnessUnknown, fmt.Errorf("non numeric brightness %q: %w", raw, ErrUnexpectedOutput)
	}
	return brightness, nil
}

// parseVCPValue pulls the current value out of a getvcp response, stripping
// the hex prefix some monitors use ("x01" -> "01").
func parseVCPValue(output string) (string, error) {
	_, after, found := strings.Cut(output, "current value =")
	if !found {
		return "", fmt.Errorf("no current value in %q: %w", strings.TrimSpace(output), ErrUnexpectedOutput)
	}
	value := strings.TrimSpace(strings.Split(after, ",")[0])
	if i := strings.Index(value, "x"); i >= 0 {
		value = value[i+1:]
	}
	return value, nil
}
