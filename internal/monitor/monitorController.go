package monitor

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/theglow000/HallwayDisplay/internal/constants"
	"github.com/theglow000/HallwayDisplay/internal/models"
)

// MonitorController owns the selected backend and the last state the
// hardware confirmed. Everything runs on the one orchestration goroutine,
// so no locking.
type MonitorController struct {
	logger   *log.Logger
	backends []Backend

	preferred Backend
	degraded  bool

	state               models.MonitorState
	consecutiveFailures int
}

func NewMonitorController(logger *log.Logger, backends []Backend) *MonitorController {
	return &MonitorController{
		logger:   logger,
		backends: backends,
		state: models.MonitorState{
			Power:      models.PowerUnknown,
			Brightness: models.BrightnessUnknown,
		},
	}
}

// Initialize probes the backends in priority order and selects the first
// one that answers. The selection is sticky until repeated failures force a
// new sweep. When nothing answers it stays on DDC/CI best-effort and flags
// the controller as degraded.
func (c *MonitorController) Initialize(ctx context.Context) {
	c.degraded = false
	c.consecutiveFailures = 0

	for _, b := range c.backends {
		if err := b.Probe(ctx); err != nil {
			c.logger.Warn("control method probe failed", "method", b.Method(), "error", err)
			continue
		}
		c.logger.Info("control method selected", "method", b.Method())
		c.preferred = b
		return
	}

	c.preferred = c.backends[0]
	c.degraded = true
	c.logger.Error("no control method answered, continuing best-effort", "method", c.preferred.Method())
}

func (c *MonitorController) Method() models.ControlMethod {
	return c.preferred.Method()
}

// Degraded reports that no backend answered the detection sweep.
func (c *MonitorController) Degraded() bool {
	return c.degraded
}

// AlternativeMethodsOnly reports that detection settled on a power-only
// backend, meaning brightness control is unavailable.
func (c *MonitorController) AlternativeMethodsOnly() bool {
	return !c.degraded && !c.preferred.Method().SupportsBrightness()
}

// State returns the last hardware-confirmed snapshot.
func (c *MonitorController) State() models.MonitorState {
	return c.state
}

// SetPower drives the panel power through the preferred backend, retrying
// with a short backoff and finally falling through once to the next backend
// that can switch power. Total failure leaves the power state unknown.
func (c *MonitorController) SetPower(ctx context.Context, on bool, retries int) bool {
	for attempt := 0; attempt <= retries; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return false
			case <-time.After(time.Duration(attempt) * constants.RetryBackoff):
			}
		}
		if err := c.preferred.SetPower(ctx, on); err != nil {
			c.logger.Warn("set power failed",
				"method", c.preferred.Method(),
				"on", on,
				"attempt", attempt+1,
				"error", err,
			)
			continue
		}
		c.confirmPower(on)
		return true
	}

	if alt, found := c.alternative(); found {
		if err := alt.SetPower(ctx, on); err != nil {
			c.logger.Warn("alternative method failed too", "method", alt.Method(), "error", err)
		} else {
			c.logger.Info("power call recovered via alternative method", "method", alt.Method())
			c.confirmPower(on)
			return true
		}
	}

	c.state.Power = models.PowerUnknown
	c.recordFailure(ctx)
	return false
}

// SetBrightness delegates to the preferred backend only, clamping the value
// first. Redundant calls are skipped, ddcutil is slow enough to make that
// worthwhile.
func (c *MonitorController) SetBrightness(ctx context.Context, value int) bool {
	if value < 0 {
		value = 0
	}
	if value > 100 {
		value = 100
	}

	if value == c.state.Brightness {
		c.logger.Debug("brightness already set, skipping", "brightness", value)
		return true
	}

	if err := c.preferred.SetBrightness(ctx, value); err != nil {
		c.state.Brightness = models.BrightnessUnknown
		if errors.Is(err, ErrUnsupported) {
			c.logger.Debug("brightness not supported by control method", "method", c.preferred.Method())
			return false
		}
		c.logger.Warn("set brightness failed", "brightness", value, "error", err)
		c.recordFailure(ctx)
		return false
	}

	c.state.Brightness = value
	c.state.LastVerifiedAt = time.Now()
	c.consecutiveFailures = 0
	return true
}

// PowerState reads the panel power through the backend, falling back to the
// last known value when the read fails.
func (c *MonitorController) PowerState(ctx context.Context) models.PowerState {
	power, err := c.preferred.GetPower(ctx)
	if err != nil {
		c.logger.Warn("power read failed, using last known state", "state", c.state.Power, "error", err)
		return c.state.Power
	}
	c.state.Power = power
	c.state.LastVerifiedAt = time.Now()
	return power
}

// Brightness reads the panel brightness through the backend, falling back
// to the last known value when the read fails.
func (c *MonitorController) Brightness(ctx context.Context) int {
	brightness, err := c.preferred.GetBrightness(ctx)
	if err != nil {
		if errors.Is(err, ErrUnsupported) {
			return c.state.Brightness
		}
		c.logger.Warn("brightness read failed, using last known value", "brightness", c.state.Brightness, "error", err)
		return c.state.Brightness
	}
	c.state.Brightness = brightness
	c.state.LastVerifiedAt = time.Now()
	return brightness
}

func (c *MonitorController) confirmPower(on bool) {
	if on {
		c.state.Power = models.PowerOn
	} else {
		c.state.Power = models.PowerOff
		// forces a fresh brightness push after the next power on
		c.state.Brightness = models.BrightnessUnknown
	}
	c.state.LastVerifiedAt = time.Now()
	c.consecutiveFailures = 0
}

func (c *MonitorController) alternative() (Backend, bool) {
	return lo.Find(c.backends, func(b Backend) bool {
		return b != c.preferred && b.Method().SupportsPower()
	})
}

func (c *MonitorController) recordFailure(ctx context.Context) {
	c.consecutiveFailures++
	if c.consecutiveFailures >= constants.RedetectAfterFailures {
		c.logger.Warn("repeated hardware failures, re-running control method detection", "failures", c.consecutiveFailures)
		c.Initialize(ctx)
	}
}
