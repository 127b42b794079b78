package hallway

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/theglow000/HallwayDisplay/internal/config"
	"github.com/theglow000/HallwayDisplay/internal/constants"
	"github.com/theglow000/HallwayDisplay/internal/models"
)

// State is where the display currently is in its day.
type State string

const (
	// inside a scheduled on window
	StateScheduledOn State = "SCHEDULED_ON"
	// outside the schedule, dark, waiting for someone to walk past
	StateScheduledOffIdle State = "SCHEDULED_OFF_IDLE"
	// outside the schedule but woken by motion, counting down to off
	StateScheduledOffAwake State = "SCHEDULED_OFF_AWAKE"
	// someone touched the panel, keep it on for the override window
	StateManualOverride State = "MANUAL_OVERRIDE"
)

type MonitorController interface {
	SetPower(ctx context.Context, on bool, retries int) bool
	SetBrightness(ctx context.Context, value int) bool
	State() models.MonitorState
}

type ScheduleService interface {
	DesiredBaseState(now time.Time) models.PowerState
	TargetBrightness(now time.Time, lux float64) int
	Reload(cfg config.Config)
}

type SensorService interface {
	Subscribe(ch chan<- time.Time)
	Reading(now time.Time) models.SensorReading
}

type TouchSource interface {
	Subscribe(ch chan<- time.Time)
}

// HallwayDisplay reconciles the schedule, the sensors and manual touches
// into one target state per tick and drives the monitor to match it.
// Everything runs on the Run goroutine, events from the sensor and touch
// goroutines arrive through mailbox channels drained once per tick.
type HallwayDisplay struct {
	logger   *log.Logger
	cfg      config.Config
	monitor  MonitorController
	schedule ScheduleService
	sensors  SensorService

	motionEvents chan time.Time
	touchEvents  chan time.Time
	reload       chan config.Config

	state          State
	lastActivityAt time.Time
	overrideUntil  time.Time
	lastBrightness int

	// per tick flag set while draining the mailboxes
	sawMotion bool
}

func NewHallwayDisplay(
	logger *log.Logger,
	cfg config.Config,
	monitor MonitorController,
	schedule ScheduleService,
	sensors SensorService,
	touch TouchSource,
) *HallwayDisplay {

	h := &HallwayDisplay{
		logger:         logger,
		cfg:            cfg,
		monitor:        monitor,
		schedule:       schedule,
		sensors:        sensors,
		motionEvents:   make(chan time.Time, constants.MotionMailboxSize),
		touchEvents:    make(chan time.Time, constants.MotionMailboxSize),
		reload:         make(chan config.Config, 1),
		lastBrightness: models.BrightnessUnknown,
	}
	sensors.Subscribe(h.motionEvents)
	touch.Subscribe(h.touchEvents)
	return h
}

// Run drives the state machine until the context is cancelled. On
// shutdown the monitor is left in whatever state it is in, a restart
// should not flap the panel.
func (h *HallwayDisplay) Run(ctx context.Context) {
	h.logger.Info("hallway display running", "tick", constants.MainTickInterval)

	ticker := time.NewTicker(constants.MainTickInterval)
	defer ticker.Stop()

	h.Tick(ctx, time.Now())

	for {
		select {
		case <-ctx.Done():
			h.logger.Info("stop signal received")
			return
		case t := <-ticker.C:
			h.Tick(ctx, t)
		}
	}
}

// Tick runs one evaluation of the state machine.
func (h *HallwayDisplay) Tick(ctx context.Context, now time.Time) {
	h.sawMotion = false
	h.drainEvents()

	// a touch override beats everything while its window is open
	if now.Before(h.overrideUntil) {
		if h.state != StateManualOverride {
			h.logger.Info("touch override active", "until", h.overrideUntil.Format("15:04:05"))
		}
		h.state = StateManualOverride
		h.ensureOn(ctx, now)
		return
	}

	if h.schedule.DesiredBaseState(now) == models.PowerOn {
		if h.state != StateScheduledOn {
			h.logger.Info("inside a scheduled on window")
		}
		h.state = StateScheduledOn
		h.ensureOn(ctx, now)
		return
	}

	switch h.state {

	case StateScheduledOffIdle:
		if h.sawMotion {
			h.logger.Info("motion during off hours, waking the display")
			h.state = StateScheduledOffAwake
			h.ensureOn(ctx, now)
			return
		}
		h.ensureOff(ctx)

	case StateScheduledOffAwake:
		if h.activityExpired(now) {
			h.logger.Info("no activity, display going back to sleep")
			h.state = StateScheduledOffIdle
			h.ensureOff(ctx)
			return
		}
		h.ensureOn(ctx, now)

	default:
		// entering the off window, at startup, or an override just ended
		if h.activityExpired(now) {
			if h.state != StateScheduledOffIdle {
				h.logger.Info("outside schedule, display off")
			}
			h.state = StateScheduledOffIdle
			h.ensureOff(ctx)
			return
		}
		h.state = StateScheduledOffAwake
		h.ensureOn(ctx, now)
	}
}

// ReloadConfig hands a freshly read config to the state machine, it is
// applied at the start of the next tick. Only the newest pending config
// is kept.
func (h *HallwayDisplay) ReloadConfig(cfg config.Config) {
	select {
	case <-h.reload:
	default:
	}
	h.reload <- cfg
}

func (h *HallwayDisplay) State() State {
	return h.state
}

func (h *HallwayDisplay) drainEvents() {
	for {
		select {

		case t := <-h.motionEvents:
			h.sawMotion = true
			if t.After(h.lastActivityAt) {
				h.lastActivityAt = t
			}

		case t := <-h.touchEvents:
			// a touch counts as activity too, it resets the inactivity timer
			if t.After(h.lastActivityAt) {
				h.lastActivityAt = t
			}
			h.overrideUntil = t.Add(h.cfg.OverrideTimeout)

		case cfg := <-h.reload:
			h.applyConfig(cfg)

		default:
			return
		}
	}
}

func (h *HallwayDisplay) applyConfig(cfg config.Config) {
	h.cfg = cfg
	h.schedule.Reload(cfg)
	// force a fresh brightness push in case the curve changed
	h.lastBrightness = models.BrightnessUnknown
	h.logger.Info("configuration reloaded")
}

func (h *HallwayDisplay) activityExpired(now time.Time) bool {
	return h.lastActivityAt.IsZero() || now.Sub(h.lastActivityAt) > h.cfg.MotionTimeout
}

// ensureOn asks for the panel on at the brightness the schedule and the
// ambient light currently call for.
func (h *HallwayDisplay) ensureOn(ctx context.Context, now time.Time) {
	lux := h.sensors.Reading(now).LightLevelLux
	h.apply(ctx, models.TargetState{
		Power:      models.PowerOn,
		Brightness: h.schedule.TargetBrightness(now, lux),
	})
}

func (h *HallwayDisplay) ensureOff(ctx context.Context) {
	h.apply(ctx, models.TargetState{
		Power:      models.PowerOff,
		Brightness: models.BrightnessUnknown,
	})
}

// apply drives the monitor toward the target, skipping hardware calls the
// last confirmed state makes redundant. The cached power state means a
// wake issues exactly one power command no matter how many ticks or
// motion events it spans, and powering off clears the pushed brightness
// so the next wake pushes it again.
func (h *HallwayDisplay) apply(ctx context.Context, target models.TargetState) {
	if target.Power == models.PowerOff {
		if h.monitor.State().Power == models.PowerOff {
			return
		}
		if h.monitor.SetPower(ctx, false, constants.SetPowerRetries) {
			h.lastBrightness = models.BrightnessUnknown
		}
		return
	}

	if h.monitor.State().Power != models.PowerOn {
		if !h.monitor.SetPower(ctx, true, constants.SetPowerRetries) {
			return
		}
	}
	if target.Brightness == h.lastBrightness {
		return
	}
	if h.monitor.SetBrightness(ctx, target.Brightness) {
		h.lastBrightness = target.Brightness
	}
}
