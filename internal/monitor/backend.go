package monitor

import (
	"context"
	"errors"

	"github.com/charmbracelet/log"
	"github.com/theglow000/HallwayDisplay/internal/config"
	"github.com/theglow000/HallwayDisplay/internal/models"
)

var ErrTimeout = errors.New("hardware timeout")
var ErrUnsupported = errors.New("control method unsupported")
var ErrNoDevice = errors.New("no such device")
var ErrPermission = errors.New("permission denied")
var ErrUnexpectedOutput = errors.New("unexpected output")

// Backend drives one way of talking to the panel. Probe must be cheap,
// time-bounded and safe to call repeatedly.
type Backend interface {
	Method() models.ControlMethod
	Probe(ctx context.Context) error
	SetPower(ctx context.Context, on bool) error
	SetBrightness(ctx context.Context, value int) error
	GetPower(ctx context.Context) (models.PowerState, error)
	GetBrightness(ctx context.Context) (int, error)
}

// DefaultBackends returns every backend in detection priority order,
// most capable first.
func DefaultBackends(logger *log.Logger, cfg config.Config) []Backend {
	runner := newExecRunner(logger)
	return []Backend{
		NewDDCCIBackend(logger, runner, cfg.MonitorI2CBus, cfg.DdcutilSudo),
		NewDPMSBackend(logger, runner),
		NewCECBackend(logger, runner),
		NewTVServiceBackend(logger, runner),
	}
}
