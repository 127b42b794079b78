package sensors

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"

	"github.com/theglow000/HallwayDisplay/internal/constants"
)

// bh1750OneTimeHighRes requests a single 1lx resolution measurement, the
// sensor powers down again afterwards.
const bh1750OneTimeHighRes = 0x20

// LightSensor reads ambient light from a BH1750 over I2C.
type LightSensor struct {
	logger *log.Logger
	bus    i2c.BusCloser
	dev    *i2c.Dev
}

// NewLightSensor opens the I2C bus and tries the candidate addresses in
// order, keeping the first one that answers a measurement.
func NewLightSensor(logger *log.Logger, busName string, addrs []string) (*LightSensor, error) {
	bus, err := i2creg.Open(busName)
	if err != nil {
		return nil, fmt.Errorf("opening i2c bus %s: %w", busName, err)
	}

	for _, a := range addrs {
		addr, err := strconv.ParseUint(a, 0, 16)
		if err != nil {
			continue
		}
		s := &LightSensor{
			logger: logger,
			bus:    bus,
			dev:    &i2c.Dev{Bus: bus, Addr: uint16(addr)},
		}
		if _, err := s.Read(); err != nil {
			logger.Debug("no light sensor at address", "address", a, "error", err)
			continue
		}
		logger.Info("light sensor initialized", "bus", busName, "address", a)
		return s, nil
	}

	bus.Close()
	return nil, fmt.Errorf("nothing answered on i2c bus %s at %v: %w", busName, addrs, ErrNoSensor)
}

// Read triggers a one time measurement and converts the raw count to lux.
func (s *LightSensor) Read() (float64, error) {
	if err := s.dev.Tx([]byte{bh1750OneTimeHighRes}, nil); err != nil {
		return 0, fmt.Errorf("requesting measurement: %w", err)
	}
	time.Sleep(constants.LuxMeasureDelay)

	raw := make([]byte, 2)
	if err := s.dev.Tx(nil, raw); err != nil {
		return 0, fmt.Errorf("reading measurement: %w", err)
	}
	return float64(uint16(raw[0])<<8|uint16(raw[1])) / 1.2, nil
}

func (s *LightSensor) Close() error {
	return s.bus.Close()
}
