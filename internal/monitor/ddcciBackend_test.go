package monitor_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/theglow000/HallwayDisplay/internal/models"
	"github.com/theglow000/HallwayDisplay/internal/monitor"
	"github.com/theglow000/HallwayDisplay/mocks"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
}

func Test_DDCCIBackend_Commands(t *testing.T) {

	t.Run("should read brightness with getvcp", func(t *testing.T) {
		t.Parallel()

		// arrange
		mockRunner := mocks.NewMockMonitorCommandRunner(t)
		mockRunner.On("Run", mock.Anything, mock.Anything, "",
			"ddcutil", "--sleep-multiplier", ".1", "--bus", "1", "getvcp", "10").
			Return("VCP code 0x10 (Brightness): current value = 50, max value = 100", nil)
		b := monitor.NewDDCCIBackend(testLogger(), mockRunner, "1", false)

		// act
		brightness, err := b.GetBrightness(context.Background())

		// assert
		assert.NoError(t, err)
		assert.Equal(t, 50, brightness)

	})

	t.Run("should insert noverify for power commands", func(t *testing.T) {
		t.Parallel()

		// arrange
		mockRunner := mocks.NewMockMonitorCommandRunner(t)
		mockRunner.On("Run", mock.Anything, mock.Anything, "",
			"ddcutil", "--sleep-multiplier", ".1", "--bus", "1", "setvcp", "--noverify", "D6", "4").
			Return("", nil)
		b := monitor.NewDDCCIBackend(testLogger(), mockRunner, "1", false)

		// act
		err := b.SetPower(context.Background(), false)

		// assert
		assert.NoError(t, err)

	})

	t.Run("should not use noverify for brightness commands", func(t *testing.T) {
		t.Parallel()

		// arrange
		mockRunner := mocks.NewMockMonitorCommandRunner(t)
		mockRunner.On("Run", mock.Anything, mock.Anything, "",
			"ddcutil", "--sleep-multiplier", ".1", "--bus", "1", "setvcp", "10", "75").
			Return("", nil)
		b := monitor.NewDDCCIBackend(testLogger(), mockRunner, "1", false)

		// act
		err := b.SetBrightness(context.Background(), 75)

		// assert
		assert.NoError(t, err)

	})

	t.Run("should prefix sudo when configured", func(t *testing.T) {
		t.Parallel()

		// arrange
		mockRunner := mocks.NewMockMonitorCommandRunner(t)
		mockRunner.On("Run", mock.Anything, mock.Anything, "",
			"sudo", "ddcutil", "--sleep-multiplier", ".1", "--bus", "2", "setvcp", "--noverify", "D6", "1").
			Return("", nil)
		b := monitor.NewDDCCIBackend(testLogger(), mockRunner, "2", true)

		// act
		err := b.SetPower(context.Background(), true)

		// assert
		assert.NoError(t, err)

	})

}

func Test_DDCCIBackend_GetPower(t *testing.T) {

	tests := []struct {
		name     string
		output   string
		expected models.PowerState
		wantErr  bool
	}{
		{
			name:     "dpms standby format",
			output:   "VCP code 0xd6 (Power mode): SL: 0x04 (DPMS: Standby)",
			expected: models.PowerOff,
		},
		{
			name:     "dpm on format",
			output:   "VCP code 0xd6 (Power mode): SL: 0x01 (DPM: On, DPMS: Off)",
			expected: models.PowerOn,
		},
		{
			name:     "hex current value on",
			output:   "VCP code 0xd6 (Power mode): current value = x01, max value = x04",
			expected: models.PowerOn,
		},
		{
			name:     "hex current value standby",
			output:   "VCP code 0xd6 (Power mode): current value = x04, max value = x04",
			expected: models.PowerOff,
		},
		{
			name:     "plain current value on",
			output:   "VCP code 0xd6 (Power mode): current value = 1, max value = 4",
			expected: models.PowerOn,
		},
		{
			name:     "unrecognised output",
			output:   "Display not found",
			expected: models.PowerUnknown,
			wantErr:  true,
		},
	}

	for _, c := range tests {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			// arrange
			mockRunner := mocks.NewMockMonitorCommandRunner(t)
			mockRunner.On("Run", mock.Anything, mock.Anything, "",
				"ddcutil", "--sleep-multiplier", ".1", "--bus", "1", "getvcp", "D6").
				Return(c.output, nil)
			b := monitor.NewDDCCIBackend(testLogger(), mockRunner, "1", false)

			// act
			state, err := b.GetPower(context.Background())

			// assert
			assert.Equal(t, c.expected, state)
			if c.wantErr {
				assert.ErrorIs(t, err, monitor.ErrUnexpectedOutput)
			} else {
				assert.NoError(t, err)
			}

		})
	}

}

func Test_DDCCIBackend_GetBrightness_Errors(t *testing.T) {

	t.Run("should pass through runner errors", func(t *testing.T) {
		t.Parallel()

		// arrange
		mockRunner := mocks.NewMockMonitorCommandRunner(t)
		mockRunner.On("Run", mock.Anything, mock.Anything, "",
			"ddcutil", "--sleep-multiplier", ".1", "--bus", "1", "getvcp", "10").
			Return("", errors.New("ddcutil: hardware timeout"))
		b := monitor.NewDDCCIBackend(testLogger(), mockRunner, "1", false)

		// act
		brightness, err := b.GetBrightness(context.Background())

		// assert
		assert.Error(t, err)
		assert.Equal(t, models.BrightnessUnknown, brightness)

	})

	t.Run("should reject output without a current value", func(t *testing.T) {
		t.Parallel()

		// arrange
		mockRunner := mocks.NewMockMonitorCommandRunner(t)
		mockRunner.On("Run", mock.Anything, mock.Anything, "",
			"ddcutil", "--sleep-multiplier", ".1", "--bus", "1", "getvcp", "10").
			Return("DDC communication failed", nil)
		b := monitor.NewDDCCIBackend(testLogger(), mockRunner, "1", false)

		// act
		brightness, err := b.GetBrightness(context.Background())

		// assert
		assert.ErrorIs(t, err, monitor.ErrUnexpectedOutput)
		assert.Equal(t, models.BrightnessUnknown, brightness)

	})

}
