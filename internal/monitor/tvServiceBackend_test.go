package monitor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/theglow000/HallwayDisplay/internal/models"
	"github.com/theglow000/HallwayDisplay/internal/monitor"
	"github.com/theglow000/HallwayDisplay/mocks"
)

const tvserviceOutputOn = `state 0xa [HDMI CUSTOM RGB full 4:3], 1024x768 @ 60.00Hz, progressive`

const tvserviceOutputOff = `state 0x120002 [TV is off]`

func Test_TVServiceBackend_Power(t *testing.T) {

	t.Run("should power on with the preferred mode", func(t *testing.T) {
		t.Parallel()

		// arrange
		mockRunner := mocks.NewMockMonitorCommandRunner(t)
		mockRunner.On("Run", mock.Anything, mock.Anything, "", "tvservice", "--preferred").Return("", nil)
		b := monitor.NewTVServiceBackend(testLogger(), mockRunner)

		// act
		err := b.SetPower(context.Background(), true)

		// assert
		assert.NoError(t, err)

	})

	t.Run("should power off the hdmi output", func(t *testing.T) {
		t.Parallel()

		// arrange
		mockRunner := mocks.NewMockMonitorCommandRunner(t)
		mockRunner.On("Run", mock.Anything, mock.Anything, "", "tvservice", "--off").Return("", nil)
		b := monitor.NewTVServiceBackend(testLogger(), mockRunner)

		// act
		err := b.SetPower(context.Background(), false)

		// assert
		assert.NoError(t, err)

	})

	t.Run("should parse the reported state", func(t *testing.T) {

		tests := []struct {
			name     string
			output   string
			expected models.PowerState
		}{
			{"driving the panel", tvserviceOutputOn, models.PowerOn},
			{"tv off", tvserviceOutputOff, models.PowerOff},
		}

		for _, tc := range tests {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()

				// arrange
				mockRunner := mocks.NewMockMonitorCommandRunner(t)
				mockRunner.On("Run", mock.Anything, mock.Anything, "", "tvservice", "-s").Return(tc.output, nil)
				b := monitor.NewTVServiceBackend(testLogger(), mockRunner)

				// act
				state, err := b.GetPower(context.Background())

				// assert
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, state)

			})
		}

	})

	t.Run("should report unknown for unreadable output", func(t *testing.T) {
		t.Parallel()

		// arrange
		mockRunner := mocks.NewMockMonitorCommandRunner(t)
		mockRunner.On("Run", mock.Anything, mock.Anything, "", "tvservice", "-s").Return("command not recognised", nil)
		b := monitor.NewTVServiceBackend(testLogger(), mockRunner)

		// act
		state, err := b.GetPower(context.Background())

		// assert
		assert.ErrorIs(t, err, monitor.ErrUnexpectedOutput)
		assert.Equal(t, models.PowerUnknown, state)

	})

}

func Test_TVServiceBackend_Brightness(t *testing.T) {

	t.Run("should refuse brightness calls", func(t *testing.T) {
		t.Parallel()

		// arrange
		mockRunner := mocks.NewMockMonitorCommandRunner(t)
		b := monitor.NewTVServiceBackend(testLogger(), mockRunner)

		// act
		err := b.SetBrightness(context.Background(), 50)
		brightness, readErr := b.GetBrightness(context.Background())

		// assert
		assert.ErrorIs(t, err, monitor.ErrUnsupported)
		assert.ErrorIs(t, readErr, monitor.ErrUnsupported)
		assert.Equal(t, models.BrightnessUnknown, brightness)

	})

}
