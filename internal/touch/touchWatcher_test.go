package touch

import (
	"os"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	evdev "github.com/holoplot/go-evdev"
	"github.com/stretchr/testify/assert"
)

func testLogger() *log.Logger {
	return log.NewWithOptions(os.Stderr, log.Options{Level: log.FatalLevel})
}

func Test_isTouch(t *testing.T) {

	tests := []struct {
		name     string
		event    evdev.InputEvent
		expected bool
	}{
		{
			"finger down on a single touch panel",
			evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.BTN_TOUCH, Value: 1},
			true,
		},
		{
			"finger up on a single touch panel",
			evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.BTN_TOUCH, Value: 0},
			false,
		},
		{
			"new multitouch contact",
			evdev.InputEvent{Type: evdev.EV_ABS, Code: evdev.ABS_MT_TRACKING_ID, Value: 7},
			true,
		},
		{
			"multitouch contact released",
			evdev.InputEvent{Type: evdev.EV_ABS, Code: evdev.ABS_MT_TRACKING_ID, Value: -1},
			false,
		},
		{
			"unrelated key event",
			evdev.InputEvent{Type: evdev.EV_KEY, Code: evdev.KEY_A, Value: 1},
			false,
		},
		{
			"finger position update",
			evdev.InputEvent{Type: evdev.EV_ABS, Code: evdev.ABS_MT_POSITION_X, Value: 512},
			false,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			event := tc.event
			assert.Equal(t, tc.expected, isTouch(&event))

		})
	}

}

func Test_publish(t *testing.T) {

	t.Run("should fan out to every subscriber", func(t *testing.T) {
		t.Parallel()

		// arrange
		w := NewTouchWatcher(testLogger(), "")
		first := make(chan time.Time, 1)
		second := make(chan time.Time, 1)
		w.Subscribe(first)
		w.Subscribe(second)
		at := time.Date(2023, 1, 2, 12, 0, 0, 0, time.Local)

		// act
		w.publish(at)

		// assert
		assert.Equal(t, at, <-first)
		assert.Equal(t, at, <-second)

	})

	t.Run("should drop events rather than block on a full subscriber", func(t *testing.T) {
		t.Parallel()

		// arrange
		w := NewTouchWatcher(testLogger(), "")
		events := make(chan time.Time, 1)
		w.Subscribe(events)
		at := time.Date(2023, 1, 2, 12, 0, 0, 0, time.Local)

		// act
		w.publish(at)
		w.publish(at.Add(time.Second))

		// assert
		assert.Len(t, events, 1)
		assert.Equal(t, at, <-events)

	})

}
