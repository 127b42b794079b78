package touch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	evdev "github.com/holoplot/go-evdev"
	"github.com/samber/lo"

	"github.com/theglow000/HallwayDisplay/internal/constants"
)

// keywords that mark an input device as the touchscreen when the
// configured path is missing
var touchKeywords = []string{"touch", "ilitek", "hid", "screen"}

// TouchWatcher reads the touchscreen's input events and publishes a
// timestamp for every finger landing on the panel. The panel is the only
// manual control the display has, a touch while it is off means someone
// wants it on.
type TouchWatcher struct {
	logger     *log.Logger
	devicePath string

	mu          sync.Mutex
	subscribers []chan<- time.Time
}

func NewTouchWatcher(logger *log.Logger, devicePath string) *TouchWatcher {
	return &TouchWatcher{logger: logger, devicePath: devicePath}
}

// Subscribe registers a channel that receives the timestamp of each
// touch. Sends never block, a full channel drops the event.
func (w *TouchWatcher) Subscribe(ch chan<- time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.subscribers = append(w.subscribers, ch)
}

// Watch opens the touch device and forwards its events until the context
// is cancelled. Device errors trigger a reconnect, so unplugging the
// panel does not kill the watcher.
func (w *TouchWatcher) Watch(ctx context.Context) {
	for ctx.Err() == nil {
		w.watchOnce(ctx)
		select {
		case <-ctx.Done():
		case <-time.After(constants.TouchReconnectDelay):
		}
	}
}

func (w *TouchWatcher) watchOnce(ctx context.Context) {
	path, err := FindDevice(w.logger, w.devicePath)
	if err != nil {
		w.logger.Warn("no touch device found", "error", err)
		return
	}

	dev, err := evdev.Open(path)
	if err != nil {
		w.logger.Warn("opening touch device failed", "path", path, "error", err)
		return
	}
	name, _ := dev.Name()
	w.logger.Info("touch device opened", "path", path, "name", name)

	// closing the device is the only way to unblock the read below
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
		case <-done:
		}
		dev.Close()
	}()

	for {
		event, err := dev.ReadOne()
		if err != nil {
			if ctx.Err() == nil {
				w.logger.Warn("touch device read failed, reconnecting", "error", err)
			}
			return
		}
		if isTouch(event) {
			w.publish(time.Now())
		}
	}
}

// FindDevice returns the path of the touchscreen input device. The
// configured path wins when it exists, otherwise the device list is
// searched by name.
func FindDevice(logger *log.Logger, preferred string) (string, error) {
	if preferred != "" {
		if _, err := os.Stat(preferred); err == nil {
			return preferred, nil
		}
		logger.Info("configured touch device missing, searching by name", "path", preferred)
	}

	paths, err := evdev.ListDevicePaths()
	if err != nil {
		return "", fmt.Errorf("listing input devices: %w", err)
	}
	found, ok := lo.Find(paths, func(p evdev.InputPath) bool {
		name := strings.ToLower(p.Name)
		return lo.SomeBy(touchKeywords, func(keyword string) bool {
			return strings.Contains(name, keyword)
		})
	})
	if !ok {
		return "", errors.New("no touch device found by name")
	}
	logger.Info("touch device found", "path", found.Path, "name", found.Name)
	return found.Path, nil
}

// isTouch reports a finger landing on the panel. Single touch panels
// report BTN_TOUCH, multitouch panels report a fresh tracking id.
func isTouch(event *evdev.InputEvent) bool {
	if event.Type == evdev.EV_KEY && event.Code == evdev.BTN_TOUCH && event.Value == 1 {
		return true
	}
	if event.Type == evdev.EV_ABS && event.Code == evdev.ABS_MT_TRACKING_ID && event.Value != -1 {
		return true
	}
	return false
}

func (w *TouchWatcher) publish(at time.Time) {
	w.mu.Lock()
	subscribers := make([]chan<- time.Time, len(w.subscribers))
	copy(subscribers, w.subscribers)
	w.mu.Unlock()

	w.logger.Debug("touch detected")
	for _, ch := range subscribers {
		select {
		case ch <- at:
		default:
		}
	}
}
