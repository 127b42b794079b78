package sensors

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/theglow000/HallwayDisplay/internal/constants"
	"github.com/theglow000/HallwayDisplay/internal/models"
)

// ErrNoSensor means the hardware was not found where the config said it
// would be.
var ErrNoSensor = errors.New("no sensor found")

// LuxReader reads the ambient light level in lux.
type LuxReader interface {
	Read() (float64, error)
}

// MotionWaiter blocks until motion is seen or the timeout passes.
type MotionWaiter interface {
	WaitForMotion(timeout time.Duration) bool
}

// SensorService fuses the raw motion and light hardware into debounced
// events and a smoothed snapshot. Either sensor may be nil when the
// hardware is missing, the service then reports darkness and stillness
// instead of failing.
type SensorService struct {
	logger *log.Logger
	light  LuxReader
	motion MotionWaiter

	mu          sync.Mutex
	average     *MovingAverage
	debounce    *Debouncer
	lastLux     float64
	lastMotion  time.Time
	motionHold  time.Duration
	subscribers []chan<- time.Time
}

// NewSensorService wires the sensors up. motionHold is how long a motion
// event keeps the snapshot reporting activity.
func NewSensorService(logger *log.Logger, light LuxReader, motion MotionWaiter, motionHold time.Duration) *SensorService {
	return &SensorService{
		logger:     logger,
		light:      light,
		motion:     motion,
		average:    NewMovingAverage(constants.LuxSampleWindow),
		debounce:   NewDebouncer(constants.MotionDebounce),
		motionHold: motionHold,
	}
}

// Subscribe registers a channel that receives the timestamp of each
// debounced motion event. Sends never block, a full channel drops the
// event.
func (s *SensorService) Subscribe(ch chan<- time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, ch)
}

// Start runs the polling loops until the context is cancelled.
func (s *SensorService) Start(ctx context.Context) {
	var wg sync.WaitGroup
	if s.light != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.pollLightLoop(ctx)
		}()
	}
	if s.motion != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.watchMotionLoop(ctx)
		}()
	}
	wg.Wait()
}

func (s *SensorService) pollLightLoop(ctx context.Context) {
	for {
		delay := constants.LightPollInterval
		if !s.PollLight(time.Now()) {
			// give a glitching sensor a little longer to settle
			delay = 2 * constants.LightPollInterval
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(delay):
		}
	}
}

func (s *SensorService) watchMotionLoop(ctx context.Context) {
	for ctx.Err() == nil {
		if s.motion.WaitForMotion(constants.MotionPollTimeout) {
			s.OnMotionEdge(time.Now())
		}
	}
}

// PollLight reads the light sensor once and folds the value into the
// moving average. A failed read keeps the previous value and reports
// false.
func (s *SensorService) PollLight(now time.Time) bool {
	if s.light == nil {
		return true
	}
	lux, err := s.light.Read()
	if err != nil {
		s.logger.Warn("light sensor read failed, keeping last value", "error", err)
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastLux = s.average.Add(lux)
	return true
}

// OnMotionEdge records a raw rising edge from the motion sensor. Edges
// inside the debounce interval are dropped, the rest are forwarded to
// subscribers.
func (s *SensorService) OnMotionEdge(now time.Time) {
	s.mu.Lock()
	if !s.debounce.Accept(now) {
		s.mu.Unlock()
		return
	}
	s.lastMotion = now
	subscribers := make([]chan<- time.Time, len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	s.logger.Debug("motion detected")
	for _, ch := range subscribers {
		select {
		case ch <- now:
		default:
		}
	}
}

// Reading returns the fused snapshot. Motion stays active for the
// configured hold after the last event, so one look at the snapshot
// answers whether the hallway has been quiet.
func (s *SensorService) Reading(now time.Time) models.SensorReading {
	s.mu.Lock()
	defer s.mu.Unlock()
	motionActive := !s.lastMotion.IsZero() && now.Sub(s.lastMotion) <= s.motionHold
	return models.SensorReading{
		MotionActive:  motionActive,
		LightLevelLux: s.lastLux,
		Timestamp:     now,
	}
}
