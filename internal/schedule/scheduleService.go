package schedule

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/nathan-osman/go-sunrise"
	"github.com/samber/lo"
	"github.com/theglow000/HallwayDisplay/internal/config"
	"github.com/theglow000/HallwayDisplay/internal/models"
)

type ScheduleService struct {
	logger *log.Logger
	cfg    config.Config
	curve  *BrightnessCurve

	// sunrise/sunset cache for the current day
	sunDate string
	sunrise time.Time
	sunset  time.Time
}

func NewScheduleService(logger *log.Logger, cfg config.Config) *ScheduleService {
	return &ScheduleService{
		logger: logger,
		cfg:    cfg,
		curve:  NewBrightnessCurve(cfg.Brightness),
	}
}

// Reload replaces the whole schedule configuration. It is only called
// between orchestration ticks, so no locking is needed.
func (s *ScheduleService) Reload(cfg config.Config) {
	s.cfg = cfg
	s.curve = NewBrightnessCurve(cfg.Brightness)
	s.sunDate = ""
}

// DesiredBaseState returns whether the schedule alone wants the display on
// or off at the supplied time, before motion and touch are considered.
func (s *ScheduleService) DesiredBaseState(now time.Time) models.PowerState {
	windows := s.cfg.Schedules.Weekday
	if isWeekend(now) {
		windows = s.cfg.Schedules.Weekend
	}

	on := lo.SomeBy(windows, func(w config.Window) bool {
		return s.windowContains(w, now)
	})
	if on {
		return models.PowerOn
	}
	return models.PowerOff
}

// IsNight reports whether now falls inside the configured night window.
func (s *ScheduleService) IsNight(now time.Time) bool {
	if s.cfg.Night.From == "" || s.cfg.Night.To == "" {
		return false
	}
	return s.windowContains(config.Window{On: s.cfg.Night.From, Off: s.cfg.Night.To}, now)
}

// TargetBrightness maps the ambient light level to a panel brightness. The
// flat night level wins over the curve inside the night window.
func (s *ScheduleService) TargetBrightness(now time.Time, lux float64) int {
	if s.IsNight(now) {
		return s.cfg.Brightness.Night
	}
	return s.curve.BrightnessFor(lux)
}

func isWeekend(t time.Time) bool {
	return t.Weekday() == time.Saturday || t.Weekday() == time.Sunday
}

// windowContains treats the window as [on, off). A window whose off value
// resolves earlier than its on value wraps past midnight.
func (s *ScheduleService) windowContains(w config.Window, t time.Time) bool {
	on := s.resolveTime(w.On, t)
	off := s.resolveTime(w.Off, t)

	if on.Before(off) {
		return t.Compare(on) > -1 && t.Before(off)
	}
	// wraps midnight
	return t.Compare(on) > -1 || t.Before(off)
}

func (s *ScheduleService) resolveTime(value string, baseDate time.Time) time.Time {
	if strings.Contains(value, "sunrise") || strings.Contains(value, "sunset") {
		rise, set := s.sunriseSunset(baseDate)
		return TimeFromPattern(value, rise, set, baseDate)
	}
	return TimeFromConfigTimeString(value, baseDate)
}

// sunriseSunset calculates (and caches for the rest of the day) the local
// sunrise and sunset, clamped to the configured min/max values.
func (s *ScheduleService) sunriseSunset(baseDate time.Time) (time.Time, time.Time) {
	day := baseDate.Format("2006-01-02")
	if s.sunDate == day {
		return s.sunrise, s.sunset
	}

	lat, lng, err := config.ParseGeoLocation(s.cfg.GeoLocation)
	if err != nil {
		// validation rejects this when any window uses sunrise/sunset
		s.logger.Error("invalid geoLocation, treating sunrise and sunset as midnight", "error", err)
		midnight := time.Date(baseDate.Year(), baseDate.Month(), baseDate.Day(), 0, 0, 0, 0, time.Local)
		return midnight, midnight
	}

	rise, set := sunrise.SunriseSunset(
		lat, lng,
		baseDate.Year(), baseDate.Month(), baseDate.Day(),
	)

	if s.cfg.Schedules.SunriseMin != "" {
		if min := TimeFromConfigTimeString(s.cfg.Schedules.SunriseMin, baseDate); rise.Before(min) {
			rise = min
		}
	}
	if s.cfg.Schedules.SunriseMax != "" {
		if max := TimeFromConfigTimeString(s.cfg.Schedules.SunriseMax, baseDate); rise.After(max) {
			rise = max
		}
	}
	if s.cfg.Schedules.SunsetMin != "" {
		if min := TimeFromConfigTimeString(s.cfg.Schedules.SunsetMin, baseDate); set.Before(min) {
			set = min
		}
	}
	if s.cfg.Schedules.SunsetMax != "" {
		if max := TimeFromConfigTimeString(s.cfg.Schedules.SunsetMax, baseDate); set.After(max) {
			set = max
		}
	}

	s.logger.Info("Calculated local sunrise and sunset",
		"sunrise", rise.Local().Format("15:04"),
		"sunset", set.Local().Format("15:04"),
	)

	s.sunDate = day
	s.sunrise = rise
	s.sunset = set
	return rise, set
}

// TimeFromPattern resolves a schedule time value against the supplied
// sunrise/sunset for the base date.
func TimeFromPattern(patternTime string, sunrise time.Time, sunset time.Time, baseDate time.Time) time.Time {

	// sunrise or sunrise offset
	if strings.Contains(patternTime, "sunrise") {
		return timeFromAstronomicalPatternTime(patternTime, "sunrise", sunrise)
	}

	// sunset or sunset offset
	if strings.Contains(patternTime, "sunset") {
		return timeFromAstronomicalPatternTime(patternTime, "sunset", sunset)
	}

	// time e.g 19:30
	return TimeFromConfigTimeString(patternTime, baseDate)

}

// returns a Time object built from the supplied time string (e.g. "06:30") and a base date
func TimeFromConfigTimeString(timeString string, baseDate time.Time) time.Time {
	timeHM := strings.Split(timeString, ":")
	hour, _ := strconv.Atoi(timeHM[0])
	mins, _ := strconv.Atoi(timeHM[1])
	return time.Date(baseDate.Year(), baseDate.Month(), baseDate.Day(), hour, mins, 0, 0, time.Local)

}

// returns an adjusted eventTime e.g ("sunset-1h", "sunset", 2023-06-27 21:43:18) -> 2023-06-27 20:43:18
func timeFromAstronomicalPatternTime(patternTime string, event string, eventTime time.Time) time.Time {
	var result time.Time
	if patternTime == event {
		result = eventTime
	} else {
		offset, _ := time.ParseDuration(patternTime[len(event):])
		result = eventTime.Add(offset)
	}
	return result
}
