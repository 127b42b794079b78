package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Window is a single [on, off) interval within a day. On and Off are either
// "HH:MM" clock times or astronomical values like "sunrise", "sunset-30m",
// "sunrise+1h". A window whose off value is earlier than its on value wraps
// past midnight.
type Window struct {
	On  string `json:"on"`
	Off string `json:"off"`
}

type Schedules struct {
	Weekday    []Window `json:"weekday"`
	Weekend    []Window `json:"weekend"`
	SunriseMin string   `json:"sunriseMin"`
	SunriseMax string   `json:"sunriseMax"`
	SunsetMin  string   `json:"sunsetMin"`
	SunsetMax  string   `json:"sunsetMax"`
}

// Night is the window during which the night brightness level applies.
type Night struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type CurvePoint struct {
	Lux     float64 `json:"lux"`
	Percent int     `json:"percent"`
}

type Brightness struct {
	Min   int          `json:"min"`
	Max   int          `json:"max"`
	Night int          `json:"night"`
	Curve []CurvePoint `json:"curve"`
}

type Config struct {
	GeoLocation      string        `json:"geoLocation"`
	LogFile          string        `json:"logFile"`
	MonitorI2CBus    string        `json:"monitorI2CBus"`
	DdcutilSudo      bool          `json:"ddcutilSudo"`
	I2CBus           string        `json:"i2cBus"`
	LightSensorAddrs []string      `json:"lightSensorAddrs"`
	MotionPin        string        `json:"motionPin"`
	TouchDevice      string        `json:"touchDevice"`
	MotionTimeout    time.Duration `json:"motionTimeout"`
	OverrideTimeout  time.Duration `json:"overrideTimeout"`
	Schedules        Schedules     `json:"schedules"`
	Night            Night         `json:"night"`
	Brightness       Brightness    `json:"brightness"`
}

func ReadConfig() (*Config, error) {
	viper.SetConfigName("config")                  // name of config file (without extension)
	viper.SetConfigType("json")                    // REQUIRED if the config file does not have the extension in the name
	viper.AddConfigPath("/etc/hallwayd/")          // path to look for the config file in
	viper.AddConfigPath("$HOME/.config/hallwayd/") // call multiple times to add many search paths
	viper.AddConfigPath(".")                       // optionally look for config in the working directory
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("fatal error config file: %w", err)
	}

	config := Config{}
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("fatal error config file: %w", err)
	}

	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) ApplyDefaults() {
	if c.MonitorI2CBus == "" {
		c.MonitorI2CBus = "1"
	}
	if c.I2CBus == "" {
		c.I2CBus = "1"
	}
	if len(c.LightSensorAddrs) == 0 {
		c.LightSensorAddrs = []string{"0x23", "0x5C"}
	}
	if c.MotionPin == "" {
		c.MotionPin = "GPIO3"
	}
	if c.TouchDevice == "" {
		c.TouchDevice = "/dev/input/by-id/usb-ILITEK_ILITEK-TP-event-if00"
	}
	if c.MotionTimeout == 0 {
		c.MotionTimeout = 180 * time.Second
	}
	if c.OverrideTimeout == 0 {
		c.OverrideTimeout = 30 * time.Second
	}
	if c.Schedules.Weekday == nil && c.Schedules.Weekend == nil {
		c.Schedules.Weekday = []Window{{On: "06:00", Off: "08:00"}, {On: "17:00", Off: "23:00"}}
		c.Schedules.Weekend = []Window{{On: "08:00", Off: "23:00"}}
	}
	if c.Night.From == "" && c.Night.To == "" {
		c.Night = Night{From: "23:00", To: "06:00"}
	}
	if c.Brightness.Min == 0 && c.Brightness.Max == 0 {
		c.Brightness.Min = 10
		c.Brightness.Max = 90
	}
	if c.Brightness.Night == 0 {
		c.Brightness.Night = 15
	}
}

func (c *Config) Validate() error {
	usesAstronomical := false
	for _, windows := range [][]Window{c.Schedules.Weekday, c.Schedules.Weekend} {
		for _, w := range windows {
			if err := validateTimeValue(w.On); err != nil {
				return err
			}
			if err := validateTimeValue(w.Off); err != nil {
				return err
			}
			if w.On == w.Off {
				return fmt.Errorf("schedule window on and off must differ, got %q for both", w.On)
			}
			if isAstronomical(w.On) || isAstronomical(w.Off) {
				usesAstronomical = true
			}
		}
	}
	if usesAstronomical {
		if _, _, err := ParseGeoLocation(c.GeoLocation); err != nil {
			return fmt.Errorf("schedule uses sunrise/sunset but geoLocation is invalid: %w", err)
		}
	}
	for _, clamp := range []string{c.Schedules.SunriseMin, c.Schedules.SunriseMax, c.Schedules.SunsetMin, c.Schedules.SunsetMax} {
		if clamp == "" {
			continue
		}
		if err := validateClockTime(clamp); err != nil {
			return err
		}
	}

	if c.Night.From != "" || c.Night.To != "" {
		if err := validateClockTime(c.Night.From); err != nil {
			return err
		}
		if err := validateClockTime(c.Night.To); err != nil {
			return err
		}
	}

	b := c.Brightness
	if b.Min < 0 || b.Max > 100 || b.Min > b.Max {
		return fmt.Errorf("brightness min/max must satisfy 0 <= min <= max <= 100, got %d/%d", b.Min, b.Max)
	}
	if b.Night < 0 || b.Night > 100 {
		return fmt.Errorf("night brightness must be between 0 and 100, got %d", b.Night)
	}
	for i, p := range b.Curve {
		if p.Percent < 0 || p.Percent > 100 {
			return fmt.Errorf("brightness curve percent must be between 0 and 100, got %d", p.Percent)
		}
		if i == 0 {
			continue
		}
		if p.Lux <= b.Curve[i-1].Lux {
			return fmt.Errorf("brightness curve lux values must be strictly increasing, got %v after %v", p.Lux, b.Curve[i-1].Lux)
		}
		if p.Percent < b.Curve[i-1].Percent {
			return fmt.Errorf("brightness curve percent values must not decrease, got %d after %d", p.Percent, b.Curve[i-1].Percent)
		}
	}

	if c.MotionTimeout <= 0 {
		return fmt.Errorf("motionTimeout must be positive, got %s", c.MotionTimeout)
	}
	if c.OverrideTimeout <= 0 {
		return fmt.Errorf("overrideTimeout must be positive, got %s", c.OverrideTimeout)
	}

	for _, addr := range c.LightSensorAddrs {
		if _, err := strconv.ParseUint(addr, 0, 16); err != nil {
			return fmt.Errorf("invalid light sensor address %q: %w", addr, err)
		}
	}

	return nil
}

// ParseGeoLocation splits a "lat,lng" value into its two coordinates.
func ParseGeoLocation(value string) (float64, float64, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("geoLocation must be \"lat,lng\", got %q", value)
	}
	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid latitude %q: %w", parts[0], err)
	}
	lng, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid longitude %q: %w", parts[1], err)
	}
	return lat, lng, nil
}

func isAstronomical(value string) bool {
	return strings.HasPrefix(value, "sunrise") || strings.HasPrefix(value, "sunset")
}

func validateTimeValue(value string) error {
	if isAstronomical(value) {
		rest := strings.TrimPrefix(strings.TrimPrefix(value, "sunrise"), "sunset")
		if rest == "" {
			return nil
		}
		if _, err := time.ParseDuration(rest); err != nil {
			return fmt.Errorf("invalid astronomical offset %q, expected e.g. \"sunset-30m\"", value)
		}
		return nil
	}
	return validateClockTime(value)
}

func validateClockTime(value string) error {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return fmt.Errorf("invalid time %q, expected \"HH:MM\"", value)
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return fmt.Errorf("invalid hours in %q", value)
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return fmt.Errorf("invalid minutes in %q", value)
	}
	return nil
}
