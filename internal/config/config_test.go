package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/theglow000/HallwayDisplay/internal/config"
)

func Test_ApplyDefaults(t *testing.T) {
	t.Parallel()

	t.Run("should fill every unset field", func(t *testing.T) {
		t.Parallel()

		c := config.Config{}
		c.ApplyDefaults()

		assert.Equal(t, "1", c.MonitorI2CBus)
		assert.Equal(t, "1", c.I2CBus)
		assert.Equal(t, []string{"0x23", "0x5C"}, c.LightSensorAddrs)
		assert.Equal(t, "GPIO3", c.MotionPin)
		assert.Equal(t, 180*time.Second, c.MotionTimeout)
		assert.Equal(t, 30*time.Second, c.OverrideTimeout)
		assert.Len(t, c.Schedules.Weekday, 2)
		assert.Len(t, c.Schedules.Weekend, 1)
		assert.Equal(t, config.Night{From: "23:00", To: "06:00"}, c.Night)
		assert.Equal(t, 10, c.Brightness.Min)
		assert.Equal(t, 90, c.Brightness.Max)
		assert.Equal(t, 15, c.Brightness.Night)
	})

	t.Run("should not replace a configured schedule", func(t *testing.T) {
		t.Parallel()

		c := config.Config{
			Schedules: config.Schedules{
				Weekday: []config.Window{{On: "09:00", Off: "10:00"}},
			},
		}
		c.ApplyDefaults()

		assert.Equal(t, []config.Window{{On: "09:00", Off: "10:00"}}, c.Schedules.Weekday)
		assert.Nil(t, c.Schedules.Weekend)
	})
}

func Test_Validate(t *testing.T) {
	t.Parallel()

	valid := func() config.Config {
		c := config.Config{}
		c.ApplyDefaults()
		return c
	}

	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantErr bool
	}{
		{
			name:    "should accept the default configuration",
			mutate:  func(c *config.Config) {},
			wantErr: false,
		},
		{
			name: "should accept astronomical windows with a geo location",
			mutate: func(c *config.Config) {
				c.GeoLocation = "51.5,-0.1"
				c.Schedules.Weekday = []config.Window{{On: "sunset-30m", Off: "23:00"}}
			},
			wantErr: false,
		},
		{
			name: "should reject astronomical windows without a geo location",
			mutate: func(c *config.Config) {
				c.GeoLocation = ""
				c.Schedules.Weekday = []config.Window{{On: "sunrise", Off: "23:00"}}
			},
			wantErr: true,
		},
		{
			name: "should reject a malformed time",
			mutate: func(c *config.Config) {
				c.Schedules.Weekend = []config.Window{{On: "8am", Off: "23:00"}}
			},
			wantErr: true,
		},
		{
			name: "should reject a malformed astronomical offset",
			mutate: func(c *config.Config) {
				c.GeoLocation = "51.5,-0.1"
				c.Schedules.Weekday = []config.Window{{On: "sunrise+3x", Off: "23:00"}}
			},
			wantErr: true,
		},
		{
			name: "should reject a window with identical on and off",
			mutate: func(c *config.Config) {
				c.Schedules.Weekday = []config.Window{{On: "08:00", Off: "08:00"}}
			},
			wantErr: true,
		},
		{
			name: "should reject brightness min above max",
			mutate: func(c *config.Config) {
				c.Brightness.Min = 80
				c.Brightness.Max = 20
			},
			wantErr: true,
		},
		{
			name: "should reject a curve with non-increasing lux",
			mutate: func(c *config.Config) {
				c.Brightness.Curve = []config.CurvePoint{{Lux: 10, Percent: 10}, {Lux: 10, Percent: 50}}
			},
			wantErr: true,
		},
		{
			name: "should reject a curve with decreasing percent",
			mutate: func(c *config.Config) {
				c.Brightness.Curve = []config.CurvePoint{{Lux: 10, Percent: 50}, {Lux: 100, Percent: 20}}
			},
			wantErr: true,
		},
		{
			name: "should reject a non-positive motion timeout",
			mutate: func(c *config.Config) {
				c.MotionTimeout = -time.Second
			},
			wantErr: true,
		},
		{
			name: "should reject a bad light sensor address",
			mutate: func(c *config.Config) {
				c.LightSensorAddrs = []string{"nope"}
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := valid()
			tt.mutate(&c)

			err := c.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func Test_ParseGeoLocation(t *testing.T) {
	t.Parallel()

	t.Run("should parse a lat,lng pair", func(t *testing.T) {
		t.Parallel()

		lat, lng, err := config.ParseGeoLocation("51.5, -0.1")

		assert.NoError(t, err)
		assert.Equal(t, 51.5, lat)
		assert.Equal(t, -0.1, lng)
	})

	t.Run("should reject anything else", func(t *testing.T) {
		t.Parallel()

		_, _, err := config.ParseGeoLocation("London")

		assert.Error(t, err)
	})
}
