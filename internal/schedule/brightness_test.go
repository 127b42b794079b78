package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/theglow000/HallwayDisplay/internal/config"
	"github.com/theglow000/HallwayDisplay/internal/schedule"
)

func Test_BrightnessCurve_DefaultRamp(t *testing.T) {

	curve := schedule.NewBrightnessCurve(config.Brightness{Min: 10, Max: 90})

	tests := []struct {
		name     string
		lux      float64
		expected int
	}{
		{"below the ramp", 0, 10},
		{"at the bottom of the ramp", 10, 10},
		{"halfway up the ramp", 505, 50},
		{"at the top of the ramp", 1000, 90},
		{"above the ramp", 20000, 90},
	}

	for _, c := range tests {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, curve.BrightnessFor(c.lux))
		})
	}

}

func Test_BrightnessCurve_ConfiguredPoints(t *testing.T) {

	curve := schedule.NewBrightnessCurve(config.Brightness{
		Min: 0,
		Max: 100,
		Curve: []config.CurvePoint{
			{Lux: 0, Percent: 0},
			{Lux: 100, Percent: 30},
			{Lux: 1000, Percent: 100},
		},
	})

	tests := []struct {
		name     string
		lux      float64
		expected int
	}{
		{"first segment midpoint", 50, 15},
		{"exactly on a point", 100, 30},
		{"second segment midpoint", 550, 65},
		{"beyond the last point", 5000, 100},
	}

	for _, c := range tests {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.expected, curve.BrightnessFor(c.lux))
		})
	}

}

func Test_BrightnessCurve_ClampsToMinMax(t *testing.T) {

	// curve points outside the min/max range are pulled back in
	curve := schedule.NewBrightnessCurve(config.Brightness{
		Min: 20,
		Max: 80,
		Curve: []config.CurvePoint{
			{Lux: 0, Percent: 0},
			{Lux: 1000, Percent: 100},
		},
	})

	assert.Equal(t, 20, curve.BrightnessFor(0))
	assert.Equal(t, 50, curve.BrightnessFor(500))
	assert.Equal(t, 80, curve.BrightnessFor(1000))

}
