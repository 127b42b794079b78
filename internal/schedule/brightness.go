package schedule

import (
	"github.com/theglow000/HallwayDisplay/internal/config"
)

// BrightnessCurve maps an ambient lux level to a panel brightness by linear
// interpolation between the configured points. Outside the first and last
// points the curve is flat.
type BrightnessCurve struct {
	points []config.CurvePoint
	min    int
	max    int
}

func NewBrightnessCurve(b config.Brightness) *BrightnessCurve {
	points := b.Curve
	if len(points) == 0 {
		// dim at typical indoor levels, full brightness in direct light
		points = []config.CurvePoint{
			{Lux: 10, Percent: b.Min},
			{Lux: 1000, Percent: b.Max},
		}
	}
	return &BrightnessCurve{points: points, min: b.Min, max: b.Max}
}

func (c *BrightnessCurve) BrightnessFor(lux float64) int {
	first := c.points[0]
	if lux <= first.Lux {
		return c.clamp(first.Percent)
	}
	last := c.points[len(c.points)-1]
	if lux >= last.Lux {
		return c.clamp(last.Percent)
	}

	for i := 1; i < len(c.points); i++ {
		start := c.points[i-1]
		end := c.points[i]
		if lux > end.Lux {
			continue
		}

		segmentProgress := (lux - start.Lux) / (end.Lux - start.Lux)
		percentDiff := end.Percent - start.Percent
		target := start.Percent + int(float64(percentDiff)*segmentProgress)
		return c.clamp(target)
	}

	return c.clamp(last.Percent)
}

func (c *BrightnessCurve) clamp(value int) int {
	if value < c.min {
		return c.min
	}
	if value > c.max {
		return c.max
	}
	return value
}
