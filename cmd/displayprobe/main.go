package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/theglow000/HallwayDisplay/internal/config"
	"github.com/theglow000/HallwayDisplay/internal/monitor"
	"github.com/theglow000/HallwayDisplay/internal/sensors"
	"github.com/theglow000/HallwayDisplay/internal/touch"
	"periph.io/x/host/v3"
)

// displayprobe is a one-shot hardware report. It runs the same detection
// the daemon runs and prints what it finds, which is the first thing to
// check when a new panel or sensor misbehaves.
func main() {

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level: log.WarnLevel,
	})

	cfg, err := config.ReadConfig()
	if err != nil {
		fmt.Printf("config: %v\n", err)
		os.Exit(1)
	}

	if _, err := host.Init(); err != nil {
		fmt.Printf("hardware drivers: %v\n", err)
	}

	ctx := context.Background()
	backends := monitor.DefaultBackends(logger, *cfg)
	order := lo.Map(backends, func(b monitor.Backend, _ int) string {
		return string(b.Method())
	})
	fmt.Printf("detection order: %s\n", strings.Join(order, ", "))

	for _, b := range backends {
		if err := b.Probe(ctx); err != nil {
			fmt.Printf("  %-10s unavailable: %v\n", b.Method(), err)
			continue
		}
		fmt.Printf("  %-10s ok\n", b.Method())
	}

	controller := monitor.NewMonitorController(logger, backends)
	controller.Initialize(ctx)
	fmt.Printf("selected method: %s\n", controller.Method())
	if controller.Degraded() {
		fmt.Println("  nothing answered, power commands will be best-effort")
	} else if controller.AlternativeMethodsOnly() {
		fmt.Println("  power only, brightness control unavailable")
	}
	fmt.Printf("reported power: %s\n", controller.PowerState(ctx))
	if brightness := controller.Brightness(ctx); brightness >= 0 {
		fmt.Printf("reported brightness: %d\n", brightness)
	}

	if lightSensor, err := sensors.NewLightSensor(logger, cfg.I2CBus, cfg.LightSensorAddrs); err != nil {
		fmt.Printf("light sensor: %v\n", err)
	} else {
		if lux, err := lightSensor.Read(); err != nil {
			fmt.Printf("light sensor: read failed: %v\n", err)
		} else {
			fmt.Printf("light sensor: %.1f lux\n", lux)
		}
		lightSensor.Close()
	}

	if motionSensor, err := sensors.NewMotionSensor(logger, cfg.MotionPin); err != nil {
		fmt.Printf("motion sensor: %v\n", err)
	} else {
		fmt.Printf("motion sensor: wave at it, waiting 10s on %s...\n", cfg.MotionPin)
		if motionSensor.WaitForMotion(10 * time.Second) {
			fmt.Println("motion sensor: motion seen")
		} else {
			fmt.Println("motion sensor: nothing seen")
		}
	}

	if path, err := touch.FindDevice(logger, cfg.TouchDevice); err != nil {
		fmt.Printf("touch device: %v\n", err)
	} else {
		fmt.Printf("touch device: %s\n", path)
	}
}
