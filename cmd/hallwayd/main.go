package main

import (
	"context"
	"os"
	"os/signal"

	"syscall"

	"github.com/charmbracelet/log"
	"github.com/theglow000/HallwayDisplay/internal/config"
	"github.com/theglow000/HallwayDisplay/internal/hallway"
	"github.com/theglow000/HallwayDisplay/internal/monitor"
	"github.com/theglow000/HallwayDisplay/internal/schedule"
	"github.com/theglow000/HallwayDisplay/internal/sensors"
	"github.com/theglow000/HallwayDisplay/internal/touch"
	"gopkg.in/natefinch/lumberjack.v2"
	"periph.io/x/host/v3"
)

func main() {

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           log.InfoLevel,
		ReportTimestamp: true,
		ReportCaller:    true,
	})
	logger.Info("hallwayd starting")

	// read the config file
	cfg, err := config.ReadConfig()
	if err != nil {
		logger.Fatal("invalid configuration", "error", err)
	}

	if cfg.LogFile != "" {
		logger = log.NewWithOptions(&lumberjack.Logger{
			Filename: cfg.LogFile,
			MaxAge:   3,
		}, log.Options{
			Level:      log.InfoLevel,
			TimeFormat: "2006/01/02 15:04:05",
		})
	}

	// the gpio and i2c drivers need loading before the sensors can open
	if _, err := host.Init(); err != nil {
		logger.Error("hardware driver init failed, sensors may be unavailable", "error", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// create/wire up services
	controller := monitor.NewMonitorController(logger, monitor.DefaultBackends(logger, *cfg))
	controller.Initialize(ctx)
	if controller.Degraded() {
		logger.Warn("running degraded, power commands are best-effort")
	} else if controller.AlternativeMethodsOnly() {
		logger.Warn("ddc/ci unavailable, brightness control disabled", "method", controller.Method())
	}

	// the display must still run when a sensor is missing, it just loses
	// that input
	var lux sensors.LuxReader
	if lightSensor, err := sensors.NewLightSensor(logger, cfg.I2CBus, cfg.LightSensorAddrs); err != nil {
		logger.Error("light sensor unavailable, brightness will sit at the minimum", "error", err)
	} else {
		lux = lightSensor
	}

	var motion sensors.MotionWaiter
	if motionSensor, err := sensors.NewMotionSensor(logger, cfg.MotionPin); err != nil {
		logger.Error("motion sensor unavailable, the display will not wake on movement", "error", err)
	} else {
		motion = motionSensor
	}

	sensorService := sensors.NewSensorService(logger, lux, motion, cfg.MotionTimeout)
	touchWatcher := touch.NewTouchWatcher(logger, cfg.TouchDevice)
	scheduleService := schedule.NewScheduleService(logger, *cfg)
	display := hallway.NewHallwayDisplay(logger, *cfg, controller, scheduleService, sensorService, touchWatcher)

	go sensorService.Start(ctx)
	go touchWatcher.Watch(ctx)
	go display.Run(ctx)

	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)
	reloadChannel := make(chan os.Signal, 1)
	signal.Notify(reloadChannel, syscall.SIGHUP)

	for {
		select {

		case <-reloadChannel:
			newCfg, err := config.ReadConfig()
			if err != nil {
				logger.Error("config reload failed, keeping the running configuration", "error", err)
				continue
			}
			display.ReloadConfig(*newCfg)

		case <-quitChannel:
			// the monitor keeps whatever state it is in across restarts
			cancel()
			logger.Info("hallwayd closing")
			return
		}
	}
}
