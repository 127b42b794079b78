package constants

import "time"

// MainTickInterval is how often the orchestrator re-evaluates schedule,
// sensors and monitor state.
const MainTickInterval = 2 * time.Second

// timeouts for external display-control commands
const ProbeTimeout = 3 * time.Second
const CommandTimeout = 5 * time.Second

// SetPowerRetries is how many extra attempts a power call gets on the
// preferred backend before falling through to an alternative.
const SetPowerRetries = 2

// RetryBackoff grows linearly with the attempt number (1s, 2s, ...).
const RetryBackoff = 1 * time.Second

// RedetectAfterFailures is the number of consecutive failed hardware calls
// after which backend detection runs again.
const RedetectAfterFailures = 3

const LightPollInterval = 5 * time.Second

// LuxMeasureDelay is how long a BH1750 one-time high resolution
// conversion takes, worst case per the datasheet.
const LuxMeasureDelay = 180 * time.Millisecond

// LuxSampleWindow is the size of the moving average applied to raw lux
// readings, it smooths out flicker from the fixture above the display.
const LuxSampleWindow = 5

const MotionDebounce = 2 * time.Second

// MotionPollTimeout bounds each wait for a PIR edge so the watcher can
// notice shutdown.
const MotionPollTimeout = 500 * time.Millisecond

const MotionMailboxSize = 16

const TouchReconnectDelay = 5 * time.Second
