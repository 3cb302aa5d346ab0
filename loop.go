package panel

import (
	"context"
	"errors"
	"sync"
	"time"
)

// Loop errors.
var (
	ErrLoopRunning = errors.New("panel: animation loop already running")
	ErrInvalidFPS  = errors.New("panel: fps must be positive")
	ErrStopTimeout = errors.New("panel: animation loop did not stop in time")
)

// stopTimeout bounds how long StopAnimationLoop waits for the loop to exit.
const stopTimeout = time.Second

type loopState struct {
	mu      sync.Mutex
	running bool
	stop    chan struct{}
	done    chan struct{}
	fps     int
}

// StartAnimationLoop runs the frame scheduler on a new goroutine at the given
// target rate. Each tick drains queued input, updates the current screen and
// presents a frame to the display. Late ticks are not caught up.
func (m *Manager) StartAnimationLoop(fps int) error {
	stop, done, err := m.beginLoop(fps)
	if err != nil {
		return err
	}
	go func() {
		defer m.endLoop(done)
		m.runLoop(fps, stop)
	}()
	Logger().Info("panel: animation loop started", "fps", fps)
	return nil
}

// Run runs the frame scheduler on the calling goroutine until ctx is done or
// StopAnimationLoop is called. It returns nil on a clean stop.
func (m *Manager) Run(ctx context.Context, fps int) error {
	stop, done, err := m.beginLoop(fps)
	if err != nil {
		return err
	}
	defer m.endLoop(done)
	go func() {
		select {
		case <-ctx.Done():
			m.requestStop(stop)
		case <-done:
		}
	}()
	Logger().Info("panel: animation loop running", "fps", fps)
	m.runLoop(fps, stop)
	return nil
}

// StopAnimationLoop asks the scheduler to exit and waits up to one second for
// it. Stopping a loop that is not running is a no-op.
func (m *Manager) StopAnimationLoop() error {
	m.loop.mu.Lock()
	if !m.loop.running {
		m.loop.mu.Unlock()
		return nil
	}
	stop, done := m.loop.stop, m.loop.done
	m.loop.mu.Unlock()

	m.requestStop(stop)
	select {
	case <-done:
		Logger().Info("panel: animation loop stopped")
		return nil
	case <-time.After(stopTimeout):
		Logger().Warn("panel: animation loop did not stop", "timeout", stopTimeout)
		return ErrStopTimeout
	}
}

// Running reports whether the scheduler is active.
func (m *Manager) Running() bool {
	m.loop.mu.Lock()
	defer m.loop.mu.Unlock()
	return m.loop.running
}

// TargetFPS returns the rate the running loop was started with, or 0.
func (m *Manager) TargetFPS() int {
	m.loop.mu.Lock()
	defer m.loop.mu.Unlock()
	if !m.loop.running {
		return 0
	}
	return m.loop.fps
}

func (m *Manager) beginLoop(fps int) (stop, done chan struct{}, err error) {
	if fps <= 0 {
		return nil, nil, ErrInvalidFPS
	}
	m.loop.mu.Lock()
	defer m.loop.mu.Unlock()
	if m.loop.running {
		return nil, nil, ErrLoopRunning
	}
	m.loop.running = true
	m.loop.fps = fps
	m.loop.stop = make(chan struct{})
	m.loop.done = make(chan struct{})
	return m.loop.stop, m.loop.done, nil
}

func (m *Manager) endLoop(done chan struct{}) {
	m.loop.mu.Lock()
	m.loop.running = false
	m.loop.mu.Unlock()
	close(done)
}

func (m *Manager) requestStop(stop chan struct{}) {
	m.loop.mu.Lock()
	defer m.loop.mu.Unlock()
	select {
	case <-stop:
	default:
		close(stop)
	}
}

func (m *Manager) runLoop(fps int, stop <-chan struct{}) {
	period := time.Second / time.Duration(fps)
	timer := time.NewTimer(0)
	defer timer.Stop()
	<-timer.C

	last := time.Now()
	for {
		select {
		case <-stop:
			return
		default:
		}

		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now
		m.Step(dt)

		wait := period - time.Since(now)
		if wait <= 0 {
			continue
		}
		timer.Reset(wait)
		select {
		case <-stop:
			return
		case <-timer.C:
		}
	}
}
