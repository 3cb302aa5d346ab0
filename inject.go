package panel

// Injected input goes through the same queue as hardware input, so scripted
// sessions exercise the real dispatch path. Coordinates are display pixels,
// matching what a screenshot shows.

// InjectClick queues a click at (x, y).
func (m *Manager) InjectClick(x, y int) {
	m.HandleInput(Click(x, y))
}

// InjectLongPress queues a long press at (x, y).
func (m *Manager) InjectLongPress(x, y int) {
	m.HandleInput(LongPress(x, y))
}

// InjectPress queues a position-less click or long press, as sent by an
// encoder's push button.
func (m *Manager) InjectPress(kind EventKind) {
	m.HandleInput(Press(kind))
}

// InjectRotate queues steps rotation detents; negative steps rotate
// counterclockwise. Each detent is a separate event.
func (m *Manager) InjectRotate(steps int) {
	cw := steps > 0
	if steps < 0 {
		steps = -steps
	}
	for range steps {
		m.HandleInput(Rotate(cw))
	}
}

// InjectKey queues a press and release of key.
func (m *Manager) InjectKey(key string) {
	m.HandleInput(KeyDown(key))
	m.HandleInput(KeyUp(key))
}
