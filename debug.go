package panel

import (
	"fmt"
	"sync/atomic"
	"time"
)

// globalDebug mirrors the most recent Manager.SetDebugMode so tree
// operations, which have no manager at hand, can run their checks.
var globalDebug atomic.Bool

func setDebug(enabled bool) { globalDebug.Store(enabled) }

func debugEnabled() bool { return globalDebug.Load() }

// frameStats holds per-tick timings. Only logged in debug mode.
type frameStats struct {
	update  time.Duration
	render  time.Duration
	present time.Duration
}

// debugLog writes tick timings and tree size at debug level.
func (m *Manager) debugLog(stats frameStats) {
	if !m.debug {
		return
	}
	nodes := 0
	if m.current != nil {
		nodes = countNodes(m.current.root)
	}
	Logger().Debug("panel: frame",
		"frame", m.frames.Load(),
		"update", stats.update,
		"render", stats.render,
		"present", stats.present,
		"total", stats.update+stats.render+stats.present,
		"nodes", nodes)
}

// debugCheckDisposed panics with a descriptive message when a disposed node is
// used in a tree operation. Callers skip it outside debug mode.
func debugCheckDisposed(n *Node, op string) {
	if n.disposed {
		panic(fmt.Sprintf("panel debug: %s on disposed node %q", op, n.ID))
	}
}

// debugCheckTreeDepth warns if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(n *Node) {
	depth := 0
	for p := n; p != nil; p = p.Parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		Logger().Warn("panel: tree depth exceeds threshold",
			"depth", depth, "threshold", debugMaxTreeDepth, "node", n.ID)
	}
}

// debugCheckChildCount warns if a node has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(n *Node) {
	if len(n.children) > debugMaxChildCount {
		Logger().Warn("panel: child count exceeds threshold",
			"node", n.ID, "children", len(n.children), "threshold", debugMaxChildCount)
	}
}

func countNodes(n *Node) int {
	count := 0
	n.Walk(func(*Node) bool {
		count++
		return true
	})
	return count
}
