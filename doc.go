// Package panel is a retained-mode UI engine for small fixed-size raster
// displays: SPI LCDs on a Raspberry Pi, printer control panels, kiosks.
//
// Input arrives from touch points, rotary encoders, buttons or keys. Frames
// are rendered in software with [gg] and pushed to a [Display] sink.
//
// # Quick start
//
//	m := panel.NewManager(480, 320)
//	home := panel.NewScreen("home", 480, 320)
//	home.Build = func(s *panel.Screen) {
//		btn := panel.NewButton("ok", panel.R(190, 140, 100, 40), panel.ButtonConfig{Text: "OK"})
//		btn.OnClick(func(panel.PointerEvent) { /* ... */ })
//		s.Add(btn)
//	}
//	m.RegisterScreen(home)
//	_ = m.SwitchScreen("home")
//	m.SetDisplay(display.NewMemory())
//	_ = m.Run(ctx, 30)
//
// # Scene graph
//
// Every element is a [Node]. Nodes form a tree rooted at [Screen.Root].
// A node's Rect is in display pixels. Children draw after their parent in
// ascending ZIndex order (ties keep insertion order), and hit testing walks
// the reverse of that order, so whatever is drawn on top receives the
// touch. What a node looks like is decided by its Content, a [Drawable];
// nodes without content are plain containers.
//
// # Events and focus
//
// Input events are queued with [Manager.HandleInput] from any goroutine and
// dispatched at the start of the next tick. A positioned click or long press
// hit-tests the active screen, moves focus to the node hit and is delivered
// to that node and then to the screen's own handlers. Rotation and key
// events go to the focused node. Handler panics are recovered and logged.
//
// # Animation
//
// [Node.Animate] tweens a named property (x, y, width, height, plus any
// property exposed by content implementing [Animatable]) over a duration
// with an [Easing] from [gween]. Animations advance on every update and
// snap to their target when done.
//
// # Threading
//
// Node trees, focus and the current screen are owned by the scheduler
// goroutine started with [Manager.StartAnimationLoop] or [Manager.Run].
// Other goroutines use [Manager.HandleInput], [Manager.Post] and
// [Manager.Screenshot].
//
// [gg]: https://git.sr.ht/~sbinet/gg
// [gween]: https://github.com/tanema/gween
package panel
