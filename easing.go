package panel

import (
	"strings"

	"github.com/tanema/gween/ease"
)

// Easing remaps normalized progress in [0, 1] to an interpolation factor.
// Most easings stay within [0, 1]; the back and elastic families overshoot.
type Easing func(t float64) float64

// FromTween adapts a gween easing function (t, begin, change, duration) to
// the normalized Easing form.
func FromTween(fn ease.TweenFunc) Easing {
	return func(t float64) float64 {
		return float64(fn(float32(t), 0, 1, 1))
	}
}

// Linear is the identity easing. It is exact rather than routed through
// float32 so that sampled values land on the expected numbers.
func Linear(t float64) float64 { return t }

// Built-in easings.
var (
	InQuad    = FromTween(ease.InQuad)
	OutQuad   = FromTween(ease.OutQuad)
	InOutQuad = FromTween(ease.InOutQuad)

	InCubic    = FromTween(ease.InCubic)
	OutCubic   = FromTween(ease.OutCubic)
	InOutCubic = FromTween(ease.InOutCubic)

	InSine    = FromTween(ease.InSine)
	OutSine   = FromTween(ease.OutSine)
	InOutSine = FromTween(ease.InOutSine)

	InBack    = FromTween(ease.InBack)
	OutBack   = FromTween(ease.OutBack)
	InOutBack = FromTween(ease.InOutBack)

	InBounce    = FromTween(ease.InBounce)
	OutBounce   = FromTween(ease.OutBounce)
	InOutBounce = FromTween(ease.InOutBounce)

	InElastic    = FromTween(ease.InElastic)
	OutElastic   = FromTween(ease.OutElastic)
	InOutElastic = FromTween(ease.InOutElastic)
)

var easingsByName = map[string]Easing{
	"linear":         Linear,
	"in_quad":        InQuad,
	"out_quad":       OutQuad,
	"in_out_quad":    InOutQuad,
	"in_cubic":       InCubic,
	"out_cubic":      OutCubic,
	"in_out_cubic":   InOutCubic,
	"in_sine":        InSine,
	"out_sine":       OutSine,
	"in_out_sine":    InOutSine,
	"in_back":        InBack,
	"out_back":       OutBack,
	"in_out_back":    InOutBack,
	"in_bounce":      InBounce,
	"out_bounce":     OutBounce,
	"in_out_bounce":  InOutBounce,
	"in_elastic":     InElastic,
	"out_elastic":    OutElastic,
	"in_out_elastic": InOutElastic,
}

// EasingByName looks up a built-in easing by snake-case name ("out_cubic").
// Dashes are accepted in place of underscores.
func EasingByName(name string) (Easing, bool) {
	fn, ok := easingsByName[strings.ReplaceAll(strings.ToLower(name), "-", "_")]
	return fn, ok
}
