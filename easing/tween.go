package easing

import (
	"github.com/tanema/gween/ease"
)

// FromTween adapts a gween curve, which works on absolute time, begin,
// change and duration, to normalized progress.
func FromTween(fn ease.TweenFunc) Func {
	if fn == nil {
		return Linear
	}
	return func(p float64) float64 {
		return float64(fn(float32(p), 0, 1, 1))
	}
}

func init() {
	// Overshooting and bouncing curves only gween provides in this stack.
	for name, fn := range map[string]ease.TweenFunc{
		"easeinback":       ease.InBack,
		"easeoutback":      ease.OutBack,
		"easeinoutback":    ease.InOutBack,
		"easeinbounce":     ease.InBounce,
		"easeoutbounce":    ease.OutBounce,
		"easeinoutbounce":  ease.InOutBounce,
		"easeinelastic":    ease.InElastic,
		"easeoutelastic":   ease.OutElastic,
		"easeinoutelastic": ease.InOutElastic,
	} {
		catalog[name] = FromTween(fn)
	}
}
