// Package easing provides the curves used to reshape normalized animation
// progress. Every Func maps p in [0,1] to eased progress; overshooting curves
// may leave that range.
package easing

import (
	"sort"
	"strings"

	"github.com/fogleman/ease"
)

// Func reshapes normalized progress.
type Func func(p float64) float64

// The standard catalog, see https://easings.net/.
var (
	Linear         Func = ease.Linear
	EaseInSine     Func = ease.InSine
	EaseOutSine    Func = ease.OutSine
	EaseInOutSine  Func = ease.InOutSine
	EaseOutCubic   Func = ease.OutCubic
	EaseInOutCubic Func = ease.InOutCubic
	EaseOutQuint   Func = ease.OutQuint
	EaseInOutCirc  Func = ease.InOutCirc
	EaseInOutQuad  Func = ease.InOutQuad
	EaseInExpo     Func = ease.InExpo
	EaseOutExpo    Func = ease.OutExpo
)

// OrLinear returns fn, or Linear when fn is nil.
func OrLinear(fn Func) Func {
	if fn == nil {
		return Linear
	}
	return fn
}

var catalog = map[string]Func{
	"linear":         Linear,
	"easeinsine":     EaseInSine,
	"easeoutsine":    EaseOutSine,
	"easeinoutsine":  EaseInOutSine,
	"easeoutcubic":   EaseOutCubic,
	"easeinoutcubic": EaseInOutCubic,
	"easeoutquint":   EaseOutQuint,
	"easeinoutcirc":  EaseInOutCirc,
	"easeinoutquad":  EaseInOutQuad,
	"easeinexpo":     EaseInExpo,
	"easeoutexpo":    EaseOutExpo,
}

// Lookup finds a curve by name. Names are case-insensitive and the "ease"
// prefix is optional, so "EaseOutCubic", "easeOutCubic" and "outCubic" all
// resolve to the same curve.
func Lookup(name string) (Func, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return Linear, true
	}
	if fn, ok := catalog[key]; ok {
		return fn, true
	}
	fn, ok := catalog["ease"+key]
	return fn, ok
}

// Names lists the registered curve names in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for n := range catalog {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
