package easing

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

const epsilon = 1e-9

func TestCatalogEndpoints(t *testing.T) {
	curves := map[string]Func{
		"Linear":         Linear,
		"EaseInSine":     EaseInSine,
		"EaseOutSine":    EaseOutSine,
		"EaseInOutSine":  EaseInOutSine,
		"EaseOutCubic":   EaseOutCubic,
		"EaseInOutCubic": EaseInOutCubic,
		"EaseOutQuint":   EaseOutQuint,
		"EaseInOutCirc":  EaseInOutCirc,
		"EaseInOutQuad":  EaseInOutQuad,
		"EaseInExpo":     EaseInExpo,
		"EaseOutExpo":    EaseOutExpo,
	}
	for name, fn := range curves {
		if got := fn(0); math.Abs(got) > 1e-6 {
			t.Errorf("%s(0) = %f, want 0", name, got)
		}
		if got := fn(1); math.Abs(got-1) > 1e-6 {
			t.Errorf("%s(1) = %f, want 1", name, got)
		}
	}
}

func TestCatalogFormulas(t *testing.T) {
	cases := []struct {
		name string
		fn   Func
		p    float64
		want float64
	}{
		{"Linear", Linear, 0.3, 0.3},
		{"EaseInSine", EaseInSine, 0.5, 1 - math.Cos(math.Pi/4)},
		{"EaseOutSine", EaseOutSine, 0.5, math.Sin(math.Pi / 4)},
		{"EaseInOutSine", EaseInOutSine, 0.25, -(math.Cos(math.Pi*0.25) - 1) / 2},
		{"EaseOutCubic", EaseOutCubic, 0.5, 0.875},
		{"EaseInOutCubic low", EaseInOutCubic, 0.25, 4 * 0.25 * 0.25 * 0.25},
		{"EaseInOutCubic high", EaseInOutCubic, 0.75, 1 - math.Pow(-2*0.75+2, 3)/2},
		{"EaseOutQuint", EaseOutQuint, 0.5, 1 - math.Pow(0.5, 5)},
		{"EaseInOutCirc low", EaseInOutCirc, 0.25, (1 - math.Sqrt(1-math.Pow(0.5, 2))) / 2},
		{"EaseInOutCirc high", EaseInOutCirc, 0.75, (math.Sqrt(1-math.Pow(-2*0.75+2, 2)) + 1) / 2},
		{"EaseInOutQuad low", EaseInOutQuad, 0.25, 2 * 0.25 * 0.25},
		{"EaseInOutQuad high", EaseInOutQuad, 0.75, 1 - math.Pow(-2*0.75+2, 2)/2},
		{"EaseInExpo", EaseInExpo, 0.5, math.Pow(2, 10*0.5-10)},
		{"EaseOutExpo", EaseOutExpo, 0.5, 1 - math.Pow(2, -10*0.5)},
	}
	for _, c := range cases {
		if got := c.fn(c.p); math.Abs(got-c.want) > epsilon {
			t.Errorf("%s(%v) = %v, want %v", c.name, c.p, got, c.want)
		}
	}
}

func TestOrLinear(t *testing.T) {
	if got := OrLinear(nil)(0.42); got != 0.42 {
		t.Errorf("OrLinear(nil)(0.42) = %f, want 0.42", got)
	}
	if got := OrLinear(EaseOutCubic)(0.5); math.Abs(got-0.875) > epsilon {
		t.Errorf("OrLinear kept curve = %f, want 0.875", got)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"EaseOutCubic", "easeOutCubic", "outcubic", " OutCubic "} {
		fn, ok := Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) not found", name)
		}
		if got := fn(0.5); math.Abs(got-0.875) > epsilon {
			t.Errorf("Lookup(%q)(0.5) = %f, want 0.875", name, got)
		}
	}

	fn, ok := Lookup("")
	if !ok || fn(0.25) != 0.25 {
		t.Error("empty name should resolve to Linear")
	}

	if _, ok := Lookup("wobble"); ok {
		t.Error("unknown curve should not resolve")
	}
}

func TestNamesSortedAndResolvable(t *testing.T) {
	names := Names()
	if len(names) == 0 {
		t.Fatal("no curves registered")
	}
	for i, n := range names {
		if i > 0 && names[i-1] >= n {
			t.Errorf("names not sorted at %d: %q >= %q", i, names[i-1], n)
		}
		if _, ok := Lookup(n); !ok {
			t.Errorf("listed name %q does not resolve", n)
		}
	}
}

func TestFromTween(t *testing.T) {
	lin := FromTween(ease.Linear)
	if got := lin(0.5); math.Abs(got-0.5) > 1e-6 {
		t.Errorf("FromTween(Linear)(0.5) = %f, want 0.5", got)
	}

	back := FromTween(ease.OutBack)
	if got := back(1); math.Abs(got-1) > 1e-5 {
		t.Errorf("OutBack(1) = %f, want 1", got)
	}
	overshoot := false
	for p := 0.05; p < 1; p += 0.05 {
		if back(p) > 1 {
			overshoot = true
			break
		}
	}
	if !overshoot {
		t.Error("expected OutBack to overshoot 1 before settling")
	}

	if got := FromTween(nil)(0.3); got != 0.3 {
		t.Errorf("FromTween(nil)(0.3) = %f, want 0.3", got)
	}
}

func TestGweenCurvesInCatalog(t *testing.T) {
	if _, ok := Lookup("outBounce"); !ok {
		t.Error("outBounce should be registered")
	}
	if _, ok := Lookup("EaseInOutElastic"); !ok {
		t.Error("EaseInOutElastic should be registered")
	}
}
