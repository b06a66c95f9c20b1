// Package tween animates carousel visuals frame by frame.
package tween

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/harmonica"

	"github.com/llehouerou/carousel/internal/carousel"
)

// Standard easing curves.
var (
	Linear carousel.Ease = func(t float64) float64 { return t }

	InQuad  carousel.Ease = func(t float64) float64 { return t * t }
	OutQuad carousel.Ease = func(t float64) float64 { return 1 - (1-t)*(1-t) }

	InOutQuad carousel.Ease = func(t float64) float64 {
		if t < 0.5 {
			return 2 * t * t
		}
		return 1 - math.Pow(-2*t+2, 2)/2
	}

	InCubic  carousel.Ease = func(t float64) float64 { return t * t * t }
	OutCubic carousel.Ease = func(t float64) float64 { return 1 - math.Pow(1-t, 3) }

	InOutCubic carousel.Ease = func(t float64) float64 {
		if t < 0.5 {
			return 4 * t * t * t
		}
		return 1 - math.Pow(-2*t+2, 3)/2
	}

	OutBack carousel.Ease = func(t float64) float64 {
		const c1 = 1.70158
		const c3 = c1 + 1
		return 1 + c3*math.Pow(t-1, 3) + c1*math.Pow(t-1, 2)
	}
)

// Spring defaults, tuned to settle within one motion.
const (
	springFrequency = 10.0
	springDamping   = 0.5
	springSamples   = 120
)

// Spring returns an ease that follows a damped spring travelling from 0 to 1.
// The curve is sampled once from a harmonica spring and interpolated.
// It always ends exactly at 1.
func Spring(frequency, damping float64) carousel.Ease {
	spring := harmonica.NewSpring(harmonica.FPS(springSamples), frequency, damping)

	samples := make([]float64, springSamples+1)
	var pos, vel float64
	for i := 1; i <= springSamples; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		samples[i] = pos
	}
	samples[springSamples] = 1

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		x := t * springSamples
		i := int(x)
		frac := x - float64(i)
		return samples[i] + (samples[i+1]-samples[i])*frac
	}
}

var named = map[string]carousel.Ease{
	"linear":       Linear,
	"in-quad":      InQuad,
	"out-quad":     OutQuad,
	"in-out-quad":  InOutQuad,
	"in-cubic":     InCubic,
	"out-cubic":    OutCubic,
	"in-out-cubic": InOutCubic,
	"out-back":     OutBack,
	"spring":       Spring(springFrequency, springDamping),
}

// Lookup returns the ease registered under name. Names are case-insensitive
// and accept underscores in place of dashes.
func Lookup(name string) (carousel.Ease, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	if ease, ok := named[key]; ok {
		return ease, nil
	}
	return nil, fmt.Errorf("unknown ease %q (available: %s)", name, strings.Join(Names(), ", "))
}

// Names returns the registered ease names, sorted.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
