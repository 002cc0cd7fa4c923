package score

import (
	"fmt"
	"strings"

	domain "github.com/jhartmann/carwatch/pkg/types"
)

// Overlay axis names. Each axis is a disjoint categorical attribute not
// captured by cohort membership.
const (
	AxisFuelType     = "fuel_type"
	AxisTransmission = "transmission"
	AxisColor        = "color"
	AxisVariant      = "variant"
	AxisAccident     = "accident"
)

// overlayAxes fixes the attribution order in diagnostics. Deltas are additive
// over disjoint axes, so the sum itself is order-independent.
var overlayAxes = []string{AxisFuelType, AxisTransmission, AxisColor, AxisVariant, AxisAccident}

// maxOverlayDelta bounds a single overlay adjustment. Overlays are small
// corrections; anything larger belongs in the cohort definition.
const maxOverlayDelta = 25.0

// OverlayTable maps axis -> attribute value -> signed score delta.
// The accident axis is keyed by "yes"/"no".
type OverlayTable map[string]map[string]float64

// DefaultOverlays returns the default weight table. These are calibration
// defaults, not market truths; configuration overrides them wholesale.
func DefaultOverlays() OverlayTable {
	return OverlayTable{
		AxisFuelType: {
			"diesel":   0,
			"petrol":   0,
			"electric": 2,
			"hybrid":   1,
		},
		AxisTransmission: {
			"automatic": 1,
			"manual":    -1,
		},
		AxisColor: {
			"pink":   -1,
			"purple": -1,
			"gold":   -1,
		},
		AxisVariant: {},
		AxisAccident: {
			"yes": -5,
		},
	}
}

// Validate rejects unknown axes and out-of-bound deltas. A malformed table is
// a configuration error and must abort a run before any listing is scored.
func (t OverlayTable) Validate() error {
	known := make(map[string]bool, len(overlayAxes))
	for _, axis := range overlayAxes {
		known[axis] = true
	}

	for axis, deltas := range t {
		if !known[axis] {
			return fmt.Errorf("unknown overlay axis %q", axis)
		}
		for value, delta := range deltas {
			if delta < -maxOverlayDelta || delta > maxOverlayDelta {
				return fmt.Errorf(
					"overlay delta %s=%q out of range: %.2f (limit ±%.0f)",
					axis, value, delta, maxOverlayDelta,
				)
			}
		}
	}

	return nil
}

// Apply adds every applicable overlay delta to base and clamps the result to
// [0,100]. Every matched table entry is attributed, including zero deltas.
func (t OverlayTable) Apply(base float64, l *domain.Listing) (float64, []AppliedOverlay) {
	total := base
	var applied []AppliedOverlay

	for _, axis := range overlayAxes {
		value := overlayValue(l, axis)
		if value == "" {
			continue
		}
		delta, ok := t[axis][value]
		if !ok {
			continue
		}
		applied = append(applied, AppliedOverlay{Attribute: axis, Value: value, Delta: delta})
		total += delta
	}

	return clamp(round2(total), 0, 100), applied
}

func overlayValue(l *domain.Listing, axis string) string {
	switch axis {
	case AxisFuelType:
		return normalizeValue(string(l.FuelType))
	case AxisTransmission:
		return normalizeValue(string(l.Transmission))
	case AxisColor:
		return normalizeValue(l.Color)
	case AxisVariant:
		return normalizeValue(l.Variant)
	case AxisAccident:
		if l.Accident {
			return "yes"
		}
		return "no"
	}
	return ""
}

func normalizeValue(v string) string {
	return strings.ToLower(strings.TrimSpace(v))
}
