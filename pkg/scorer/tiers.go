package score

import "fmt"

// Tier maps an inclusive lower score bound to a human-readable label.
// Tiers are ordered by descending Min; a score belongs to the first tier
// whose Min it reaches.
type Tier struct {
	Min   float64 `json:"min"   yaml:"min"`
	Label string  `json:"label" yaml:"label"`
}

// DefaultTiers returns the default classification table.
func DefaultTiers() []Tier {
	return []Tier{
		{Min: 85, Label: "Excellent deal"},
		{Min: 70, Label: "Good deal"},
		{Min: 50, Label: "Fair"},
		{Min: 30, Label: "Below average"},
		{Min: 0, Label: "Overpriced"},
	}
}

// ValidateTiers checks that the table is non-empty, strictly decreasing,
// within [0,100], and terminates at 0 so every score classifies.
func ValidateTiers(tiers []Tier) error {
	if len(tiers) == 0 {
		return fmt.Errorf("tier table is empty")
	}

	for i, t := range tiers {
		if t.Label == "" {
			return fmt.Errorf("tier %d has no label", i)
		}
		if t.Min < 0 || t.Min > 100 {
			return fmt.Errorf("tier %q lower bound %.2f outside [0,100]", t.Label, t.Min)
		}
		if i > 0 && t.Min >= tiers[i-1].Min {
			return fmt.Errorf(
				"tier bounds not strictly decreasing: %q (%.2f) follows %q (%.2f)",
				t.Label, t.Min, tiers[i-1].Label, tiers[i-1].Min,
			)
		}
	}

	if tiers[len(tiers)-1].Min != 0 {
		return fmt.Errorf("last tier must start at 0, got %.2f", tiers[len(tiers)-1].Min)
	}

	return nil
}

// Classify maps a final score to its tier label. Bounds are inclusive on the
// lower end.
func Classify(scoreValue float64, tiers []Tier) string {
	for _, t := range tiers {
		if scoreValue >= t.Min {
			return t.Label
		}
	}
	return tiers[len(tiers)-1].Label
}
