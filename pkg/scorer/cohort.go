package score

import (
	"strings"

	domain "github.com/jhartmann/carwatch/pkg/types"
)

// Cohort level names, narrowest first. The level actually used is recorded in
// the score diagnostics so historical scores stay interpretable.
const (
	LevelYearKMCondition    = "brand_model_year_km_cond"
	LevelYearWinKMCondition = "brand_model_yearwin_km_cond"
	LevelYearWinKM          = "brand_model_yearwin_km"
	LevelYearWinKM2x        = "brand_model_yearwin_km2x"
	LevelBrandModel         = "brand_model"
)

// CohortDef is one rung of the fallback ladder: a predicate selecting the
// comparison population for a target listing. Brand and model are always
// required and never relaxed.
type CohortDef struct {
	Name            string
	MatchYear       bool
	YearWindow      int // years either side of the target; 0 means exact
	MatchMileage    bool
	MileageWindowKM int // km either side of the target
	MatchCondition  bool
}

// Levels returns the ordered ladder of cohort definitions, narrowest to
// broadest, derived from the configured windows.
func Levels(p Params) []CohortDef {
	w := p.MileageWindowKM
	return []CohortDef{
		{
			Name:            LevelYearKMCondition,
			MatchYear:       true,
			MatchMileage:    true,
			MileageWindowKM: w,
			MatchCondition:  true,
		},
		{
			Name:            LevelYearWinKMCondition,
			MatchYear:       true,
			YearWindow:      p.YearWindow,
			MatchMileage:    true,
			MileageWindowKM: w,
			MatchCondition:  true,
		},
		{
			Name:            LevelYearWinKM,
			MatchYear:       true,
			YearWindow:      p.YearWindow,
			MatchMileage:    true,
			MileageWindowKM: w,
		},
		{
			Name:            LevelYearWinKM2x,
			MatchYear:       true,
			YearWindow:      p.YearWindow,
			MatchMileage:    true,
			MileageWindowKM: 2 * w,
		},
		{Name: LevelBrandModel},
	}
}

// Matches reports whether cand belongs to the cohort defined by d relative to
// target. The target itself must be excluded by the caller.
func (d CohortDef) Matches(target, cand *domain.Listing) bool {
	if !sameIdentity(target, cand) {
		return false
	}

	if d.MatchYear {
		if target.Year == nil || cand.Year == nil {
			return false
		}
		if intAbs(*cand.Year-*target.Year) > d.YearWindow {
			return false
		}
	}

	if d.MatchMileage {
		if target.MileageKM == nil || cand.MileageKM == nil {
			return false
		}
		if intAbs(*cand.MileageKM-*target.MileageKM) > d.MileageWindowKM {
			return false
		}
	}

	if d.MatchCondition && !strings.EqualFold(string(cand.Condition), string(target.Condition)) {
		return false
	}

	return true
}

// sameIdentity checks the never-relaxed brand+model constraint.
func sameIdentity(target, cand *domain.Listing) bool {
	return strings.EqualFold(strings.TrimSpace(cand.Brand), strings.TrimSpace(target.Brand)) &&
		strings.EqualFold(strings.TrimSpace(cand.Model), strings.TrimSpace(target.Model))
}

// cohortPrices collects the prices of all population members matching d,
// excluding the target listing itself and anything inactive or unpriced.
func cohortPrices(target *domain.Listing, population []domain.Listing, d CohortDef) []int {
	var prices []int
	for i := range population {
		cand := &population[i]
		if isSelf(target, cand) {
			continue
		}
		if !cand.IsActive || cand.PriceEUR == nil {
			continue
		}
		if d.Matches(target, cand) {
			prices = append(prices, *cand.PriceEUR)
		}
	}
	return prices
}

// isSelf identifies the target within the population by ID, falling back to
// the unique URL for listings that have not been persisted yet.
func isSelf(target, cand *domain.Listing) bool {
	if target.ID != "" || cand.ID != "" {
		return target.ID == cand.ID
	}
	return target.URL != "" && target.URL == cand.URL
}

func intAbs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
