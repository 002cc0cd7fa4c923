package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/jhartmann/carwatch/pkg/types"
)

func TestBuildModelYearStats(t *testing.T) {
	t.Parallel()

	population := []domain.Listing{
		golf("g1", 10000, func(l *domain.Listing) { l.MileageKM = intPtr(40000) }),
		golf("g2", 12000, func(l *domain.Listing) { l.MileageKM = intPtr(50000) }),
		// Different spelling of the same group.
		golf("g3", 14000, func(l *domain.Listing) {
			l.Brand = "vw"
			l.Model = "GOLF"
			l.MileageKM = intPtr(60000)
		}),
		golf("b1", 25000, func(l *domain.Listing) {
			l.Brand = "BMW"
			l.Model = "320d"
			l.Year = intPtr(2019)
		}),
		// Skipped rows.
		golf("inactive", 9000, func(l *domain.Listing) { l.IsActive = false }),
		golf("noyear", 9000, func(l *domain.Listing) { l.Year = nil }),
		golf("noprice", 0, func(l *domain.Listing) { l.PriceEUR = nil }),
	}

	runStart := time.Date(2025, 6, 1, 14, 30, 0, 0, time.UTC)
	stats := buildModelYearStats(population, runStart)
	require.Len(t, stats, 2)

	bmw := stats[0]
	assert.Equal(t, "BMW", bmw.Brand)
	assert.Equal(t, "320d", bmw.Model)
	assert.Equal(t, 2019, bmw.Year)
	assert.Equal(t, 1, bmw.N)
	require.NotNil(t, bmw.AvgPrice)
	assert.InDelta(t, 25000, *bmw.AvgPrice, 1e-9)

	vw := stats[1]
	assert.Equal(t, "VW", vw.Brand)
	assert.Equal(t, "Golf", vw.Model)
	assert.Equal(t, 2020, vw.Year)
	assert.Equal(t, 3, vw.N)
	require.NotNil(t, vw.AvgPrice)
	assert.InDelta(t, 12000, *vw.AvgPrice, 1e-9)
	require.NotNil(t, vw.MedianPrice)
	assert.InDelta(t, 12000, *vw.MedianPrice, 1e-9)
	require.NotNil(t, vw.AvgMileage)
	assert.InDelta(t, 50000, *vw.AvgMileage, 1e-9)

	wantDate := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, wantDate, vw.SnapshotDate)
}

func TestBuildModelYearStats_Empty(t *testing.T) {
	t.Parallel()

	stats := buildModelYearStats(nil, time.Now())
	assert.Empty(t, stats)
}

func TestMedian(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		vals []int
		want *float64
	}{
		{name: "empty", vals: nil, want: nil},
		{name: "single", vals: []int{7}, want: floatPtr(7)},
		{name: "odd", vals: []int{3, 1, 2}, want: floatPtr(2)},
		{name: "even averages middle pair", vals: []int{4, 1, 3, 2}, want: floatPtr(2.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := median(tt.vals)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.InDelta(t, *tt.want, *got, 1e-9)
		})
	}
}

func TestMedian_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	vals := []int{3, 1, 2}
	_ = median(vals)
	assert.Equal(t, []int{3, 1, 2}, vals)
}

func TestMean(t *testing.T) {
	t.Parallel()

	assert.Nil(t, mean(nil))

	got := mean([]int{10, 20, 40})
	require.NotNil(t, got)
	assert.InDelta(t, 23.333333333, *got, 1e-6)
}

func floatPtr(v float64) *float64 { return &v }
