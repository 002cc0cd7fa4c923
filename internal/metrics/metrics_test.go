package metrics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsRegistered(t *testing.T) {
	t.Parallel()

	// Verify all metrics are non-nil (registered via promauto on package init).
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, ScoringListingsTotal)
	assert.NotNil(t, ScoringRunDuration)
	assert.NotNil(t, ScoringDistribution)
	assert.NotNil(t, CohortLevelUsed)
	assert.NotNil(t, UpsertListingsTotal)
	assert.NotNil(t, DeactivatedListingsTotal)
	assert.NotNil(t, HealthzUp)
	assert.NotNil(t, ReadyzUp)
}
