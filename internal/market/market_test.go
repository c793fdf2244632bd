package market

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshot(t *testing.T) {
	data := Snapshot("Tech")

	assert.Equal(t, 80000, data.SalaryRange.Min)
	assert.Equal(t, 120000, data.SalaryRange.Max)
	assert.Equal(t, 15, data.GrowthRate)
	assert.Equal(t, "High", data.DemandLevel)
	assert.NotEmpty(t, data.KeyTrends)
}
