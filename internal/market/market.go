// Package market supplies market data for industry insights.
package market

// SalaryRange is an annual salary band in USD.
type SalaryRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Data is a snapshot of market conditions for an industry.
type Data struct {
	SalaryRange SalaryRange `json:"salaryRange"`
	GrowthRate  int         `json:"growthRate"`
	DemandLevel string      `json:"demandLevel"`
	KeyTrends   []string    `json:"keyTrends"`
}

// Snapshot returns market data for the given industry.
// TODO: integrate LinkedIn Economic Graph, Glassdoor and News APIs;
// until then every industry gets the same hardcoded snapshot.
func Snapshot(industry string) Data {
	return Data{
		SalaryRange: SalaryRange{Min: 80000, Max: 120000},
		GrowthRate:  15,
		DemandLevel: "High",
		KeyTrends:   []string{"AI", "Remote Work", "Sustainability"},
	}
}
