package core

// DefaultBudget is the spending ceiling used when the user has not set one.
const DefaultBudget = 2000

// Summary holds the aggregated budget figures for one pass over the catalog.
type Summary struct {
	TotalItems        int     `json:"totalItems"`
	TotalEstimated    float64 `json:"totalEstimated"`
	ShortlistedCount  int     `json:"shortlistedCount"`
	ShortlistedTotal  float64 `json:"shortlistedTotal"`
	PurchasedCount    int     `json:"purchasedCount"`
	PurchasedTotal    float64 `json:"purchasedTotal"`
	Budget            float64 `json:"budget"`
	Remaining         float64 `json:"remaining"`
	PurchasedBarPct   float64 `json:"purchasedBarPct"`
	ShortlistedBarPct float64 `json:"shortlistedBarPct"`
	OverBudget        bool    `json:"overBudget"`
}

// Summarize computes the budget summary from the catalog, the status map and
// the budget ceiling. It is a pure function: no state, no memoization, and a
// fixed iteration order (category order, then item order within category) so
// floating-point sums are reproducible.
//
// Remaining may go negative; that is the over-budget state and is never
// clamped. The two bar percentages are the only clamped figures: they feed a
// stacked two-segment bar whose segments must never sum past 100. When
// OverBudget is set the renderer shows a single full-width indicator instead
// of the two segments.
func Summarize(categories []Category, statuses map[string]Status, budget float64) Summary {
	s := Summary{Budget: budget}

	for _, category := range categories {
		for _, item := range category.Items {
			s.TotalItems++
			s.TotalEstimated += item.Price
			switch statuses[item.ID] {
			case StatusShortlisted:
				s.ShortlistedCount++
				s.ShortlistedTotal += item.Price
			case StatusPurchased:
				s.PurchasedCount++
				s.PurchasedTotal += item.Price
			}
		}
	}

	s.Remaining = budget - s.PurchasedTotal
	s.OverBudget = s.Remaining < 0

	if budget > 0 {
		s.PurchasedBarPct = min(s.PurchasedTotal/budget*100, 100)
		s.ShortlistedBarPct = min(s.ShortlistedTotal/budget*100, 100-s.PurchasedBarPct)
	}

	return s
}
