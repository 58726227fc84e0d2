package models

// HomeCurrency is the default reference currency. All rates are expressed
// as units of home currency per one unit of foreign currency, with the home
// currency itself pinned at exactly 1.
const HomeCurrency = "PLN"

// RateTable maps a currency code to its rate against the home currency.
type RateTable map[string]float64

// Clone returns an independent copy of the table.
func (rt RateTable) Clone() RateTable {
	next := make(RateTable, len(rt))
	for code, rate := range rt {
		next[code] = rate
	}
	return next
}

// RatesSnapshot is a consistent view of the live rate table taken at one
// simulator tick: the rates themselves, the per-currency delta against the
// previous tick, and the moment the table was last replaced.
type RatesSnapshot struct {
	Rates      RateTable `json:"rates"`
	Changes    RateTable `json:"changes"`
	LastUpdate int64     `json:"last_update"`
}
