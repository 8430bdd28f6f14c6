package finreport

import "github.com/shopspring/decimal"

// Percent is an overhead expense expressed as a percentage of revenue.
type Percent struct {
	value decimal.Decimal
}

// P is a convenient factory for Percent values.
func P[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Percent {
	return Percent{value: newDecimal(value)}
}

// ParsePercent parses the decimal notation used in the overheads report.
func ParsePercent(s string) (Percent, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Percent{}, err
	}
	return Percent{value: d}, nil
}

func (p Percent) Equal(q Percent) bool       { return p.value.Equal(q.value) }
func (p Percent) GreaterThan(q Percent) bool { return p.value.GreaterThan(q.value) }

// String renders the exact percentage, e.g. "55.0%".
func (p Percent) String() string {
	return rawDecimalString(p.value) + "%"
}
