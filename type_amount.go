package finreport

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// ReportingCurrency is the only currency the summary report deals in.
const ReportingCurrency = "USD"

// Amount represents an exact monetary value.
type Amount struct {
	value decimal.Decimal
}

// A is a convenient factory for Amount values.
func A[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// ParseAmount parses the decimal notation used in the CSV reports.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, err
	}
	return Amount{value: d}, nil
}

func (a Amount) Equal(b Amount) bool       { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool              { return a.value.IsZero() }
func (a Amount) IsNegative() bool          { return a.value.IsNegative() }
func (a Amount) LessThan(b Amount) bool    { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool { return a.value.GreaterThan(b.value) }
func (a Amount) Cmp(b Amount) int          { return a.value.Cmp(b.value) }

// binary operators.
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }
func (a Amount) Neg() Amount         { return Amount{value: a.value.Neg()} }
func (a Amount) Abs() Amount         { return Amount{value: a.value.Abs()} }

// String returns the exact decimal value in the notation the summary
// report uses: trailing zeros trimmed, but always at least one
// fractional digit, so a whole amount reads "60.0" and not "60".
func (a Amount) String() string {
	return rawDecimalString(a.value)
}

// Display returns the amount formatted as a human readable currency
// string for terminal views, e.g. "$1,500.00".
func (a Amount) Display() string {
	// to get a never nil currency I need to call the Money constructor
	cur := *money.New(0, ReportingCurrency).Currency()
	dec := a.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// rawDecimalString renders d with trailing zeros trimmed and a minimum
// of one fractional digit.
func rawDecimalString(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
