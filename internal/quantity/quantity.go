package quantity

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ErrIncompatibleUnits is returned when combining quantities of different units.
var ErrIncompatibleUnits = errors.New("quantity units are different")

// Quantity is a value paired with its unit.
type Quantity struct {
	Value decimal.Decimal
	Unit  Unit
}

// New returns a zero quantity of unknown unit.
func New() Quantity {
	return Quantity{Value: decimal.Zero, Unit: Unknown}
}

// Of returns a quantity of the given value and unit.
func Of(unit Unit, value decimal.Decimal) Quantity {
	return Quantity{Value: value, Unit: unit}
}

// Add returns q+other. The units must be compatible.
func (q Quantity) Add(other Quantity) (Quantity, error) {
	if err := q.checkUnits(other); err != nil {
		return Quantity{}, err
	}
	return Of(q.Unit, q.Value.Add(other.Value)), nil
}

// Sub returns q-other. The units must be compatible.
func (q Quantity) Sub(other Quantity) (Quantity, error) {
	if err := q.checkUnits(other); err != nil {
		return Quantity{}, err
	}
	return Of(q.Unit, q.Value.Sub(other.Value)), nil
}

// Mul scales q by a dimensionless factor.
func (q Quantity) Mul(factor decimal.Decimal) Quantity {
	return Of(q.Unit, q.Value.Mul(factor))
}

// Div divides q by a dimensionless factor. It panics if factor is zero.
func (q Quantity) Div(factor decimal.Decimal) Quantity {
	return Of(q.Unit, q.Value.Div(factor))
}

// Equal reports whether q and other have the same value and unit.
func (q Quantity) Equal(other Quantity) bool {
	return q.Value.Equal(other.Value) && q.Unit.Compatible(other.Unit)
}

// Compatible reports whether q and other share a unit.
func (q Quantity) Compatible(other Quantity) bool {
	return q.Unit.Compatible(other.Unit)
}

func (q Quantity) String() string {
	return q.Value.String() + " " + q.Unit.Symbol()
}

func (q Quantity) checkUnits(other Quantity) error {
	if !q.Compatible(other) {
		return errors.Wrapf(ErrIncompatibleUnits, "%s and %s", q.Unit, other.Unit)
	}
	return nil
}
