package quantity

// Unit tags a quantity with a physical unit symbol.
type Unit struct {
	symbol string
}

var (
	Volt    = Unit{symbol: "V"}
	Ampere  = Unit{symbol: "A"}
	Ohm     = Unit{symbol: "Ω"}
	Unknown = Unit{symbol: "Unknown"}
)

// Symbol returns the unit's symbol. The zero Unit reports Unknown's symbol.
func (u Unit) Symbol() string {
	if u.symbol == "" {
		return Unknown.symbol
	}
	return u.symbol
}

// Compatible reports whether values in u and other may be added together.
func (u Unit) Compatible(other Unit) bool {
	return u.Symbol() == other.Symbol()
}

func (u Unit) String() string {
	return u.Symbol()
}
