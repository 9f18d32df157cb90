package sand

// Cell enumerates the materials a grid position can hold.
type Cell uint8

const (
	Empty Cell = iota
	Sand
	Water
	Steel
	Lava
	Stone

	cellCount = iota
)

// Materials lists the paintable materials in key-slot order (1..5).
var Materials = [...]Cell{Sand, Water, Steel, Lava, Stone}

var cellNames = [cellCount]string{
	Empty: "empty",
	Sand:  "sand",
	Water: "water",
	Steel: "steel",
	Lava:  "lava",
	Stone: "stone",
}

// String returns the lower-case material name.
func (c Cell) String() string {
	if int(c) < len(cellNames) {
		return cellNames[c]
	}
	return "unknown"
}

// Valid reports whether c is one of the six defined cells.
func (c Cell) Valid() bool { return c < cellCount }

// ParseCell maps a material name back to its Cell.
func ParseCell(name string) (Cell, bool) {
	for i, n := range cellNames {
		if n == name {
			return Cell(i), true
		}
	}
	return Empty, false
}

// IsLiquid reports whether c flows sideways.
func (c Cell) IsLiquid() bool { return c == Water || c == Lava }

// otherLiquid returns the liquid that converts c into stone on contact.
func (c Cell) otherLiquid() Cell {
	if c == Water {
		return Lava
	}
	return Water
}
