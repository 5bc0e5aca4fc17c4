package signals

import (
	"cmp"
	"strconv"
)

// Identifier names one connected Slot of a Signal. Identifiers come from a
// per-Signal counter that only increases, so an id is never handed out twice
// by the same Signal. The zero value is the first id issued.
type Identifier struct {
	value uint64
}

func (id Identifier) Next() Identifier {
	return Identifier{value: id.value + 1}
}

// Compare returns -1, 0 or +1 as id is issued before, equal to or after other.
func (id Identifier) Compare(other Identifier) int {
	return cmp.Compare(id.value, other.value)
}

func (id Identifier) Less(other Identifier) bool {
	return id.value < other.value
}

func (id Identifier) String() string {
	return "#" + strconv.FormatUint(id.value, 10)
}
