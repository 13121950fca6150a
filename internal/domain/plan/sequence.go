package plan

import "sort"

// Direction of an adjacent move
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
)

func (d Direction) String() string {
	if d == DirectionUp {
		return "up"
	}
	return "down"
}

// Sequenced is anything ordered by a 1-based position within its parent.
type Sequenced interface {
	ID() uint
	Position() int
}

// SortByPosition orders items by position, breaking ties by ID.
func SortByPosition[T Sequenced](items []T) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Position() != items[j].Position() {
			return items[i].Position() < items[j].Position()
		}
		return items[i].ID() < items[j].ID()
	})
}

// FindSwapPartner locates id in the ordered list and returns it together
// with its neighbour in dir. ok is false when id is missing or already at
// the boundary in that direction; callers treat that as a no-op.
func FindSwapPartner[T Sequenced](ordered []T, id uint, dir Direction) (item, neighbour T, ok bool) {
	index := -1
	for i, it := range ordered {
		if it.ID() == id {
			index = i
			break
		}
	}
	if index < 0 {
		return item, neighbour, false
	}

	other := index + 1
	if dir == DirectionUp {
		other = index - 1
	}
	if other < 0 || other >= len(ordered) {
		return item, neighbour, false
	}
	return ordered[index], ordered[other], true
}

// NextPosition is the position appended after count existing items.
func NextPosition(count int) int {
	return count + 1
}

// IsDense reports whether positions are exactly {1..n}.
func IsDense(positions []int) bool {
	seen := make([]bool, len(positions)+1)
	for _, p := range positions {
		if p < 1 || p > len(positions) || seen[p] {
			return false
		}
		seen[p] = true
	}
	return true
}
