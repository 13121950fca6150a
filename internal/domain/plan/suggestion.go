package plan

import "sort"

// Suggestion is one piece used in a slot by PlanCount other plans.
type Suggestion struct {
	SlotID    uint
	MusicID   uint
	PlanCount int
}

// SlotSuggestions groups ranked suggestions for one slot definition
type SlotSuggestions struct {
	SlotID      uint
	Suggestions []Suggestion
}

// RankSuggestions groups candidates by slot (ascending slot ID) and keeps
// at most limit pieces per slot, most used first, lower music ID on ties.
func RankSuggestions(candidates []Suggestion, limit int) []SlotSuggestions {
	bySlot := make(map[uint][]Suggestion)
	for _, c := range candidates {
		bySlot[c.SlotID] = append(bySlot[c.SlotID], c)
	}

	slotIDs := make([]uint, 0, len(bySlot))
	for id := range bySlot {
		slotIDs = append(slotIDs, id)
	}
	sort.Slice(slotIDs, func(i, j int) bool { return slotIDs[i] < slotIDs[j] })

	result := make([]SlotSuggestions, 0, len(slotIDs))
	for _, id := range slotIDs {
		items := bySlot[id]
		sort.Slice(items, func(i, j int) bool {
			if items[i].PlanCount != items[j].PlanCount {
				return items[i].PlanCount > items[j].PlanCount
			}
			return items[i].MusicID < items[j].MusicID
		})
		if limit > 0 && len(items) > limit {
			items = items[:limit]
		}
		result = append(result, SlotSuggestions{SlotID: id, Suggestions: items})
	}
	return result
}
