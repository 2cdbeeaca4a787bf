package scanner

// BindSlots computes the binding-slot array for a path match.
//
// Correspondence is positional: slot i takes found[i] for the first
// min(len(found), len(params)) slots and every other slot is Wildcard.
// Names are never cross-checked, so a parameter whose declaration index
// differs from its placeholder index binds the wrong name.
//
// Example: found [id], params [id sort] -> [id _]
func BindSlots(found []string, params []Param) []string {
	slots := make([]string, len(params))
	for i := range slots {
		slots[i] = Wildcard
	}
	copy(slots, found)
	return slots
}
