package plan

// Flag marks an assignment, e.g. "important" or "alternative"
type Flag struct {
	ID   uint
	Name string
}
