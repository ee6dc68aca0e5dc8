package state

// Creation tracks whether a create request is in flight
type Creation struct {
	inProgress bool
}

// Begin marks a creation as started
func (c *Creation) Begin() {
	c.inProgress = true
}

// End marks the creation as finished, whatever the outcome
func (c *Creation) End() {
	c.inProgress = false
}

// InProgress reports whether a creation is running
func (c *Creation) InProgress() bool {
	return c.inProgress
}
