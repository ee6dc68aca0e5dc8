package model

// Status represents the life status of a character
type Status string

const (
	// StatusAlive means the character is alive
	StatusAlive Status = "Alive"

	// StatusDead means the character is dead
	StatusDead Status = "Dead"

	// StatusUnknown is used when the API does not know, and as the form default
	StatusUnknown Status = "unknown"
)

// String returns the string representation of Status
func (s Status) String() string {
	return string(s)
}

// IsValid returns true if the status is one of the known values
func (s Status) IsValid() bool {
	return s == StatusAlive || s == StatusDead || s == StatusUnknown
}

// ParseStatus converts free text into a Status, falling back to StatusUnknown
func ParseStatus(value string) Status {
	status := Status(value)
	if status.IsValid() {
		return status
	}
	return StatusUnknown
}

// StatusOptions returns statuses in the order the creation form lists them
func StatusOptions() []Status {
	return []Status{StatusUnknown, StatusAlive, StatusDead}
}
