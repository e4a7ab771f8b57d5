package types

import "time"

// Item statuses. An item cycles through these stock levels in a fixed
// order: full -> running_low -> less_than_two -> out_of_stock -> full.
const (
	StatusFull        = "full"
	StatusRunningLow  = "running_low"
	StatusLessThanTwo = "less_than_two"
	StatusOutOfStock  = "out_of_stock"
)

// Statuses lists the status values in lifecycle order.
var Statuses = []string{
	StatusFull,
	StatusRunningLow,
	StatusLessThanTwo,
	StatusOutOfStock,
}

// validStatuses is the set of recognized status values.
var validStatuses = map[string]bool{
	StatusFull:        true,
	StatusRunningLow:  true,
	StatusLessThanTwo: true,
	StatusOutOfStock:  true,
}

// Item represents a tracked pantry item.
type Item struct {
	ItemID    string    // unique ID, assigned by the backend on creation
	Name      string    // human-readable name (required, non-empty)
	Status    string    // current stock level (one of the Status constants)
	CreatedAt time.Time // timestamp of creation, assigned by the backend
}

// ValidStatus reports whether s is a recognized status value.
func ValidStatus(s string) bool {
	return validStatuses[s]
}

// NextStatus returns the stock level one step after s in the lifecycle
// cycle. Total: any unrecognized value advances to StatusFull.
func NextStatus(s string) string {
	switch s {
	case StatusFull:
		return StatusRunningLow
	case StatusRunningLow:
		return StatusLessThanTwo
	case StatusLessThanTwo:
		return StatusOutOfStock
	case StatusOutOfStock:
		return StatusFull
	default:
		return StatusFull
	}
}
