package workorder

import "fmt"

// GenerateWorkOrderID generates a work order ID from the current max number.
// The format is WO-XXX where XXX is a zero-padded 3-digit number. IDs are
// opaque to callers; only this package knows the format.
func GenerateWorkOrderID(currentMax int) string {
	return fmt.Sprintf("WO-%03d", currentMax+1)
}

// ParseWorkOrderNumber extracts the numeric portion from a work order ID.
// Returns -1 if the ID format is invalid.
func ParseWorkOrderNumber(id string) int {
	var num int
	_, err := fmt.Sscanf(id, "WO-%d", &num)
	if err != nil {
		return -1
	}
	return num
}
