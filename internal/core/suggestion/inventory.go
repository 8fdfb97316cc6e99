package suggestion

// ReorderThreshold returns the effective reorder level for an item. An
// absent reorder level is treated as 0, so only exactly-zero stock is
// flagged when no threshold is configured.
func ReorderThreshold(item InventoryCheck) int {
	if item.ReorderLevel == nil {
		return 0
	}
	return *item.ReorderLevel
}

// IsLowStock reports whether an item is at or below its reorder level.
// Advisory only - low stock never blocks work order creation.
func IsLowStock(item InventoryCheck) bool {
	return item.Qty <= ReorderThreshold(item)
}

// LowStock filters the inventory checks down to items needing operator
// attention, preserving input order.
func LowStock(items []InventoryCheck) []InventoryCheck {
	var out []InventoryCheck
	for _, item := range items {
		if IsLowStock(item) {
			out = append(out, item)
		}
	}
	return out
}
