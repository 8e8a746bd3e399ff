package rentrequest

// Amounts are in minor currency units.

func TotalDays(w Window) int {
	return w.Days()
}

func TotalAmount(totalDays int, pricePerDay int64, quantity int) int64 {
	return int64(totalDays) * pricePerDay * int64(quantity)
}
