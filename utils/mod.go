package utils

import "golang.org/x/exp/constraints"

// CountUnique returns the number of distinct items in slice.
func CountUnique[T comparable](slice []T) int {
	seen := make(map[T]struct{}, len(slice))
	for _, v := range slice {
		seen[v] = struct{}{}
	}
	return len(seen)
}

// Percent returns 100*part/whole truncated, or 0 when whole is 0.
func Percent[T constraints.Integer](part, whole T) T {
	if whole == 0 {
		return 0
	}
	return part * 100 / whole
}
