package stats

// Number is any value the dashboard sums or averages
type Number interface {
	~int | ~int64 | ~float64
}

// Sum adds up values; an empty slice sums to zero
func Sum[T Number](values []T) T {
	var total T
	for _, v := range values {
		total += v
	}
	return total
}

// Mean returns the arithmetic mean as float64, 0 for no values
func Mean[T Number](values []T) float64 {
	if len(values) == 0 {
		return 0
	}
	return float64(Sum(values)) / float64(len(values))
}
