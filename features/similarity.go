package features

import "math"

// Jaccard returns the Jaccard index of the distinct tokens in a and b, rounded
// to 3 decimal places. It is 0 when either input is empty, and 1 only when the
// sets are identical.
func Jaccard(a, b []string) float64 {
	setA, setB := toSet(a), toSet(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}
	var intersection int
	for k := range setA {
		if _, ok := setB[k]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	if intersection == union {
		return 1
	}
	return math.Min(round3(float64(intersection)/float64(union)), 0.999)
}

func toSet(tokens []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
