package prediction

import (
	"sort"
	"strconv"
	"strings"
)

const horizonPrefix = "year_"

// HorizonYears parses a progression key such as "year_5" or "5".
func HorizonYears(key string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimPrefix(key, horizonPrefix))
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// HorizonKey returns the key the prediction service uses for a horizon.
func HorizonKey(years int) string {
	return horizonPrefix + strconv.Itoa(years)
}

// SortedHorizons returns the progression keys ordered by year.
// Keys that do not parse come last in lexical order.
func (r *Response) SortedHorizons() []string {
	keys := make([]string, 0, len(r.ProgressionPredictions))
	for k := range r.ProgressionPredictions {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		yi, oki := HorizonYears(keys[i])
		yj, okj := HorizonYears(keys[j])
		switch {
		case oki && okj && yi != yj:
			return yi < yj
		case oki != okj:
			return oki
		default:
			return keys[i] < keys[j]
		}
	})
	return keys
}

// Projection returns the prediction for a horizon given in years.
func (r *Response) Projection(years int) (Projection, bool) {
	for k, p := range r.ProgressionPredictions {
		if y, ok := HorizonYears(k); ok && y == years {
			return p, true
		}
	}
	return Projection{}, false
}
