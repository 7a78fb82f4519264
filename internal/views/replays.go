package views

import "sort"

// ReplayPair is one row of the replay table. A nil side means that side has
// no replay in this row.
type ReplayPair struct {
	Dire    *int64
	Radiant *int64
}

// PairReplays sorts each side descending and pairs them row by row, padding
// the shorter side with nil. The inputs are not modified.
func PairReplays(dire, radiant []int64) []ReplayPair {
	d := sortedDesc(dire)
	r := sortedDesc(radiant)

	n := len(d)
	if len(r) > n {
		n = len(r)
	}

	pairs := make([]ReplayPair, n)
	for i := range pairs {
		if i < len(d) {
			pairs[i].Dire = &d[i]
		}
		if i < len(r) {
			pairs[i].Radiant = &r[i]
		}
	}
	return pairs
}

func sortedDesc(ids []int64) []int64 {
	out := append([]int64(nil), ids...)
	sort.Slice(out, func(i, j int) bool { return out[i] > out[j] })
	return out
}
