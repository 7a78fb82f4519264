package views

import (
	"reflect"
	"testing"
)

type pair struct {
	dire, radiant int64
	hasD, hasR    bool
}

func flatten(pairs []ReplayPair) []pair {
	out := make([]pair, len(pairs))
	for i, p := range pairs {
		if p.Dire != nil {
			out[i].dire, out[i].hasD = *p.Dire, true
		}
		if p.Radiant != nil {
			out[i].radiant, out[i].hasR = *p.Radiant, true
		}
	}
	return out
}

func TestPairReplays(t *testing.T) {
	tests := []struct {
		name    string
		dire    []int64
		radiant []int64
		want    []pair
	}{
		{
			name:    "dire longer",
			dire:    []int64{100, 200},
			radiant: []int64{50},
			want:    []pair{{200, 50, true, true}, {100, 0, true, false}},
		},
		{
			name:    "radiant longer",
			dire:    []int64{7},
			radiant: []int64{1, 3, 2},
			want:    []pair{{7, 3, true, true}, {0, 2, false, true}, {0, 1, false, true}},
		},
		{
			name:    "equal",
			dire:    []int64{1, 2},
			radiant: []int64{4, 3},
			want:    []pair{{2, 4, true, true}, {1, 3, true, true}},
		},
		{
			name: "both empty",
			want: []pair{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flatten(PairReplays(tt.dire, tt.radiant))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PairReplays() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPairReplaysDoesNotMutate(t *testing.T) {
	dire := []int64{1, 3, 2}
	radiant := []int64{5, 9}

	PairReplays(dire, radiant)

	if !reflect.DeepEqual(dire, []int64{1, 3, 2}) || !reflect.DeepEqual(radiant, []int64{5, 9}) {
		t.Errorf("inputs modified: %v %v", dire, radiant)
	}
}
