package job

import (
	"reflect"
	"testing"
)

func TestSplitSkills(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty string", "", []string{}},
		{"single", "Python", []string{"Python"}},
		{"plain list", "Python,Django", []string{"Python", "Django"}},
		{"whitespace trimmed", " Python , Django ", []string{"Python", "Django"}},
		{"stray commas dropped", "Python,,Django,", []string{"Python", "Django"}},
		{"only commas", ",,,", []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitSkills(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestJoinSkills_RoundTrip(t *testing.T) {
	stored := JoinSkills(SplitSkills("Python, ,Django,,React "))
	if stored != "Python,Django,React" {
		t.Fatalf("unexpected stored form: %q", stored)
	}
	if rejoined := JoinSkills(SplitSkills(stored)); rejoined != stored {
		t.Fatalf("round trip changed value: %q vs %q", rejoined, stored)
	}
}
