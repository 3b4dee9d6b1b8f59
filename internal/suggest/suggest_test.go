package suggest

import "testing"

func TestDidYouMean(t *testing.T) {
	cases := []struct {
		name       string
		input      string
		candidates []string
		want       string
	}{
		{"Single close candidate", "namee", []string{"name", "age", "id"}, "name"},
		{"Longer input tolerates more edits", "createdAtt", []string{"createdAt", "updatedAt"}, "createdAt"},
		{"No close candidate", "zzz", []string{"name", "age"}, ""},
		{"Several close candidates are ambiguous", "ab", []string{"aa", "ac"}, ""},
		{"Empty candidate list", "name", nil, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := DidYouMean(tc.input, tc.candidates); got != tc.want {
				t.Errorf("DidYouMean(%q, %v) = %q, want %q", tc.input, tc.candidates, got, tc.want)
			}
		})
	}
}
