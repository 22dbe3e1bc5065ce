package sweepline

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestParsePolylines(t *testing.T) {
	var tts = []struct {
		s        string
		expected []string
	}{
		{"", []string{}},
		{"M0 0L2 2", []string{"M0 0L2 2"}},
		{"M0,0 2,2 4,0", []string{"M0 0L2 2L4 0"}},
		{"m1 1l1 1h2v-3", []string{"M1 1L2 2L4 2L4 -1"}},
		{"M0 0H2V2z", []string{"M0 0L2 0L2 2z"}},
		{"M0 0L2 2M0 2L2 0", []string{"M0 0L2 2", "M0 2L2 0"}},
		{"M1 1L2 1zm1 0l0 1", []string{"M1 1L2 1z", "M2 1L2 2"}},
		{"M0 0L1.5e1 -.5", []string{"M0 0L15 -0.5"}},
	}
	for _, tt := range tts {
		t.Run(tt.s, func(t *testing.T) {
			ps, err := ParsePolylines(tt.s)
			test.Error(t, err)

			ss := []string{}
			for _, p := range ps {
				ss = append(ss, p.String())
			}
			test.T(t, ss, tt.expected)
		})
	}
}

func TestParsePolylinesErrors(t *testing.T) {
	var tts = []string{
		"L1 1",
		"M0",
		"M0 0C1 1 2 2 3 3",
		"M0 0z1 1",
		"z",
	}
	for _, tt := range tts {
		t.Run(tt, func(t *testing.T) {
			_, err := ParsePolylines(tt)
			test.That(t, err != nil)
		})
	}
}
