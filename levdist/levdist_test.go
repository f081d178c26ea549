package levdist

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestDistanceScenarios(t *testing.T) {
	tests := []struct {
		a, b string
		fast bool
		want int
	}{
		{"sitting", "kitten", true, 3},
		{"levenshtein", "", true, 11},
		{"شاهنامه", "شهنامه", false, 1}, // one character deleted
		{"شاهنامه", "شهنامه", true, 2},  // byte-level mismatch on multi-byte runes
		{"Ghiyāth al-Dīn", "Ghiyāth al-Dīn", true, 0},
		{"kitten", "kinder", false, 3},
		{"cool", "coil", true, 1},
		{"tool", "too", false, 1},
		{"", "", true, 0},
		{"", "", false, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Distance(tt.a, tt.b, tt.fast),
			"Distance(%q, %q, %v)", tt.a, tt.b, tt.fast)
	}
}

var samples = []string{
	"",
	"a",
	"kitten",
	"sitting",
	"If I were a wise man",
	"I would do my part",
	"ʿAlī ibn Abī Ṭālib",
	"ʿUthmān ibn ʿAffān",
	"شاهنامه",
	"شهنامه",
	"너는 나와",
}

func TestIdentity(t *testing.T) {
	for _, s := range samples {
		for _, fast := range []bool{true, false} {
			assert.Zero(t, Distance(s, s, fast), "Distance(%q, %q, %v)", s, s, fast)
		}
	}
}

func TestSymmetry(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			for _, fast := range []bool{true, false} {
				assert.Equal(t, Distance(a, b, fast), Distance(b, a, fast),
					"symmetry for (%q, %q, %v)", a, b, fast)
			}
		}
	}
}

func TestEmptyBaseCase(t *testing.T) {
	for _, s := range samples {
		assert.Equal(t, len(s), Distance("", s, true), "byte length of %q", s)
		assert.Equal(t, len(s), Distance(s, "", true), "byte length of %q", s)
		assert.Equal(t, utf8.RuneCountInString(s), Distance("", s, false), "rune count of %q", s)
		assert.Equal(t, utf8.RuneCountInString(s), Distance(s, "", false), "rune count of %q", s)
	}
}

func TestTriangleInequality(t *testing.T) {
	for _, a := range samples {
		for _, b := range samples {
			for _, c := range samples {
				for _, fast := range []bool{true, false} {
					ac := Distance(a, c, fast)
					ab := Distance(a, b, fast)
					bc := Distance(b, c, fast)
					assert.LessOrEqual(t, ac, ab+bc,
						"triangle inequality for (%q, %q, %q, %v)", a, b, c, fast)
				}
			}
		}
	}
}

func TestModeEquivalenceASCII(t *testing.T) {
	a := "If I were a wise man"
	b := "I would do my part"
	assert.Equal(t, Distance(a, b, false), Distance(a, b, true))
}

func TestModeDivergenceMultiByte(t *testing.T) {
	a := "ʿAlī ibn Abī Ṭālib"
	b := "ʿUthmān ibn ʿAffān"
	assert.NotEqual(t, Distance(a, b, false), Distance(a, b, true))
}

func TestNamedEntryPoints(t *testing.T) {
	assert.Equal(t, Distance("kitten", "sitting", true), DistanceBytes("kitten", "sitting"))
	assert.Equal(t, Distance("kitten", "sitting", false), DistanceRunes("kitten", "sitting"))
	assert.Equal(t, 2, DistanceBytes("شاهنامه", "شهنامه"))
	assert.Equal(t, 1, DistanceRunes("شاهنامه", "شهنامه"))
}
