package naming

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCounter(t *testing.T) {
	c := &Counter{}
	assert.Equal(t, "Draw_1", c.Name("Draw", "a"))
	assert.Equal(t, "Draw_2", c.Name("Draw", "a"))
	assert.Equal(t, "Other_3", c.Name("Other", ""))
}

func TestHash_DeterministicAndUnique(t *testing.T) {
	a := NewHash()
	b := NewHash()

	first := a.Name("Draw", "Spawn(0);")
	assert.Equal(t, first, b.Name("Draw", "Spawn(0);"))
	assert.Regexp(t, regexp.MustCompile(`^Draw_[0-9a-f]{12}$`), first)

	assert.NotEqual(t, first, a.Name("Draw", "Spawn(1);"))
	assert.Equal(t, first+"_2", a.Name("Draw", "Spawn(0);"))
}

func TestUUID_Unique(t *testing.T) {
	u := NewUUID()
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		name := u.Name("M", "")
		assert.Regexp(t, regexp.MustCompile(`^M_[0-9a-f]{12}$`), name)
		assert.False(t, seen[name])
		seen[name] = true
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		strategy Strategy
		want     any
	}{
		{"", &Counter{}},
		{StrategyCounter, &Counter{}},
		{"HASH", &Hash{}},
		{StrategyUUID, &UUID{}},
	}
	for _, tt := range tests {
		t.Run(string(tt.strategy), func(t *testing.T) {
			s, err := New(tt.strategy)
			require.NoError(t, err)
			assert.IsType(t, tt.want, s)
		})
	}

	_, err := New("random")
	assert.Error(t, err)
}
