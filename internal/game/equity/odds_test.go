package equity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePosition(t *testing.T) {
	tests := []struct {
		in   string
		want Position
		ok   bool
	}{
		{"early", Early, true},
		{"Late", Late, true},
		{" middle ", Middle, true},
		{"", Middle, true},
		{"button", "", false},
	}
	for _, tt := range tests {
		p, err := ParsePosition(tt.in)
		if !tt.ok {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, p)
	}
}

func TestPotOdds(t *testing.T) {
	assert.InDelta(t, 16.67, PotOdds(100, 20), 0.01)
	assert.Equal(t, 0.0, PotOdds(0, 0))
	assert.Equal(t, 0.0, PotOdds(100, 0))
}

func TestImpliedOdds(t *testing.T) {
	// late, strong: pot 100 * 1.3 * 1.2 = 156
	assert.InDelta(t, 20.0/176*100, ImpliedOdds(100, 20, 50, Late), 1e-9)
	// early, weak: pot 80
	assert.InDelta(t, 20.0, ImpliedOdds(100, 20, 20, Early), 1e-9)
	// unknown position behaves like middle
	assert.InDelta(t, ImpliedOdds(100, 20, 20, Middle), ImpliedOdds(100, 20, 20, "nowhere"), 1e-9)
}

func TestExpectedValue(t *testing.T) {
	assert.InDelta(t, 52, ExpectedValue(60, 100, 20), 1e-9)
	assert.InDelta(t, -20, ExpectedValue(0, 100, 20), 1e-9)
}

func TestFoldEquity(t *testing.T) {
	assert.InDelta(t, 15, FoldEquity(60, Early), 1e-9)
	assert.InDelta(t, 22.5, FoldEquity(50, Middle), 1e-9)
	assert.InDelta(t, 35, FoldEquity(90, Late), 1e-9)
	assert.InDelta(t, 20, FoldEquity(0, Late), 1e-9)
}

func TestShouldCall(t *testing.T) {
	assert.True(t, ShouldCall(20, 16.7, 25))
	assert.True(t, ShouldCall(20, 25, 12))
	assert.False(t, ShouldCall(10, 16.7, 12))
}
