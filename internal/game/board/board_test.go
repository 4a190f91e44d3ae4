package board

import (
	"testing"

	"PokerAssist/internal/game/card"
	"github.com/stretchr/testify/assert"
)

func cards(tokens ...string) []card.Card {
	out := make([]card.Card, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, card.MustParse(t))
	}
	return out
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name     string
		board    []string
		texture  Texture
		strength int
	}{
		{"empty", nil, Unknown, 0},
		{"quads", []string{"9S", "9H", "9D", "9C", "2S"}, Quads, 90},
		{"full house", []string{"9S", "9H", "9D", "2C", "2S"}, FullHousePossible, 85},
		{"three suited", []string{"2H", "7H", "KH"}, FlushPossible, 80},
		{"connected", []string{"5S", "6H", "8D"}, StraightPossible, 75},
		{"trips", []string{"KS", "KH", "KD"}, Trips, 65},
		{"two pair", []string{"KS", "KH", "2D", "2C", "9S"}, TwoPair, 55},
		{"one pair", []string{"KS", "KH", "2D"}, OnePair, 45},
		{"high card", []string{"KS", "7H", "2D"}, HighCard, 30},
		{"flush beats trips", []string{"KS", "KH", "KD", "2D", "5D"}, FlushPossible, 80},
		{"wide gap", []string{"2S", "6H", "KD"}, HighCard, 30},
		{"single card", []string{"AS"}, HighCard, 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(cards(tt.board...))
			assert.Equal(t, tt.texture, got.Texture)
			assert.Equal(t, tt.strength, got.Strength)
		})
	}
}

func TestTextureString(t *testing.T) {
	assert.Equal(t, "Flush Possible", FlushPossible.String())
	assert.Equal(t, "Unknown", Texture(42).String())
}
