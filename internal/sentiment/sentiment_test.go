package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScore_Polarity(t *testing.T) {
	s := NewScorer()

	tests := []struct {
		name string
		text string
		sign int
	}{
		{"positive", "I feel great and happy today", 1},
		{"negative", "I am sad and exhausted", -1},
		{"neutral no hits", "I went to the shop", 0},
		{"empty", "", 0},
		{"negated positive", "I am not happy", -1},
		{"negated negative", "I am not sad at all", 1},
		{"mixed leaning negative", "happy moments but mostly terrible and hopeless days", -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Score(tt.text)
			switch tt.sign {
			case 1:
				assert.Greater(t, got, 0.0)
			case -1:
				assert.Less(t, got, 0.0)
			default:
				assert.Equal(t, 0.0, got)
			}
		})
	}
}

func TestScore_Bounds(t *testing.T) {
	s := NewScorer()

	for _, text := range []string{
		"extremely wonderful amazing fantastic excellent",
		"extremely horrible awful terrible worst miserable",
		"very very happy extremely excellent",
	} {
		got := s.Score(text)
		assert.GreaterOrEqual(t, got, -1.0, text)
		assert.LessOrEqual(t, got, 1.0, text)
	}
}

func TestScore_IntensifierScales(t *testing.T) {
	s := NewScorer()

	assert.Greater(t, s.Score("extremely happy"), s.Score("slightly happy"))
}

func TestScore_CaseInsensitive(t *testing.T) {
	s := NewScorer()

	assert.Equal(t, s.Score("HAPPY"), s.Score("happy"))
}
