// Package sentiment provides a small lexicon-based polarity scorer used in
// place of an external sentiment service. Scores are in [-1, 1].
package sentiment

import (
	"strings"
	"unicode"
)

// Scorer scores free text for emotional polarity.
type Scorer struct{}

// NewScorer returns the default lexicon scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

var positiveWords = map[string]float64{
	"good": 0.7, "great": 0.8, "excellent": 1.0, "amazing": 0.9,
	"happy": 0.8, "joy": 0.8, "joyful": 0.8, "love": 0.7, "loved": 0.7,
	"wonderful": 1.0, "fantastic": 0.9, "calm": 0.5, "relaxed": 0.6,
	"energetic": 0.6, "motivated": 0.6, "proud": 0.7, "grateful": 0.8,
	"better": 0.5, "best": 1.0, "fine": 0.3, "okay": 0.2, "ok": 0.2,
	"positive": 0.6, "refreshed": 0.6, "rested": 0.5, "strong": 0.5,
	"hopeful": 0.6, "excited": 0.7, "peaceful": 0.7, "content": 0.5,
}

var negativeWords = map[string]float64{
	"bad": -0.7, "terrible": -1.0, "awful": -1.0, "horrible": -1.0,
	"sad": -0.8, "depressed": -0.9, "anxious": -0.7, "anxiety": -0.7,
	"stress": -0.6, "stressed": -0.7, "tired": -0.4, "exhausted": -0.7,
	"angry": -0.8, "upset": -0.6, "worried": -0.6, "lonely": -0.7,
	"worse": -0.5, "worst": -1.0, "pain": -0.6, "hurt": -0.6,
	"sick": -0.6, "ill": -0.6, "negative": -0.6, "hopeless": -0.9,
	"miserable": -0.9, "afraid": -0.7, "scared": -0.7, "down": -0.4,
}

var negations = map[string]bool{
	"not": true, "no": true, "never": true, "don't": true, "dont": true,
	"can't": true, "cant": true, "isn't": true, "isnt": true,
	"won't": true, "wont": true, "didn't": true, "didnt": true,
}

var intensifiers = map[string]float64{
	"very": 1.3, "really": 1.3, "so": 1.2, "extremely": 1.5,
	"slightly": 0.6, "somewhat": 0.7, "a": 1.0, "bit": 0.7,
}

// Score returns the mean polarity of the scored words of text, clamped to
// [-1, 1]. Text with no lexicon hits scores 0. A negation directly before a
// scored word flips its sign; an intensifier scales it.
func (s *Scorer) Score(text string) float64 {
	words := tokenize(text)
	var total float64
	var hits int
	for i, w := range words {
		polarity, ok := positiveWords[w]
		if !ok {
			polarity, ok = negativeWords[w]
		}
		if !ok {
			continue
		}
		if i > 0 {
			if factor, ok := intensifiers[words[i-1]]; ok {
				polarity *= factor
				if i > 1 && negations[words[i-2]] {
					polarity = -polarity
				}
			} else if negations[words[i-1]] {
				polarity = -polarity
			}
		}
		total += polarity
		hits++
	}
	if hits == 0 {
		return 0
	}
	score := total / float64(hits)
	if score > 1 {
		score = 1
	}
	if score < -1 {
		score = -1
	}
	return score
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\''
	})
}
