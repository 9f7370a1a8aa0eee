package sentiment

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Lexicon maps lower-case words to a prior polarity in [-1, +1].
type Lexicon map[string]float64

// defaultPolarity is a compact English adjective/verb lexicon for short synopses and mood words.
var defaultPolarity = map[string]float64{
	// positive
	"amazing": 0.6, "awesome": 1.0, "beautiful": 0.85, "best": 1.0, "better": 0.5,
	"bright": 0.7, "brilliant": 0.9, "calm": 0.3, "charming": 0.6, "cheerful": 0.8,
	"clever": 0.5, "content": 0.4, "cool": 0.35, "courage": 0.5, "courageous": 0.6,
	"delight": 0.8, "delightful": 0.9, "determined": 0.3, "excellent": 1.0, "excited": 0.6,
	"exciting": 0.6, "extraordinary": 0.5, "fantastic": 0.4, "fine": 0.4, "fun": 0.3,
	"funny": 0.25, "gentle": 0.45, "glad": 0.5, "glorious": 0.7, "good": 0.7,
	"grand": 0.5, "great": 0.8, "happy": 0.8, "heartwarming": 0.7, "hero": 0.4,
	"heroic": 0.6, "hilarious": 0.5, "hope": 0.4, "hopeful": 0.5, "incredible": 0.9,
	"inspiring": 0.7, "joy": 0.8, "joyful": 0.8, "kind": 0.6, "love": 0.5,
	"loved": 0.7, "lovely": 0.5, "loving": 0.6, "loyal": 0.5, "lucky": 0.5,
	"magical": 0.5, "magnificent": 0.9, "marvelous": 0.8, "nice": 0.6, "optimistic": 0.6,
	"peaceful": 0.5, "perfect": 1.0, "pleasant": 0.7, "positive": 0.2, "powerful": 0.3,
	"pretty": 0.25, "proud": 0.8, "relaxed": 0.4, "remarkable": 0.75, "romantic": 0.35,
	"safe": 0.5, "smart": 0.2, "splendid": 0.8, "strong": 0.4, "success": 0.3,
	"successful": 0.75, "super": 0.3, "sweet": 0.35, "talented": 0.7, "tender": 0.4,
	"thrilled": 0.6, "thrilling": 0.5, "touching": 0.5, "triumph": 0.6, "triumphant": 0.7,
	"uplifting": 0.7, "victory": 0.5, "warm": 0.6, "wise": 0.7, "wonderful": 1.0,
	"young": 0.1, "free": 0.4, "friendly": 0.4, "friendship": 0.4, "hilariously": 0.5,

	// negative
	"afraid": -0.6, "alone": -0.3, "angry": -0.5, "annoyed": -0.4, "anxious": -0.25,
	"awful": -1.0, "bad": -0.7, "bitter": -0.1, "bleak": -0.5, "bloody": -0.6,
	"boring": -1.0, "broken": -0.4, "brutal": -0.875, "cold": -0.6, "corrupt": -0.5,
	"cruel": -1.0, "dangerous": -0.6, "dark": -0.15, "dead": -0.2, "deadly": -0.5,
	"depressed": -0.7, "depressing": -0.7, "desperate": -0.6, "difficult": -0.5, "dirty": -0.6,
	"disappointed": -0.75, "disaster": -0.6, "disturbing": -0.7, "down": -0.15, "dreadful": -0.9,
	"dull": -0.3, "evil": -1.0, "fail": -0.5, "failed": -0.5, "fear": -0.5,
	"frightening": -0.6, "furious": -0.6, "gloomy": -0.5, "grim": -0.6, "gruesome": -0.8,
	"guilty": -0.5, "hard": -0.3, "hate": -0.8, "hopeless": -0.7, "horrible": -1.0,
	"horrific": -0.9, "hostile": -0.5, "hurt": -0.4, "ill": -0.5, "lonely": -0.5,
	"lost": -0.3, "mad": -0.6, "mean": -0.3, "miserable": -0.8, "murderous": -0.8,
	"nasty": -1.0, "negative": -0.3, "painful": -0.7, "poor": -0.4, "sad": -0.5,
	"scared": -0.5, "scary": -0.5, "sick": -0.7, "sinister": -0.6, "stressed": -0.5,
	"stupid": -0.8, "terrible": -1.0, "terrifying": -0.8, "tired": -0.4, "tragic": -0.75,
	"troubled": -0.5, "ugly": -0.7, "unhappy": -0.6, "upset": -0.5, "violent": -0.8,
	"war": -0.3, "weak": -0.4, "wicked": -0.7, "worried": -0.4, "worse": -0.4,
	"worst": -1.0, "wrong": -0.5, "killer": -0.5, "murder": -0.6, "death": -0.4,
}

// intensifiers scale the polarity of the next scored word.
var intensifiers = map[string]float64{
	"very": 1.3, "really": 1.2, "extremely": 1.5, "incredibly": 1.4, "so": 1.2,
	"truly": 1.2, "deeply": 1.3, "most": 1.2, "absolutely": 1.5, "highly": 1.3,
	"slightly": 0.5, "somewhat": 0.6, "barely": 0.4, "fairly": 0.8, "rather": 0.8,
	"quite": 1.1, "little": 0.6,
}

var negations = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "nothing": {}, "none": {}, "nobody": {},
	"neither": {}, "nor": {}, "without": {}, "cannot": {}, "hardly": {},
}

var clauseBoundaries = map[string]struct{}{
	"but": {}, "however": {}, "although": {}, "though": {}, "yet": {},
}

// DefaultLexicon returns a fresh copy of the built-in lexicon.
func DefaultLexicon() Lexicon {
	lex := make(Lexicon, len(defaultPolarity))
	for w, p := range defaultPolarity {
		lex[w] = p
	}
	return lex
}

// LoadLexicon reads a YAML mapping of word to polarity and merges it over the built-in lexicon.
// Values outside [-1, +1] are rejected.
func LoadLexicon(path string) (Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var extra map[string]float64
	if err := yaml.Unmarshal(data, &extra); err != nil {
		return nil, fmt.Errorf("parse lexicon %s: %w", path, err)
	}
	lex := DefaultLexicon()
	for w, p := range extra {
		if p < -1 || p > 1 {
			return nil, fmt.Errorf("lexicon %s: polarity %v for %q outside [-1, 1]", path, p, w)
		}
		lex[strings.ToLower(strings.TrimSpace(w))] = p
	}
	return lex, nil
}
