package render

import "math/rand"

// Defeat-verb sets keyed by winning margin. The post-game title picks one at
// random from the band the margin falls into; a loss always draws from the
// plain set so the title stays neutral.
var (
	ordinaryWinPhrases = []string{"defeat", "beat", "triumph over"}

	lossPhrases = []string{"defeat", "beat"}

	narrowWinPhrases = []string{"steal one against", "hang on to defeat"}

	closeWinPhrases = []string{"hang on to defeat", "edge out"}

	blowoutPhrases = []string{
		"blow out", "level out", "destroy", "crush", "walk all over", "exterminate",
	}

	routPhrases = []string{
		"slaughter", "massacre", "obliterate", "eviscerate", "annihilate",
	}
)

// defeatVerb picks the verb for a post-game title.
func defeatVerb(rng *rand.Rand, clubWon bool, margin int) string {
	if !clubWon {
		return lossPhrases[rng.Intn(len(lossPhrases))]
	}
	var set []string
	switch {
	case margin < 3:
		set = narrowWinPhrases
	case margin < 6:
		set = closeWinPhrases
	case margin > 40:
		set = routPhrases
	case margin > 20:
		set = blowoutPhrases
	default:
		set = ordinaryWinPhrases
	}
	return set[rng.Intn(len(set))]
}
