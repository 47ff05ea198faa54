package xorcrack

// A Scorer assigns a language-likeness fitness value to a byte buffer.
// Higher means more plausible as natural-language text. Scores are only
// meaningful relative to other scores from the same Scorer.
type Scorer interface {
	Score(data []byte) float64
}

// nonPrintablePenalty is subtracted for every control or non-ASCII byte.
// It is large relative to the letter weights so that a single garbage byte
// outweighs a handful of well-placed letters.
const nonPrintablePenalty = 0.10

// letterFrequencies holds the relative frequency of each lowercase English
// letter, indexed by ch - 'a'. Space is weighted separately: in running
// English text it is more common than 'e'.
var letterFrequencies = [26]float64{
	0.08167, // a
	0.01492, // b
	0.02782, // c
	0.04253, // d
	0.12702, // e
	0.02228, // f
	0.02015, // g
	0.06094, // h
	0.06966, // i
	0.00153, // j
	0.00772, // k
	0.04025, // l
	0.02406, // m
	0.06749, // n
	0.07507, // o
	0.01929, // p
	0.00095, // q
	0.05987, // r
	0.06327, // s
	0.09056, // t
	0.02758, // u
	0.00978, // v
	0.02360, // w
	0.00150, // x
	0.01974, // y
	0.00074, // z
}

const spaceFrequency = 0.13000

// FrequencyScorer scores buffers by summing per-byte weights from an English
// letter-frequency table. Letters are counted case-insensitively, space earns
// the largest single weight, other printable ASCII and common whitespace are
// neutral, and control or non-ASCII bytes are penalized. The same buffer
// always produces the same score.
type FrequencyScorer struct{}

// NewFrequencyScorer returns a Scorer backed by the English letter-frequency
// table. This is the scorer used by all package-level cracking functions.
func NewFrequencyScorer() FrequencyScorer {
	return FrequencyScorer{}
}

// Score sums the per-byte weights for data.
func (FrequencyScorer) Score(data []byte) float64 {
	var score float64
	for _, b := range data {
		switch {
		case b >= 'a' && b <= 'z':
			score += letterFrequencies[b-'a']
		case b >= 'A' && b <= 'Z':
			score += letterFrequencies[b-'A']
		case b == ' ':
			score += spaceFrequency
		case b == '\n' || b == '\r' || b == '\t':
			// common whitespace is neutral
		case b >= 0x20 && b <= 0x7e:
			// digits and punctuation are neutral
		default:
			score -= nonPrintablePenalty
		}
	}
	return score
}

// EnglishScore scores data with the default frequency scorer.
func EnglishScore(data []byte) float64 {
	return NewFrequencyScorer().Score(data)
}
