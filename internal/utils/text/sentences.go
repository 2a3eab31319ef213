package text

import "regexp"

// sentenceBoundary matches a sentence terminator followed by whitespace.
// The terminator belongs to the preceding sentence; the whitespace is discarded.
var sentenceBoundary = regexp.MustCompile(`[.!?]\s+`)

// SplitSentences splits text into sentences at '.', '!' or '?' followed by
// whitespace. Runs of terminators stay together ("Wait...?" is one boundary),
// and a terminator at the very end of the text does not open a new sentence.
//
// Examples:
//
//	SplitSentences("One. Two!")        // returns ["One.", "Two!"]
//	SplitSentences("Hi... Bye")        // returns ["Hi...", "Bye"]
//	SplitSentences("No terminator")    // returns ["No terminator"]
//	SplitSentences("")                 // returns nil
func SplitSentences(text string) []string {
	if text == "" {
		return nil
	}

	bounds := sentenceBoundary.FindAllStringIndex(text, -1)
	sentences := make([]string, 0, len(bounds)+1)

	start := 0
	for _, b := range bounds {
		// b[0] is the terminator; keep it with the sentence it closes
		sentences = append(sentences, text[start:b[0]+1])
		start = b[1]
	}
	sentences = append(sentences, text[start:])

	return sentences
}

// Snippet returns the first limit runes of text with a trailing ellipsis
// marker. The marker is appended to every non-empty text, truncated or not;
// empty text yields an empty snippet. Limits count runes, not bytes, so
// multi-byte characters are never split.
func Snippet(text string, limit int) string {
	if text == "" {
		return ""
	}
	runes := []rune(text)
	if len(runes) > limit {
		runes = runes[:limit]
	}
	return string(runes) + "..."
}
