package domain

import (
	"strings"
	"unicode"
)

// maxCandidates caps extractor output. Each candidate costs one card-database
// lookup, so the cap keeps a long question from fanning out into a burst of
// external calls. The exact value is a pacing choice, not a semantic one.
const maxCandidates = 5

// stopWords holds lowercase candidates that are never card names: function
// words plus the question-leading words that start most rules questions
// capitalized.
var stopWords = map[string]struct{}{
	"the": {}, "and": {}, "or": {}, "but": {}, "for": {}, "with": {},
	"from": {}, "into": {}, "during": {}, "including": {}, "until": {},
	"against": {}, "among": {}, "throughout": {}, "despite": {},
	"towards": {}, "upon": {},
	"how": {}, "what": {}, "when": {}, "where": {}, "which": {}, "who": {},
	"why": {}, "can": {}, "could": {}, "does": {}, "did": {}, "is": {}, "are": {},
	"was": {}, "were": {}, "will": {}, "would": {}, "should": {}, "may": {},
	"must": {}, "you": {}, "your": {},
}

// connectors may appear lowercase inside a multi-word card name, as in
// "Force of Will" or "Through the Breach".
var connectors = map[string]struct{}{
	"of": {}, "the": {}, "and": {}, "to": {}, "a": {},
}

// ExtractCardNames scans free text for capitalized phrases that look like
// card names and returns at most maxCandidates of them in order of
// appearance. It is a heuristic to seed optional card lookups, not a
// validator: false positives and false negatives are fine, the enrichment
// stage absorbs both.
func ExtractCardNames(text string) []string {
	words := strings.Fields(text)

	var candidates []string
	var run []string

	flush := func() {
		ws := run
		run = nil
		// Question-leading capitals like "Does" or "Can" glue themselves
		// onto a following card name; peel stop words off the front.
		for len(ws) > 0 && isStopWord(ws[0]) {
			ws = ws[1:]
		}
		if len(ws) == 0 {
			return
		}
		name := strings.Join(ws, " ")
		if len(name) <= 2 {
			return
		}
		candidates = append(candidates, name)
	}

	for i, raw := range words {
		w := trimWord(raw)
		switch {
		case isNameWord(w):
			run = append(run, w)
			// Trailing punctuation ends the phrase even if the next
			// word is capitalized.
			if endsPhrase(raw) {
				flush()
			}
		case len(run) > 0 && isConnector(w) && nextIsNameWord(words, i+1):
			run = append(run, w)
		default:
			flush()
		}
	}
	flush()

	if len(candidates) > maxCandidates {
		candidates = candidates[:maxCandidates]
	}
	return candidates
}

// trimWord strips surrounding punctuation, keeping hyphens and apostrophes
// inside the word ("Will-o'-the-Wisp", "Gaea's").
func trimWord(w string) string {
	return strings.TrimFunc(w, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
}

// isNameWord reports whether a trimmed word could be part of a card name:
// leading uppercase letter, then letters, hyphens or apostrophes only.
func isNameWord(w string) bool {
	if w == "" {
		return false
	}
	for i, r := range w {
		if i == 0 {
			if !unicode.IsUpper(r) {
				return false
			}
			continue
		}
		if !unicode.IsLetter(r) && r != '-' && r != '\'' {
			return false
		}
	}
	return true
}

func isStopWord(w string) bool {
	_, ok := stopWords[strings.ToLower(w)]
	return ok
}

func isConnector(w string) bool {
	_, ok := connectors[w]
	return ok
}

func nextIsNameWord(words []string, i int) bool {
	return i < len(words) && isNameWord(trimWord(words[i]))
}

// endsPhrase reports whether the raw word carried trailing punctuation that
// terminates a phrase, e.g. "Fog?" or "Bolt,".
func endsPhrase(raw string) bool {
	r := raw[len(raw)-1]
	return r == ',' || r == '.' || r == '?' || r == '!' || r == ';' || r == ':'
}
