// Package chargernlp extracts EV home-charger brand and electricity tariff
// mentions from unstructured comment text using ordered keyword vocabularies.
// No external dependencies.
package chargernlp

import (
	"regexp"
	"strings"
)

// Sentinel results when no vocabulary term matches.
const (
	BrandUnknown = "Unknown"
	TariffNone   = "None"
)

// brandTerms lists home chargepoint brands available in the UK and EU,
// including common misspellings seen in the wild (Hypervault, Anderson,
// myenergy). Order matters: the first matching term wins.
var brandTerms = []string{
	"Hypervolt", "Hypervault", "Ohme", "Zappi", "Project EV", "Pod Point", "Wallbox", "Easee",
	"Rolec", "EO Charging", "Andersen", "Anderson", "SyncEV", "Alfen", "EVBox", "ChargePoint",
	"Tesla", "ABB", "Garo", "NewMotion", "Shell Recharge", "Connected Kerb", "Hive", "EVEC",
	"Simpson & Partners", "Simpson", "PodPoint", "myenergi", "myenergy", "NexBlue", "GivEnergy", "Indra",
}

// tariffTerms lists EV-friendly electricity tariffs. Multi-word variants must
// precede their generic substrings ("Agile Octopus" before "Octopus") so the
// specific term wins the first-match scan.
var tariffTerms = []string{
	"Agile Octopus",
	"Intelligent Octopus",
	"Octopus Go",
	"OVO Charge Anytime",
	"Octopus",
	"OVO",
	"British Gas",
	"IOG",
	"Agile",
}

// vocabEntry pairs a vocabulary term with its compiled whole-word pattern.
type vocabEntry struct {
	term string
	re   *regexp.Regexp
}

var (
	brandVocab  []vocabEntry
	tariffVocab []vocabEntry
	brandByTerm map[string]*regexp.Regexp

	whitespaceRe = regexp.MustCompile(`\s+`)
	// nonWordRe strips everything outside letters, digits, underscore,
	// whitespace, commas and periods.
	nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}_\s,.]`)
)

func init() {
	brandVocab = compileVocab(brandTerms)
	tariffVocab = compileVocab(tariffTerms)
	brandByTerm = make(map[string]*regexp.Regexp, len(brandVocab))
	for _, e := range brandVocab {
		brandByTerm[e.term] = e.re
	}
}

func compileVocab(terms []string) []vocabEntry {
	entries := make([]vocabEntry, len(terms))
	for i, t := range terms {
		entries[i] = vocabEntry{term: t, re: wordPattern(t)}
	}
	return entries
}

// wordPattern compiles a case-insensitive whole-word pattern for term.
func wordPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(term) + `\b`)
}

// Normalize strips characters outside word characters, whitespace, commas and
// periods, then collapses whitespace runs to single spaces and trims the ends.
// Stripping happens first so the result is stable under repeated application.
func Normalize(raw string) string {
	s := nonWordRe.ReplaceAllString(raw, "")
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// MatchBrand returns the first brand term appearing whole-word in text,
// or BrandUnknown if none matches.
func MatchBrand(text string) string {
	return matchVocab(brandVocab, text, BrandUnknown)
}

// MatchTariff returns the first tariff term appearing whole-word in text,
// or TariffNone if none matches.
func MatchTariff(text string) string {
	return matchVocab(tariffVocab, text, TariffNone)
}

func matchVocab(vocab []vocabEntry, text, sentinel string) string {
	for _, e := range vocab {
		if e.re.MatchString(text) {
			return e.term
		}
	}
	return sentinel
}

// ExtractReason returns the normalized first period-delimited sentence of
// text that mentions brand as a whole word. When no sentence matches (the
// brand may span a sentence boundary) it falls back to the normalized first
// 200 runes of text.
func ExtractReason(text, brand string) string {
	re, ok := brandByTerm[brand]
	if !ok {
		re = wordPattern(brand)
	}
	for _, sentence := range strings.Split(text, ".") {
		if re.MatchString(sentence) {
			return Normalize(sentence)
		}
	}
	runes := []rune(text)
	if len(runes) > 200 {
		runes = runes[:200]
	}
	return Normalize(string(runes))
}
