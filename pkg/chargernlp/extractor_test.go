package chargernlp

import (
	"strings"
	"testing"
)

func TestMatchBrand(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"I switched to Ohme last month and love it", "Ohme"},
		{"Got a zappi installed alongside my solar panels", "Zappi"},
		{"The Pod Point app keeps logging me out", "Pod Point"},
		{"hypervolt home 3 pro is very tidy", "Hypervolt"},
		{"Hypervault was fitted last week", "Hypervault"},
		{"My Andersen A2 looks great on the drive", "Andersen"},
		{"went with anderson in the end", "Anderson"},
		{"Our installer recommended EO Charging units", "EO Charging"},
		{"Tesla wall connector paired with the Model Y", "Tesla"},
		{"Simpson & Partners Home 7 in birch", "Simpson & Partners"},
		{"The myenergi ecosystem works well together", "myenergi"},
		{"no charger mentioned here at all", BrandUnknown},
		{"", BrandUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := MatchBrand(tt.input); got != tt.want {
				t.Errorf("MatchBrand(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestMatchBrandWholeWordOnly(t *testing.T) {
	// "Hive" must not match inside "hives", "ABB" not inside "ABBA".
	if got := MatchBrand("the bees left their hives"); got != BrandUnknown {
		t.Errorf("partial word matched: %q", got)
	}
	if got := MatchBrand("listening to ABBA in the garage"); got != BrandUnknown {
		t.Errorf("partial word matched: %q", got)
	}
	if got := MatchBrand("ABB terra units are commercial"); got != "ABB" {
		t.Errorf("MatchBrand = %q, want ABB", got)
	}
}

func TestMatchTariffOrdering(t *testing.T) {
	// The specific multi-word term must win over its generic substring.
	text := "We moved to Agile Octopus for the overnight rates"
	if got := MatchTariff(text); got != "Agile Octopus" {
		t.Errorf("MatchTariff = %q, want Agile Octopus", got)
	}
	if got := MatchTariff("Intelligent Octopus Go has been flawless"); got != "Intelligent Octopus" {
		t.Errorf("MatchTariff = %q, want Intelligent Octopus", got)
	}
	if got := MatchTariff("still on a standard Octopus tariff"); got != "Octopus" {
		t.Errorf("MatchTariff = %q, want Octopus", got)
	}
	if got := MatchTariff("fixed rate with British Gas"); got != "British Gas" {
		t.Errorf("MatchTariff = %q, want British Gas", got)
	}
	if got := MatchTariff("nothing about electricity pricing"); got != TariffNone {
		t.Errorf("MatchTariff = %q, want %q", got, TariffNone)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"  hello   world  ", "hello world"},
		{"keep, commas. and periods.", "keep, commas. and periods."},
		{"strip #hashtags & (brackets)!", "strip hashtags brackets"},
		{"tabs\tand\nnewlines", "tabs and newlines"},
		{"", ""},
		{"£350 installed", "350 installed"},
	}

	for _, tt := range tests {
		if got := Normalize(tt.input); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"  a @ b  ",
		"I paid £900 (fitted!) for the unit...",
		"already clean text",
		"odd — punctuation ’ here",
	}
	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestExtractReasonMatchingSentence(t *testing.T) {
	text := "We looked at a few options. The Ohme Home Pro won on price. Installation was quick."
	got := ExtractReason(text, "Ohme")
	if !strings.Contains(got, "Ohme") {
		t.Errorf("reason %q does not mention the brand", got)
	}
	if got != "The Ohme Home Pro won on price" {
		t.Errorf("ExtractReason = %q", got)
	}
}

func TestExtractReasonFallback(t *testing.T) {
	// Brand spans a sentence boundary, so no single sentence matches.
	long := strings.Repeat("no brand in this filler text ", 20) // > 200 runes
	got := ExtractReason(long, "Zappi")
	if got == "" {
		t.Fatal("fallback reason must be non-empty")
	}
	if len([]rune(got)) > 200 {
		t.Errorf("fallback reason too long: %d runes", len([]rune(got)))
	}
}

func TestExtractReasonCaseInsensitive(t *testing.T) {
	got := ExtractReason("the ZAPPI was cheaper than quoted. second sentence.", "Zappi")
	if !strings.Contains(strings.ToLower(got), "zappi") {
		t.Errorf("reason %q missing brand", got)
	}
}
