package fortune

import (
	"context"
	"unicode/utf16"
)

// Fortunes is the canned list served when no API key is configured.
var Fortunes = [...]string{
	"The path to wisdom begins with understanding yourself.",
	"A journey of a thousand miles begins with a single step.",
	"New opportunities await you on the horizon.",
	"The best way to predict your future is to create it.",
	"Good things come to those who wait, but better things come to those who act.",
}

// LocalSelector picks a fortune deterministically from the input text.
type LocalSelector struct{}

// Fortune never fails.
func (LocalSelector) Fortune(_ context.Context, thoughts string) (string, error) {
	return Pick(thoughts), nil
}

// Pick returns Fortunes[|Hash(text) % len(Fortunes)|].
func Pick(text string) string {
	idx := Hash(text) % int32(len(Fortunes))
	if idx < 0 {
		idx = -idx
	}
	return Fortunes[idx]
}

// Hash is the 31-multiplier polynomial hash over UTF-16 code units with
// 32-bit wraparound, so "hi" hashes to 3329 and "" to 0.
func Hash(text string) int32 {
	var h int32
	for _, unit := range utf16.Encode([]rune(text)) {
		h = 31*h + int32(unit)
	}
	return h
}
