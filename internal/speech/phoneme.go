package speech

import "strings"

// letterPhonemes maps each letter to its isolated sound in eSpeak's
// Kirshenbaum notation, wrapped in the [[...]] markup that switches the
// synthesizer into raw phoneme input. Consonants carry a trailing schwa
// because a bare stop is inaudible.
var letterPhonemes = map[string]string{
	"A": "[[a]]",   // as in "cat"
	"B": "[[b@]]",  // "buh"
	"C": "[[k@]]",  // hard c
	"D": "[[d@]]",  // "duh"
	"E": "[[E]]",   // as in "bed"
	"F": "[[f@]]",  // "fuh"
	"G": "[[g@]]",  // "guh"
	"H": "[[h@]]",  // "huh"
	"I": "[[I]]",   // as in "sit"
	"J": "[[dZ@]]", // "juh"
	"K": "[[k@]]",  // "kuh"
	"L": "[[l@]]",  // "luh"
	"M": "[[m@]]",  // "muh"
	"N": "[[n@]]",  // "nuh"
	"O": "[[0]]",   // as in "hot"
	"P": "[[p@]]",  // "puh"
	"Q": "[[kw@]]", // "kwuh"
	"R": "[[r@]]",  // "ruh"
	"S": "[[s@]]",  // "suh"
	"T": "[[t@]]",  // "tuh"
	"U": "[[V]]",   // as in "cup"
	"V": "[[v@]]",  // "vuh"
	"W": "[[w@]]",  // "wuh"
	"X": "[[ks@]]", // "ks"
	"Y": "[[j@]]",  // "yuh"
	"Z": "[[z@]]",  // "zuh"
}

// approxSyllables maps each letter to a short real word that opens with
// the letter's sound. Used when the engine cannot take raw phoneme
// input: hearing "at" for A still teaches /æ/, just less purely.
var approxSyllables = map[string]string{
	"A": "at",
	"B": "bud",
	"C": "cup",
	"D": "dug",
	"E": "ed",
	"F": "fun",
	"G": "gut",
	"H": "hut",
	"I": "it",
	"J": "jug",
	"K": "kit",
	"L": "lip",
	"M": "mud",
	"N": "nut",
	"O": "on",
	"P": "pup",
	"Q": "quit",
	"R": "rub",
	"S": "sit",
	"T": "tip",
	"U": "up",
	"V": "van",
	"W": "wet",
	"X": "ox",
	"Y": "yes",
	"Z": "zip",
}

// PhonemeFor returns the raw phoneme markup for a letter, or "" when
// the letter has none (non-alphabetic input).
func PhonemeFor(letter string) string {
	return letterPhonemes[strings.ToUpper(letter)]
}

// ApproxSyllableFor returns the fallback word for a letter's sound, or
// "" for non-alphabetic input.
func ApproxSyllableFor(letter string) string {
	return approxSyllables[strings.ToUpper(letter)]
}
