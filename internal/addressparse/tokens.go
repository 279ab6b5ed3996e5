package addressparse

import (
	"strings"
	"unicode"
)

// TokenKind classifies a token of a free-form address
type TokenKind int

const (
	TokenWord TokenKind = iota
	TokenNumber
	TokenComma
	TokenHash
	TokenOrdinal
	TokenDirectional
	TokenStreetSuffix
	TokenUnit
	TokenPOBox
	TokenState
	TokenZip
	TokenUnknown
)

func (k TokenKind) String() string {
	switch k {
	case TokenWord:
		return "word"
	case TokenNumber:
		return "number"
	case TokenComma:
		return "comma"
	case TokenHash:
		return "hash"
	case TokenOrdinal:
		return "ordinal"
	case TokenDirectional:
		return "directional"
	case TokenStreetSuffix:
		return "street_suffix"
	case TokenUnit:
		return "unit"
	case TokenPOBox:
		return "po_box"
	case TokenState:
		return "state"
	case TokenZip:
		return "zip"
	default:
		return "unknown"
	}
}

// Token is one lexical unit with its normalized value
type Token struct {
	Kind  TokenKind `json:"kind"`
	Text  string    `json:"text"`
	Value string    `json:"value"`
}

var directionals = map[string]string{
	"n": "N", "north": "N", "s": "S", "south": "S", "e": "E", "east": "E", "w": "W", "west": "W",
	"ne": "NE", "northeast": "NE", "nw": "NW", "northwest": "NW",
	"se": "SE", "southeast": "SE", "sw": "SW", "southwest": "SW",
}

var streetSuffixes = map[string]string{
	"st": "St", "street": "St", "ave": "Ave", "av": "Ave", "avenue": "Ave", "rd": "Rd", "road": "Rd",
	"blvd": "Blvd", "boulevard": "Blvd", "dr": "Dr", "drive": "Dr", "ln": "Ln", "lane": "Ln",
	"ct": "Ct", "court": "Ct", "pl": "Pl", "place": "Pl", "way": "Way", "pkwy": "Pkwy", "parkway": "Pkwy",
	"hwy": "Hwy", "highway": "Hwy", "cir": "Cir", "circle": "Cir", "ter": "Ter", "terrace": "Ter",
	"trl": "Trl", "trail": "Trl", "sq": "Sq", "square": "Sq", "pike": "Pike", "row": "Row",
	"plz": "Plz", "plaza": "Plz", "aly": "Aly", "alley": "Aly", "loop": "Loop", "run": "Run",
}

var unitDesignators = map[string]string{
	"apt": "Apt", "apartment": "Apt", "ste": "Ste", "suite": "Ste", "unit": "Unit", "fl": "Fl",
	"floor": "Fl", "rm": "Rm", "room": "Rm", "bldg": "Bldg", "building": "Bldg", "dept": "Dept",
}

var stateNames = map[string]string{
	"alabama": "AL", "alaska": "AK", "arizona": "AZ", "arkansas": "AR", "california": "CA",
	"colorado": "CO", "connecticut": "CT", "delaware": "DE", "florida": "FL", "georgia": "GA",
	"hawaii": "HI", "idaho": "ID", "illinois": "IL", "indiana": "IN", "iowa": "IA", "kansas": "KS",
	"kentucky": "KY", "louisiana": "LA", "maine": "ME", "maryland": "MD", "massachusetts": "MA",
	"michigan": "MI", "minnesota": "MN", "mississippi": "MS", "missouri": "MO", "montana": "MT",
	"nebraska": "NE", "nevada": "NV", "ohio": "OH", "oklahoma": "OK", "oregon": "OR",
	"pennsylvania": "PA", "tennessee": "TN", "texas": "TX", "utah": "UT", "vermont": "VT",
	"virginia": "VA", "washington": "WA", "wisconsin": "WI", "wyoming": "WY",
	"district of columbia": "DC", "new hampshire": "NH", "new jersey": "NJ", "new mexico": "NM",
	"new york": "NY", "north carolina": "NC", "north dakota": "ND", "rhode island": "RI",
	"south carolina": "SC", "south dakota": "SD", "west virginia": "WV", "puerto rico": "PR",
}

var stateCodes = func() map[string]bool {
	codes := make(map[string]bool, len(stateNames))
	for _, code := range stateNames {
		codes[code] = true
	}
	return codes
}()

// Tokenize splits a free-form address into classified tokens
func Tokenize(input string) []Token {
	words := split(input)
	tokens := make([]Token, 0, len(words))

	for i := 0; i < len(words); i++ {
		w := words[i]
		lower := strings.ToLower(strings.TrimSuffix(w, "."))

		switch {
		case w == ",":
			tokens = append(tokens, Token{Kind: TokenComma, Text: w, Value: w})
			continue
		case w == "#":
			tokens = append(tokens, Token{Kind: TokenHash, Text: w, Value: w})
			continue
		}

		// multi-word lookups first: "po box", "new york"
		if i+1 < len(words) {
			next := strings.ToLower(strings.TrimSuffix(words[i+1], "."))
			pair := lower + " " + next
			if pair == "po box" || pair == "p.o box" || pair == "p.o. box" || (lower == "p" && next == "o") {
				j := i + 1
				if lower == "p" && next == "o" && j+1 < len(words) && strings.EqualFold(words[j+1], "box") {
					j++
				}
				tokens = append(tokens, Token{Kind: TokenPOBox, Text: strings.Join(words[i:j+1], " "), Value: "PO Box"})
				i = j
				continue
			}
			if code, ok := stateNames[pair]; ok {
				tokens = append(tokens, Token{Kind: TokenState, Text: words[i] + " " + words[i+1], Value: code})
				i++
				continue
			}
			if i+2 < len(words) {
				triple := pair + " " + strings.ToLower(words[i+2])
				if code, ok := stateNames[triple]; ok {
					tokens = append(tokens, Token{Kind: TokenState, Text: strings.Join(words[i:i+3], " "), Value: code})
					i += 2
					continue
				}
			}
		}
		if lower == "pobox" {
			tokens = append(tokens, Token{Kind: TokenPOBox, Text: w, Value: "PO Box"})
			continue
		}

		tokens = append(tokens, classify(w, lower))
	}
	return tokens
}

func classify(w, lower string) Token {
	switch {
	case isZip(w):
		return Token{Kind: TokenZip, Text: w, Value: w}
	case isDigits(w):
		return Token{Kind: TokenNumber, Text: w, Value: w}
	case isOrdinal(lower):
		return Token{Kind: TokenOrdinal, Text: w, Value: lower}
	}
	if v, ok := directionals[lower]; ok {
		return Token{Kind: TokenDirectional, Text: w, Value: v}
	}
	if v, ok := streetSuffixes[lower]; ok {
		return Token{Kind: TokenStreetSuffix, Text: w, Value: v}
	}
	if v, ok := unitDesignators[lower]; ok {
		return Token{Kind: TokenUnit, Text: w, Value: v}
	}
	if len(w) == 2 && stateCodes[strings.ToUpper(w)] {
		return Token{Kind: TokenState, Text: w, Value: strings.ToUpper(w)}
	}
	if code, ok := stateNames[lower]; ok {
		return Token{Kind: TokenState, Text: w, Value: code}
	}
	if isWord(w) {
		return Token{Kind: TokenWord, Text: w, Value: w}
	}
	// house numbers like 12B and unit numbers like 4-A
	if len(w) > 0 && unicode.IsDigit(rune(w[0])) && isAlnumDash(w) {
		return Token{Kind: TokenNumber, Text: w, Value: strings.ToUpper(w)}
	}
	return Token{Kind: TokenUnknown, Text: w, Value: w}
}

// split breaks on whitespace and emits commas and hashes as separate tokens
func split(input string) []string {
	var out []string
	var cur strings.Builder
	flush := func() {
		if cur.Len() > 0 {
			out = append(out, cur.String())
			cur.Reset()
		}
	}
	for _, r := range input {
		switch {
		case unicode.IsSpace(r):
			flush()
		case r == ',' || r == '#':
			flush()
			out = append(out, string(r))
		default:
			cur.WriteRune(r)
		}
	}
	flush()
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

func isZip(s string) bool {
	if len(s) == 5 {
		return isDigits(s)
	}
	if len(s) == 10 && s[5] == '-' {
		return isDigits(s[:5]) && isDigits(s[6:])
	}
	return false
}

func isOrdinal(s string) bool {
	if len(s) < 3 {
		return false
	}
	num, suffix := s[:len(s)-2], s[len(s)-2:]
	if !isDigits(num) {
		return false
	}
	switch suffix {
	case "st", "nd", "rd", "th":
		return true
	}
	return false
}

func isWord(s string) bool {
	hasLetter := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case r == '\'' || r == '-' || r == '.':
		default:
			return false
		}
	}
	return hasLetter
}

func isAlnumDash(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '/' {
			return false
		}
	}
	return true
}
