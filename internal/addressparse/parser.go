// Package addressparse tokenizes free-form US postal addresses and scores how
// likely a string is to be one. The feed importer uses it to detect job
// locations that were filled with a street address instead of a city.
package addressparse

import (
	"strings"
)

// Address is the structured result of parsing
type Address struct {
	Number string `json:"number,omitempty"`
	Street string `json:"street,omitempty"`
	Unit   string `json:"unit,omitempty"`
	City   string `json:"city,omitempty"`
	State  string `json:"state,omitempty"`
	Zip    string `json:"zip,omitempty"`
	POBox  string `json:"po_box,omitempty"`
}

// Result holds the parsed address, its score and the features that produced it
type Result struct {
	Input    string             `json:"input"`
	Address  Address            `json:"address"`
	Score    float64            `json:"score"`
	Features map[string]float64 `json:"features"`
	Tokens   []Token            `json:"tokens"`
}

// Threshold is the minimum score for LooksLikeAddress
const Threshold = 0.5

const (
	weightHouseNumber   = 0.25
	weightStreetSuffix  = 0.20
	weightState         = 0.15
	weightZip           = 0.20
	weightCityBefore    = 0.10
	weightUnit          = 0.05
	weightDirectional   = 0.05
	penaltyUnknown      = 0.10
	penaltyUnknownMax   = 0.30
	penaltyTooManyWords = 0.20
	penaltyNoStreetZip  = 0.30
	maxWords            = 12
)

// LooksLikeAddress reports whether s scores at or above Threshold
func LooksLikeAddress(s string) bool {
	return Parse(s).Score >= Threshold
}

// Parse tokenizes and scores s
func Parse(s string) Result {
	tokens := Tokenize(s)
	res := Result{Input: s, Tokens: tokens, Features: map[string]float64{}}
	if len(tokens) == 0 {
		return res
	}

	addr := &res.Address
	streetEnd := -1
	stateIdx := -1

	// house number or PO box
	start := 0
	if tokens[0].Kind == TokenNumber {
		addr.Number = tokens[0].Value
		res.Features["house_number"] = weightHouseNumber
		start = 1
	}
	for i, tok := range tokens {
		if tok.Kind == TokenPOBox && i+1 < len(tokens) && tokens[i+1].Kind == TokenNumber {
			addr.POBox = tokens[i+1].Value
			res.Features["po_box"] = weightHouseNumber
			streetEnd = i + 1
			break
		}
	}

	// street runs from after the number to the last suffix before the first comma
	if addr.Number != "" && addr.POBox == "" {
		var parts []string
		for i := start; i < len(tokens); i++ {
			tok := tokens[i]
			if tok.Kind == TokenComma || tok.Kind == TokenUnit || tok.Kind == TokenHash || tok.Kind == TokenZip {
				break
			}
			parts = append(parts, tok.Text)
			if tok.Kind == TokenStreetSuffix {
				streetEnd = i
				// trailing directional, as in "Main St NW"
				if i+1 < len(tokens) && tokens[i+1].Kind == TokenDirectional {
					parts = append(parts, tokens[i+1].Value)
					streetEnd = i + 1
				}
				break
			}
		}
		if streetEnd >= 0 {
			addr.Street = strings.Join(parts, " ")
			res.Features["street_suffix"] = weightStreetSuffix
		}
	}

	for i, tok := range tokens {
		switch tok.Kind {
		case TokenDirectional:
			res.Features["directional"] = weightDirectional
		case TokenUnit, TokenHash:
			if tok.Kind == TokenHash && i > 0 && tokens[i-1].Kind == TokenUnit {
				continue
			}
			next := i + 1
			if tok.Kind == TokenUnit && next < len(tokens) && tokens[next].Kind == TokenHash {
				next++
			}
			if next < len(tokens) && (tokens[next].Kind == TokenNumber || tokens[next].Kind == TokenWord) {
				if tok.Kind == TokenHash {
					addr.Unit = "#" + tokens[next].Value
				} else {
					addr.Unit = tok.Value + " " + tokens[next].Value
				}
				res.Features["unit"] = weightUnit
				if next > streetEnd {
					streetEnd = next
				}
			}
		case TokenZip:
			addr.Zip = tok.Value
			res.Features["zip"] = weightZip
		case TokenState:
			// the last state wins; "Washington St, Seattle, WA"
			if i > streetEnd {
				stateIdx = i
				addr.State = tok.Value
			}
		}
	}
	if stateIdx >= 0 {
		res.Features["state"] = weightState
		cityStart := streetEnd + 1
		var city []string
		for i := cityStart; i < stateIdx; i++ {
			switch tokens[i].Kind {
			case TokenComma:
				if len(city) > 0 && i < stateIdx-1 {
					city = city[:0]
				}
			case TokenWord, TokenDirectional, TokenStreetSuffix, TokenState:
				city = append(city, tokens[i].Text)
			}
		}
		if len(city) > 0 {
			addr.City = strings.Join(city, " ")
			res.Features["city_before_state"] = weightCityBefore
		}
	}

	var score float64
	for _, w := range res.Features {
		score += w
	}

	unknown, words := 0, 0
	for _, tok := range tokens {
		switch tok.Kind {
		case TokenUnknown:
			unknown++
		case TokenWord:
			words++
		}
	}
	if unknown > 0 {
		p := min(float64(unknown)*penaltyUnknown, penaltyUnknownMax)
		res.Features["unknown_symbols"] = -p
		score -= p
	}
	if words > maxWords {
		res.Features["too_many_words"] = -penaltyTooManyWords
		score -= penaltyTooManyWords
	}
	if addr.Street == "" && addr.POBox == "" && addr.Zip == "" {
		res.Features["no_street_or_zip"] = -penaltyNoStreetZip
		score -= penaltyNoStreetZip
	}

	res.Score = clamp(score)
	return res
}

func clamp(f float64) float64 {
	switch {
	case f < 0:
		return 0
	case f > 1:
		return 1
	}
	// round to 2 places so scores are stable in JSON and tests
	return float64(int(f*100+0.5)) / 100
}
