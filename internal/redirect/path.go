// Package redirect holds the pure parts of the job redirect service: parsing
// redirect paths and rewriting destination URLs per view source.
package redirect

import (
	"strconv"
	"strings"

	apperrors "myjobs/internal/errors"
)

// Request is a parsed redirect path
type Request struct {
	GUID       string
	ViewSource int
	HasVS      bool
	Debug      bool
}

// ParsePath parses "<guid>[<view source>][+]" where guid is 32 hex characters,
// or 36 with hyphens. A non-empty vsOverride (the ?vs= query value) wins over
// the path suffix.
func ParsePath(path, vsOverride string) (Request, error) {
	p := strings.TrimPrefix(path, "/")
	p = strings.TrimSuffix(p, "/")

	var req Request
	if strings.HasSuffix(p, "+") {
		req.Debug = true
		p = strings.TrimSuffix(p, "+")
	}

	guidLen := 32
	if len(p) >= 36 && p[8] == '-' && p[13] == '-' && p[18] == '-' && p[23] == '-' {
		guidLen = 36
	}
	if len(p) < guidLen {
		return Request{}, apperrors.ErrInvalidGUID
	}

	guid := strings.ReplaceAll(p[:guidLen], "-", "")
	if len(guid) != 32 || !isHex(guid) {
		return Request{}, apperrors.ErrInvalidGUID
	}
	req.GUID = strings.ToUpper(guid)

	if suffix := p[guidLen:]; suffix != "" {
		vs, err := strconv.Atoi(suffix)
		if err != nil || vs < 0 {
			return Request{}, apperrors.ErrInvalidGUID
		}
		req.ViewSource, req.HasVS = vs, true
	}
	if vsOverride != "" {
		if vs, err := strconv.Atoi(vsOverride); err == nil && vs >= 0 {
			req.ViewSource, req.HasVS = vs, true
		}
	}
	return req, nil
}

// NormalizeGUID upper-cases a GUID and strips hyphens, validating its shape
func NormalizeGUID(guid string) (string, error) {
	g := strings.ToUpper(strings.ReplaceAll(guid, "-", ""))
	if len(g) != 32 || !isHex(g) {
		return "", apperrors.ErrInvalidGUID
	}
	return g, nil
}

func isHex(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
