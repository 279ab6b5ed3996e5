package redirect

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"myjobs/internal/database/models"
	apperrors "myjobs/internal/errors"
)

// Manipulation actions
const (
	ActionSourceCodeTag                = "sourcecodetag"
	ActionSourceCodeInsertion          = "sourcecodeinsertion"
	ActionSourceCodeSwitch             = "sourcecodeswitch"
	ActionSourceURLWrap                = "sourceurlwrap"
	ActionSourceURLWrapAppend          = "sourceurlwrapappend"
	ActionSourceURLWrapUnencoded       = "sourceurlwrapunencoded"
	ActionSourceURLWrapUnencodedAppend = "sourceurlwrapunencodedappend"
	ActionSwitchLastInstance           = "switchlastinstance"
	ActionReplaceThenAdd               = "replacethenadd"
	ActionURLSwap                      = "urlswap"
	ActionMicrosite                    = "microsite"
	ActionAmpToAmp                     = "amptoamp"
	ActionAnchorRedirectIssue          = "anchorredirectissue"
	ActionFixURL                       = "fixurl"
)

// replaceSeparator splits "old!!!!new" pairs used by replacethenadd
const replaceSeparator = "!!!!"

// Context carries request data some actions need
type Context struct {
	GUID       string
	ViewSource int
}

type actionFunc func(dest string, m *models.DestinationManipulation, c Context) string

var actions = map[string]actionFunc{
	ActionSourceCodeTag:                sourceCodeTag,
	ActionSourceCodeInsertion:          sourceCodeInsertion,
	ActionSourceCodeSwitch:             sourceCodeSwitch,
	ActionSourceURLWrap:                sourceURLWrap,
	ActionSourceURLWrapAppend:          sourceURLWrapAppend,
	ActionSourceURLWrapUnencoded:       sourceURLWrapUnencoded,
	ActionSourceURLWrapUnencodedAppend: sourceURLWrapUnencodedAppend,
	ActionSwitchLastInstance:           switchLastInstance,
	ActionReplaceThenAdd:               replaceThenAdd,
	ActionURLSwap:                      urlSwap,
	ActionMicrosite:                    microsite,
	ActionAmpToAmp:                     ampToAmp,
	ActionAnchorRedirectIssue:          anchorRedirectIssue,
	ActionFixURL:                       fixURL,
}

// IsKnownAction reports whether name is a supported manipulation
func IsKnownAction(name string) bool {
	_, ok := actions[name]
	return ok
}

// KnownActions lists supported manipulations in alphabetical order
func KnownActions() []string {
	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply rewrites dest with one manipulation
func Apply(dest string, m *models.DestinationManipulation, c Context) (string, error) {
	fn, ok := actions[m.Action]
	if !ok {
		return dest, fmt.Errorf("%w: %q", apperrors.ErrUnknownAction, m.Action)
	}
	return fn(dest, m, c), nil
}

// Step describes one applied manipulation, for debug output
type Step struct {
	ID         uint   `json:"id"`
	ActionType int    `json:"action_type"`
	Action     string `json:"action"`
	Before     string `json:"before"`
	After      string `json:"after"`
	Skipped    bool   `json:"skipped,omitempty"`
	Error      string `json:"error,omitempty"`
}

// ApplyAll sorts manipulations by action type then id and applies each in turn.
// Unknown actions are skipped and reported in the returned steps.
func ApplyAll(dest string, ms []models.DestinationManipulation, c Context) (string, []Step) {
	sorted := make([]models.DestinationManipulation, len(ms))
	copy(sorted, ms)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].ActionType != sorted[j].ActionType {
			return sorted[i].ActionType < sorted[j].ActionType
		}
		return sorted[i].ID < sorted[j].ID
	})

	steps := make([]Step, 0, len(sorted))
	for i := range sorted {
		m := &sorted[i]
		step := Step{ID: m.ID, ActionType: m.ActionType, Action: m.Action, Before: dest}
		next, err := Apply(dest, m, c)
		if err != nil {
			step.Skipped = true
			step.Error = err.Error()
		} else {
			dest = next
		}
		step.After = dest
		steps = append(steps, step)
	}
	return dest, steps
}

func appendQuery(dest, query string) string {
	if query == "" {
		return dest
	}
	query = strings.TrimLeft(query, "?&")
	if strings.Contains(dest, "?") {
		if strings.HasSuffix(dest, "?") || strings.HasSuffix(dest, "&") {
			return dest + query
		}
		return dest + "&" + query
	}
	return dest + "?" + query
}

func splitFragment(dest string) (string, string) {
	if i := strings.Index(dest, "#"); i >= 0 {
		return dest[:i], dest[i:]
	}
	return dest, ""
}

// sourcecodetag: add value_1 to the query string. The text is appended as is,
// after any #fragment; anchorredirectissue is the fragment-aware variant.
func sourceCodeTag(dest string, m *models.DestinationManipulation, _ Context) string {
	return appendQuery(dest, m.Value1)
}

// sourcecodeinsertion: put value_1 first in the query string
func sourceCodeInsertion(dest string, m *models.DestinationManipulation, _ Context) string {
	query := strings.TrimLeft(m.Value1, "?&")
	i := strings.Index(dest, "?")
	if i < 0 || query == "" {
		return appendQuery(dest, query)
	}
	rest := dest[i+1:]
	if rest == "" {
		return dest + query
	}
	return dest[:i+1] + query + "&" + rest
}

// sourcecodeswitch: replace the whole query string with value_1
func sourceCodeSwitch(dest string, m *models.DestinationManipulation, _ Context) string {
	base, fragment := splitFragment(dest)
	if i := strings.Index(base, "?"); i >= 0 {
		base = base[:i]
	}
	return appendQuery(base, m.Value1) + fragment
}

func sourceURLWrap(dest string, m *models.DestinationManipulation, _ Context) string {
	return m.Value1 + url.QueryEscape(dest)
}

func sourceURLWrapAppend(dest string, m *models.DestinationManipulation, _ Context) string {
	return m.Value1 + url.QueryEscape(appendQuery(dest, m.Value2))
}

func sourceURLWrapUnencoded(dest string, m *models.DestinationManipulation, _ Context) string {
	return m.Value1 + dest
}

func sourceURLWrapUnencodedAppend(dest string, m *models.DestinationManipulation, _ Context) string {
	return m.Value1 + appendQuery(dest, m.Value2)
}

// switchlastinstance: replace the last occurrence of value_1 with value_2
func switchLastInstance(dest string, m *models.DestinationManipulation, _ Context) string {
	if m.Value1 == "" {
		return dest
	}
	i := strings.LastIndex(dest, m.Value1)
	if i < 0 {
		return dest
	}
	return dest[:i] + m.Value2 + dest[i+len(m.Value1):]
}

// replacethenadd: value_1 is "old!!!!new"; replace then add value_2 to the query
func replaceThenAdd(dest string, m *models.DestinationManipulation, _ Context) string {
	if old, repl, ok := strings.Cut(m.Value1, replaceSeparator); ok && old != "" {
		dest = strings.ReplaceAll(dest, old, repl)
	}
	return appendQuery(dest, m.Value2)
}

func urlSwap(dest string, m *models.DestinationManipulation, _ Context) string {
	if m.Value1 == "" {
		return dest
	}
	return m.Value1
}

// microsite: send the click to the job page on a microsite instead of the ATS
func microsite(dest string, m *models.DestinationManipulation, c Context) string {
	if m.Value1 == "" {
		return dest
	}
	target := strings.TrimSuffix(m.Value1, "/") + "/" + strings.ToLower(c.GUID) + "/job/"
	return appendQuery(target, "vs="+strconv.Itoa(c.ViewSource))
}

// amptoamp: decode &amp; entities, then add value_1 to the query
func ampToAmp(dest string, m *models.DestinationManipulation, _ Context) string {
	return appendQuery(strings.ReplaceAll(dest, "&amp;", "&"), m.Value1)
}

// anchorredirectissue: add value_1 to the query before the #fragment
func anchorRedirectIssue(dest string, m *models.DestinationManipulation, _ Context) string {
	base, fragment := splitFragment(dest)
	return appendQuery(base, m.Value1) + fragment
}

// fixurl: replace every value_1 with value_2
func fixURL(dest string, m *models.DestinationManipulation, _ Context) string {
	if m.Value1 == "" {
		return dest
	}
	return strings.ReplaceAll(dest, m.Value1, m.Value2)
}
