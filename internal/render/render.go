// Package render converts raw record field values into display strings.
// Every function is pure and defensive: a value of an unexpected type
// degrades to a plain string representation, never a panic.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// NoSkills is shown when a record has an empty or missing skill list.
	NoSkills = "No skills"
	// NoManager is shown when a record has no manager reference.
	NoManager = "None"

	skillDisplayLimit = 3
	skillMaxChars     = 15

	hireDateLayout = "2006-01-02"
	shortDateOut   = "Jan 2, 2006"
)

// Cell is one rendered table cell. Detail carries the untruncated value
// when the displayed text had to be shortened, so the surface can expose
// it on inspection.
type Cell struct {
	Text   string
	Detail string
}

// Plain renders any value with its default string form. Nil values
// (absent fields) render as an empty cell.
func Plain(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// Active maps the isActive flag onto exactly two states. Anything that
// is not the boolean true renders as "Inactive"; there is no third state.
func Active(v any) string {
	if b, ok := v.(bool); ok && b {
		return "Active"
	}
	return "Inactive"
}

// Manager renders an optional manager reference: nil becomes the
// "None" placeholder, a string is passed through verbatim.
func Manager(v any) string {
	if v == nil {
		return NoManager
	}
	if s, ok := v.(string); ok {
		if s == "" {
			return NoManager
		}
		return s
	}
	return Plain(v)
}

// Currency renders a salary with a dollar prefix and comma thousands
// separators. Non-numeric input falls back to its raw string form.
func Currency(v any) string {
	var s string
	switch n := v.(type) {
	case float64:
		s = strconv.FormatFloat(n, 'f', -1, 64)
	case float32:
		s = strconv.FormatFloat(float64(n), 'f', -1, 32)
	case int:
		s = strconv.Itoa(n)
	case int64:
		s = strconv.FormatInt(n, 10)
	default:
		return Plain(v)
	}
	return "$" + groupThousands(s)
}

// HireDate parses a stored YYYY-MM-DD string and renders a short date.
// An unparsable value renders as-is rather than failing the row.
func HireDate(v any) string {
	s, ok := v.(string)
	if !ok {
		return Plain(v)
	}
	t, err := time.Parse(hireDateLayout, s)
	if err != nil {
		return s
	}
	return t.Format(shortDateOut)
}

// Rating renders a performance rating with exactly one decimal place.
func Rating(v any) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', 1, 64)
	case float32:
		return strconv.FormatFloat(float64(n), 'f', 1, 32)
	case int:
		return strconv.FormatFloat(float64(n), 'f', 1, 64)
	}
	return Plain(v)
}

// SkillTags returns the display tags for a skill list and the overflow
// suffix. Each tag is capped at 15 characters plus an ellipsis; at most
// 3 tags are returned, with "+N more" covering the rest. A nil return
// with an empty suffix means the list was empty or not a string list.
func SkillTags(v any) (tags []string, suffix string) {
	skills := asStringList(v)
	if len(skills) == 0 {
		return nil, ""
	}

	shown := skills
	if len(shown) > skillDisplayLimit {
		shown = shown[:skillDisplayLimit]
		suffix = fmt.Sprintf("+%d more", len(skills)-skillDisplayLimit)
	}
	tags = make([]string, len(shown))
	for i, s := range shown {
		tags[i] = truncateSkill(s)
	}
	return tags, suffix
}

// Skills renders the skill list as one cell. The Detail field carries
// the full comma-joined list whenever any tag was truncated or elided,
// so the surface can show the complete value on inspection.
func Skills(v any) Cell {
	tags, suffix := SkillTags(v)
	if tags == nil {
		return Cell{Text: NoSkills}
	}

	text := strings.Join(tags, " | ")
	if suffix != "" {
		text += "  " + suffix
	}

	skills := asStringList(v)
	shortened := suffix != ""
	for i, tag := range tags {
		if tag != skills[i] {
			shortened = true
			break
		}
	}
	detail := ""
	if shortened {
		detail = strings.Join(skills, ", ")
	}
	return Cell{Text: text, Detail: detail}
}

func truncateSkill(s string) string {
	r := []rune(s)
	if len(r) <= skillMaxChars {
		return s
	}
	return string(r[:skillMaxChars]) + "..."
}

func asStringList(v any) []string {
	switch list := v.(type) {
	case []string:
		return list
	case []any:
		out := make([]string, 0, len(list))
		for _, e := range list {
			s, ok := e.(string)
			if !ok {
				return nil
			}
			out = append(out, s)
		}
		return out
	}
	return nil
}

// groupThousands inserts commas into the integer part of a plain
// decimal number string, leaving any sign and fraction untouched.
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	n := len(intPart)
	if n <= 3 {
		return sign + intPart + frac
	}
	var b strings.Builder
	rem := n % 3
	if rem > 0 {
		b.WriteString(intPart[:rem])
	}
	for i := rem; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	return sign + b.String() + frac
}
