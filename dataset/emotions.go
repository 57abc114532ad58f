package dataset

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// EncodeEmotions renders an emotion list as a JSON array of strings.
func EncodeEmotions(emotions []string) string {
	if emotions == nil {
		emotions = []string{}
	}
	b, err := json.Marshal(emotions)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// ParseEmotions reads an emotions cell back into a list. It accepts the JSON
// arrays written by EncodeEmotions as well as Python list literals such as
// ['#joy', '#sad']. Anything it cannot read yields an empty list.
func ParseEmotions(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return []string{}
	}
	var elems []any
	if err := json.Unmarshal([]byte(s), &elems); err == nil && elems != nil {
		out := make([]string, 0, len(elems))
		for _, e := range elems {
			tag, ok := e.(string)
			if !ok {
				return []string{}
			}
			out = append(out, tag)
		}
		return out
	}
	out, err := parseListLiteral(s)
	if err != nil {
		return []string{}
	}
	return out
}

var errLiteral = errors.New("malformed list literal")

// parseListLiteral handles a bracketed, comma-separated list of single- or
// double-quoted strings with backslash escapes.
func parseListLiteral(s string) ([]string, error) {
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, errLiteral
	}
	body := []rune(s[1 : len(s)-1])
	out := []string{}
	i := 0
	skipSpace := func() {
		for i < len(body) && (body[i] == ' ' || body[i] == '\t' || body[i] == '\n' || body[i] == '\r') {
			i++
		}
	}

	skipSpace()
	for i < len(body) {
		q := body[i]
		if q != '\'' && q != '"' {
			return nil, errLiteral
		}
		i++
		var sb strings.Builder
		closed := false
		for i < len(body) {
			c := body[i]
			i++
			if c == '\\' {
				if i >= len(body) {
					return nil, errLiteral
				}
				i += unescape(&sb, body[i-1:])
				continue
			}
			if c == q {
				closed = true
				break
			}
			sb.WriteRune(c)
		}
		if !closed {
			return nil, errLiteral
		}
		out = append(out, sb.String())

		skipSpace()
		if i == len(body) {
			break
		}
		if body[i] != ',' {
			return nil, errLiteral
		}
		i++
		skipSpace()
	}
	return out, nil
}

// unescape decodes the escape sequence at the start of esc, which begins with
// a backslash, and returns how many runes after the backslash it consumed.
// Sequences strconv cannot decode, \N{...} included, are kept verbatim.
func unescape(sb *strings.Builder, esc []rune) int {
	switch esc[1] {
	case '\'', '"':
		sb.WriteRune(esc[1])
		return 1
	}
	rest := string(esc)
	v, _, tail, err := strconv.UnquoteChar(rest, 0)
	if err != nil {
		sb.WriteRune('\\')
		sb.WriteRune(esc[1])
		return 1
	}
	sb.WriteRune(v)
	return utf8.RuneCountInString(rest) - utf8.RuneCountInString(tail) - 1
}
