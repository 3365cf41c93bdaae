// Package invocation parses free-form task invocation strings of the form
// "name" or "name(arg, arg, ...)" into a task name and a loosely typed
// argument list.
//
// The argument text is casual, JSON-like literal syntax: single quotes are
// accepted as string delimiters and mapping keys may be unquoted. The text
// is normalized to strict JSON and decoded with encoding/json, never
// evaluated as code, so untrusted invocation strings cannot inject behavior.
package invocation

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

var (
	// ErrFormat reports an invocation string that does not match the
	// "name" or "name(args)" shape.
	ErrFormat = errors.New("invocation: string does not match name or name(args)")

	// ErrDecode reports argument text that is not decodable literal
	// syntax after normalization.
	ErrDecode = errors.New("invocation: argument list is not valid literal syntax")
)

// shape matches "name" or "name(rawArgs)". The name is any non-empty text
// without parentheses; the parenthesized suffix is optional and must close
// at the end of the string.
var shape = regexp.MustCompile(`^\s*([^\s()][^()]*?)\s*(?:\((.*)\))?\s*$`)

// bareKey matches an unquoted mapping key preceded by "{" or "," and
// optional whitespace, e.g. `{retries:` or `, verbose:`.
var bareKey = regexp.MustCompile(`([{,]\s*)([A-Za-z_][A-Za-z0-9_$]*)\s*:`)

// undefinedToken matches the bare literal "undefined".
var undefinedToken = regexp.MustCompile(`\bundefined\b`)

// Invocation is the structural decomposition of one invocation string.
// RawArgs is the text between the outer parentheses, empty when no
// parenthesized suffix was present.
type Invocation struct {
	Name    string
	RawArgs string
}

// Parse splits an invocation string into a task name and raw argument text.
// It does not decode the arguments; use DecodeArgs for that.
func Parse(s string) (*Invocation, error) {
	m := shape.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrFormat, s)
	}

	return &Invocation{Name: m[1], RawArgs: m[2]}, nil
}

// DecodeArgs interprets raw argument text as a comma-separated sequence of
// literal values and returns them as dynamically typed Go values: string,
// float64, bool, nil, []any, and map[string]any.
//
// The text is normalized before decoding:
//  1. single quotes become double quotes, so 'text' and "text" are
//     equivalent string delimiters;
//  2. unquoted mapping keys ({retries: 3}) become quoted keys;
//  3. the bare token undefined becomes null.
//
// The normalized text is wrapped in an enclosing JSON array and decoded.
// Empty or whitespace-only input yields a nil slice.
func DecodeArgs(raw string) ([]any, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}

	var args []any
	if err := json.Unmarshal([]byte("["+Normalize(raw)+"]"), &args); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrDecode, raw)
	}

	return args, nil
}

// Normalize rewrites casual argument text into strict JSON literal syntax.
// The quote and bare-key rewrites are textual, so a colon or brace inside a
// quoted string can be rewritten too; that ambiguity is the accepted cost
// of letting operators skip strict JSON quoting. The undefined rewrite is
// scoped: only bare tokens outside string literals become null, so the word
// "undefined" inside a quoted string decodes as ordinary text.
func Normalize(raw string) string {
	s := strings.ReplaceAll(raw, "'", `"`)
	s = bareKey.ReplaceAllString(s, `${1}"${2}":`)
	s = rewriteUndefined(s)

	return s
}

// rewriteUndefined replaces bare undefined tokens with null, copying
// double-quoted spans through untouched. Runs after the quote rewrite, so
// every string literal is double-quoted by the time it scans.
func rewriteUndefined(s string) string {
	var b strings.Builder
	seg := 0
	for i := 0; i < len(s); i++ {
		if s[i] != '"' {
			continue
		}
		b.WriteString(undefinedToken.ReplaceAllString(s[seg:i], "null"))

		j := i + 1
		for j < len(s) {
			if s[j] == '\\' {
				j += 2
				continue
			}
			if s[j] == '"' {
				j++
				break
			}
			j++
		}
		if j > len(s) {
			j = len(s)
		}
		b.WriteString(s[i:j])
		i = j - 1
		seg = j
	}
	b.WriteString(undefinedToken.ReplaceAllString(s[seg:], "null"))

	return b.String()
}
