// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package route

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"rivaas.dev/navigation/merge"
)

// ErrInvalidPattern is returned by [Compile] when the assembled pattern is
// not a valid regular expression, usually because of a validator pattern.
var ErrInvalidPattern = errors.New("invalid route pattern")

const defaultParamPattern = `[^/]+`

var (
	// tokenRE splits a template into literals and parameter tokens. An
	// escaped token (\:name) is split out too and then treated as a literal.
	tokenRE = regexp.MustCompile(`/?\\?:\w+\??`)
	paramRE = regexp.MustCompile(`^(/)?:(\w+)(\?)?$`)
)

// Pattern is a compiled path template.
type Pattern struct {
	// Source is the unanchored pattern text.
	Source string
	// Params lists parameter names in capture-group order.
	Params []string

	re *regexp.Regexp
}

// Regexp returns the anchored, case-insensitive expression used for matching.
func (p *Pattern) Regexp() *regexp.Regexp {
	return p.re
}

// Exec matches path and returns one capture per parameter.
func (p *Pattern) Exec(path string) ([]string, bool) {
	m := p.re.FindStringSubmatch(path)
	if m == nil {
		return nil, false
	}
	return m[1:], true
}

// Compile turns a normalized template into a [Pattern], embedding the
// string validators found in matches.
//
// A prefixed optional parameter that is directly followed by another token
// or by the end of the template swallows its separator when absent, so
// "/post/:slug?" matches "/post". The final expression tolerates trailing
// separators and ignores case.
func Compile(path string, matches merge.Mapping) (*Pattern, error) {
	segments := splitTemplate(path)

	var sb strings.Builder
	sb.Grow(len(path) * 2)
	params := make([]string, 0, len(segments)/2)

	for i, segment := range segments {
		m := paramRE.FindStringSubmatch(segment)
		if m == nil {
			sb.WriteString(escapeLiteral(segment))
			continue
		}

		prefix, name, optional := m[1], m[2], m[3]

		inner := defaultParamPattern
		if pattern, ok := PatternFor(matches, name); ok {
			inner = demoteGroups(pattern)
		}

		group := prefix + "(" + inner + ")"
		if prefix != "" && optional != "" && i+1 < len(segments) && segments[i+1] == "" {
			group = "(?:" + group + ")"
		}

		sb.WriteString(group)
		sb.WriteString(optional)
		params = append(params, name)
	}

	source := sb.String()
	re, err := regexp.Compile("(?i)^" + source + "/*$")
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidPattern, path, err)
	}

	return &Pattern{Source: source, Params: params, re: re}, nil
}

// splitTemplate splits path around parameter tokens. The result alternates
// literal, token, literal, ... and always starts and ends with a literal,
// which may be empty.
func splitTemplate(path string) []string {
	locs := tokenRE.FindAllStringIndex(path, -1)
	segments := make([]string, 0, len(locs)*2+1)

	last := 0
	for _, loc := range locs {
		segments = append(segments, path[last:loc[0]], path[loc[0]:loc[1]])
		last = loc[1]
	}

	return append(segments, path[last:])
}

// escapeLiteral quotes a literal segment. An escaped colon is unescaped
// first so it matches a literal colon.
func escapeLiteral(segment string) string {
	return regexp.QuoteMeta(strings.ReplaceAll(segment, `\:`, ":"))
}

// demoteGroups rewrites every capturing group in pattern as a
// non-capturing one. Escaped parentheses and parentheses inside character
// classes are left alone; named groups lose their name.
func demoteGroups(pattern string) string {
	var sb strings.Builder
	sb.Grow(len(pattern) + 8)

	escaped := false
	inClass := false

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]

		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case inClass:
			if c == ']' {
				inClass = false
			}
		case c == '[':
			inClass = true
			// a leading ']' (or '^]') is a literal member of the class
			if j := i + 1; j < len(pattern) && pattern[j] == '^' {
				sb.WriteByte(c)
				i++
				c = pattern[i]
			}
			if j := i + 1; j < len(pattern) && pattern[j] == ']' {
				sb.WriteByte(c)
				i++
				c = pattern[i]
			}
		case c == '(':
			rest := pattern[i+1:]
			switch {
			case strings.HasPrefix(rest, "?P<"), strings.HasPrefix(rest, "?<"):
				if end := strings.IndexByte(rest, '>'); end >= 0 {
					sb.WriteString("(?:")
					i += end + 1
					continue
				}
			case strings.HasPrefix(rest, "?"):
				// already non-capturing, or a flag group
			default:
				sb.WriteString("(?:")
				continue
			}
		}

		sb.WriteByte(c)
	}

	return sb.String()
}
