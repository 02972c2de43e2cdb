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
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/navigation/merge"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"/a//b/", "/a/b"},
		{"b/c", "/b/c"},
		{"/", "/"},
		{"", "/"},
		{"///", "/"},
		{"/users/:id/", "/users/:id"},
		{"//x///y//", "/x/y"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestCompileSources(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		path       string
		matches    merge.Mapping
		wantSource string
		wantParams []string
	}{
		{
			name:       "static",
			path:       "/about.html",
			wantSource: `/about\.html`,
			wantParams: []string{},
		},
		{
			name:       "required parameter",
			path:       "/user/:id",
			wantSource: `/user/([^/]+)`,
			wantParams: []string{"id"},
		},
		{
			name:       "trailing optional parameter",
			path:       "/post/:slug?",
			wantSource: `/post(?:/([^/]+))?`,
			wantParams: []string{"slug"},
		},
		{
			name:       "optional parameter followed by literal",
			path:       "/a/:b?/c",
			wantSource: `/a/([^/]+)?/c`,
			wantParams: []string{"b"},
		},
		{
			name:       "adjacent optional parameters",
			path:       "/:a?/:b?",
			wantSource: `(?:/([^/]+))?(?:/([^/]+))?`,
			wantParams: []string{"a", "b"},
		},
		{
			name:       "validator pattern",
			path:       "/item/:id",
			matches:    merge.Mapping{"id": merge.S(`\d+`)},
			wantSource: `/item/(\d+)`,
			wantParams: []string{"id"},
		},
		{
			name:       "validator groups demoted",
			path:       "/color/:c",
			matches:    merge.Mapping{"c": merge.S(`(red|green)`)},
			wantSource: `/color/((?:red|green))`,
			wantParams: []string{"c"},
		},
		{
			name:       "escaped colon",
			path:       `/time/\:now`,
			wantSource: `/time/:now`,
			wantParams: []string{},
		},
		{
			name:       "parameter without separator",
			path:       "/files/v:version",
			wantSource: `/files/v([^/]+)`,
			wantParams: []string{"version"},
		},
		{
			name:       "predicate validators are not embedded",
			path:       "/n/:n",
			matches:    merge.Mapping{"n": merge.S(Predicate(func(string) bool { return true }))},
			wantSource: `/n/([^/]+)`,
			wantParams: []string{"n"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := Compile(tt.path, tt.matches)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSource, p.Source)
			assert.Equal(t, tt.wantParams, p.Params)
			assert.Equal(t, p.Regexp().NumSubexp(), len(p.Params), "captures aligned with parameters")
		})
	}
}

func TestCompileInvalidValidator(t *testing.T) {
	t.Parallel()

	_, err := Compile("/x/:id", merge.Mapping{"id": merge.S(`(`)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPattern)
}

func TestDemoteGroups(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{`(a)`, `(?:a)`},
		{`(?:a)`, `(?:a)`},
		{`((a)(b))`, `(?:(?:a)(?:b))`},
		{`\(a\)`, `\(a\)`},
		{`\\(a)`, `\\(?:a)`},
		{`[(]`, `[(]`},
		{`[^]()]+(x)`, `[^]()]+(?:x)`},
		{`(?P<year>\d{4})`, `(?:\d{4})`},
		{`(?<m>\d{2})`, `(?:\d{2})`},
		{`(?i)abc`, `(?i)abc`},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, demoteGroups(tt.in))
		})
	}
}

func newDef(t *testing.T, template string, matches merge.Mapping) *Definition {
	t.Helper()
	d, err := NewDefinition(template, nil, matches, nil)
	require.NoError(t, err)
	return d
}

func TestDefinitionMatch(t *testing.T) {
	t.Parallel()

	user := newDef(t, "/user/:id", nil)

	params, ok := user.Match("/user/42")
	require.True(t, ok)
	assert.Equal(t, "42", params.Get("id"))

	_, ok = user.Match("/user/42/")
	assert.True(t, ok, "trailing separators are tolerated")

	_, ok = user.Match("/USER/42")
	assert.True(t, ok, "matching ignores case")

	for _, miss := range []string{"/user/", "/user", "/user/42/extra"} {
		_, ok = user.Match(miss)
		assert.False(t, ok, miss)
	}
}

func TestDefinitionOptionalParameter(t *testing.T) {
	t.Parallel()

	post := newDef(t, "/post/:slug?", nil)

	params, ok := post.Match("/post")
	require.True(t, ok)
	assert.True(t, params.Has("slug"))
	_, matched := params.Lookup("slug")
	assert.False(t, matched)
	assert.Nil(t, params["slug"])

	params, ok = post.Match("/post/hello")
	require.True(t, ok)
	assert.Equal(t, "hello", params.Get("slug"))
}

func TestDefinitionPredicateValidator(t *testing.T) {
	t.Parallel()

	below100 := func(v string) bool {
		n, err := strconv.Atoi(v)
		return err == nil && n < 100
	}
	item := newDef(t, "/item/:id", merge.Mapping{"id": merge.S(below100)})

	_, ok := item.Match("/item/42")
	assert.True(t, ok)

	_, ok = item.Match("/item/999")
	assert.False(t, ok)
}

func TestDefinitionPredicateSeesUnmatchedOptional(t *testing.T) {
	t.Parallel()

	var seen []string
	d := newDef(t, "/p/:a?", merge.Mapping{"a": merge.S(Predicate(func(v string) bool {
		seen = append(seen, v)
		return true
	}))})

	_, ok := d.Match("/p")
	require.True(t, ok)
	assert.Equal(t, []string{""}, seen)
}

func TestDefinitionClone(t *testing.T) {
	t.Parallel()

	d, err := NewDefinition("/a", Handlers{}, nil, merge.FromMap(map[string]any{"title": "A"}))
	require.NoError(t, err)
	d.Handlers.Set(EventEnter, func(*Args, *Args, ScrollFunc) {}, 10)

	c := d.Clone()
	c.Meta["title"] = merge.S("changed")
	c.Handlers.Set(EventEnter, func(*Args, *Args, ScrollFunc) {}, 5)

	assert.Equal(t, "A", d.Meta.Plain()["title"])
	assert.Len(t, d.Handlers.List(EventEnter), 1)
	assert.Len(t, c.Handlers.List(EventEnter), 2)
	assert.Equal(t, d.Path, c.Path)
}

func TestParamsClone(t *testing.T) {
	t.Parallel()

	v := "1"
	p := Params{"a": &v, "b": nil}
	c := p.Clone()
	*c["a"] = "2"

	assert.Equal(t, "1", p.Get("a"))
	assert.Equal(t, map[string]any{"a": "1", "b": nil}, p.Plain())
	assert.Nil(t, Params(nil).Clone())
}

func TestConstraintPatterns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		pattern string
		ok      []string
		bad     []string
	}{
		{PatternInt, []string{"0", "42"}, []string{"4a", "-1"}},
		{PatternUUID, []string{"123e4567-e89b-12d3-a456-426614174000"}, []string{"123"}},
		{PatternDate, []string{"2025-01-31"}, []string{"2025-1-31"}},
		{PatternSlug, []string{"hello-world"}, []string{"hello--world"}},
		{Enum("draft", "pub.lished"), []string{"draft", "pub.lished"}, []string{"pubxlished", "other"}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			t.Parallel()

			d := newDef(t, "/x/:v", merge.Mapping{"v": merge.S(tt.pattern)})
			for _, v := range tt.ok {
				_, ok := d.Match("/x/" + v)
				assert.True(t, ok, v)
			}
			for _, v := range tt.bad {
				_, ok := d.Match("/x/" + v)
				assert.False(t, ok, v)
			}
		})
	}
}
