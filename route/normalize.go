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
	"regexp"
	"strings"
)

var (
	trailingSlashes = regexp.MustCompile(`/+$`)
	repeatedSlashes = regexp.MustCompile(`/{2,}`)
)

// Normalize returns the canonical form of a path template: trailing
// separators removed, repeated separators collapsed and a leading separator
// forced. The root path stays "/".
//
//	Normalize("/a//b/") == "/a/b"
//	Normalize("b/c")    == "/b/c"
//	Normalize("/")      == "/"
func Normalize(path string) string {
	path = trailingSlashes.ReplaceAllString(path, "")
	path = repeatedSlashes.ReplaceAllString(path, "/")

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	return path
}
