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

package codec

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strings"
)

// TypeEnvVar identifies the environment-variable codec.
const TypeEnvVar Type = "env_var"

func init() {
	RegisterEncoder(TypeEnvVar, EnvVarCodec{})
	RegisterDecoder(TypeEnvVar, EnvVarCodec{})
}

// ErrEnvEncode is returned by EnvVarCodec.Encode.
var ErrEnvEncode = errors.New("encoding to environment variables is not supported")

// EnvVarCodec decodes KEY=value lines into a nested map. Keys are
// lower-cased and a double underscore separates nesting levels, so
// ROUTER__SCROLL_DEBOUNCE=200ms becomes router.scroll_debounce.
type EnvVarCodec struct{}

// Encode always fails; environment variables are read-only.
func (EnvVarCodec) Encode(any) ([]byte, error) {
	return nil, ErrEnvEncode
}

// Decode implements Decoder. v must be a *map[string]any.
func (EnvVarCodec) Decode(data []byte, v any) error {
	out, ok := v.(*map[string]any)
	if !ok {
		return fmt.Errorf("EnvVarCodec.Decode: expected *map[string]any, got %T", v)
	}

	conf := make(map[string]any)
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		key, value, found := strings.Cut(scanner.Text(), "=")
		if !found {
			continue
		}
		parts := splitEnvKey(key)
		if len(parts) == 0 {
			continue
		}

		current := conf
		for _, part := range parts[:len(parts)-1] {
			next, ok := current[part].(map[string]any)
			if !ok {
				next = make(map[string]any)
				current[part] = next
			}
			current = next
		}
		current[parts[len(parts)-1]] = strings.TrimSpace(value)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}

	*out = conf

	return nil
}

func splitEnvKey(key string) []string {
	raw := strings.Split(strings.ToLower(strings.TrimSpace(key)), "__")
	parts := make([]string, 0, len(raw))
	for _, p := range raw {
		if p = strings.Trim(p, "_"); p != "" {
			parts = append(parts, p)
		}
	}

	return parts
}
