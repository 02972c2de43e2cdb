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

package config

import (
	"time"

	"github.com/spf13/cast"
)

// String returns the value at key as a string, or "".
//
// Example:
//
//	level := cfg.String("logging.level")
func (c *Config) String(key string) string {
	return cast.ToString(c.Get(key))
}

// Int returns the value at key as an int, or 0.
func (c *Config) Int(key string) int {
	return cast.ToInt(c.Get(key))
}

// Float64 returns the value at key as a float64, or 0.
func (c *Config) Float64(key string) float64 {
	return cast.ToFloat64(c.Get(key))
}

// Bool returns the value at key as a bool, or false.
func (c *Config) Bool(key string) bool {
	return cast.ToBool(c.Get(key))
}

// Duration returns the value at key as a time.Duration, or 0.
//
// Example:
//
//	debounce := cfg.Duration("router.scroll_debounce")
func (c *Config) Duration(key string) time.Duration {
	return cast.ToDuration(c.Get(key))
}

// StringSlice returns the value at key as a []string.
func (c *Config) StringSlice(key string) []string {
	return cast.ToStringSlice(c.Get(key))
}

// StringMap returns the value at key as a map[string]any.
func (c *Config) StringMap(key string) map[string]any {
	return cast.ToStringMap(c.Get(key))
}

// StringOr returns the value at key as a string, or def when unset.
func (c *Config) StringOr(key, def string) string {
	if v := c.Get(key); v != nil {
		return cast.ToString(v)
	}

	return def
}

// IntOr returns the value at key as an int, or def when unset.
func (c *Config) IntOr(key string, def int) int {
	if v := c.Get(key); v != nil {
		return cast.ToInt(v)
	}

	return def
}

// BoolOr returns the value at key as a bool, or def when unset.
func (c *Config) BoolOr(key string, def bool) bool {
	if v := c.Get(key); v != nil {
		return cast.ToBool(v)
	}

	return def
}

// DurationOr returns the value at key as a time.Duration, or def when unset.
func (c *Config) DurationOr(key string, def time.Duration) time.Duration {
	if v := c.Get(key); v != nil {
		return cast.ToDuration(v)
	}

	return def
}
