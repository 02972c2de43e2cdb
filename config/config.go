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
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"dario.cat/mergo"
	"github.com/go-viper/mapstructure/v2"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"rivaas.dev/navigation/config/codec"
	"rivaas.dev/navigation/config/dumper"
	"rivaas.dev/navigation/config/source"
)

// Option configures a Config.
type Option func(c *Config) error

// Config holds configuration merged from several sources.
//
// Config is safe for concurrent use by multiple goroutines.
type Config struct {
	mu               sync.RWMutex
	values           map[string]any
	sources          []Source
	dumpers          []Dumper
	binding          any
	tagName          string
	preserveCase     bool
	schema           *jsonschema.Schema
	customValidators []func(map[string]any) error
}

// WithSource appends a source.
func WithSource(src Source) Option {
	return func(c *Config) error {
		if src == nil {
			return errors.New("source cannot be nil")
		}
		c.sources = append(c.sources, src)
		return nil
	}
}

// WithFile appends a file source. The format is detected from the extension
// (.yaml, .yml, .json, .toml) and ${VAR} references in path are expanded.
func WithFile(path string) Option {
	return func(c *Config) error {
		path = os.ExpandEnv(path)
		format, err := detectFormat(path)
		if err != nil {
			return NewError("file-source", "detect-format", err)
		}

		return WithFileAs(path, format)(c)
	}
}

// WithFileAs appends a file source decoded with codecType.
func WithFileAs(path string, codecType codec.Type) Option {
	return func(c *Config) error {
		decoder, err := codec.GetDecoder(codecType)
		if err != nil {
			return NewError("file-source", "get-decoder", err)
		}
		c.sources = append(c.sources, source.NewFile(os.ExpandEnv(path), decoder))
		return nil
	}
}

// WithContent appends a source decoding data with codecType.
//
// Example:
//
//	cfg := config.MustNew(config.WithContent([]byte("logging:\n  level: debug"), codec.TypeYAML))
func WithContent(data []byte, codecType codec.Type) Option {
	return func(c *Config) error {
		decoder, err := codec.GetDecoder(codecType)
		if err != nil {
			return NewError("content-source", "get-decoder", err)
		}
		c.sources = append(c.sources, source.NewFileContent(data, decoder))
		return nil
	}
}

// WithEnv appends a source for environment variables starting with prefix.
// A double underscore separates nesting levels:
//
//	NAV_LOGGING__LEVEL=debug        -> logging.level
//	NAV_ROUTER__SCROLL_DEBOUNCE=1s  -> router.scroll_debounce
func WithEnv(prefix string) Option {
	return func(c *Config) error {
		c.sources = append(c.sources, source.NewOSEnvVar(prefix))
		return nil
	}
}

// WithConsul appends a Consul KV source. The format is detected from the
// key's extension. The option is skipped when CONSUL_HTTP_ADDR is unset so
// development setups work without Consul.
func WithConsul(path string) Option {
	return func(c *Config) error {
		path = os.ExpandEnv(path)
		format, err := detectFormat(path)
		if err != nil {
			return NewError("consul-source", "detect-format", err)
		}

		return WithConsulAs(path, format)(c)
	}
}

// WithConsulAs is WithConsul with an explicit format.
func WithConsulAs(path string, codecType codec.Type) Option {
	return func(c *Config) error {
		if os.Getenv("CONSUL_HTTP_ADDR") == "" {
			return nil
		}

		decoder, err := codec.GetDecoder(codecType)
		if err != nil {
			return NewError("consul-source", "get-decoder", err)
		}
		src, err := source.NewConsul(os.ExpandEnv(path), decoder, nil)
		if err != nil {
			return NewError("consul-source", "create-client", err)
		}
		c.sources = append(c.sources, src)
		return nil
	}
}

// WithDumper appends a dumper used by Dump.
func WithDumper(d Dumper) Option {
	return func(c *Config) error {
		if d == nil {
			return errors.New("dumper cannot be nil")
		}
		c.dumpers = append(c.dumpers, d)
		return nil
	}
}

// WithFileDumper appends a file dumper; the format is detected from the extension.
func WithFileDumper(path string) Option {
	return func(c *Config) error {
		path = os.ExpandEnv(path)
		format, err := detectFormat(path)
		if err != nil {
			return NewError("file-dumper", "detect-format", err)
		}

		return WithFileDumperAs(path, format)(c)
	}
}

// WithFileDumperAs appends a file dumper encoding with codecType.
func WithFileDumperAs(path string, codecType codec.Type) Option {
	return func(c *Config) error {
		encoder, err := codec.GetEncoder(codecType)
		if err != nil {
			return NewError("file-dumper", "get-encoder", err)
		}
		c.dumpers = append(c.dumpers, dumper.NewFile(os.ExpandEnv(path), encoder))
		return nil
	}
}

// WithBinding binds loaded values to the struct pointed to by v.
func WithBinding(v any) Option {
	return func(c *Config) error {
		if v == nil {
			return errors.New("binding target cannot be nil")
		}
		if reflect.TypeOf(v).Kind() != reflect.Ptr {
			return errors.New("binding target must be a pointer")
		}
		c.binding = v
		return nil
	}
}

// WithTag sets the struct tag used for binding (default "config").
func WithTag(tagName string) Option {
	return func(c *Config) error {
		if tagName == "" {
			return errors.New("tag name cannot be empty")
		}
		c.tagName = tagName
		return nil
	}
}

// WithPreserveCase keeps key case instead of lower-casing every key.
// Lookups become case-sensitive.
func WithPreserveCase() Option {
	return func(c *Config) error {
		c.preserveCase = true
		return nil
	}
}

var schemaSeq atomic.Uint64

// WithJSONSchema validates merged values against schema on every Load.
func WithJSONSchema(schema []byte) Option {
	return func(c *Config) error {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(schema))
		if err != nil {
			return NewError("json-schema", "parse", err)
		}

		name := fmt.Sprintf("inline_%d.json", schemaSeq.Add(1))
		compiler := jsonschema.NewCompiler()
		if err = compiler.AddResource(name, doc); err != nil {
			return NewError("json-schema", "compile", err)
		}
		compiled, err := compiler.Compile(name)
		if err != nil {
			return NewError("json-schema", "compile", err)
		}
		c.schema = compiled
		return nil
	}
}

// WithValidator adds a validation function run on merged values.
func WithValidator(fn func(map[string]any) error) Option {
	return func(c *Config) error {
		if fn != nil {
			c.customValidators = append(c.customValidators, fn)
		}
		return nil
	}
}

// New creates a Config. Option errors are joined; the partially
// configured Config is returned alongside them.
func New(options ...Option) (*Config, error) {
	c := &Config{
		values:  map[string]any{},
		tagName: "config",
	}

	var errs []error
	for _, opt := range options {
		if opt == nil {
			continue
		}
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}

	return c, errors.Join(errs...)
}

// MustNew is like New but panics on error.
func MustNew(options ...Option) *Config {
	c, err := New(options...)
	if err != nil {
		panic(fmt.Sprintf("config: failed to create config: %v", err))
	}

	return c
}

func (c *Config) loadSources(ctx context.Context) (map[string]any, error) {
	merged := make(map[string]any)
	for i, src := range c.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		conf, err := src.Load(ctx)
		if err != nil {
			return nil, NewError(fmt.Sprintf("source[%d]", i), "load", err)
		}
		if conf == nil {
			continue
		}

		normalized := normalizeMap(conf, !c.preserveCase)
		if err = mergo.Map(&merged, normalized, mergo.WithOverride); err != nil {
			return nil, NewError(fmt.Sprintf("source[%d]", i), "merge", err)
		}
	}

	return merged, nil
}

// Load reads every source, validates the merged values and binds them.
// The previous values stay in place when any step fails.
func (c *Config) Load(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}

	values, err := c.loadSources(ctx)
	if err != nil {
		return err
	}

	if c.schema != nil {
		if err = c.schema.Validate(values); err != nil {
			return NewError("json-schema", "validate", err)
		}
	}

	for i, fn := range c.customValidators {
		if err = runValidator(fn, values); err != nil {
			return NewError(fmt.Sprintf("custom-validator[%d]", i), "validate", err)
		}
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.binding != nil {
		if err = c.bind(values); err != nil {
			return err
		}
	}
	c.values = values

	return nil
}

func runValidator(fn func(map[string]any) error, values map[string]any) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("validator panic: %v", r)
		}
	}()

	return fn(values)
}

// MustLoad is like Load but panics on error.
func (c *Config) MustLoad(ctx context.Context) {
	if err := c.Load(ctx); err != nil {
		panic(err)
	}
}

// bind decodes values into a fresh copy of the binding, validates it and
// only then copies it into the caller's struct.
func (c *Config) bind(values map[string]any) error {
	target := reflect.New(reflect.TypeOf(c.binding).Elem())

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          c.tagName,
		Squash:           true,
		WeaklyTypedInput: true,
		Result:           target.Interface(),
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
			mapstructure.StringToTimeHookFunc(time.RFC3339),
			mapstructure.StringToURLHookFunc(),
		),
	})
	if err != nil {
		return NewError("binding", "bind", fmt.Errorf("failed to create decoder: %w", err))
	}
	if err = decoder.Decode(values); err != nil {
		return NewError("binding", "bind", fmt.Errorf("failed to decode configuration: %w", err))
	}
	if err = applyDefaults(target.Interface()); err != nil {
		return NewError("binding", "defaults", err)
	}
	if v, ok := target.Interface().(Validator); ok {
		if err = v.Validate(); err != nil {
			return NewError("binding", "validate", err)
		}
	}

	reflect.ValueOf(c.binding).Elem().Set(target.Elem())

	return nil
}

// Dump writes the current values to every dumper.
func (c *Config) Dump(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}

	values := c.Values()
	for _, d := range c.dumpers {
		if err := d.Dump(ctx, &values); err != nil {
			return err
		}
	}

	return nil
}

// Values returns a shallow copy of the loaded values.
func (c *Config) Values() map[string]any {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make(map[string]any, len(c.values))
	for k, v := range c.values {
		out[k] = v
	}

	return out
}

// lookup resolves a dot-separated path. A key containing dots that
// exists verbatim at the top level wins.
func (c *Config) lookup(path string) any {
	if c == nil || path == "" {
		return nil
	}
	if !c.preserveCase {
		path = strings.ToLower(path)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if v, ok := c.values[path]; ok {
		return v
	}

	current := c.values
	segments := strings.Split(path, ".")
	for i, seg := range segments {
		v, ok := current[seg]
		if !ok {
			return nil
		}
		if i == len(segments)-1 {
			return v
		}
		if current, ok = v.(map[string]any); !ok {
			return nil
		}
	}

	return nil
}

// Get returns the raw value at key, or nil.
func (c *Config) Get(key string) any {
	return c.lookup(key)
}
