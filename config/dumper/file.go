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

package dumper

import (
	"context"
	"fmt"
	"os"

	"rivaas.dev/navigation/config/codec"
)

// DefaultFilePermissions is the mode of files written by [File].
const DefaultFilePermissions = 0o644

// File encodes configuration values and writes them to a path.
type File struct {
	path        string
	encoder     codec.Encoder
	permissions os.FileMode
}

// NewFile returns a dumper writing to path with DefaultFilePermissions.
func NewFile(path string, encoder codec.Encoder) *File {
	return NewFileWithPermissions(path, encoder, DefaultFilePermissions)
}

// NewFileWithPermissions returns a dumper writing to path with perm.
func NewFileWithPermissions(path string, encoder codec.Encoder, perm os.FileMode) *File {
	return &File{path: path, encoder: encoder, permissions: perm}
}

// Dump encodes values and writes them to the file.
func (f *File) Dump(_ context.Context, values *map[string]any) error {
	data, err := f.encoder.Encode(*values)
	if err != nil {
		return fmt.Errorf("failed to encode values: %w", err)
	}
	if err := os.WriteFile(f.path, data, f.permissions); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
