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
	"fmt"
	"sync"
)

// Type identifies a codec.
type Type string

// Encoder converts Go values into encoded bytes.
// Implementations must be safe for concurrent use.
type Encoder interface {
	Encode(v any) ([]byte, error)
}

// Decoder converts encoded bytes into the value pointed to by v.
// Implementations must be safe for concurrent use.
type Decoder interface {
	Decode(data []byte, v any) error
}

var (
	mu       sync.RWMutex
	encoders = make(map[Type]Encoder)
	decoders = make(map[Type]Decoder)
)

// RegisterEncoder registers enc under name, replacing any previous one.
func RegisterEncoder(name Type, enc Encoder) {
	mu.Lock()
	defer mu.Unlock()
	encoders[name] = enc
}

// RegisterDecoder registers dec under name, replacing any previous one.
func RegisterDecoder(name Type, dec Decoder) {
	mu.Lock()
	defer mu.Unlock()
	decoders[name] = dec
}

// GetEncoder returns the encoder registered under name.
func GetEncoder(name Type) (Encoder, error) {
	mu.RLock()
	defer mu.RUnlock()
	enc, ok := encoders[name]
	if !ok {
		return nil, fmt.Errorf("encoder not found for type: %s", name)
	}

	return enc, nil
}

// GetDecoder returns the decoder registered under name.
func GetDecoder(name Type) (Decoder, error) {
	mu.RLock()
	defer mu.RUnlock()
	dec, ok := decoders[name]
	if !ok {
		return nil, fmt.Errorf("decoder not found for type: %s", name)
	}

	return dec, nil
}
