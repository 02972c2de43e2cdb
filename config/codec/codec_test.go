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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	t.Parallel()

	for _, typ := range []Type{TypeJSON, TypeYAML, TypeTOML, TypeMsgPack, TypeEnvVar} {
		_, err := GetDecoder(typ)
		require.NoError(t, err, typ)
		_, err = GetEncoder(typ)
		require.NoError(t, err, typ)
	}

	_, err := GetDecoder("ini")
	require.Error(t, err)
	_, err = GetEncoder("ini")
	require.Error(t, err)
}

func TestDecodeManifestShapes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		codec Decoder
		input string
	}{
		{
			name:  "json",
			codec: JSONCodec{},
			input: `{"router": {"scroll_debounce": "50ms"}, "routes": [{"path": "/a"}]}`,
		},
		{
			name:  "yaml",
			codec: YAMLCodec{},
			input: "router:\n  scroll_debounce: 50ms\nroutes:\n  - path: /a\n",
		},
		{
			name:  "toml",
			codec: TOMLCodec{},
			input: "[router]\nscroll_debounce = \"50ms\"\n\n[[routes]]\npath = \"/a\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var values map[string]any
			require.NoError(t, tt.codec.Decode([]byte(tt.input), &values))

			router, ok := values["router"].(map[string]any)
			require.True(t, ok)
			assert.Equal(t, "50ms", router["scroll_debounce"])
			assert.NotNil(t, values["routes"])
		})
	}
}

func TestEncodeRoundTripFormats(t *testing.T) {
	t.Parallel()

	values := map[string]any{"router": map[string]any{"base_url": "https://example.com/"}}
	for _, enc := range []Encoder{JSONCodec{}, YAMLCodec{}, TOMLCodec{}} {
		out, err := enc.Encode(values)
		require.NoError(t, err)
		assert.Contains(t, string(out), "https://example.com/")
	}
}

func TestMsgPackManifest(t *testing.T) {
	t.Parallel()

	type route struct {
		Path string `json:"path"`
	}
	data, err := MsgPackCodec{}.Encode(map[string]any{
		"routes": []route{{Path: "/a"}},
	})
	require.NoError(t, err)

	var values map[string]any
	require.NoError(t, MsgPackCodec{}.Decode(data, &values))
	assert.Equal(t, []any{map[string]any{"path": "/a"}}, values["routes"])
}

func TestEnvVarDecode(t *testing.T) {
	t.Parallel()

	input := "ROUTER__SCROLL_DEBOUNCE=200ms\nLOGGING__LEVEL= debug \nNOEQUALS\n__=x\nOBSERVABILITY__SAMPLE_RATE=0.5\n"

	var values map[string]any
	require.NoError(t, EnvVarCodec{}.Decode([]byte(input), &values))

	assert.Equal(t, map[string]any{
		"router":        map[string]any{"scroll_debounce": "200ms"},
		"logging":       map[string]any{"level": "debug"},
		"observability": map[string]any{"sample_rate": "0.5"},
	}, values)
}

func TestEnvVarDecodeConflictOverwrites(t *testing.T) {
	t.Parallel()

	var values map[string]any
	require.NoError(t, EnvVarCodec{}.Decode([]byte("A=1\nA__B=2\n"), &values))
	assert.Equal(t, map[string]any{"a": map[string]any{"b": "2"}}, values)
}

func TestEnvVarErrors(t *testing.T) {
	t.Parallel()

	_, err := EnvVarCodec{}.Encode(nil)
	require.ErrorIs(t, err, ErrEnvEncode)

	var wrong []string
	require.Error(t, EnvVarCodec{}.Decode(nil, &wrong))
}
