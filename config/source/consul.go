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

package source

import (
	"context"
	"fmt"

	"github.com/hashicorp/consul/api"

	"rivaas.dev/navigation/config/codec"
)

// ConsulKV is the subset of the Consul KV API used by [Consul].
type ConsulKV interface {
	Get(key string, q *api.QueryOptions) (*api.KVPair, *api.QueryMeta, error)
}

// Consul loads a configuration document stored under a Consul key.
//
// The client is configured from the standard environment:
//   - CONSUL_HTTP_ADDR: server address (e.g., "http://localhost:8500")
//   - CONSUL_HTTP_TOKEN: ACL token (optional)
type Consul struct {
	kv        ConsulKV
	path      string
	decoder   codec.Decoder
	lastIndex uint64
}

// NewConsul returns a source reading path. A nil kv uses a client built
// from api.DefaultConfig.
func NewConsul(path string, decoder codec.Decoder, kv ConsulKV) (*Consul, error) {
	if kv == nil {
		client, err := api.NewClient(api.DefaultConfig())
		if err != nil {
			return nil, fmt.Errorf("failed to create consul client: %w", err)
		}
		kv = client.KV()
	}

	return &Consul{kv: kv, path: path, decoder: decoder}, nil
}

// Load implements config.Source. A missing key yields an empty map.
func (c *Consul) Load(ctx context.Context) (map[string]any, error) {
	pair, meta, err := c.kv.Get(c.path, (&api.QueryOptions{}).WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to get consul key: %w", err)
	}
	if pair == nil {
		return make(map[string]any), nil
	}
	if meta != nil {
		c.lastIndex = meta.LastIndex
	}

	var conf map[string]any
	if err := c.decoder.Decode(pair.Value, &conf); err != nil {
		return nil, fmt.Errorf("failed to decode consul value: %w", err)
	}

	return conf, nil
}

// LastIndex returns the Consul index observed by the last successful Load.
func (c *Consul) LastIndex() uint64 {
	return c.lastIndex
}

// String describes the source for error messages.
func (c *Consul) String() string {
	return "consul:" + c.path
}
