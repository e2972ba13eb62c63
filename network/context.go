// Copyright 2026 Blink Labs Software
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

package network

import (
	"log/slog"
	"sync"
)

// Context holds a caller-chosen default network. Independent contexts can be used
// concurrently; a single context is safe for concurrent use
type Context struct {
	mu      sync.RWMutex
	network *Network
	logger  *slog.Logger
}

// ContextOptionFunc is a type that represents functions that modify the Context config
type ContextOptionFunc func(*Context)

// WithLogger specifies the logger to use. If none is provided, slog.Default() is used
func WithLogger(logger *slog.Logger) ContextOptionFunc {
	return func(c *Context) {
		c.logger = logger
	}
}

// WithNetwork selects an initial network
func WithNetwork(network Network) ContextOptionFunc {
	return func(c *Context) {
		c.network = &network
	}
}

// NewContext returns a Context with no network selected unless WithNetwork is given
func NewContext(opts ...ContextOptionFunc) *Context {
	c := &Context{}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// Use selects the network for subsequent signing operations that use this context
func (c *Context) Use(network Network) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.network = &network
	c.logger.Debug(
		"network selected",
		"component", "network",
		"network", network.String(),
		"network_id", networkIDValue(network),
	)
}

// networkIDValue defers hashing the passphrase until a record is emitted
type networkIDValue Network

func (n networkIDValue) LogValue() slog.Value {
	return slog.StringValue(Network(n).ID().String())
}

// Reset clears the selected network
func (c *Context) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.network = nil
	c.logger.Debug("network reset", "component", "network")
}

// Selected reports whether a network has been selected
func (c *Context) Selected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.network != nil
}

// Network returns the selected network or ErrNoNetworkSelected
func (c *Context) Network() (Network, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.network == nil {
		return Network{}, ErrNoNetworkSelected
	}
	return c.network.Network()
}
