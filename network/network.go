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

// Package network identifies the ledger network a transaction is signed for.
//
// A network is identified by its passphrase; the SHA-256 hash of the passphrase
// (the network ID) prefixes every signature base so a signature for one network
// can never be replayed on another
package network

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
)

const (
	PublicNetworkPassphrase     = "Public Global Stellar Network ; September 2015"
	TestNetworkPassphrase       = "Test SDF Network ; September 2015"
	FutureNetworkPassphrase     = "Test SDF Future Network ; October 2022"
	StandaloneNetworkPassphrase = "Standalone Network ; February 2017"
)

var ErrNoNetworkSelected = errors.New("no network selected")

// ID is the 32-byte network identity hash
type ID [sha256.Size]byte

func (i ID) String() string {
	return hex.EncodeToString(i[:])
}

func (i ID) Bytes() []byte {
	return i[:]
}

// Network is a named network passphrase
type Network struct {
	Name       string
	Passphrase string
}

// Network definitions
var (
	Public = Network{
		Name:       "public",
		Passphrase: PublicNetworkPassphrase,
	}
	Testnet = Network{
		Name:       "testnet",
		Passphrase: TestNetworkPassphrase,
	}
	Futurenet = Network{
		Name:       "futurenet",
		Passphrase: FutureNetworkPassphrase,
	}
	Standalone = Network{
		Name:       "standalone",
		Passphrase: StandaloneNetworkPassphrase,
	}

	NetworkInvalid = Network{
		Name: "invalid",
	} // NetworkInvalid is used as a return value for lookup functions when a network isn't found
)

// List of valid networks for use in lookup functions
var networks = []Network{
	Public,
	Testnet,
	Futurenet,
	Standalone,
}

// ByName returns a predefined network by name
func ByName(name string) Network {
	for _, network := range networks {
		if network.Name == name {
			return network
		}
	}
	return NetworkInvalid
}

// ByPassphrase returns the predefined network with the given passphrase, or an
// unnamed network if it isn't one of the presets
func ByPassphrase(passphrase string) Network {
	for _, network := range networks {
		if network.Passphrase == passphrase {
			return network
		}
	}
	return Network{Passphrase: passphrase}
}

// Selector is implemented by anything that can supply the network for a signing
// operation: a Network value or a *Context
type Selector interface {
	Network() (Network, error)
}

// Network returns n itself, failing if no passphrase is set. This lets a Network
// be passed anywhere a Selector is expected
func (n Network) Network() (Network, error) {
	if n.Passphrase == "" {
		return Network{}, ErrNoNetworkSelected
	}
	return n, nil
}

// ID returns SHA-256(passphrase)
func (n Network) ID() ID {
	return ID(sha256.Sum256([]byte(n.Passphrase)))
}

func (n Network) String() string {
	if n.Name != "" {
		return n.Name
	}
	return n.Passphrase
}

// Resolve returns the network chosen by sel along with its identity hash
func Resolve(sel Selector) (Network, ID, error) {
	if sel == nil {
		return Network{}, ID{}, ErrNoNetworkSelected
	}
	n, err := sel.Network()
	if err != nil {
		return Network{}, ID{}, err
	}
	return n, n.ID(), nil
}
