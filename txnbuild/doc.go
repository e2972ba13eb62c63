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

// Package txnbuild assembles, signs and parses ledger transactions.
//
// A transaction is sealed by NewTransaction from a source Account, a base fee
// and an ordered list of operations. Sealing consumes the account's current
// sequence number; the advanced Account is available from the result, or an
// AccountCursor can be used to track it across builds.
//
// Sealed transactions never change. Sign, SignHashX, SignWithPayload and the
// AddSignature methods each return a new value with the signature appended.
// Every method that hashes takes a network.Selector, so the network is always
// chosen explicitly by the caller.
//
// FeeBumpTransaction wraps a signed transaction so that another account pays
// its fee, and SigningRequest carries either kind to an offline signer as a
// CBOR document.
package txnbuild
