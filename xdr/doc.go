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

// Package xdr implements the subset of the Stellar wire schema needed to build
// and sign transactions.
//
// # Codec layer
//
// Primitive encoding (RFC 4506 integers, padded opaques, strings) is delegated to
// github.com/davecgh/go-xdr/xdr2 through the Encoder and Decoder wrappers, which
// add the schema's length bounds. Every schema type implements Encodable and
// Decodable on its pointer receiver and writes its fields in declaration order.
//
// # Unions
//
// Unions are structs with a Type discriminant and one pointer field per arm.
// Encoding fails with ErrMissingUnionArm when the arm for Type is nil, and both
// directions fail with ErrInvalidUnion for unsupported discriminants.
//
// # Bounds
//
// Variable-length fields are checked against their schema maximum before any
// allocation on decode (ErrMaxLengthExceeded). Unmarshal additionally rejects
// input that is not fully consumed (ErrTrailingData).
package xdr
