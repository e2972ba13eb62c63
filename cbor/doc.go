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

// Package cbor wraps github.com/fxamacker/cbor/v2 with the deterministic
// settings used for offline signing requests.
//
// Encoding always uses core deterministic map ordering, so equal values encode
// to equal bytes. Decoding rejects unknown struct fields and duplicate map keys,
// and limits nesting depth.
//
// Embed StructAsArray to encode a struct as a CBOR array of its fields:
//
//	type Request struct {
//	    cbor.StructAsArray
//	    Version uint
//	    Payload []byte
//	}
//
// Embed DecodeStoreCbor and call UnmarshalCborGeneric from UnmarshalCBOR when
// the original bytes must be kept alongside the decoded value.
package cbor
