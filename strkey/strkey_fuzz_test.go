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

package strkey

import "testing"

func FuzzDecodeAny(f *testing.F) {
	f.Add("GA3D5KRYM6CB7OWQ6TWYRR3Z4T7GNZLKERYNZGGA5SOAOPIFY6YQHES5")
	f.Add("MA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJUAAAAAAAAAAAACJUQ")
	f.Add("PA7QYNF7SOWQ3GLR2BGMZEHXAVIRZA4KVWLTJJFC7MGXUA74P7UJUAAAAAOQCAQDAQCQMBYIBEFAWDANBYHRAEISCMKBKFQXDAMRUGY4DUAAAAFGBU")
	f.Add("invalid")

	f.Fuzz(func(t *testing.T, src string) {
		version, payload, err := DecodeAny(src)
		if err != nil {
			return
		}
		// Anything that decodes must re-encode to the identical text
		encoded, err := Encode(version, payload)
		if err != nil {
			t.Fatalf("decoded strkey failed to re-encode: %s", err)
		}
		if encoded != src {
			t.Fatalf("round trip mismatch: %q != %q", encoded, src)
		}
	})
}
