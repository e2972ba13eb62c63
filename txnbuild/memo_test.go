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

package txnbuild_test

import (
	"strings"
	"testing"

	"github.com/blinklabs-io/gostellar/txnbuild"
	"github.com/blinklabs-io/gostellar/xdr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoTextLength(t *testing.T) {
	_, err := txnbuild.NewMemoText(strings.Repeat("a", 28))
	require.NoError(t, err)
	_, err = txnbuild.NewMemoText(strings.Repeat("a", 29))
	assert.ErrorIs(t, err, txnbuild.ErrInvalidMemo)
	// Length is counted in bytes, not characters
	_, err = txnbuild.NewMemoText(strings.Repeat("é", 15))
	assert.ErrorIs(t, err, txnbuild.ErrInvalidMemo)
}

func TestMemoID(t *testing.T) {
	m, err := txnbuild.NewMemoID("18446744073709551615")
	require.NoError(t, err)
	assert.Equal(t, "18446744073709551615", m.String())
	for _, bad := range []string{"", "-1", "18446744073709551616", "1e3"} {
		_, err := txnbuild.NewMemoID(bad)
		assert.ErrorIs(t, err, txnbuild.ErrInvalidMemo, "id %q", bad)
	}
}

func TestMemoRoundTrip(t *testing.T) {
	var hash [32]byte
	hash[0] = 0xab
	tests := []struct {
		memo     txnbuild.Memo
		memoType xdr.MemoType
	}{
		{nil, xdr.MemoTypeNone},
		{txnbuild.MemoText("hello"), xdr.MemoTypeText},
		{txnbuild.MemoID(42), xdr.MemoTypeId},
		{txnbuild.MemoHash(hash), xdr.MemoTypeHash},
		{txnbuild.MemoReturn(hash), xdr.MemoTypeReturn},
	}
	for _, tc := range tests {
		params := paymentParams(5)
		params.Memo = tc.memo
		tx, err := txnbuild.NewTransaction(params)
		require.NoError(t, err)
		env, err := tx.ToXDR()
		require.NoError(t, err)
		assert.Equal(t, tc.memoType, env.V1.Tx.Memo.Type)
		b64, err := tx.Base64()
		require.NoError(t, err)
		generic, err := txnbuild.TransactionFromXDR(b64)
		require.NoError(t, err)
		decoded, ok := generic.Transaction()
		require.True(t, ok)
		assert.Equal(t, tc.memo, decoded.Memo())
	}
}
