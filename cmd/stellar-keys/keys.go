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

package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/blinklabs-io/gostellar/keypair"
	"github.com/blinklabs-io/gostellar/strkey"
)

func printKeypair(kp *keypair.Keypair) {
	fmt.Printf("Address: %s\n", kp.Address())
	if seed, err := kp.Seed(); err == nil {
		fmt.Printf("Secret:  %s\n", seed)
	}
}

func cmdGenerate(f *globalFlags) {
	flagset := flag.NewFlagSet("generate", flag.ExitOnError)
	master := flagset.Bool("master", false, "print the network master key instead of a random key")
	parseSubcommand(f, flagset)
	var kp *keypair.Keypair
	var err error
	if *master {
		ctx, ctxErr := networkContext(f)
		if ctxErr != nil {
			fmt.Printf("ERROR: %s\n", ctxErr)
			os.Exit(1)
		}
		kp, err = keypair.Master(ctx)
	} else {
		kp, err = keypair.Random()
	}
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	printKeypair(kp)
}

func cmdInspect(f *globalFlags) {
	flagset := flag.NewFlagSet("inspect", flag.ExitOnError)
	parseSubcommand(f, flagset)
	if len(flagset.Args()) < 1 {
		fmt.Printf("ERROR: you must specify a strkey\n")
		os.Exit(1)
	}
	src := flagset.Arg(0)
	version, payload, err := strkey.DecodeAny(src)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("Type:    %s\n", version)
	switch version {
	case strkey.VersionByteMuxedAccount:
		key, id, err := strkey.DecodeMuxed(src)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("Account: %s\n", strkey.MustEncode(strkey.VersionByteAccountID, key))
		fmt.Printf("ID:      %d\n", id)
	case strkey.VersionByteSignedPayload:
		sp, err := strkey.DecodeSignedPayload(src)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("Signer:  %s\n", strkey.MustEncode(strkey.VersionByteAccountID, sp.Signer))
		fmt.Printf("Payload: %s\n", hex.EncodeToString(sp.Payload))
	case strkey.VersionByteSeed:
		kp, err := keypair.FromSecret(src)
		if err != nil {
			fmt.Printf("ERROR: %s\n", err)
			os.Exit(1)
		}
		fmt.Printf("Address: %s\n", kp.Address())
	default:
		fmt.Printf("Payload: %s\n", hex.EncodeToString(payload))
	}
}

func cmdNetworkId(f *globalFlags) {
	flagset := flag.NewFlagSet("network-id", flag.ExitOnError)
	parseSubcommand(f, flagset)
	ctx, err := networkContext(f)
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	n, err := ctx.Network()
	if err != nil {
		fmt.Printf("ERROR: %s (use -network or -passphrase)\n", err)
		os.Exit(1)
	}
	fmt.Printf("Network:    %s\n", n)
	fmt.Printf("Passphrase: %s\n", n.Passphrase)
	fmt.Printf("ID:         %s\n", n.ID())
}

func cmdDerive(f *globalFlags) {
	flagset := flag.NewFlagSet("derive", flag.ExitOnError)
	mnemonic := flagset.String("mnemonic", "", "BIP-39 mnemonic phrase")
	mnemonicPassphrase := flagset.String("mnemonic-passphrase", "", "optional BIP-39 passphrase")
	parseSubcommand(f, flagset)
	if *mnemonic == "" {
		fmt.Printf("ERROR: you must specify -mnemonic\n")
		os.Exit(1)
	}
	var index uint64
	if len(flagset.Args()) > 0 {
		var err error
		index, err = strconv.ParseUint(flagset.Arg(0), 10, 32)
		if err != nil {
			fmt.Printf("ERROR: invalid index: %s\n", flagset.Arg(0))
			os.Exit(1)
		}
	}
	// #nosec G115
	kp, err := keypair.FromMnemonic(*mnemonic, *mnemonicPassphrase, uint32(index))
	if err != nil {
		fmt.Printf("ERROR: %s\n", err)
		os.Exit(1)
	}
	fmt.Printf("Path:    m/44'/148'/%d'\n", index)
	printKeypair(kp)
}
