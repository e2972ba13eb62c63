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
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/blinklabs-io/gostellar/network"
)

type globalFlags struct {
	flagset    *flag.FlagSet
	network    string
	passphrase string
	config     string
	debug      bool
}

func newGlobalFlags() *globalFlags {
	f := &globalFlags{
		flagset: flag.NewFlagSet(os.Args[0], flag.ExitOnError),
	}
	f.flagset.StringVar(
		&f.network,
		"network",
		"",
		"named network (public, testnet, futurenet, standalone or one from -config)",
	)
	f.flagset.StringVar(
		&f.passphrase,
		"passphrase",
		"",
		"network passphrase. this overrides the -network option",
	)
	f.flagset.StringVar(
		&f.config,
		"config",
		"",
		"path to a YAML file of named networks",
	)
	f.flagset.BoolVar(&f.debug, "debug", false, "enable debug logging")
	return f
}

func main() {
	f := newGlobalFlags()
	err := f.flagset.Parse(os.Args[1:])
	if err != nil {
		fmt.Printf("failed to parse command args: %s\n", err)
		os.Exit(1)
	}
	if f.debug {
		slog.SetDefault(
			slog.New(
				slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}),
			),
		)
	}

	if len(f.flagset.Args()) > 0 {
		switch f.flagset.Arg(0) {
		case "generate":
			cmdGenerate(f)
		case "inspect":
			cmdInspect(f)
		case "network-id":
			cmdNetworkId(f)
		case "derive":
			cmdDerive(f)
		default:
			fmt.Printf("Unknown subcommand: %s\n", f.flagset.Arg(0))
			os.Exit(1)
		}
	} else {
		fmt.Printf("You must specify a subcommand (generate, inspect, network-id or derive)\n")
		os.Exit(1)
	}
}

// networkContext builds a network context from the global flags. The
// returned context has nothing selected if no network was specified
func networkContext(f *globalFlags) (*network.Context, error) {
	ctx := network.NewContext()
	if f.config != "" {
		file, err := os.Open(f.config)
		if err != nil {
			return nil, err
		}
		defer file.Close()
		cfg, err := network.LoadConfig(file)
		if err != nil {
			return nil, err
		}
		if ctx, err = cfg.NewContext(nil); err != nil {
			return nil, err
		}
		if f.network != "" {
			n, err := cfg.Lookup(f.network)
			if err != nil {
				return nil, err
			}
			ctx.Use(n)
		}
	} else if f.network != "" {
		n := network.ByName(f.network)
		if n == network.NetworkInvalid {
			return nil, fmt.Errorf("invalid network specified: %s", f.network)
		}
		ctx.Use(n)
	}
	if f.passphrase != "" {
		ctx.Use(network.ByPassphrase(f.passphrase))
	}
	return ctx, nil
}

func parseSubcommand(f *globalFlags, flagset *flag.FlagSet) {
	if err := flagset.Parse(f.flagset.Args()[1:]); err != nil {
		fmt.Printf("failed to parse subcommand args: %s\n", err)
		os.Exit(1)
	}
}
