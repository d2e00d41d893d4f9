// Copyright 2021 Andrew Werner.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package main

import (
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "SPLAYTRACE"

// config is the resolved set of options for a trace run. Values come from
// flags first and from SPLAYTRACE_* environment variables otherwise.
type config struct {
	Values  []int
	Size    int
	Shape   string
	Access  []int
	Dump    bool
	Verbose bool
}

func newRootCommand() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "splaytrace",
		Short: "Replay lookups against a splay tree and show how it adapts",
		Long: `splaytrace builds a tree from --values (or 1..--size), then runs Find
for every key in --access and reports the root, size and depth after
each lookup.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			return run(cmd.OutOrStdout(), newLogger(cmd, cfg.Verbose), cfg)
		},
	}

	flags := cmd.Flags()
	flags.StringSlice("values", nil, "values to insert, comma separated")
	flags.Int("size", 7, "insert 1..size when --values is empty")
	flags.String("shape", shapeChain, "initial shape: chain or balanced")
	flags.StringSlice("access", nil, "keys to look up, in order")
	flags.Bool("dump", false, "print the tree after every lookup")
	flags.BoolP("verbose", "v", false, "log every lookup")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(flags); err != nil {
		panic(err)
	}
	return cmd
}

func loadConfig(v *viper.Viper) (config, error) {
	values, err := parseInts(v.GetStringSlice("values"))
	if err != nil {
		return config{}, err
	}
	access, err := parseInts(v.GetStringSlice("access"))
	if err != nil {
		return config{}, err
	}
	return config{
		Values:  values,
		Size:    v.GetInt("size"),
		Shape:   v.GetString("shape"),
		Access:  access,
		Dump:    v.GetBool("dump"),
		Verbose: v.GetBool("verbose"),
	}, nil
}

func newLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
