// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package command implements the charconv command line.
package command

import (
	"flag"
	"io"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/luxfi/charset"
	"github.com/luxfi/charset/codepage"
)

const (
	encodingKey = "encoding"
	listenKey   = "listen"
)

var (
	configFile string
	config     = viper.New()

	Root = &cobra.Command{
		Use:   "charconv",
		Short: "charconv converts text between legacy 8-bit character sets and UTF-8.",
		Long: "`charconv` decodes bytes written in legacy 8-bit character sets (ATASCII, Apple IIe, GEM, Mac Farsi) to UTF-8 and encodes UTF-8 back.\n\n" +
			"Every flag can also be set through a CHARCONV_ environment variable or a configuration file.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// glog reads its settings from the standard flag set.
			if err := flag.CommandLine.Parse(nil); err != nil {
				return err
			}
			return loadConfig()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			glog.Flush()
		},
	}
)

func init() {
	registerFlags(Root.PersistentFlags())
	Root.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	Root.AddCommand(Decode, Encode, List, Chart, Serve)
}

func registerFlags(fs *pflag.FlagSet) {
	fs.StringVar(&configFile, "config", "", "Path to a configuration file (yaml, json or toml).")
	fs.StringP(encodingKey, "e", codepage.ATASCII.Name(), "Legacy character set to convert from or to.")
	if err := config.BindPFlag(encodingKey, fs.Lookup(encodingKey)); err != nil {
		panic(err)
	}
}

func loadConfig() error {
	config.SetEnvPrefix("CHARCONV")
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	config.AutomaticEnv()
	if configFile == "" {
		return nil
	}
	config.SetConfigFile(configFile)
	if err := config.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "reading config %s", configFile)
	}
	return nil
}

func selectedCodec() (*charset.Codec, error) {
	name := config.GetString(encodingKey)
	c, err := codepage.Default.Get(name)
	if err != nil {
		return nil, errors.Wrap(err, "selecting encoding")
	}
	return c, nil
}

// openInput returns the named file, or stdin when no file is given.
func openInput(cmd *cobra.Command, args []string) (io.ReadCloser, error) {
	if len(args) == 0 || args[0] == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, errors.Wrapf(err, "opening %s", args[0])
	}
	return f, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
