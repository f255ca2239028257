// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package command

import (
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/text/transform"
)

var (
	strict bool

	Decode = &cobra.Command{
		Use:   "decode [<file>]",
		Short: "Decode legacy bytes from a file or stdin to UTF-8.",
		Example: "charconv decode --encoding atascii DISK.TXT\n" +
			"cat capture.bin | charconv decode -e gem",
		Args: cobra.MaximumNArgs(1),
		RunE: commandDecode,
	}

	Encode = &cobra.Command{
		Use:   "encode [<file>]",
		Short: "Encode UTF-8 text from a file or stdin to a legacy character set.",
		Long: "Encode UTF-8 text to a legacy character set.\n\n" +
			"Characters the set cannot represent are written as '?', unless --strict is given.",
		Example: "charconv encode --encoding atascii notes.txt > NOTES.TXT",
		Args:    cobra.MaximumNArgs(1),
		RunE:    commandEncode,
	}
)

func init() {
	Encode.Flags().BoolVar(&strict, "strict", false, "Fail instead of writing '?' for characters the encoding cannot represent.")
}

func commandDecode(cmd *cobra.Command, args []string) error {
	c, err := selectedCodec()
	if err != nil {
		return err
	}
	in, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	out := cmd.OutOrStdout()
	n, err := io.Copy(out, transform.NewReader(in, c.NewDecoder()))
	if err != nil {
		return errors.Wrap(err, "decoding")
	}
	if n > 0 && isTerminal(out) {
		fmt.Fprintln(out)
	}
	return nil
}

func commandEncode(cmd *cobra.Command, args []string) error {
	c, err := selectedCodec()
	if err != nil {
		return err
	}
	in, err := openInput(cmd, args)
	if err != nil {
		return err
	}
	defer in.Close()

	out := cmd.OutOrStdout()
	if !strict {
		if _, err := io.Copy(out, transform.NewReader(in, c.NewEncoder())); err != nil {
			return errors.Wrap(err, "encoding")
		}
		return nil
	}

	text, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrap(err, "reading input")
	}
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRune(text[i:])
		if _, ok := c.Lookup(r); !ok {
			return errors.Errorf("%s cannot represent %U at byte %d", c.Name(), r, i)
		}
		i += size
	}
	_, err = out.Write(c.EncodeString(string(text)))
	return err
}
