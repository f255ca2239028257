// Copyright (C) 2019-2025, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package command

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/luxfi/charset"
	"github.com/luxfi/charset/codepage"
)

var (
	List = &cobra.Command{
		Use:   "list",
		Short: "List the supported character sets.",
		Args:  cobra.NoArgs,
		RunE:  commandList,
	}

	Chart = &cobra.Command{
		Use:     "chart [<encoding>]",
		Short:   "Print the 16x16 decode chart of a character set.",
		Example: "charconv chart x-mac-farsi",
		Args:    cobra.MaximumNArgs(1),
		RunE:    commandChart,
	}
)

func commandList(cmd *cobra.Command, args []string) error {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Name", "Description", "Code page", "Read-only", "Mapped"})
	for _, name := range codepage.Default.Names() {
		c, err := codepage.Default.Get(name)
		if err != nil {
			return err
		}
		info := c.Table().Info()
		table.Append([]string{
			info.Name,
			info.Description,
			strconv.Itoa(info.CodePage),
			strconv.FormatBool(info.ReadOnly),
			strconv.Itoa(mappedCount(c.Table())),
		})
	}
	table.Render()
	return nil
}

func mappedCount(t *charset.Table) int {
	n := 0
	for i := 0; i < charset.TableSize; i++ {
		if t.Mapped(byte(i)) {
			n++
		}
	}
	return n
}

// cellWidth leaves room for box drawing glyphs rendered double width in
// East Asian locales.
const cellWidth = 2

func commandChart(cmd *cobra.Command, args []string) error {
	var (
		c   *charset.Codec
		err error
	)
	if len(args) == 1 {
		c, err = codepage.Default.Get(args[0])
	} else {
		c, err = selectedCodec()
	}
	if err != nil {
		return err
	}

	var sb strings.Builder
	sb.WriteString("   ")
	for col := 0; col < 16; col++ {
		sb.WriteString(runewidth.FillLeft(fmt.Sprintf("%X", col), cellWidth+1))
	}
	sb.WriteByte('\n')
	t := c.Table()
	for row := 0; row < 16; row++ {
		fmt.Fprintf(&sb, "%X_ ", row)
		for col := 0; col < 16; col++ {
			sb.WriteByte(' ')
			sb.WriteString(runewidth.FillRight(chartCell(t, byte(row*16+col)), cellWidth))
		}
		sb.WriteByte('\n')
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), sb.String())
	return err
}

// chartCell renders one byte; unmapped bytes print as '·' and controls
// as their Unicode control picture.
func chartCell(t *charset.Table, b byte) string {
	if !t.Mapped(b) {
		return "·"
	}
	r := t.Decode(b)
	switch {
	case r < 0x20:
		r += 0x2400
	case r == 0x7F:
		r = '␡'
	}
	if runewidth.RuneWidth(r) == 0 {
		// combining marks need a base to be visible
		return "◌" + string(r)
	}
	return string(r)
}
