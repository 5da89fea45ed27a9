package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/smazurov/vibelight/internal/color"
)

// CreateColorCmd creates the color command for packing and unpacking WRGB
// values.
func CreateColorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Convert between channel values and packed 32-bit colors",
	}
	cmd.AddCommand(createColorPackCmd(), createColorUnpackCmd())
	return cmd
}

func createColorPackCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "pack <red> <green> <blue> [white]",
		Short:   "Pack channels into a 0xWWRRGGBB value",
		Example: "  vibelight color pack 255 128 64 0",
		Args:    cobra.RangeArgs(3, 4),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := []string{"red", "green", "blue", "white"}
			var ch [4]uint8
			for i, arg := range args {
				v, err := strconv.ParseUint(arg, 10, 8)
				if err != nil {
					return fmt.Errorf("%s must be 0-255, got %q", names[i], arg)
				}
				ch[i] = uint8(v)
			}
			printColor(cmd.OutOrStdout(), color.New(ch[0], ch[1], ch[2], ch[3]))
			return nil
		},
	}
}

func createColorUnpackCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "unpack <value>",
		Short:   "Unpack a decimal, 0x hex, #RRGGBB or #WWRRGGBB value",
		Example: "  vibelight color unpack 0x80ff8040",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				c   color.Color
				err error
			)
			if strings.HasPrefix(args[0], "#") {
				c, err = color.ParseHex(args[0])
			} else {
				c, err = color.ParseUint32(args[0])
			}
			if err != nil {
				return err
			}
			printColor(cmd.OutOrStdout(), c)
			return nil
		},
	}
}

func printColor(w io.Writer, c color.Color) {
	fmt.Fprintf(w, "packed: %s (%d)\n", c, c.Uint32())
	fmt.Fprintf(w, "red:    %d\ngreen:  %d\nblue:   %d\nwhite:  %d\n", c.Red, c.Green, c.Blue, c.White)
	fmt.Fprintf(w, "html:   %s\n", c.Hex())
}
