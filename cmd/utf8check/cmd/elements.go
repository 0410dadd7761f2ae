package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	strictutf8 "github.com/cosql/strictutf8"
)

// elementsCmd represents the elements command
var elementsCmd = &cobra.Command{
	Use:   "elements [file]",
	Short: "Print textual elements of a file (or stdin), one per line",
	Long: `Split the input into textual elements, grouping each base character
with its trailing combining marks, and print one element per line.

Example:
  printf 'e\xcc\x81f' | utf8check elements`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := "-"
		if len(args) == 1 {
			name = args[0]
		}
		data, err := readInput(name)
		if err != nil {
			return err
		}
		for _, el := range strictutf8.TextualElements(data, strictutf8.IsCombiningMark) {
			fmt.Fprintln(cmd.OutOrStdout(), el)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(elementsCmd)
}
