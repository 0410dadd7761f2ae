package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	strictutf8 "github.com/cosql/strictutf8"
)

// codepointsCmd represents the codepoints command
var codepointsCmd = &cobra.Command{
	Use:   "codepoints [file]",
	Short: "Print the codepoints of a file (or stdin)",
	Long: `Decode the input and print one U+XXXX codepoint per line. Decoding
stops at the first malformed sequence, which is reported on stderr.

Example:
  echo -n 'He€' | utf8check codepoints`,
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
		cps, reason := strictutf8.Codepoints(data)
		for _, cp := range cps {
			fmt.Fprintf(cmd.OutOrStdout(), "U+%04X\n", cp)
		}
		if !reason.OK() {
			return fmt.Errorf("%s: %s", name, reason.Error())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(codepointsCmd)
}
