package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	strictutf8 "github.com/cosql/strictutf8"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [file...]",
	Short: "Validate files (or stdin) as strict UTF-8",
	Long: `Validate each file as strict UTF-8. With no arguments, or with "-",
stdin is validated. The exit status is 1 when any input is invalid.

Example:
  utf8check check document.json
  cat data.bin | utf8check check --all --format json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{"-"}
		}
		invalid := 0
		for _, name := range args {
			data, err := readInput(name)
			if err != nil {
				return err
			}
			rep := strictutf8.NewReport(name, data, cfg.All)
			if !rep.Valid {
				invalid++
			}
			out, err := formatReport(rep)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out)
		}
		if invalid > 0 {
			return fmt.Errorf("%d invalid input(s)", invalid)
		}
		return nil
	},
}

// formatReport renders a Report according to the configured output format.
func formatReport(rep strictutf8.Report) (string, error) {
	if cfg.Format == "json" {
		b, err := rep.JSON()
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	if rep.Valid {
		return fmt.Sprintf("%s: ok (%d bytes)", rep.Input, rep.Bytes), nil
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s: invalid", rep.Input)
	for _, r := range rep.Reasons {
		fmt.Fprintf(&b, "\n  byte %d: %s (%s)", r.Offset, r.Message, r.Code)
	}
	return b.String(), nil
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
