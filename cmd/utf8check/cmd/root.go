package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cosql/strictutf8/i18n"
	"github.com/cosql/strictutf8/internal/config"
)

// cfg holds the effective configuration after flag/file merging.
var cfg = config.Default()

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "utf8check",
	Short: "utf8check - strict UTF-8 validation",
	Long: `utf8check validates files or stdin as strict RFC 3629 UTF-8 and reports
the exact byte offset and reason of every malformed sequence.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if path, _ := cmd.Flags().GetString("config"); path != "" {
			loaded, err := config.Load(path)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		// flags win over the config file
		if cmd.Flags().Changed("format") {
			cfg.Format, _ = cmd.Flags().GetString("format")
		}
		if cmd.Flags().Changed("lang") {
			cfg.Lang, _ = cmd.Flags().GetString("lang")
		}
		if cmd.Flags().Changed("all") {
			cfg.All, _ = cmd.Flags().GetBool("all")
		}
		if cfg.Format != "text" && cfg.Format != "json" {
			return fmt.Errorf("unknown format %q", cfg.Format)
		}
		i18n.SetLanguage(cfg.Lang)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringP("format", "f", "text", "Output format: text or json")
	rootCmd.PersistentFlags().String("lang", "en", "Message language: en or ja")
	rootCmd.PersistentFlags().BoolP("all", "a", false, "Report every malformed sequence, not just the first")
}

// readInput returns the named file's contents, or stdin when name is "-".
func readInput(name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(name)
}
