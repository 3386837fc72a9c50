// Package cli wires the generation pipeline to its cobra command surface.
package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/tnoble/aliashdr/internal/version"
	"github.com/tnoble/aliashdr/pkg/batch"
	"github.com/tnoble/aliashdr/pkg/config"
	"github.com/tnoble/aliashdr/pkg/filesystem"
	"github.com/tnoble/aliashdr/pkg/logging"
	"github.com/tnoble/aliashdr/pkg/scanner"
	"github.com/tnoble/aliashdr/pkg/style"
	"github.com/tnoble/aliashdr/pkg/ui/confirmations"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity  int
		apply      bool
		configPath string
	)

	rootCmd := &cobra.Command{
		Use:   "aliashdr [root]",
		Short: MsgRootShort,
		Long:  MsgRootLong,
		Args:  cobra.MaximumNArgs(1),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				pterm.DisableColor()
			}
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			dialog := confirmations.NewDialog(cmd.InOrStdin(), cmd.OutOrStdout())
			return runGenerate(cmd, root, configPath, apply, dialog)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default is .aliashdr.toml in the scan root)")

	rootCmd.Flags().BoolVar(&apply, "apply", false, "Generate the deprecated header files")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenConfigCmd())

	return rootCmd
}

// runGenerate is the whole run: discover, parse, report, optionally confirm
// and write. Per-file parse failures are reported in the summary and never
// fail the command; only filesystem and config errors do.
func runGenerate(cmd *cobra.Command, root, configPath string, apply bool, dialog *confirmations.ConsoleDialog) error {
	out := cmd.OutOrStdout()
	logger := logging.GetLogger("cli")

	cfg, err := config.Load(root, configPath)
	if err != nil {
		return err
	}

	fsys := filesystem.NewOS()
	paths, err := scanner.Find(fsys, root, cfg.SourceExt)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, MsgProcessingFormat, len(paths), cfg.SourceExt)

	proc := batch.New(fsys, cfg)
	sources, result, err := proc.Process(paths)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, style.RenderSummary(result, cfg.DeprecatedExt))

	if apply && !result.AllProcessed() {
		approved, err := dialog.Confirm(MsgConfirmPrompt)
		if err != nil {
			return err
		}
		apply = approved
	}

	if apply {
		fmt.Fprintf(out, MsgProceedingFormat, len(sources), cfg.DeprecatedExt)
		written, err := proc.Write(sources)
		if err != nil {
			return err
		}
		logger.Info().Int("written", written).Msg("Alias files generated")
	} else {
		fmt.Fprint(out, MsgSkipping)
	}

	fmt.Fprint(out, MsgDone)
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: MsgVersionShort,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "aliashdr version %s\n", version.Version)
			fmt.Fprintf(out, "  commit: %s\n", version.Commit)
			fmt.Fprintf(out, "  built:  %s\n", version.Date)
		},
	}
}

func newGenConfigCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "gen-config",
		Short: MsgGenConfigShort,
		Long:  "Output the default configuration with every value commented out.\n\nWith -w, write it to .aliashdr.toml in the current directory instead of stdout.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := config.GenerateConfigContent()
			if err != nil {
				return err
			}
			if !write {
				fmt.Fprint(cmd.OutOrStdout(), content)
				return nil
			}
			if err := os.WriteFile(".aliashdr.toml", []byte(content), 0644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Wrote .aliashdr.toml")
			return nil
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, "Write config to .aliashdr.toml instead of stdout")

	return cmd
}
