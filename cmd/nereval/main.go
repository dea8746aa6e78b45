// Command nereval scores a directory of entity-mention responses against
// gold-standard markup and prints precision/recall/F1 per entity type.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	nereval "github.com/entext/go-nereval"
	"github.com/entext/go-nereval/internal/config"
	"github.com/entext/go-nereval/internal/evalrun"
)

// Populated at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// evalCommand holds the flags for the root command.
type evalCommand struct {
	stdDir     string
	testDir    string
	mode       string
	configPath string
	reportsDir string
	noLocorg   bool
	byDocument bool
	verbose    bool
}

func newRootCommand() *cobra.Command {
	c := &evalCommand{}

	cmd := &cobra.Command{
		Use:   "nereval",
		Short: "Score entity-mention responses against gold-standard markup",
		Long: "nereval compares .task1 response files to layered standard markup\n" +
			"(.tokens/.spans/.objects), finds the matching between mentions that\n" +
			"maximizes F1 and reports precision/recall/F1 per entity type.",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		RunE:          c.run,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().StringVarP(&c.stdDir, "std", "s", "", "Standard markup directory")
	cmd.Flags().StringVarP(&c.testDir, "test", "t", "", "Response files directory")
	cmd.Flags().StringVarP(&c.mode, "mode", "m", "", "Matching mode: regular or simple")
	cmd.Flags().StringVarP(&c.configPath, "config", "c", "", "YAML config file")
	cmd.Flags().StringVarP(&c.reportsDir, "reports", "r", "", "Write per-document reports to this directory")
	cmd.Flags().BoolVarP(&c.noLocorg, "no-locorg", "l", false, "Evaluate locorg mentions as locations")
	cmd.Flags().BoolVar(&c.byDocument, "by-document", false, "Print per-document metrics")
	cmd.Flags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func (c *evalCommand) run(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if c.configPath != "" {
		loaded, err := config.Load(c.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// flags override file values
	if c.stdDir != "" {
		cfg.StandardDir = c.stdDir
	}
	if c.testDir != "" {
		cfg.TestDir = c.testDir
	}
	if c.mode != "" {
		cfg.Mode = c.mode
	}
	if c.reportsDir != "" {
		cfg.ReportsDir = c.reportsDir
	}
	if c.noLocorg {
		cfg.LocOrg = false
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	runner := evalrun.NewRunner(nereval.Mode(cfg.Mode), cfg.LocOrg)
	runner.ReportsDir = cfg.ReportsDir
	runner.Logger = logger

	result, err := runner.EvaluateCorpus(cfg.StandardDir, cfg.TestDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if c.byDocument {
		for _, doc := range result.Documents {
			fmt.Fprintf(out, "%-12s", doc.Name)
			for _, tag := range runner.Tags() {
				m := doc.Metrics[tag.String()]
				fmt.Fprintf(out, " %s %.2f/%.2f/%.2f", tag, m.Precision, m.Recall, m.F1)
			}
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out)
	}

	fmt.Fprintf(out, "Evaluated %d documents\n\n", len(result.Documents))
	fmt.Fprintln(out, runner.SummaryTable(result.Totals))

	return nil
}
