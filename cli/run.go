package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/ka2n/minigrep/grep"
	"github.com/ka2n/minigrep/log"
	"github.com/morikuni/failure/v2"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	color colorModeFlag
	pager bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "minigrep QUERY FILE_PATH [true|false]",
		Short:         "Print lines of a file that contain a query",
		SilenceErrors: true,
		SilenceUsage:  true,
		Long: `minigrep prints every line of FILE_PATH that contains QUERY.

Matching is case-sensitive unless the IGNORE_CASE environment variable is set
(to any value). An explicit third argument of "true" or "false" takes
precedence over IGNORE_CASE:

  minigrep to poem.txt
  IGNORE_CASE=1 minigrep to poem.txt
  IGNORE_CASE=1 minigrep to poem.txt false

A QUERY that starts with "-" must follow "--", otherwise it is read as a flag:

  minigrep -- -v poem.txt`,
		Args:    cobra.ArbitraryArgs,
		Version: Version,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}
	cmd.SetVersionTemplate(versionTemplate())

	cmd.Flags().Var(&opts.color, "color", "Highlight matches: auto, always or never")
	cmd.Flags().BoolVarP(&opts.pager, "pager", "p", false, "Show results in a pager when writing to a terminal")

	return cmd
}

// Run executes the main CLI functionality
func Run() error {
	return Execute(os.Args[1:], os.Stdout, os.Stderr)
}

// Execute runs the root command with args, writing results to stdout
func Execute(args []string, stdout, stderr io.Writer) error {
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

func (o *rootOptions) run(cmd *cobra.Command, args []string) error {
	_, envIgnoreCase := os.LookupEnv(grep.IgnoreCaseEnv)

	cfg, err := grep.Resolve(args, envIgnoreCase)
	if err != nil {
		return err
	}
	log.Debug("resolved configuration",
		"query", cfg.Query,
		"file_path", cfg.FilePath,
		"ignore_case", cfg.IgnoreCase,
	)

	results, err := grep.Run(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if o.pager && isTerminal(out) {
		var r *lipgloss.Renderer
		if o.color.enabled(out) {
			r = lipgloss.DefaultRenderer()
		}
		return RunPager(cfg, results, r)
	}
	if o.pager {
		log.Debug("stdout is not a terminal, printing without pager")
	}

	return printResults(out, cfg, results, o.color.enabled(out))
}

// printResults writes one result per line, highlighting matches if color is set
func printResults(w io.Writer, cfg grep.Config, results []string, color bool) error {
	var style lipgloss.Style
	if color {
		r := lipgloss.NewRenderer(w)
		if !isTerminal(w) {
			// forced by --color=always
			r.SetColorProfile(termenv.ANSI)
		}
		style = matchStyle(r)
	}

	for _, line := range results {
		if color {
			line = highlight(line, cfg.Query, cfg.IgnoreCase, style)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return failure.Wrap(err, failure.WithCode(OutputFailure),
				failure.Message("Failed to write results"),
			)
		}
	}
	return nil
}

func matchStyle(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().
		Foreground(lipgloss.Color("9")). // bright red
		Bold(true)
}
