package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tds-django/sqlregex/internal/regex"
)

type matchOptions struct {
	engine          regex.Engine
	caseInsensitive bool
	nullSubject     bool
	nullPattern     bool
}

var matchCmd = &cobra.Command{
	Use:   "match SUBJECT PATTERN",
	Short: "Match one subject against a pattern",
	Long:  "Print 1 when PATTERN matches anywhere in SUBJECT and 0 otherwise, exactly as django_regex and django_iregex do in SQL.",
	Example: `  sqlregex match hello123 '[0-9]+'
  sqlregex match -i HELLO hello
  sqlregex match --null-subject ignored '(unclosed'`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup(cmd)
		if err != nil {
			return err
		}
		opts, err := loadMatchOptions(cmd, cfg.RegexEngine())
		if err != nil {
			return err
		}
		return runMatch(cmd.OutOrStdout(), opts, args[0], args[1])
	},
}

func init() {
	addMatchFlags(matchCmd)
	rootCmd.AddCommand(matchCmd)
}

func addMatchFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("ignore-case", "i", false, "Match case-insensitively (django_iregex)")
	cmd.Flags().String("engine", "", "Regex engine: dotnet or re2 (default from config)")
	cmd.Flags().Bool("null-subject", false, "Treat SUBJECT as SQL NULL")
	cmd.Flags().Bool("null-pattern", false, "Treat PATTERN as SQL NULL")
}

func loadMatchOptions(cmd *cobra.Command, defaultEngine regex.Engine) (matchOptions, error) {
	ignoreCase, _ := cmd.Flags().GetBool("ignore-case")
	engineName, _ := cmd.Flags().GetString("engine")
	nullSubject, _ := cmd.Flags().GetBool("null-subject")
	nullPattern, _ := cmd.Flags().GetBool("null-pattern")

	engine := defaultEngine
	if engineName != "" {
		var err error
		if engine, err = regex.ParseEngine(engineName); err != nil {
			return matchOptions{}, err
		}
	}
	return matchOptions{
		engine:          engine,
		caseInsensitive: ignoreCase,
		nullSubject:     nullSubject,
		nullPattern:     nullPattern,
	}, nil
}

func runMatch(w io.Writer, opts matchOptions, subject, pattern string) error {
	s, p := &subject, &pattern
	if opts.nullSubject {
		s = nil
	}
	if opts.nullPattern {
		p = nil
	}
	matched, err := opts.engine.Match(s, p, opts.caseInsensitive)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, matched)
	return err
}
