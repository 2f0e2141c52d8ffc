package main

import (
	"fmt"
	"psychotest/internal/quizdef"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "validate <file>",
		Short: "Check a quiz definitions file",
		Long: "Checks a definitions file against the schema and the quiz rules, then reports\n" +
			"score ranges that match no result or more than one result.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quizzes, err := quizdef.LoadFile(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			warnings := 0
			for _, quiz := range quizzes {
				issues := quiz.CoverageIssues()
				if len(issues) == 0 {
					fmt.Fprintf(out, "ok\t%s\n", quiz.ID)
					continue
				}
				for _, issue := range issues {
					warnings++
					fmt.Fprintf(out, "warn\t%s\t%s\n", quiz.ID, issue)
				}
			}
			if strict && warnings > 0 {
				return fmt.Errorf("%d coverage issue(s)", warnings)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when any score has no result or several results")
	return cmd
}
