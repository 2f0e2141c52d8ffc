package main

import (
	"fmt"
	"psychotest/internal/domain"

	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List available quizzes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			quizzes, err := loadQuizzes(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, quiz := range quizzes {
				lo, hi := domain.ScoreBounds(quiz)
				fmt.Fprintf(out, "%s\t%s\t%d questions\tscore %d..%d\n", quiz.ID, quiz.Name, len(quiz.Questions), lo, hi)
			}
			return nil
		},
	}
}
