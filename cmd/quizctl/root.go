package main

import (
	"psychotest/internal/domain"
	"psychotest/internal/quizdef"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "quizctl",
		Short:         "Take and check self-assessment quizzes from the terminal",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().String("file", "", "Quiz definitions file (defaults to the built-in quizzes)")

	root.AddCommand(newListCmd())
	root.AddCommand(newValidateCmd())
	root.AddCommand(newTakeCmd())
	return root
}

// loadQuizzes reads --file, or the built-in set when it is empty.
func loadQuizzes(cmd *cobra.Command) ([]*domain.QuizDefinition, error) {
	if path, _ := cmd.Flags().GetString("file"); path != "" {
		return quizdef.LoadFile(path)
	}
	return quizdef.Builtin()
}
