package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"psychotest/internal/adapter"
	"psychotest/internal/domain"
	"psychotest/internal/dto"
	"psychotest/internal/repository"
	"psychotest/internal/service"
	"psychotest/internal/util"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newTakeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "take <quiz-id>",
		Short: "Answer a quiz interactively",
		Long:  "Shows one question at a time. Enter an option number, r to restart or q to quit.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			quizzes, err := loadQuizzes(cmd)
			if err != nil {
				return err
			}
			catalog := service.NewQuizCatalogService(repository.NewStaticQuizRepository(quizzes))
			sessions := service.NewSessionService(catalog, service.NewSessionStore(adapter.NewMemoryCacheAdapter(), 0))
			return runTake(cmd, sessions, args[0])
		},
	}
}

func runTake(cmd *cobra.Command, sessions service.SessionService, quizID string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	in := bufio.NewScanner(cmd.InOrStdin())
	sessionID := util.NewULID()

	resp, err := sessions.Initialize(ctx, sessionID, quizID)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s\n\n", resp.QuizName)

	for {
		if resp.Completed {
			printResult(out, resp)
			fmt.Fprint(out, "r to restart, q to quit: ")
		} else {
			printQuestion(out, resp)
			fmt.Fprintf(out, "answer (1-%d, r, q): ", len(resp.CurrentQuestion.Options))
		}

		if !in.Scan() {
			fmt.Fprintln(out)
			return in.Err()
		}
		input := strings.TrimSpace(in.Text())

		switch input {
		case "q":
			return nil
		case "r":
			if resp, err = sessions.Restart(ctx, sessionID, quizID); err != nil {
				return err
			}
			fmt.Fprintln(out)
			continue
		}
		if resp.Completed {
			continue
		}

		choice, convErr := strconv.Atoi(input)
		if convErr != nil {
			fmt.Fprintln(out, "please enter an option number")
			continue
		}
		next, err := sessions.Answer(ctx, sessionID, quizID, choice-1)
		if err != nil {
			var domainErr *domain.DomainError
			if errors.As(err, &domainErr) && domainErr.Code == domain.CodeOutOfRange {
				fmt.Fprintf(out, "choose between 1 and %d\n", len(resp.CurrentQuestion.Options))
				continue
			}
			return err
		}
		resp = next
	}
}

func printQuestion(out io.Writer, resp *dto.SessionResponse) {
	q := resp.CurrentQuestion
	fmt.Fprintf(out, "[%d/%d] %s\n", resp.Progress.Current, resp.Progress.Total, q.Text)
	for i, option := range q.Options {
		fmt.Fprintf(out, "  %d) %s\n", i+1, option)
	}
}

func printResult(out io.Writer, resp *dto.SessionResponse) {
	fmt.Fprintf(out, "score: %d\n", *resp.Score)
	if !resp.ResultFound {
		fmt.Fprintln(out, "no result matches this score")
		return
	}
	fmt.Fprintf(out, "%s\n%s\n", resp.Result.Title, resp.Result.Description)
	if resp.Result.Advice != "" {
		fmt.Fprintf(out, "advice: %s\n", resp.Result.Advice)
	}
}
