package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hferraz/patternbook/internal/core"
	"github.com/spf13/cobra"
)

// Quizzes serves and grades quiz sessions, set during app initialization.
var Quizzes core.QuizEngine

// DefaultQuizLength is the configured question count from .pbconfig, set
// during app initialization. Used when --length is not given.
var DefaultQuizLength int

var quizLength int

var quizCmd = &cobra.Command{
	Use:   "quiz <pattern>",
	Short: "Take a short quiz on a pattern",
	Long: `Take a multiple-choice quiz on one pattern. Questions are drawn in
random order from the built-in bank; answer by typing the choice number.

The score is recorded as study activity. Scoring 90% or better counts
toward mastering the pattern.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if Quizzes == nil {
			return fmt.Errorf("quiz engine not initialized")
		}

		length := quizLength
		if !cmd.Flags().Changed("length") && DefaultQuizLength > 0 {
			length = DefaultQuizLength
		}

		pattern, questions, err := Quizzes.Questions(args[0], length)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		reader := bufio.NewReader(cmd.InOrStdin())
		answers := make([]int, len(questions))

		fmt.Fprintf(out, "Quiz: %s (%d questions)\n\n", pattern, len(questions))
		for i, question := range questions {
			fmt.Fprintf(out, "%d. %s\n", i+1, question.Prompt)
			for j, choice := range question.Choices {
				fmt.Fprintf(out, "   %d) %s\n", j+1, choice)
			}

			answers[i] = askChoice(out, reader, len(question.Choices))
			fmt.Fprintln(out)
		}

		result, err := Quizzes.Grade(pattern, questions, answers)
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Score: %d/%d (%d%%)\n", result.Correct, result.Asked, result.ScorePct)
		if result.ScorePct >= 90 {
			fmt.Fprintln(out, "Mastered. Nice work.")
		}
		return nil
	},
}

// askChoice prompts until it reads a number in [1, max], returning the
// zero-based choice index. EOF or unreadable input counts as no answer (-1).
func askChoice(out io.Writer, reader *bufio.Reader, max int) int {
	for {
		fmt.Fprint(out, "> ")
		line, err := reader.ReadString('\n')
		if err != nil && line == "" {
			return -1
		}
		choice, convErr := strconv.Atoi(strings.TrimSpace(line))
		if convErr == nil && choice >= 1 && choice <= max {
			return choice - 1
		}
		if err != nil {
			return -1
		}
		fmt.Fprintf(out, "Enter a number between 1 and %d.\n", max)
	}
}

func init() {
	quizCmd.Flags().IntVar(&quizLength, "length", 0, "Number of questions to ask (overrides quiz.length from .pbconfig; 0 = all)")
	rootCmd.AddCommand(quizCmd)
}
