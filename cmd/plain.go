package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/psychtest/psyquiz/internal/quiz"
	"github.com/psychtest/psyquiz/internal/scoring"
)

var plainCmd = &cobra.Command{
	Use:   "plain",
	Short: "Take the quiz in line mode (no full-screen UI)",
	Long: `Print the drawn questions and read one answer per question from stdin.

Invalid input is asked again, so the result is only shown once every
question has an answer.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, _, closer, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer closer.Close()

		return playPlain(sess, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

// errInputClosed ends a line-mode run when stdin reaches EOF.
var errInputClosed = errors.New("input closed")

// playPlain runs quiz rounds until the user quits or input ends.
func playPlain(sess *quiz.Session, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	ask := func(prompt string) (string, error) {
		fmt.Fprint(out, prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", errInputClosed
		}
		return strings.TrimSpace(scanner.Text()), nil
	}

	for {
		printSet(out, sess)

		for pos := 1; pos <= sess.Len(); {
			text, err := ask(fmt.Sprintf("Answer %d/%d [0-3]: ", pos, sess.Len()))
			if err != nil {
				return endOfInput(out, err)
			}
			v, err := parseValue(text)
			if err == nil {
				err = sess.Dispatch(quiz.Event{Action: quiz.ActionAnswer, Position: pos, Value: v})
			}
			if err != nil {
				fmt.Fprintln(out, "  Please enter 0, 1, 2 or 3.")
				continue
			}
			pos++
		}

		res, err := sess.Submit()
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n── %s ──\n%s\n\n", res.ScoreLine(), res.Advice)

		text, err := ask("[r] reset  [n] new questions  [q] quit: ")
		if err != nil {
			return endOfInput(out, err)
		}
		switch strings.ToLower(text) {
		case "r":
			_ = sess.Dispatch(quiz.Event{Action: quiz.ActionReset})
		case "n":
			_ = sess.Dispatch(quiz.Event{Action: quiz.ActionReshuffle})
		default:
			return nil
		}
		fmt.Fprintln(out)
	}
}

func endOfInput(out io.Writer, err error) error {
	if errors.Is(err, errInputClosed) {
		fmt.Fprintln(out, "\n(input closed)")
		return nil
	}
	return err
}

func printSet(out io.Writer, sess *quiz.Session) {
	set := sess.Set()
	fmt.Fprintf(out, "Quick self-assessment (%d questions)\n\n", len(set))
	for i, q := range set {
		fmt.Fprintf(out, "%d. %s\n", i+1, q.Text)
	}
	fmt.Fprint(out, "\n")
	for _, c := range scoring.Choices {
		fmt.Fprintf(out, "  %d = %s\n", c.Value, c.Label)
	}
	fmt.Fprintln(out)
}

// parseValue reads a single answer value.
func parseValue(s string) (scoring.Value, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", s)
	}
	v := scoring.Value(n)
	if !v.Valid() {
		return 0, fmt.Errorf("value %d out of range", n)
	}
	return v, nil
}
