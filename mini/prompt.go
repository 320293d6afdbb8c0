package mini

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/thumbgrab/thumbgrab/icon"
	"github.com/thumbgrab/thumbgrab/style"
)

type prompter interface {
	Input(message, help string) (string, error)
	// Select returns the index of the chosen option.
	Select(message string, options []string) (int, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Input(message, help string) (string, error) {
	input := survey.Input{
		Message: message,
		Help:    help,
	}

	var response string
	err := survey.AskOne(&input, &response)
	return response, interrupted(err)
}

func (surveyPrompter) Select(message string, options []string) (int, error) {
	sel := survey.Select{
		Message: message,
		Options: options,
	}

	var index int
	err := survey.AskOne(&sel, &index)
	return index, interrupted(err)
}

// errInterrupted ends the loop quietly on ctrl+c.
var errInterrupted = errors.New("interrupted")

func interrupted(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return errInterrupted
	}
	return err
}

func (m *mini) title(s string) {
	fmt.Fprintln(m.out, m.palette.Title(s))
}

func (m *mini) fail(s string) {
	fmt.Fprintf(m.out, "%s %s\n", icon.Get(icon.Fail), style.Fg(m.palette.Error)(s))
}

func (m *mini) success(s string) {
	fmt.Fprintf(m.out, "%s %s\n", icon.Get(icon.Success), style.Fg(m.palette.Success)(s))
}
