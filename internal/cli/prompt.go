package cli

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// ErrAborted is returned when the user interrupts a prompt.
var ErrAborted = errors.New("prompt aborted")

type InputConfig struct {
	Message   string
	Help      string
	Default   string
	Validator func(string) error
}

type SelectConfig struct {
	Message  string
	Options  []string
	Help     string
	PageSize int
}

// Prompter asks the user for input. The survey implementation drives a real
// terminal; tests script the answers.
type Prompter interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Select(ctx context.Context, cfg SelectConfig) (int, error)
}

type surveyPrompter struct {
	opts []survey.AskOpt
}

// NewSurveyPrompter prompts on the process terminal. Extra options such as
// survey.WithStdio are applied to every question.
func NewSurveyPrompter(opts ...survey.AskOpt) Prompter {
	return &surveyPrompter{opts: opts}
}

func (p *surveyPrompter) Input(ctx context.Context, cfg InputConfig) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var out string

	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
		Default: cfg.Default,
	}

	opts := append([]survey.AskOpt{}, p.opts...)
	if cfg.Validator != nil {
		validator := cfg.Validator
		opts = append(opts, survey.WithValidator(func(ans any) error {
			value, _ := ans.(string)

			return validator(value)
		}))
	}

	if err := survey.AskOne(prompt, &out, opts...); err != nil {
		return "", translateSurveyErr(err)
	}

	return out, nil
}

func (p *surveyPrompter) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var out int

	prompt := &survey.Select{
		Message: cfg.Message,
		Options: cfg.Options,
		Help:    cfg.Help,
	}

	if cfg.PageSize > 0 {
		prompt.PageSize = cfg.PageSize
	}

	if err := survey.AskOne(prompt, &out, p.opts...); err != nil {
		return 0, translateSurveyErr(err)
	}

	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}

	return err
}
