package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

var runInputPrompt = func(title string, value *string) error {
	return huh.NewInput().
		Title(title).
		Value(value).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("the project name cannot be empty")
			}
			return nil
		}).
		Run()
}

var runConfirmPrompt = func(title string, value *bool) error {
	return huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(value).
		Run()
}

// HuhPrompter asks questions with huh forms.
type HuhPrompter struct{}

func (HuhPrompter) ProjectName() (string, error) {
	var name string
	if err := runInputPrompt("please enter the project name:", &name); err != nil {
		return "", fmt.Errorf("prompt input: %w", err)
	}
	return strings.TrimSpace(name), nil
}

func (HuhPrompter) Confirm(question string, def bool) (bool, error) {
	value := def
	if err := runConfirmPrompt(question+" "+strings.TrimSuffix(Suffix(def), ": "), &value); err != nil {
		return false, fmt.Errorf("prompt confirm: %w", err)
	}
	return value, nil
}
