package prompt

import "github.com/AlecAivazis/survey/v2"

var Confirm = func(message string, result *bool) error {
	return survey.AskOne(&survey.Confirm{Message: message}, result)
}

// StubConfirm replaces Confirm with a fixed answer and returns a restore
// func; for testing
func StubConfirm(result bool) func() {
	orig := Confirm
	Confirm = func(_ string, r *bool) error {
		*r = result
		return nil
	}
	return func() {
		Confirm = orig
	}
}
