// Package ui provides interactive input components.
package ui

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Prompt displays a prompt and reads one line of user input.
//
// Parameters:
//   - message: The prompt message to display
//
// Returns:
//   - string: The user's input, whitespace trimmed
//   - error: Any error that occurred
func Prompt(message string) (string, error) {
	fmt.Printf("%s ", InfoStyle.Render(message))

	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(input), nil
}

// PromptConfirm displays a yes/no confirmation prompt.
//
// Parameters:
//   - message: The prompt message to display
//   - defaultYes: Whether the default is yes (true) or no (false)
//
// Returns:
//   - bool: True if the user confirmed, false otherwise
//   - error: Any error that occurred
func PromptConfirm(message string, defaultYes bool) (bool, error) {
	suffix := "[y/N]"
	if defaultYes {
		suffix = "[Y/n]"
	}

	input, err := Prompt(fmt.Sprintf("%s %s", message, suffix))
	if err != nil {
		return false, err
	}

	input = strings.ToLower(strings.TrimSpace(input))

	if input == "" {
		return defaultYes, nil
	}

	return input == "y" || input == "yes", nil
}

// SelectOption represents an option in a select prompt.
type SelectOption struct {
	// Label is the display text for this option.
	Label string

	// Value is the value returned when this option is selected.
	Value string

	// Description is an optional description shown below the label.
	Description string
}

// Select prompts the user to pick from a numbered list of options. This is
// a blocking read from stdin; there is no concurrent work during the wait.
//
// Parameters:
//   - message: The prompt message to display
//   - options: List of options to choose from
//
// Returns:
//   - int: Index of the selected option
//   - string: Value of the selected option
//   - error: Any error that occurred
func Select(message string, options []SelectOption) (int, string, error) {
	fmt.Println(InfoStyle.Render(message))

	for i, opt := range options {
		number := AccentStyle.Render(fmt.Sprintf("[%d]", i+1))
		fmt.Printf("    %s %s\n", number, InfoStyle.Render(opt.Label))
		if opt.Description != "" {
			fmt.Printf("        %s\n", DimStyle.Render(opt.Description))
		}
	}

	for {
		input, err := Prompt("Select option:")
		if err != nil {
			return -1, "", err
		}

		var selection int
		_, err = fmt.Sscanf(input, "%d", &selection)
		if err != nil || selection < 1 || selection > len(options) {
			PrintWarning("Please enter a number between 1 and %d", len(options))
			continue
		}

		idx := selection - 1
		return idx, options[idx].Value, nil
	}
}
