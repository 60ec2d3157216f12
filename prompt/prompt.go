package prompt

import (
	// Stdlib
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	// Vendor
	"github.com/bgentry/speakeasy"
)

var ErrCanceled = errors.New("operation canceled")

// Confirm asks the user a y/N question. An empty answer means no.
func Confirm(question string) (bool, error) {
	printQuestion := func() {
		fmt.Print(question)
		fmt.Print(" [y/N]: ")
	}
	printQuestion()

	var line string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line = strings.ToLower(scanner.Text())
		switch line {
		case "":
			line = "n"
		case "y":
		case "n":
		default:
			printQuestion()
			continue
		}
		break
	}
	if err := scanner.Err(); err != nil {
		return false, err
	}

	return line == "y", nil
}

// AskSecret prompts for a value without echoing it to the terminal.
func AskSecret(question string) (string, error) {
	answer, err := speakeasy.Ask(question + ": ")
	if err != nil {
		return "", err
	}
	if answer == "" {
		return "", ErrCanceled
	}
	return answer, nil
}
