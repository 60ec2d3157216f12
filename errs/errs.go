package errs

import (
	// Internal
	"github.com/shahrokhDaijavad/data-prep-kit/asciiart"
	"github.com/shahrokhDaijavad/data-prep-kit/log"
)

// Error annotates the cause with the task that failed and an optional
// hint to be shown to the user. Errors can be chained by wrapping
// an *Error in another *Error, RootCause unwraps the whole chain.
type Error struct {
	TaskName string
	Err      error
	Hint     string
}

func NewError(task string, err error) *Error {
	return NewErrorWithHint(task, err, "")
}

func NewErrorWithHint(task string, err error, hint string) *Error {
	return &Error{
		TaskName: task,
		Err:      err,
		Hint:     hint,
	}
}

func (err *Error) Error() string {
	return err.Err.Error()
}

func (err *Error) Unwrap() error {
	return err.Err
}

func (err *Error) RootCause() error {
	cause := err.Err
	for {
		ex, ok := cause.(*Error)
		if !ok {
			return cause
		}
		cause = ex.Err
	}
}

func (err *Error) Log(logger log.Logger) {
	// Walk the chain from the outermost task and print every
	// task name encountered, then the root cause and the hints.
	var hints []string
	ex := err
	for {
		logger.Fail(ex.TaskName)
		if ex.Hint != "" {
			hints = append(hints, ex.Hint)
		}
		inner, ok := ex.Err.(*Error)
		if !ok {
			break
		}
		ex = inner
	}
	if cause := ex.Err; cause != nil {
		logger.NewLine("(error = " + cause.Error() + ")")
	}
	for _, hint := range hints {
		logger.Println(hint)
	}
}

func (err *Error) Fatal(logger log.Logger) {
	err.Log(logger)
	asciiart.PrintGrimReaper("the operation failed")
	logger.Fatalln("\nError: " + err.RootCause().Error())
}

// Log logs the given error and returns it again so that it can be
// passed up the call stack in the same statement.
func Log(err error) error {
	logger := log.V(log.Info)
	if ex, ok := err.(*Error); ok {
		ex.Log(logger)
	} else {
		logger.Fail(err.Error())
	}
	return err
}

func LogError(task string, err error) {
	Log(NewError(task, err))
}

func Fatal(err error) {
	logger := log.V(log.Info)
	if ex, ok := err.(*Error); ok {
		ex.Fatal(logger)
	}
	asciiart.PrintGrimReaper("the operation failed")
	logger.Fatalln("\nError: " + err.Error())
}

func RootCause(err error) error {
	if ex, ok := err.(*Error); ok {
		return ex.RootCause()
	}
	return err
}
