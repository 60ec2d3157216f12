package action

import (
	// Stdlib
	"errors"

	// Internal
	"github.com/shahrokhDaijavad/data-prep-kit/errs"
	"github.com/shahrokhDaijavad/data-prep-kit/log"
)

var ErrRollbackFailed = errs.NewError(
	"Roll back changes", errors.New("failed to roll back changes"))

// RollbackOnError is equivalent to RollbackTaskOnError(err, "", action).
func RollbackOnError(err *error, action Action) {
	RollbackTaskOnError(err, "", action)
}

// RollbackTaskOnError wraps an ActionChain to perform a rollback on error.
func RollbackTaskOnError(err *error, task string, action Action) {
	chain := NewActionChain()
	chain.PushTask(task, action)
	chain.RollbackOnError(err)
}

type actionRecord struct {
	task   string
	action Action
}

// ActionChain records actions as the associated operations succeed.
// When something fails later on, Rollback undoes the recorded actions
// in the reverse order.
type ActionChain struct {
	actions []*actionRecord
}

func NewActionChain() *ActionChain {
	return &ActionChain{}
}

func (chain *ActionChain) Push(action Action) {
	chain.PushTask("", action)
}

func (chain *ActionChain) PushTask(task string, action Action) {
	if action != nil {
		chain.actions = append(chain.actions, &actionRecord{task, action})
	}
}

func (chain *ActionChain) Rollback() error {
	var ex error
	for i := range chain.actions {
		act := chain.actions[len(chain.actions)-1-i]

		// Inform the user what is happening.
		if task := act.task; task != "" {
			log.Rollback(task)
		}

		// Run the rollback function registered.
		if err := act.action.Rollback(); err != nil {
			errs.Log(err)
			ex = ErrRollbackFailed
		}
	}
	return ex
}

// RollbackOnError is supposed to be called using defer:
//
//     defer chain.RollbackOnError(&err)
//
// A pointer is being passed in so that the error can be checked
// at the time the deferred function is actually invoked.
func (chain *ActionChain) RollbackOnError(err *error) {
	if *err != nil {
		chain.Rollback()
	}
}
