package action

// Action represents an undoable operation.
type Action interface {
	Rollback() error
}

// ActionFunc makes it possible to use a plain function as an Action.
type ActionFunc func() error

func (action ActionFunc) Rollback() error {
	return action()
}

// Noop can be returned when there is nothing to roll back,
// but the signature demands an Action.
var Noop = ActionFunc(func() error { return nil })
