package git

import (
	"errors"
	"fmt"
)

var ErrDirtyRepository = errors.New("the repository is dirty")

type ErrBranchNotSynchronized struct {
	Branch string
	Remote string
}

func (err *ErrBranchNotSynchronized) Error() string {
	return fmt.Sprintf("branch '%v' is not in sync with remote '%v'", err.Branch, err.Remote)
}
