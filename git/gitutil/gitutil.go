package gitutil

import (
	// Stdlib
	"bytes"
	"fmt"

	// Internal
	"github.com/shahrokhDaijavad/data-prep-kit/errs"
	"github.com/shahrokhDaijavad/data-prep-kit/log"
	"github.com/shahrokhDaijavad/data-prep-kit/shell"
)

func Run(args ...string) (stdout *bytes.Buffer, err error) {
	argsList := make([]string, 1, 1+len(args))
	argsList[0] = "--no-pager"
	argsList = append(argsList, args...)

	task := fmt.Sprintf("Run git with args = %#v", args)
	log.V(log.Debug).Log(task)
	stdout, stderr, err := shell.Run(append([]string{"git"}, argsList...)...)
	if err != nil {
		return nil, errs.NewErrorWithHint(task, err, stderr.String())
	}
	return stdout, nil
}

func RunCommand(command string, args ...string) (stdout *bytes.Buffer, err error) {
	argsList := make([]string, 2, 2+len(args))
	argsList[0], argsList[1] = "--no-pager", command
	argsList = append(argsList, args...)

	task := fmt.Sprintf("Run 'git %v' with args = %#v", command, args)
	log.V(log.Debug).Log(task)
	stdout, stderr, err := shell.Run(append([]string{"git"}, argsList...)...)
	if err != nil {
		return nil, errs.NewErrorWithHint(task, err, stderr.String())
	}
	return stdout, nil
}

func RepositoryRootAbsolutePath() (path string, err error) {
	task := "Get the repository root absolute path"
	stdout, err := Run("rev-parse", "--show-toplevel")
	if err != nil {
		return "", errs.NewError(task, err)
	}
	return string(bytes.TrimSpace(stdout.Bytes())), nil
}

func CurrentBranch() (branch string, err error) {
	stdout, err := Run("symbolic-ref", "--short", "HEAD")
	if err != nil {
		return "", err
	}

	return string(bytes.TrimSpace(stdout.Bytes())), nil
}
