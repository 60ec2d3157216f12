package shell

import (
	"bytes"
	"os/exec"
)

func Run(args ...string) (stdout, stderr *bytes.Buffer, err error) {
	return RunInDir("", args...)
}

// RunInDir runs the given command with the working directory set to dir.
// An empty dir means the current working directory.
func RunInDir(dir string, args ...string) (stdout, stderr *bytes.Buffer, err error) {
	stdout = new(bytes.Buffer)
	stderr = new(bytes.Buffer)

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Dir = dir

	cmd.Stdout = stdout
	cmd.Stderr = stderr

	err = cmd.Run()

	return
}
