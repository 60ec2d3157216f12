package git

import (
	// Stdlib
	"bytes"
	"fmt"
	"strings"

	// Internal
	"github.com/shahrokhDaijavad/data-prep-kit/errs"
	"github.com/shahrokhDaijavad/data-prep-kit/git/gitutil"
)

func Branch(args ...string) error {
	_, err := RunCommand("branch", args...)
	return err
}

func Checkout(args ...string) error {
	_, err := RunCommand("checkout", args...)
	return err
}

func Commit(args ...string) error {
	_, err := RunCommand("commit", args...)
	return err
}

func Status(args ...string) (stdout *bytes.Buffer, err error) {
	return RunCommand("status", args...)
}

func Tag(args ...string) error {
	_, err := RunCommand("tag", args...)
	return err
}

// SignedTag creates an annotated, signed tag pointing at HEAD.
func SignedTag(tag, message string) error {
	return Tag("-s", "-a", tag, "-m", message)
}

func DeleteTag(tag string) error {
	return Tag("-d", tag)
}

func DeleteRemoteTag(remote, tag string) error {
	_, err := Run("push", remote, ":refs/tags/"+tag)
	return err
}

func DeleteRemoteBranch(remote, branch string) error {
	_, err := Run("push", remote, ":refs/heads/"+branch)
	return err
}

func Push(remote string, args ...string) error {
	argsList := make([]string, 3, 3+len(args))
	argsList[0], argsList[1], argsList[2] = "push", "-u", remote
	argsList = append(argsList, args...)
	_, err := Run(argsList...)
	return err
}

func PushTag(remote, tag string) error {
	_, err := Run("push", remote, "refs/tags/"+tag)
	return err
}

func UpdateRemotes(remotes ...string) error {
	argsList := append([]string{"remote", "update"}, remotes...)
	_, err := Run(argsList...)
	return err
}

// RefExistsStrict requires the whole ref path to be specified,
// e.g. refs/heads/master.
func RefExistsStrict(ref string) (exists bool, err error) {
	task := fmt.Sprintf("Check whether ref '%v' exists", ref)
	_, err = Run("show-ref", "--verify", "--quiet", ref)
	if err != nil {
		// In case the ref does not exist, git show-ref just returns
		// a non-zero exit code without printing anything to stderr.
		if ex, ok := err.(*errs.Error); ok && ex.Hint == "" {
			return false, nil
		}
		return false, errs.NewError(task, err)
	}
	return true, nil
}

func LocalBranchExists(branch string) (exists bool, err error) {
	return RefExistsStrict("refs/heads/" + branch)
}

func RemoteBranchExists(branch string, remote string) (exists bool, err error) {
	return RefExistsStrict(fmt.Sprintf("refs/remotes/%v/%v", remote, branch))
}

func TagExists(tag string) (exists bool, err error) {
	return RefExistsStrict("refs/tags/" + tag)
}

func RemoteTagExists(tag, remote string) (exists bool, err error) {
	task := fmt.Sprintf("Check whether tag '%v' exists in remote '%v'", tag, remote)
	stdout, err := Run("ls-remote", "--tags", remote, "refs/tags/"+tag)
	if err != nil {
		return false, errs.NewError(task, err)
	}
	return stdout.Len() != 0, nil
}

func EnsureBranchNotExist(branch string, remote string) error {
	exists, err := LocalBranchExists(branch)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("branch '%v' already exists", branch)
	}

	exists, err = RemoteBranchExists(branch, remote)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("branch '%v' already exists in remote '%v'", branch, remote)
	}
	return nil
}

func EnsureTagNotExist(tag string, remote string) error {
	exists, err := TagExists(tag)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("tag '%v' already exists", tag)
	}

	exists, err = RemoteTagExists(tag, remote)
	if err != nil {
		return err
	}
	if exists {
		return fmt.Errorf("tag '%v' already exists in remote '%v'", tag, remote)
	}
	return nil
}

func Hexsha(ref string) (hexsha string, err error) {
	stdout, err := Run("show-ref", "--verify", ref)
	if err != nil {
		return "", err
	}

	return strings.Split(stdout.String(), " ")[0], nil
}

func EnsureBranchSynchronized(branch, remote string) error {
	exists, err := RemoteBranchExists(branch, remote)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	var (
		localRef  = "refs/heads/" + branch
		remoteRef = "refs/remotes/" + remote + "/" + branch
	)
	localHexsha, err := Hexsha(localRef)
	if err != nil {
		return err
	}
	remoteHexsha, err := Hexsha(remoteRef)
	if err != nil {
		return err
	}

	if localHexsha != remoteHexsha {
		return &ErrBranchNotSynchronized{branch, remote}
	}
	return nil
}

func EnsureCleanWorkingTree() error {
	status, err := Run("status", "--porcelain")
	if err != nil {
		return err
	}
	if status.Len() != 0 {
		return ErrDirtyRepository
	}
	return nil
}

// ResetHard resets the current branch and the working tree to HEAD,
// discarding any uncommitted changes.
func ResetHard() error {
	_, err := Run("reset", "--hard")
	return err
}

func CurrentBranch() (branch string, err error) {
	return gitutil.CurrentBranch()
}

func GetConfigString(key string) (value string, err error) {
	task := fmt.Sprintf("Run 'git config %v'", key)
	stdout, err := Run("config", key)
	if err != nil {
		// git config returns exit code 1 when the key is not set.
		// This can be detected by the error hint being empty.
		// We treat this as the key being set to "".
		if ex, ok := err.(*errs.Error); ok && ex.Hint == "" {
			return "", nil
		}
		return "", errs.NewError(task, err)
	}
	return strings.TrimSpace(stdout.String()), nil
}

func SetConfigString(key string, value string) error {
	task := fmt.Sprintf("Run 'git config %v %v'", key, value)
	if _, err := Run("config", key, value); err != nil {
		return errs.NewError(task, err)
	}
	return nil
}

func Run(args ...string) (stdout *bytes.Buffer, err error) {
	return gitutil.Run(args...)
}

func RunCommand(command string, args ...string) (stdout *bytes.Buffer, err error) {
	return gitutil.RunCommand(command, args...)
}
