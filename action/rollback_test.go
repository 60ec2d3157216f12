package action

import (
	// Stdlib
	"errors"
)

var _ = Describe("rolling back an action chain", func() {

	newRecordingChain := func(record *[]string, tasks ...string) *ActionChain {
		chain := NewActionChain()
		for _, task := range tasks {
			task := task
			chain.PushTask(task, ActionFunc(func() error {
				*record = append(*record, task)
				return nil
			}))
		}
		return chain
	}

	It("should run the registered actions in the reverse order", func() {
		var record []string
		chain := newRecordingChain(&record,
			"delete the local branch", "delete the remote branch", "delete the remote tag")

		Expect(chain.Rollback()).To(BeNil())
		Expect(record).To(Equal([]string{
			"delete the remote tag", "delete the remote branch", "delete the local branch"}))
	})

	It("should keep rolling back when an action fails", func() {
		var record []string
		chain := newRecordingChain(&record, "delete the local branch")
		chain.PushTask("delete the remote branch", ActionFunc(func() error {
			return errors.New("remote unreachable")
		}))

		Expect(chain.Rollback()).To(Equal(ErrRollbackFailed))
		Expect(record).To(Equal([]string{"delete the local branch"}))
	})

	It("should only roll back when there is an error", func() {
		var record []string
		chain := newRecordingChain(&record, "delete the local branch")

		var err error
		chain.RollbackOnError(&err)
		Expect(record).To(BeEmpty())

		err = errors.New("push failed")
		chain.RollbackOnError(&err)
		Expect(record).To(Equal([]string{"delete the local branch"}))
	})
})
