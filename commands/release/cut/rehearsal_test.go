package cutCmd

var _ = Describe("cleaning up after a previous rehearsal", func() {

	const (
		trunkBranch = "dev"
		nextBranch  = "release_next_pending"
	)

	It("should return to the trunk branch when still on the next-version branch", func() {
		steps := rehearsalCleanupSteps(nextBranch, trunkBranch, nextBranch)

		Expect(len(steps)).To(Equal(2))
		Expect(steps[0].task).To(ContainSubstring("Drop the uncommitted changes"))
		Expect(steps[0].task).To(ContainSubstring(nextBranch))
		Expect(steps[1].task).To(ContainSubstring("Checkout branch"))
		Expect(steps[1].task).To(ContainSubstring(trunkBranch))
	})

	It("should do nothing when the working copy sits elsewhere", func() {
		Expect(rehearsalCleanupSteps(trunkBranch, trunkBranch, nextBranch)).To(BeEmpty())
	})
})
