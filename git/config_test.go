package git

import (
	// Vendor
	"gopkg.in/yaml.v2"
)

var _ = Describe("the git-related local configuration", func() {

	It("should fill in the defaults for the missing keys", func() {
		var local LocalConfig
		local.fillDefaults()

		Expect(local.Git.Remote).To(Equal(DefaultRemoteName))
		Expect(local.Git.Branches.Trunk).To(Equal(DefaultTrunkBranchName))
		Expect(local.Git.Branches.ReleasePrefix).To(Equal(DefaultReleaseBranchPrefix))
		Expect(local.Git.Branches.Next).To(Equal(DefaultNextReleaseBranchName))
	})

	It("should keep the keys that are set explicitly", func() {
		content := `
git:
  remote: upstream
  branches:
    trunk: main
`
		var local LocalConfig
		err := yaml.Unmarshal([]byte(content), &local)
		Expect(err).To(BeNil())
		local.fillDefaults()

		Expect(local.Git.Remote).To(Equal("upstream"))
		Expect(local.Git.Branches.Trunk).To(Equal("main"))
		Expect(local.Git.Branches.ReleasePrefix).To(Equal(DefaultReleaseBranchPrefix))
		Expect(local.Git.Branches.Next).To(Equal(DefaultNextReleaseBranchName))
	})
})

var _ = Describe("computing the release branch name", func() {

	It("should join the configured prefix and the release tag", func() {
		config := &Config{ReleaseBranchPrefix: DefaultReleaseBranchPrefix}

		Expect(config.ReleaseBranchName("v1.2.3")).To(Equal("releases/v1.2.3"))
		Expect(config.ReleaseBranchName("test1.2.3")).To(Equal("releases/test1.2.3"))
	})
})
