package cutCmd

import (
	// Internal
	"github.com/shahrokhDaijavad/data-prep-kit/version"
)

func mustParse(versionString string) *version.Version {
	ver, err := version.Parse(versionString)
	if err != nil {
		panic(err)
	}
	return ver
}

var _ = Describe("computing the release tag", func() {

	It("should use the 'v' prefix in normal mode", func() {
		Expect(releaseTag(mustParse("1.2.3"), false)).To(Equal("v1.2.3"))
	})

	It("should use the 'test' prefix in debug mode", func() {
		Expect(releaseTag(mustParse("1.2.3"), true)).To(Equal("test1.2.3"))
	})
})

var _ = Describe("computing the next development version", func() {

	It("should increment the micro version by default", func() {
		flagNextVersion = version.Version{}

		next, err := computeNextVersion(mustParse("1.2.3"))

		Expect(err).To(BeNil())
		Expect(next.String()).To(Equal("1.2.4"))
	})

	It("should respect the -next_version flag when it is an increment", func() {
		flagNextVersion = *mustParse("1.3.0")
		defer func() { flagNextVersion = version.Version{} }()

		next, err := computeNextVersion(mustParse("1.2.3"))

		Expect(err).To(BeNil())
		Expect(next.String()).To(Equal("1.3.0"))
	})

	It("should reject a -next_version that is not an increment", func() {
		flagNextVersion = *mustParse("1.2.3")
		defer func() { flagNextVersion = version.Version{} }()

		_, err := computeNextVersion(mustParse("1.2.3"))

		Expect(err).ToNot(BeNil())
	})
})
