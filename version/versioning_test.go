package version

import (
	"fmt"
)

var _ = Describe("parsing a version string", func() {

	It("should accept a plain major.minor.micro version", func() {
		ver, err := Parse("1.2.3")

		Expect(err).To(BeNil())
		Expect(ver.Major).To(Equal(uint64(1)))
		Expect(ver.Minor).To(Equal(uint64(2)))
		Expect(ver.Patch).To(Equal(uint64(3)))
	})

	It("should reject incomplete version strings", func() {
		for _, versionString := range []string{"1", "1.2", "bogus", ""} {
			_, err := Parse(versionString)
			Expect(err).ToNot(BeNil())
		}
	})

	It("should reject pre-release and build components", func() {
		for _, versionString := range []string{"1.2.3-rc1", "1.2.3+build.1"} {
			_, err := Parse(versionString)
			Expect(err).ToNot(BeNil())
		}
	})
})

var _ = Describe("parsing a version string with a development suffix", func() {

	type testingData struct {
		versionString  string
		expectedBase   string
		expectedSuffix string
		expectingError bool
	}

	data := []testingData{
		{"1.2.3", "1.2.3", "", false},
		{"1.2.3.dev0", "1.2.3", ".dev0", false},
		{"1.2.3.dev7", "1.2.3", ".dev7", false},
		{"1.2.3.dev", "", "", true},
		{"1.2.3.devX", "", "", true},
		{"1.2.dev0", "", "", true},
	}

	for _, td := range data {
		func(d testingData) {

			Context(fmt.Sprintf("%+v", d), func() {

				It("should return expected results", func() {
					ver, suffix, err := ParseWithSuffix(d.versionString)

					if d.expectingError {
						Expect(err).ToNot(BeNil())
						return
					}
					Expect(err).To(BeNil())
					Expect(ver.String()).To(Equal(d.expectedBase))
					Expect(suffix).To(Equal(d.expectedSuffix))
				})
			})
		}(td)
	}
})

var _ = Describe("incrementing the micro version", func() {

	It("should increment the micro version only", func() {
		ver, err := Parse("1.2.3")
		Expect(err).To(BeNil())

		next := ver.IncrementMicro()

		Expect(next.String()).To(Equal("1.2.4"))
		// The original version is left untouched.
		Expect(ver.String()).To(Equal("1.2.3"))
	})
})

var _ = Describe("computing the tag strings", func() {

	It("should prefix the release tag with 'v'", func() {
		ver, err := Parse("1.2.3")
		Expect(err).To(BeNil())

		Expect(ver.ReleaseTagString()).To(Equal("v1.2.3"))
	})

	It("should prefix the rehearsal tag with 'test'", func() {
		ver, err := Parse("1.2.3")
		Expect(err).To(BeNil())

		Expect(ver.TestTagString()).To(Equal("test1.2.3"))
	})
})

var _ = Describe("converting a release tag back to a version", func() {

	It("should strip the 'v' prefix", func() {
		ver, err := FromTag("v1.2.3")

		Expect(err).To(BeNil())
		Expect(ver.String()).To(Equal("1.2.3"))
	})

	It("should reject tags that are not release tags", func() {
		for _, tag := range []string{"1.2.3", "test1.2.3", "release"} {
			_, err := FromTag(tag)
			Expect(err).ToNot(BeNil())
		}
	})
})

var _ = Describe("handling development suffixes", func() {

	It("should format the suffix for the given iteration", func() {
		Expect(DevSuffix(0)).To(Equal(".dev0"))
		Expect(DevSuffix(7)).To(Equal(".dev7"))
		Expect(FirstDevSuffix).To(Equal(DevSuffix(0)))
	})

	It("should parse valid suffixes", func() {
		n, err := ParseDevSuffix(".dev42")

		Expect(err).To(BeNil())
		Expect(n).To(Equal(uint64(42)))
	})

	It("should reject invalid suffixes", func() {
		for _, suffix := range []string{"", "dev0", ".dev", ".devX", ".dev0extra"} {
			_, err := ParseDevSuffix(suffix)
			Expect(err).ToNot(BeNil())
		}
	})
})
