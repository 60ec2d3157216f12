package metafile

const testingContent = `# Global project version numbers.
# These values are propagated by the set-versions target.

DPK_MAJOR_VERSION=1
DPK_MINOR_VERSION=2
DPK_MICRO_VERSION=3
DPK_VERSION_SUFFIX=.dev7

# Component versions derived from the ones above.
DPK_LIB_VERSION=2.0.0
`

var _ = Describe("the version metadata file", func() {

	var file *File

	BeforeEach(func() {
		file = parse([]byte(testingContent), ".make.versions")
	})

	It("should return the values for the recognized keys", func() {
		for key, expected := range map[string]string{
			KeyMajorVersion:  "1",
			KeyMinorVersion:  "2",
			KeyMicroVersion:  "3",
			KeyVersionSuffix: ".dev7",
		} {
			value, err := file.Get(key)
			Expect(err).To(BeNil())
			Expect(value).To(Equal(expected))
		}
	})

	It("should fail for a key that is not present", func() {
		_, err := file.Get("DPK_BOGUS")

		Expect(err).ToNot(BeNil())
		_, ok := err.(*ErrKeyNotFound)
		Expect(ok).To(Equal(true))
	})

	It("should rewrite a value in place", func() {
		err := file.Set(KeyMicroVersion, "4")
		Expect(err).To(BeNil())

		value, err := file.Get(KeyMicroVersion)
		Expect(err).To(BeNil())
		Expect(value).To(Equal("4"))
	})

	It("should leave all other lines byte-for-byte intact", func() {
		err := file.SetSuffix("")
		Expect(err).To(BeNil())

		expected := `# Global project version numbers.
# These values are propagated by the set-versions target.

DPK_MAJOR_VERSION=1
DPK_MINOR_VERSION=2
DPK_MICRO_VERSION=3
DPK_VERSION_SUFFIX=

# Component versions derived from the ones above.
DPK_LIB_VERSION=2.0.0
`
		Expect(string(file.Bytes())).To(Equal(expected))
	})

	It("should not match keys that only share a prefix", func() {
		// DPK_MICRO_VERSION must not touch DPK_MICRO_VERSION_SUFFIX-like keys
		// and vice versa, the whole key has to match.
		other := parse([]byte("DPK_VERSION_SUFFIX_OLD=.dev1\nDPK_VERSION_SUFFIX=.dev2\n"), "f")

		err := other.Set(KeyVersionSuffix, ".dev3")
		Expect(err).To(BeNil())

		value, err := other.Get("DPK_VERSION_SUFFIX_OLD")
		Expect(err).To(BeNil())
		Expect(value).To(Equal(".dev1"))

		value, err = other.Get(KeyVersionSuffix)
		Expect(err).To(BeNil())
		Expect(value).To(Equal(".dev3"))
	})

	It("should assemble the base version from the version keys", func() {
		ver, err := file.BaseVersion()

		Expect(err).To(BeNil())
		Expect(ver.String()).To(Equal("1.2.3"))
	})

	It("should assemble the full version string including the suffix", func() {
		versionString, err := file.VersionString()

		Expect(err).To(BeNil())
		Expect(versionString).To(Equal("1.2.3.dev7"))
	})

	It("should set the base version across the version keys", func() {
		ver, err := file.BaseVersion()
		Expect(err).To(BeNil())

		err = file.SetBaseVersion(ver.IncrementMicro())
		Expect(err).To(BeNil())
		err = file.SetSuffix(".dev0")
		Expect(err).To(BeNil())

		versionString, err := file.VersionString()
		Expect(err).To(BeNil())
		Expect(versionString).To(Equal("1.2.4.dev0"))
	})
})

var _ = Describe("metadata files using spaced assignments", func() {

	It("should preserve the assignment formatting", func() {
		file := parse([]byte("DPK_MICRO_VERSION ?= 3\n"), "f")

		err := file.SetMicroVersion(4)
		Expect(err).To(BeNil())

		Expect(string(file.Bytes())).To(Equal("DPK_MICRO_VERSION ?= 4\n"))
	})
})
