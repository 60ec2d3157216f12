package metafile

import (
	// Stdlib
	"testing"

	// Vendor - testing framework
	"github.com/onsi/ginkgo"
	"github.com/onsi/gomega"
)

var (
	BeforeEach = ginkgo.BeforeEach
	Describe   = ginkgo.Describe
	It         = ginkgo.It

	BeNil  = gomega.BeNil
	Equal  = gomega.Equal
	Expect = gomega.Expect
)

func TestMetafile(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Metafile")
}
