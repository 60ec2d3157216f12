package git

import (
	// Stdlib
	"testing"

	// Vendor - testing framework
	"github.com/onsi/ginkgo"
	"github.com/onsi/gomega"
)

var (
	Describe = ginkgo.Describe
	It       = ginkgo.It

	BeNil  = gomega.BeNil
	Equal  = gomega.Equal
	Expect = gomega.Expect
)

func TestGitUtilities(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Git Utilities")
}
