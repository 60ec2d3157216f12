package version

import (
	// Stdlib
	"testing"

	// Vendor - testing framework
	"github.com/onsi/ginkgo"
	"github.com/onsi/gomega"
)

var (
	Context  = ginkgo.Context
	Describe = ginkgo.Describe
	It       = ginkgo.It

	BeEmpty = gomega.BeEmpty
	BeNil   = gomega.BeNil
	BeTrue  = gomega.BeTrue
	Equal   = gomega.Equal
	Expect  = gomega.Expect
)

func TestVersion(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Version")
}
