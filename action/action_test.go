package action

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

	BeEmpty = gomega.BeEmpty
	BeNil   = gomega.BeNil
	Equal   = gomega.Equal
	Expect  = gomega.Expect
)

func TestActionChain(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "Action Chain")
}
