package kvio_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/gnames/objgraph/internal/ent/kv"
	"github.com/gnames/objgraph/internal/io/kvio"
)

func checkSet(s kv.Set) {
	Expect(s.Open()).To(Succeed())
	defer s.Close()

	added, err := s.Add(42)
	Expect(err).ToNot(HaveOccurred())
	Expect(added).To(BeTrue())

	added, err = s.Add(42)
	Expect(err).ToNot(HaveOccurred())
	Expect(added).To(BeFalse())

	added, err = s.Add(7)
	Expect(err).ToNot(HaveOccurred())
	Expect(added).To(BeTrue())
	Expect(s.Len()).To(Equal(2))
}

var _ = Describe("Memory", func() {
	It("reports only the first insertion", func() {
		checkSet(kvio.NewMemory())
	})
})

var _ = Describe("Badger", func() {
	var dir string

	BeforeEach(func() {
		var err error
		dir, err = os.MkdirTemp("", "objgraph-kv")
		Expect(err).ToNot(HaveOccurred())
	})

	AfterEach(func() {
		os.RemoveAll(dir)
	})

	It("reports only the first insertion", func() {
		s, err := kvio.New(filepath.Join(dir, "seen"))
		Expect(err).ToNot(HaveOccurred())
		checkSet(s)
	})

	It("cleans old data on creation", func() {
		path := filepath.Join(dir, "seen")
		s, err := kvio.New(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(s.Open()).To(Succeed())
		_, err = s.Add(1)
		Expect(err).ToNot(HaveOccurred())
		Expect(s.Close()).To(Succeed())

		s, err = kvio.New(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(s.Open()).To(Succeed())
		defer s.Close()
		added, err := s.Add(1)
		Expect(err).ToNot(HaveOccurred())
		Expect(added).To(BeTrue())
	})

	It("fails to add to a closed store", func() {
		s, err := kvio.New(filepath.Join(dir, "seen"))
		Expect(err).ToNot(HaveOccurred())
		_, err = s.Add(1)
		Expect(err).To(HaveOccurred())
	})
})
