package csvq_test

import (
	"bytes"
	"io"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/gnames/objgraph/internal/csvq"
)

var _ = Describe("Writer", func() {
	write := func(rows ...[]string) string {
		var buf bytes.Buffer
		w := csvq.NewWriter(&buf)
		for _, r := range rows {
			Expect(w.Write(r)).To(Succeed())
		}
		Expect(w.Flush()).To(Succeed())
		return buf.String()
	}

	It("separates fields with tabs and rows with newlines", func() {
		res := write([]string{"object_id:ID", "inspect", ":LABEL"},
			[]string{"1", "#<Foo>", "Object"})
		Expect(res).To(Equal("object_id:ID\tinspect\t:LABEL\n1\t#<Foo>\tObject\n"))
	})

	It("quotes fields with special characters", func() {
		res := write([]string{"a\tb", "it's", "x\ny", ""})
		Expect(res).To(Equal("'a\tb'\t'it''s'\t'x\ny'\t''\n"))
	})

	It("does not quote double quotes", func() {
		Expect(write([]string{`"Foo"`})).To(Equal("\"Foo\"\n"))
	})
})

var _ = Describe("Reader", func() {
	It("reads what Writer wrote", func() {
		rows := [][]string{
			{"1", "#<Foo @a=\"it's\">", "Object"},
			{"2", "multi\nline\ttext", "Object;Class"},
			{"3", "", "Object;Module"},
		}
		var buf bytes.Buffer
		w := csvq.NewWriter(&buf)
		for _, r := range rows {
			Expect(w.Write(r)).To(Succeed())
		}
		Expect(w.Flush()).To(Succeed())

		r := csvq.NewReader(&buf)
		for _, want := range rows {
			got, err := r.Read()
			Expect(err).ToNot(HaveOccurred())
			Expect(got).To(Equal(want))
		}
		_, err := r.Read()
		Expect(err).To(Equal(io.EOF))
	})

	It("reads the last row without newline", func() {
		r := csvq.NewReader(strings.NewReader("1\t2"))
		got, err := r.Read()
		Expect(err).ToNot(HaveOccurred())
		Expect(got).To(Equal([]string{"1", "2"}))
	})

	It("reports unclosed quotes", func() {
		r := csvq.NewReader(strings.NewReader("1\t'abc\n"))
		_, err := r.Read()
		Expect(err).To(Equal(csvq.ErrQuote))
	})

	It("supports other separators", func() {
		r := csvq.NewReader(strings.NewReader("|a,b|,c\n"))
		r.Comma = ','
		r.Quote = '|'
		got, err := r.Read()
		Expect(err).ToNot(HaveOccurred())
		Expect(got).To(Equal([]string{"a,b", "c"}))
	})
})
