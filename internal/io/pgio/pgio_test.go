package pgio

import (
	"errors"
	"math"
	"reflect"

	"github.com/jinzhu/gorm"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/gnames/objgraph/internal/ent/model"
)

var _ = Describe("rowValues", func() {
	It("converts object rows", func() {
		res, err := rowValues(model.ObjectsFile, []string{"12", "#<Foo>", "Object"})
		Expect(err).ToNot(HaveOccurred())
		Expect(res).To(Equal([]any{int64(12), "#<Foo>", "Object"}))
	})

	It("converts relationship rows", func() {
		res, err := rowValues(model.InstanceVariablesFile, []string{"1", "2", "@a"})
		Expect(err).ToNot(HaveOccurred())
		Expect(res).To(Equal([]any{int64(1), int64(2), "INSTANCE_VARIABLE", "@a"}))

		res, err = rowValues(model.ObjectClassesFile, []string{"1", "3"})
		Expect(err).ToNot(HaveOccurred())
		Expect(res).To(Equal([]any{int64(1), int64(3), "HAS_CLASS", ""}))
	})

	It("rejects bad rows", func() {
		_, err := rowValues(model.ClassModulesFile, []string{"1"})
		Expect(err).To(HaveOccurred())
		_, err = rowValues(model.ClassModulesFile, []string{"1", "x"})
		Expect(err).To(HaveOccurred())
		_, err = rowValues(model.ObjectsFile, []string{"-1", "a", "Object"})
		Expect(err).To(HaveOccurred())
		_, err = rowValues(model.ObjectsFile, []string{"18446744073709551616", "a", "Object"})
		Expect(err).To(HaveOccurred())
	})

	It("keeps identities above the signed range", func() {
		res, err := rowValues(model.ObjectClassesFile,
			[]string{"9223372036854775808", "18446744073709551615"})
		Expect(err).ToNot(HaveOccurred())
		Expect(res).To(Equal([]any{
			int64(math.MinInt64), int64(-1), "HAS_CLASS", "",
		}))
		Expect(ToID(res[0].(int64))).To(Equal(uint64(1) << 63))
		Expect(ToID(res[1].(int64))).To(Equal(uint64(math.MaxUint64)))

		res, err = rowValues(model.ObjectsFile,
			[]string{"18446744073709551615", "#<Foo>", "Object"})
		Expect(err).ToNot(HaveOccurred())
		Expect(res[0]).To(Equal(int64(-1)))
	})
})

type fakeMigrator struct {
	err    error
	models []interface{}
}

func (f *fakeMigrator) AutoMigrate(values ...interface{}) *gorm.DB {
	f.models = values
	return &gorm.DB{Error: f.err}
}

var _ = Describe("migrateModels", func() {
	It("creates objects and relationships tables", func() {
		m := &fakeMigrator{}
		Expect(migrateModels(m)).To(Succeed())
		Expect(m.models).To(HaveLen(2))
	})

	It("returns errors of the migration scope", func() {
		errMigrate := errors.New("permission denied")
		err := migrateModels(&fakeMigrator{err: errMigrate})
		Expect(err).To(MatchError(errMigrate))
	})
})

var _ = Describe("Relationship", func() {
	It("stores variable names of any length", func() {
		fld, ok := reflect.TypeOf(Relationship{}).FieldByName("Variable")
		Expect(ok).To(BeTrue())
		Expect(fld.Tag.Get("gorm")).To(Equal("type:text"))
	})
})
