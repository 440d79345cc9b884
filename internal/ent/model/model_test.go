package model_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/gnames/objgraph/internal/ent/model"
)

var _ = Describe("Model", func() {
	Describe("Node", func() {
		It("joins labels with semicolon", func() {
			n := model.Node{
				ID:      42,
				Inspect: "Foo",
				Labels:  []model.Label{model.ObjectLabel, model.ClassLabel},
			}
			Expect(n.Row()).To(Equal([]string{"42", "Foo", "Object;Class"}))
		})
	})

	Describe("edges", func() {
		It("converts edges to rows", func() {
			Expect(model.AttributeEdge{OwnerID: 1, TargetID: 2, Name: "@a"}.Row()).
				To(Equal([]string{"1", "2", "@a"}))
			Expect(model.ClassEdge{ObjectID: 1, ClassID: 3}.Row()).
				To(Equal([]string{"1", "3"}))
			Expect(model.ModuleEdge{ClassID: 3, ModuleID: 4}.Row()).
				To(Equal([]string{"3", "4"}))
		})
	})

	Describe("File", func() {
		It("describes dump files", func() {
			Expect(model.Files).To(HaveLen(4))
			Expect(model.ObjectsFile.Name()).To(Equal("objects"))
			Expect(model.ObjectsFile.Header()).
				To(Equal([]string{"object_id:ID", "inspect", ":LABEL"}))
			Expect(model.ObjectsFile.RelType()).To(BeEmpty())
			Expect(model.InstanceVariablesFile.Header()).
				To(Equal([]string{":START_ID", ":END_ID", "variable"}))
			Expect(model.ObjectClassesFile.RelType()).To(Equal(model.HasClass))
			Expect(model.ClassModulesFile.Name()).To(Equal("class_modules"))
			Expect(model.ClassModulesFile.RelType()).To(Equal(model.IncludesModule))
		})
	})
})
