package dumpio

import (
	"fmt"

	"github.com/gnames/objgraph/internal/ent/model"
	"github.com/gnames/objgraph/internal/ent/space"
	"github.com/gnames/objgraph/internal/str"
)

// recordObject saves a node for an object seen for the first time,
// together with its class. It returns false if the object was recorded
// before.
func (d *dumpio) recordObject(o space.Object) (bool, error) {
	isNew, err := d.seen.Add(o.ID())
	if err != nil || !isNew {
		return false, err
	}

	inspect, err := o.Inspect()
	if err != nil {
		return false, fmt.Errorf("cannot inspect object %d: %w", o.ID(), err)
	}

	node := model.Node{
		ID:      o.ID(),
		Inspect: str.Truncate(inspect, model.InspectLimit),
		Labels:  labels(o.Kind()),
	}
	if err = d.write(model.ObjectsFile, node.Row()); err != nil {
		return false, err
	}

	class := o.Class()
	if class == nil {
		return true, nil
	}
	if err = d.recordClass(class); err != nil {
		return false, err
	}

	edge := model.ClassEdge{ObjectID: o.ID(), ClassID: class.ID()}
	if err = d.write(model.ObjectClassesFile, edge.Row()); err != nil {
		return false, err
	}
	return true, nil
}

// recordClass saves a class and, on its first encounter, the modules it
// includes.
func (d *dumpio) recordClass(k space.Object) error {
	isNew, err := d.recordObject(k)
	if err != nil || !isNew {
		return err
	}

	for _, m := range k.IncludedModules() {
		if _, err = d.recordObject(m); err != nil {
			return err
		}
		edge := model.ModuleEdge{ClassID: k.ID(), ModuleID: m.ID()}
		if err = d.write(model.ClassModulesFile, edge.Row()); err != nil {
			return err
		}
	}
	return nil
}

func labels(k space.Kind) []model.Label {
	res := []model.Label{model.ObjectLabel}
	switch k {
	case space.ClassKind:
		res = append(res, model.ClassLabel)
	case space.ModuleKind:
		res = append(res, model.ModuleLabel)
	}
	return res
}
