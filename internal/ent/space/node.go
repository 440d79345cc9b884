package space

import "fmt"

// Node is an object of a Graph.
type Node struct {
	graph    *Graph
	id       uint64
	name     string
	inspect  string
	class    *Node
	super    *Node
	includes []*Node
	attrs    []attr
}

type attr struct {
	name  string
	value *Node
}

// ID returns identity of the object.
func (n *Node) ID() uint64 {
	return n.id
}

// Name returns the name of a class or a module.
func (n *Node) Name() string {
	return n.name
}

// Class returns the class of the object.
func (n *Node) Class() Object {
	if n.class == nil {
		return nil
	}
	return n.class
}

// Kind returns ClassKind or ModuleKind for instances of the meta objects
// and PlainKind for everything else.
func (n *Node) Kind() Kind {
	switch n.class {
	case nil:
		return PlainKind
	case n.graph.classMeta:
		return ClassKind
	case n.graph.moduleMeta:
		return ModuleKind
	default:
		return PlainKind
	}
}

// Attributes returns instance variables in the order they were set.
func (n *Node) Attributes() ([]Attribute, error) {
	res := make([]Attribute, len(n.attrs))
	for i, v := range n.attrs {
		res[i] = Attribute{Name: v.name, Value: v.value}
	}
	return res, nil
}

// IncludedModules returns modules included by the object itself, by the
// modules it includes, and by its superclasses. Every module appears once.
func (n *Node) IncludedModules() []Object {
	var res []Object
	seen := make(map[*Node]struct{})
	var walk func(*Node)
	walk = func(m *Node) {
		for _, inc := range m.includes {
			if _, ok := seen[inc]; ok {
				continue
			}
			seen[inc] = struct{}{}
			res = append(res, inc)
			walk(inc)
		}
	}

	classes := make(map[*Node]struct{})
	for c := n; c != nil; c = c.super {
		if _, ok := classes[c]; ok {
			break
		}
		classes[c] = struct{}{}
		walk(c)
	}
	return res
}

// Inspect returns a description set by SetInspect, or a generated one.
func (n *Node) Inspect() (string, error) {
	if n.inspect != "" {
		return n.inspect, nil
	}
	switch {
	case n.Kind() != PlainKind && n.name != "":
		return n.name, nil
	case n.class != nil && n.class.name != "":
		return fmt.Sprintf("#<%s>", n.class.name), nil
	default:
		return fmt.Sprintf("#<Object:%d>", n.id), nil
	}
}

// SetName sets the name of a class or a module.
func (n *Node) SetName(name string) {
	n.name = name
}

// SetInspect sets the description of the object.
func (n *Node) SetInspect(s string) {
	n.inspect = s
}

// SetClass sets the class of the object.
func (n *Node) SetClass(c *Node) {
	n.class = c
}

// SetSuperclass sets the parent of a class.
func (n *Node) SetSuperclass(c *Node) {
	n.super = c
}

// Include adds a module to a class or a module.
func (n *Node) Include(m *Node) {
	n.includes = append(n.includes, m)
}

// SetAttr adds an instance variable. If the variable exists, its value is
// replaced.
func (n *Node) SetAttr(name string, value *Node) {
	for i := range n.attrs {
		if n.attrs[i].name == name {
			n.attrs[i].value = value
			return
		}
	}
	n.attrs = append(n.attrs, attr{name: name, value: value})
}
