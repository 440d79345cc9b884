package space

import (
	"fmt"
	"slices"
)

// Graph is an explicitly constructed object space. It always contains
// the Class and Module meta objects and the root Object class.
type Graph struct {
	nodes    []*Node
	byID     map[uint64]*Node
	nextID   uint64
	reserved func(uint64) bool

	classMeta   *Node
	moduleMeta  *Node
	objectClass *Node
}

// Option changes settings of a Graph.
type Option func(*Graph)

// OptFirstID sets the identity given to the first automatically numbered
// object. Use it to keep meta objects away from identities created
// explicitly with Add.
func OptFirstID(id uint64) Option {
	return func(g *Graph) {
		if id > 0 {
			g.nextID = id
		}
	}
}

// OptReserved marks identities that automatic numbering must skip, for
// example identities that will be created later with Add.
func OptReserved(fn func(id uint64) bool) Option {
	return func(g *Graph) {
		g.reserved = fn
	}
}

// NewGraph creates a Graph with Class, Module and Object already in it.
func NewGraph(opts ...Option) *Graph {
	g := &Graph{
		byID:   make(map[uint64]*Node),
		nextID: 1,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.classMeta = g.addNode("Class")
	g.classMeta.class = g.classMeta
	g.moduleMeta = g.addNode("Module")
	g.moduleMeta.class = g.classMeta
	g.objectClass = g.addNode("Object")
	g.objectClass.class = g.classMeta
	g.classMeta.super = g.moduleMeta
	g.moduleMeta.super = g.objectClass
	return g
}

// ClassMeta returns the class of all classes.
func (g *Graph) ClassMeta() *Node {
	return g.classMeta
}

// ModuleMeta returns the class of all modules.
func (g *Graph) ModuleMeta() *Node {
	return g.moduleMeta
}

// ObjectClass returns the root class.
func (g *Graph) ObjectClass() *Node {
	return g.objectClass
}

// Len returns the number of objects in the graph.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Get finds an object by its identity.
func (g *Graph) Get(id uint64) (*Node, bool) {
	n, ok := g.byID[id]
	return n, ok
}

// Add creates an object with the given identity. The object has no class
// until SetClass is called. Identity 0 means the next free identity.
func (g *Graph) Add(id uint64) (*Node, error) {
	if id == 0 {
		return g.addNode(""), nil
	}
	if _, ok := g.byID[id]; ok {
		return nil, fmt.Errorf("object %d already exists", id)
	}
	n := &Node{graph: g, id: id}
	g.insert(n)
	return n, nil
}

// AddClass creates a class. A nil superclass means Object.
func (g *Graph) AddClass(name string, super *Node) *Node {
	n := g.addNode(name)
	n.class = g.classMeta
	if super == nil {
		super = g.objectClass
	}
	n.super = super
	return n
}

// AddModule creates a module.
func (g *Graph) AddModule(name string) *Node {
	n := g.addNode(name)
	n.class = g.moduleMeta
	return n
}

// AddObject creates an instance of a class.
func (g *Graph) AddObject(class *Node) *Node {
	n := g.addNode("")
	n.class = class
	return n
}

// Each calls fn for every object in the order they were added. Objects
// added by fn are not visited.
func (g *Graph) Each(fn func(Object) error) error {
	nodes := slices.Clone(g.nodes)
	for _, n := range nodes {
		if err := fn(n); err != nil {
			return err
		}
	}
	return nil
}

func (g *Graph) addNode(name string) *Node {
	for g.taken(g.nextID) {
		g.nextID++
	}
	n := &Node{graph: g, id: g.nextID, name: name}
	g.nextID++
	g.insert(n)
	return n
}

func (g *Graph) taken(id uint64) bool {
	if id == 0 {
		return true
	}
	if _, ok := g.byID[id]; ok {
		return true
	}
	return g.reserved != nil && g.reserved(id)
}

func (g *Graph) insert(n *Node) {
	g.nodes = append(g.nodes, n)
	g.byID[n.id] = n
}
