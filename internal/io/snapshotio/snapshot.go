package snapshotio

// Snapshot is a serialized object space.
type Snapshot struct {
	// Objects are all objects of the space in enumeration order.
	Objects []Entry `json:"objects"`
}

// Entry describes one object of a snapshot.
type Entry struct {
	// ID is a unique positive identity of the object.
	ID uint64 `json:"id"`

	// Kind is "object", "class" or "module". Empty means "object".
	Kind string `json:"kind,omitempty"`

	// Name is a name of a class or a module.
	Name string `json:"name,omitempty"`

	// Class is the identity of the class of an object. It is ignored for
	// classes and modules. Zero means the root Object class.
	Class uint64 `json:"class,omitempty"`

	// Superclass is the identity of the parent of a class. Zero means the
	// root Object class.
	Superclass uint64 `json:"superclass,omitempty"`

	// Modules are identities of modules directly included by a class or a
	// module.
	Modules []uint64 `json:"modules,omitempty"`

	// Attributes are instance variables that reference other objects.
	Attributes []Attribute `json:"attributes,omitempty"`

	// Inspect is a description of the object.
	Inspect string `json:"inspect,omitempty"`
}

// Attribute is an instance variable of an Entry.
type Attribute struct {
	Name string `json:"name"`
	ID   uint64 `json:"id"`
}
