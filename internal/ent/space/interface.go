// Package space describes a set of live objects that can be walked by a
// dumper: every object has an identity, a class, instance variables and a
// description, and classes know which modules they include.
package space

// Kind tells if an object is a plain object, a class or a module.
type Kind int

const (
	// PlainKind is any object which class is neither Class nor Module.
	PlainKind Kind = iota

	// ClassKind is an object which class is exactly the Class meta object.
	ClassKind

	// ModuleKind is an object which class is exactly the Module meta object.
	ModuleKind
)

var kindNames = []string{"object", "class", "module"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// NewKind converts a name of a kind to Kind.
func NewKind(s string) (Kind, bool) {
	for i := range kindNames {
		if kindNames[i] == s {
			return Kind(i), true
		}
	}
	return PlainKind, false
}

// Attribute is an instance variable which value is another object.
type Attribute struct {
	Name  string
	Value Object
}

// Object is a handle to a live object.
type Object interface {
	// ID returns identity of the object, unique within its space.
	ID() uint64

	// Class returns the class of the object. It is nil only for objects
	// outside of a class hierarchy.
	Class() Object

	// IncludedModules returns all modules included by a class, flattened
	// transitively. It is empty for objects that are not classes.
	IncludedModules() []Object

	// Attributes returns instance variables that reference other objects.
	Attributes() ([]Attribute, error)

	// Inspect returns a human-readable description of the object.
	Inspect() (string, error)

	// Kind returns the kind of the object.
	Kind() Kind
}

// Space enumerates a point-in-time snapshot of live objects.
type Space interface {
	// Each calls fn for every object. An error returned by fn stops the
	// enumeration and is returned by Each.
	Each(fn func(Object) error) error
}
