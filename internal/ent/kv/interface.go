package kv

// Set keeps identities of objects that were already recorded.
type Set interface {
	// Open prepares the set for use.
	Open() error

	// Close releases resources of the set.
	Close() error

	// Add inserts an identity. It returns true if the identity was not in
	// the set before.
	Add(id uint64) (bool, error)

	// Len returns the number of identities in the set.
	Len() int
}
