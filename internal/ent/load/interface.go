package load

// Importer is the interface that wraps the Import method.
type Importer interface {
	// Import materializes CSV dump files in a graph store.
	Import() error
}
