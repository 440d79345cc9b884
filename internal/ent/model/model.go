package model

import (
	"strconv"
	"strings"
)

// InspectLimit is the maximum number of characters kept from an object
// description.
const InspectLimit = 500

// Label is a Neo4j node label.
type Label string

const (
	ObjectLabel Label = "Object"
	ClassLabel  Label = "Class"
	ModuleLabel Label = "Module"
)

// RelType is a Neo4j relationship type.
type RelType string

const (
	InstanceVariable RelType = "INSTANCE_VARIABLE"
	HasClass         RelType = "HAS_CLASS"
	IncludesModule   RelType = "INCLUDES_MODULE"
)

// Node is a recorded object.
type Node struct {
	// ID is the identity of the object.
	ID uint64

	// Inspect is a human-readable description of the object, truncated to
	// InspectLimit characters.
	Inspect string

	// Labels always start with ObjectLabel.
	Labels []Label
}

// Row converts the node to CSV fields.
func (n Node) Row() []string {
	labels := make([]string, len(n.Labels))
	for i := range n.Labels {
		labels[i] = string(n.Labels[i])
	}
	return []string{id(n.ID), n.Inspect, strings.Join(labels, ";")}
}

// AttributeEdge connects an object to an object referenced by one of its
// instance variables.
type AttributeEdge struct {
	OwnerID  uint64
	TargetID uint64
	Name     string
}

// Row converts the edge to CSV fields.
func (e AttributeEdge) Row() []string {
	return []string{id(e.OwnerID), id(e.TargetID), e.Name}
}

// ClassEdge connects an object to its class.
type ClassEdge struct {
	ObjectID uint64
	ClassID  uint64
}

// Row converts the edge to CSV fields.
func (e ClassEdge) Row() []string {
	return []string{id(e.ObjectID), id(e.ClassID)}
}

// ModuleEdge connects a class to a module it includes.
type ModuleEdge struct {
	ClassID  uint64
	ModuleID uint64
}

// Row converts the edge to CSV fields.
func (e ModuleEdge) Row() []string {
	return []string{id(e.ClassID), id(e.ModuleID)}
}

func id(i uint64) string {
	return strconv.FormatUint(i, 10)
}
