package model

// File describes one of the CSV files of a dump.
type File int

const (
	ObjectsFile File = iota
	InstanceVariablesFile
	ObjectClassesFile
	ClassModulesFile
)

// Files lists all dump files in the order they are created.
var Files = []File{
	ObjectsFile,
	InstanceVariablesFile,
	ObjectClassesFile,
	ClassModulesFile,
}

var fileNames = map[File]string{
	ObjectsFile:           "objects",
	InstanceVariablesFile: "instance_variables",
	ObjectClassesFile:     "object_classes",
	ClassModulesFile:      "class_modules",
}

var fileHeaders = map[File][]string{
	ObjectsFile:           {"object_id:ID", "inspect", ":LABEL"},
	InstanceVariablesFile: {":START_ID", ":END_ID", "variable"},
	ObjectClassesFile:     {":START_ID", ":END_ID"},
	ClassModulesFile:      {":START_ID", ":END_ID"},
}

var fileRels = map[File]RelType{
	InstanceVariablesFile: InstanceVariable,
	ObjectClassesFile:     HasClass,
	ClassModulesFile:      IncludesModule,
}

// Name returns the base name of the file without extension.
func (f File) Name() string {
	return fileNames[f]
}

// Header returns column names of the file.
func (f File) Header() []string {
	return fileHeaders[f]
}

// RelType returns the relationship type stored in the file. Node file
// returns an empty string.
func (f File) RelType() RelType {
	return fileRels[f]
}

func (f File) String() string {
	return f.Name()
}
