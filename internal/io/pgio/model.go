package pgio

// Object is a row of the objects table.
type Object struct {
	// ID is the identity of the object. Identities above math.MaxInt64
	// are stored as negative numbers, see ToID.
	ID int64 `gorm:"type:bigint;primary_key;auto_increment:false"`

	// Inspect is a description of the object.
	Inspect string

	// Labels are Neo4j labels joined by ';'.
	Labels string `gorm:"type:varchar(30)"`
}

// Relationship is a row of the relationships table.
type Relationship struct {
	// ID is a surrogate key.
	ID uint `gorm:"primary_key"`

	// StartID is the identity of the source object.
	StartID int64 `gorm:"type:bigint;index:idx_rel_start"`

	// EndID is the identity of the target object.
	EndID int64 `gorm:"type:bigint;index:idx_rel_end"`

	// Type is INSTANCE_VARIABLE, HAS_CLASS or INCLUDES_MODULE.
	Type string `gorm:"type:varchar(20);index:idx_rel_type"`

	// Variable is the name of an instance variable for INSTANCE_VARIABLE
	// relationships.
	Variable string `gorm:"type:text"`
}
