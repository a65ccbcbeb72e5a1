package gemini

// Schema declares the JSON shape the model must produce. It is the subset of
// the generateContent responseSchema contract this demo needs.
type Schema struct {
	Type        string             `json:"type"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]*Schema `json:"properties,omitempty"`
	Items       *Schema            `json:"items,omitempty"`
	Enum        []string           `json:"enum,omitempty"`
	Required    []string           `json:"required,omitempty"`
}

// Schema type names per the generateContent contract.
const (
	TypeObject  = "OBJECT"
	TypeArray   = "ARRAY"
	TypeString  = "STRING"
	TypeInteger = "INTEGER"
	TypeNumber  = "NUMBER"
	TypeBoolean = "BOOLEAN"
)

// Object builds an object schema with the given properties and required keys.
func Object(properties map[string]*Schema, required ...string) *Schema {
	return &Schema{Type: TypeObject, Properties: properties, Required: required}
}

// Array builds an array schema over the given item schema.
func Array(items *Schema) *Schema {
	return &Schema{Type: TypeArray, Items: items}
}

// String builds a string schema.
func String() *Schema { return &Schema{Type: TypeString} }

// StringEnum builds a string schema restricted to the given values.
func StringEnum(values ...string) *Schema {
	return &Schema{Type: TypeString, Enum: values}
}

// Integer builds an integer schema.
func Integer() *Schema { return &Schema{Type: TypeInteger} }

// Number builds a floating point schema.
func Number() *Schema { return &Schema{Type: TypeNumber} }

// Boolean builds a boolean schema.
func Boolean() *Schema { return &Schema{Type: TypeBoolean} }
