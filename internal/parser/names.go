package parser

// Names of the grammar elements as they appear in "expected ..." messages.
const (
	nameEnd            = "end"
	nameService        = "service name"
	nameMethod         = "method name"
	nameDto            = "data name"
	nameEnum           = "enum name"
	nameErrorSet       = "error set name"
	nameEnumValue      = "enum value name"
	nameError          = "error name"
	nameField          = "field name"
	nameFieldType      = "field type"
	nameAttribute      = "attribute name"
	nameParameter      = "parameter name"
	nameParameterValue = "parameter value"
)
