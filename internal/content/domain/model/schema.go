package model

import (
	"fmt"
	"strings"
)

// FieldType enumerates the closed set of input controls the admin form can
// render. Adding a type means extending this enum and every switch over it;
// the registry rejects values outside the known range at construction.
type FieldType int

const (
	FieldText FieldType = iota
	FieldTextarea
	FieldNumber
	FieldSelect
	FieldArray
)

// String returns the wire name of the field type.
func (t FieldType) String() string {
	switch t {
	case FieldText:
		return "text"
	case FieldTextarea:
		return "textarea"
	case FieldNumber:
		return "number"
	case FieldSelect:
		return "select"
	case FieldArray:
		return "array"
	default:
		return fmt.Sprintf("FieldType(%d)", int(t))
	}
}

// Valid reports whether the type tag is one of the known variants.
func (t FieldType) Valid() bool {
	return t >= FieldText && t <= FieldArray
}

// Field describes one editable input of a resource's admin form. The set of
// Field keys defines the complete editable surface for the resource.
type Field struct {
	Key      string
	Label    string
	Type     FieldType
	Options  []string
	Required bool
}

// Column describes one list-view column. Render, when set, is the display
// authority for the cell; it transforms the value's display string only and
// never mutates the underlying value.
type Column struct {
	Key    string
	Label  string
	Render func(v interface{}) string
}

// Coercion enumerates the value conversions a field mapping can declare
// between the store representation and the form representation.
type Coercion int

const (
	// CoerceBoolString maps a stored bool to the form strings "true"/"false"
	// and back.
	CoerceBoolString Coercion = iota
	// CoerceNumberDefault maps a stored number straight through inbound and
	// substitutes Default outbound when the form value is zero or unparsable.
	CoerceNumberDefault
)

// FieldMapping declares one inbound/outbound value coercion for a schema.
// Transforms are data attached to the schema rather than per-call code, so
// schemas stay auditable independent of the generic components.
type FieldMapping struct {
	Key     string
	Coerce  Coercion
	Default float64
}

// ResourceSchema is the declarative description of one administrable
// collection: its remote collection name, ordering key, list-view columns,
// form fields, value mappings and the read-only flag.
type ResourceSchema struct {
	Name           string
	Collection     string
	Label          string
	OrderBy        string
	DisplayColumns []Column
	Fields         []Field
	Mappings       []FieldMapping
	ReadOnly       bool
}

// Field returns the field descriptor for key, if declared.
func (s *ResourceSchema) Field(key string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return Field{}, false
}

// FieldKeys returns the ordered editable surface of the resource.
func (s *ResourceSchema) FieldKeys() []string {
	keys := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		keys = append(keys, f.Key)
	}
	return keys
}

// MapInbound converts a stored row into its form-facing representation by
// applying the schema's declared coercions. Rows pass through unchanged when
// no mapping is declared.
func (s *ResourceSchema) MapInbound(row Row) Row {
	if len(s.Mappings) == 0 {
		return row
	}
	out := row.Clone()
	for _, m := range s.Mappings {
		switch m.Coerce {
		case CoerceBoolString:
			if v, ok := out[m.Key]; ok && v != nil {
				out[m.Key] = fmt.Sprint(v)
			}
		case CoerceNumberDefault:
			// Stored value is already numeric; nothing to do inbound.
		}
	}
	return out
}

// MapOutbound converts a form record into its store representation.
func (s *ResourceSchema) MapOutbound(record Row) Row {
	if len(s.Mappings) == 0 {
		return record
	}
	out := record.Clone()
	for _, m := range s.Mappings {
		switch m.Coerce {
		case CoerceBoolString:
			out[m.Key] = record.String(m.Key) == "true"
		case CoerceNumberDefault:
			n := record.Float(m.Key)
			if n == 0 {
				n = m.Default
			}
			out[m.Key] = n
		}
	}
	return out
}

// Validate checks the schema's structural invariants: every display column and
// field key must be addressable on the row (directly or via a mapping), select
// fields must carry options, and read-only schemas declare no fields. A schema
// failing validation is a configuration error.
func (s *ResourceSchema) Validate() error {
	if s.Name == "" || s.Collection == "" {
		return fmt.Errorf("schema %q: name and collection are required", s.Name)
	}
	if s.ReadOnly && len(s.Fields) > 0 {
		return fmt.Errorf("schema %q: read-only resources must declare an empty field list", s.Name)
	}
	addressable := make(map[string]bool)
	for _, f := range s.Fields {
		addressable[f.Key] = true
	}
	for _, m := range s.Mappings {
		addressable[m.Key] = true
	}
	for _, f := range s.Fields {
		if !f.Type.Valid() {
			return fmt.Errorf("schema %q: field %q has unknown type tag %d", s.Name, f.Key, int(f.Type))
		}
		if f.Type == FieldSelect && len(f.Options) == 0 {
			return fmt.Errorf("schema %q: select field %q requires a non-empty options list", s.Name, f.Key)
		}
	}
	for _, m := range s.Mappings {
		if _, ok := s.Field(m.Key); !ok && !s.ReadOnly {
			return fmt.Errorf("schema %q: mapping key %q does not match a declared field", s.Name, m.Key)
		}
	}
	// Display columns must resolve on either the raw row or the mapped row.
	// Fields cover the editable surface; store-managed columns (created_at,
	// subscribed_at and friends) are resolvable on read-only resources where
	// the field list is deliberately empty.
	if !s.ReadOnly {
		for _, col := range s.DisplayColumns {
			if !addressable[col.Key] {
				return fmt.Errorf("schema %q: display column %q does not resolve to a field or mapping", s.Name, col.Key)
			}
		}
	}
	return nil
}

// JoinArray serializes a list value for display and for array-field editing:
// elements joined by ", " with order preserved.
func JoinArray(values []string) string {
	return strings.Join(values, ", ")
}

// SplitArray parses an array field's comma-joined editing representation:
// split on commas, trim each segment, drop empties. Duplicates are permitted
// and order is preserved.
func SplitArray(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}
