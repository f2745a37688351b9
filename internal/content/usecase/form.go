package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"clubsite/internal/content/domain/model"
	apperrors "clubsite/internal/shared/errors"
)

// ZeroRecord returns the create-mode seed for a field list: empty string for
// text, textarea and select, zero for number, empty list for array.
func ZeroRecord(fields []model.Field) model.Row {
	record := make(model.Row, len(fields))
	for _, f := range fields {
		switch f.Type {
		case model.FieldText, model.FieldTextarea, model.FieldSelect:
			record[f.Key] = ""
		case model.FieldNumber:
			record[f.Key] = float64(0)
		case model.FieldArray:
			record[f.Key] = []string{}
		default:
			panic(fmt.Sprintf("unknown field type %v for field %q", f.Type, f.Key))
		}
	}
	return record
}

// DecodeForm turns a submitted flat record into a typed form record,
// dispatching on each field's type tag. Keys absent from the field list are
// dropped: the schema's field list is the complete editable surface. Required
// fields must not be empty; select values must come from the declared options.
// An unknown type tag is a programming error, not a recoverable condition.
func DecodeForm(fields []model.Field, raw model.Row) (model.Row, error) {
	record := make(model.Row, len(fields))
	for _, f := range fields {
		value, present := raw[f.Key]

		switch f.Type {
		case model.FieldText, model.FieldTextarea:
			s := stringValue(value)
			if f.Required && strings.TrimSpace(s) == "" {
				return nil, apperrors.NewValidationError(fmt.Sprintf("field %q is required", f.Key))
			}
			record[f.Key] = s

		case model.FieldSelect:
			s := stringValue(value)
			if f.Required && s == "" {
				return nil, apperrors.NewValidationError(fmt.Sprintf("field %q is required", f.Key))
			}
			if s != "" && !contains(f.Options, s) {
				return nil, apperrors.NewValidationError(
					fmt.Sprintf("field %q: %q is not one of the allowed options", f.Key, s))
			}
			record[f.Key] = s

		case model.FieldNumber:
			if !present || value == nil || value == "" {
				if f.Required {
					return nil, apperrors.NewValidationError(fmt.Sprintf("field %q is required", f.Key))
				}
				record[f.Key] = float64(0)
				continue
			}
			n, err := numberValue(value)
			if err != nil {
				return nil, apperrors.NewValidationError(fmt.Sprintf("field %q must be a number", f.Key))
			}
			record[f.Key] = n

		case model.FieldArray:
			list := arrayValue(value)
			if f.Required && len(list) == 0 {
				return nil, apperrors.NewValidationError(fmt.Sprintf("field %q is required", f.Key))
			}
			record[f.Key] = list

		default:
			panic(fmt.Sprintf("unknown field type %v for field %q", f.Type, f.Key))
		}
	}
	return record, nil
}

// stringValue renders a submitted value as a string; nil becomes "".
func stringValue(v interface{}) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// numberValue accepts JSON numbers and numeric strings.
func numberValue(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case string:
		return strconv.ParseFloat(strings.TrimSpace(n), 64)
	}
	return 0, fmt.Errorf("not a number: %T", v)
}

// arrayValue accepts the comma-joined editing representation and already-split
// lists. Duplicates are kept and order is preserved.
func arrayValue(v interface{}) []string {
	switch val := v.(type) {
	case nil:
		return []string{}
	case string:
		return model.SplitArray(val)
	case []string:
		return val
	case []interface{}:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s := strings.TrimSpace(fmt.Sprint(item))
			if s == "" {
				continue
			}
			out = append(out, s)
		}
		return out
	}
	return []string{}
}

func contains(options []string, s string) bool {
	for _, o := range options {
		if o == s {
			return true
		}
	}
	return false
}
