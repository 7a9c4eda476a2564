package zonetext

import "fmt"

// UnsupportedRecordTypeError indicates a record type with no zone-file
// field template. The conversion fails outright; nothing falls back.
type UnsupportedRecordTypeError struct {
	Type string
}

func (e *UnsupportedRecordTypeError) Error() string {
	return fmt.Sprintf("unsupported zone record type: %s", e.Type)
}

// MissingFieldError indicates a template field absent from the parsed
// zone-file record set.
type MissingFieldError struct {
	Type  string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s record missing field %q", e.Type, e.Field)
}
