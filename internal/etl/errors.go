package etl

import (
	"fmt"
	"strings"
)

// EmptyInputError reports that a source record set required to derive the
// warehouse contents had no rows.
type EmptyInputError struct {
	Table string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("no rows in %s: cannot derive warehouse contents", e.Table)
}

// SchemaMismatchError reports that the destination table is missing columns
// produced by the transform. It is raised before any destructive operation.
type SchemaMismatchError struct {
	Table   string
	Missing []string
}

func (e *SchemaMismatchError) Error() string {
	return fmt.Sprintf("destination table %s is missing columns: %s",
		e.Table, strings.Join(e.Missing, ", "))
}

// ReferentialDropError reports fact rows dropped for unresolved dimension
// references. Dropping is tolerated by default; this error is only returned
// when strict reference checking is enabled.
type ReferentialDropError struct {
	Dropped []DropReason
}

func (e *ReferentialDropError) Error() string {
	return fmt.Sprintf("%d fact rows reference missing dimension rows", len(e.Dropped))
}
