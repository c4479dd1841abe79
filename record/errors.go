package record

import "fmt"

// MalformedError reports a parse failure in a BED or GFF3 file, naming the
// offending file and line per spec §7 ("User-visible messages name the
// failing entity, not the failing file path, except for MalformedRecord").
type MalformedError struct {
	File   string
	Line   int
	Reason string
}

func (e *MalformedError) Error() string {
	if e.File == "" {
		return fmt.Sprintf("malformed record at line %d: %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("malformed record in %s line %d: %s", e.File, e.Line, e.Reason)
}
