package degiro

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// ErrUnsupportedFormat marks an input row whose shape the repair step
// cannot normalize. Unlike per-row parse failures this aborts the run.
var ErrUnsupportedFormat = errors.New("unsupported csv format")

// columnCount is the number of logical fields of one repaired data row.
const columnCount = 18

// repairRow normalizes the vendor quirks of one raw line before it enters
// the table: a quoted product name containing the delimiter, and a missing
// transaction identifier on system-generated rows.
func repairRow(line string) (string, error) {
	line, err := collapseQuotedSpan(line)
	if err != nil {
		return "", err
	}
	return ensureID(line), nil
}

// collapseQuotedSpan handles product names the vendor wraps in quotes
// because they contain the field delimiter: the delimiters inside the span
// are replaced with dots and the quotes dropped. Exactly one quoted span is
// supported per row.
func collapseQuotedSpan(line string) (string, error) {
	parts := strings.Split(line, `"`)
	switch len(parts) {
	case 1:
		return line, nil
	case 3:
		return parts[0] + strings.ReplaceAll(parts[1], ",", ".") + parts[2], nil
	default:
		return "", fmt.Errorf("%w: more than one quoted span in row %q", ErrUnsupportedFormat, line)
	}
}

// ensureID appends a synthesized identifier to rows the vendor left short:
// trades not initiated by the user carry no transaction id. The vendor's id
// template is the hyphenated-hex UUID shape, so a fresh UUID fits in.
func ensureID(line string) string {
	fields := strings.Split(line, ",")
	if len(fields) >= columnCount && fields[columnCount-1] != "" {
		return line
	}
	if len(fields) == columnCount {
		// trailing delimiter left an empty id cell
		fields[columnCount-1] = uuid.NewString()
		return strings.Join(fields, ",")
	}
	return line + "," + uuid.NewString()
}
