package ticket

import (
	"strconv"
	"strings"
	"time"
)

// DefaultLineLen is the line width applied when a printer has none configured
const DefaultLineLen = 48

// Printer is the configuration of one physical ticket printer. It is
// read-only reference data during formatting.
type Printer struct {
	ID           int64
	Name         string
	LineLen      int // usable characters per printed line
	Head         string
	Footer       string
	CutCommand   string // dot-separated byte values, e.g. "27.105"
	OpenCommand  string // cash drawer escape sequence, same encoding
	CreationDate time.Time

	PrintStoredLogo      bool // recall the logo stored in printer memory
	PrintInvoiceReceipts bool // append the receipt schedule on invoices
	PrintLinesNet        bool // show net amounts instead of tax-included
	PrintLinesPrice      bool // insert a unit-price row under each line
}

// DefaultPrinter returns the empty configuration substituted when no
// printer is selected; callers must never pass a nil printer.
func DefaultPrinter() Printer {
	return Printer{LineLen: DefaultLineLen}
}

// Width returns the configured line length, falling back to the default
func (p Printer) Width() int {
	if p.LineLen <= 0 {
		return DefaultLineLen
	}
	return p.LineLen
}

// DashLine returns a horizontal rule sized to the printer width
func (p Printer) DashLine() string {
	return strings.Repeat("-", p.Width())
}

// CommandBytes looks up a named command template and decodes it into the
// raw byte string to send to the device. Commands are stored as
// dot-separated decimal byte values ("27.112.48" -> ESC p '0').
// Unknown names and malformed values decode to the empty string.
func (p Printer) CommandBytes(name string) string {
	var cmd string
	switch name {
	case "open":
		cmd = p.OpenCommand
	case "cut":
		cmd = p.CutCommand
	default:
		return ""
	}
	if cmd == "" {
		return ""
	}

	var sb strings.Builder
	for _, part := range strings.Split(cmd, ".") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 255 {
			return ""
		}
		sb.WriteByte(byte(n))
	}
	return sb.String()
}
