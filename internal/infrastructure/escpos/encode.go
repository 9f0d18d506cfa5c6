package escpos

import (
	"bytes"
	"encoding/base64"
)

const (
	esc byte = 0x1B
	gs  byte = 0x1D
	fs  byte = 0x1C
	lf  byte = 0x0A
)

// CommandResolver maps a named printer command ("open", "cut") to its raw
// byte sequence for the plain-text target. An empty result means the
// printer does not define that command and the op is skipped.
type CommandResolver func(name string) string

// EncodeBinary serializes a stream into a raw ESC/POS byte sequence,
// starting with an initialize command.
func EncodeBinary(s *Stream) []byte {
	var buf bytes.Buffer
	buf.Write([]byte{esc, '@'})
	for _, op := range s.Ops() {
		encodeBinaryOp(&buf, op)
	}
	return buf.Bytes()
}

// EncodeBase64 serializes a stream to raw ESC/POS and encodes the result
// in standard base64 for transport inside a text payload.
func EncodeBase64(s *Stream) string {
	return base64.StdEncoding.EncodeToString(EncodeBinary(s))
}

// EncodeText serializes a stream for printers driven through a plain-text
// spool. Size changes map to inline emphasis escapes, drawer pulse and cut
// resolve through the printer's named command table, and ops with no text
// representation (justify, logo, QR) are dropped. The result always ends
// with a newline so the spooler flushes the last line.
func EncodeText(s *Stream, resolve CommandResolver) string {
	var sb bytes.Buffer
	for _, op := range s.Ops() {
		switch o := op.(type) {
		case TextOp:
			sb.WriteString(o.Text)
		case TextSizeOp:
			if o.Width > 1 || o.Height > 1 {
				sb.Write([]byte{esc, '!', 0x38})
			} else {
				sb.Write([]byte{esc, '!', 0x00})
			}
		case FeedOp:
			for i := 0; i < o.Lines; i++ {
				sb.WriteByte(lf)
			}
		case PulseOp:
			if cmd := resolve("open"); cmd != "" {
				sb.WriteString(cmd)
				sb.WriteByte(lf)
			}
		case CutOp:
			if cmd := resolve("cut"); cmd != "" {
				sb.WriteString(cmd)
				sb.WriteByte(lf)
			}
		}
	}
	out := sb.String()
	if len(out) == 0 || out[len(out)-1] != lf {
		out += string(lf)
	}
	return out
}

func encodeBinaryOp(buf *bytes.Buffer, op Op) {
	switch o := op.(type) {
	case TextOp:
		buf.WriteString(o.Text)
	case TextSizeOp:
		n := byte((o.Width-1)<<4 | (o.Height - 1))
		buf.Write([]byte{gs, '!', n})
	case JustifyOp:
		buf.Write([]byte{esc, 'a', byte(o.Justification)})
	case FeedOp:
		if o.Lines == 1 {
			buf.WriteByte(lf)
		} else {
			buf.Write([]byte{esc, 'd', byte(o.Lines)})
		}
	case StoredLogoOp:
		buf.Write([]byte{fs, 'p', 0x01, 0x00, 0x00})
	case PulseOp:
		buf.Write([]byte{esc, 'p', 48, 60, 120})
	case CutOp:
		buf.Write([]byte{gs, 'V', 65, 3})
	case QROp:
		encodeQR(buf, o)
	}
}

// encodeQR emits the GS ( k function sequence: select model 2, set module
// size, set error correction, store the data, then print it.
func encodeQR(buf *bytes.Buffer, o QROp) {
	writeQRFunction(buf, 65, []byte{50, 0})
	writeQRFunction(buf, 67, []byte{byte(o.Size)})
	writeQRFunction(buf, 69, []byte{48 + byte(o.Level)})

	data := []byte(o.Content)
	n := len(data) + 3
	buf.Write([]byte{gs, '(', 'k', byte(n & 0xFF), byte(n >> 8), 49, 80, 48})
	buf.Write(data)

	writeQRFunction(buf, 81, []byte{48})
}

func writeQRFunction(buf *bytes.Buffer, fn byte, data []byte) {
	n := len(data) + 2
	buf.Write([]byte{gs, '(', 'k', byte(n & 0xFF), byte(n >> 8), 49, fn})
	buf.Write(data)
}
