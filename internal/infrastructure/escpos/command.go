package escpos

// Justification selects horizontal alignment for subsequent text.
type Justification byte

const (
	JustifyLeft   Justification = 0
	JustifyCenter Justification = 1
	JustifyRight  Justification = 2
)

// QRLevel is the error correction level of a printed QR code.
type QRLevel byte

const (
	QRLevelL QRLevel = 0
	QRLevelM QRLevel = 1
	QRLevelQ QRLevel = 2
	QRLevelH QRLevel = 3
)

// Op is a single printer operation accumulated in a Stream. Each concrete
// op is an immutable value; encoders translate ops without mutating them.
type Op interface {
	isOp()
}

// TextOp prints already sanitized text verbatim, without a trailing newline.
type TextOp struct {
	Text string
}

// TextSizeOp changes the character cell multiplier. Width and Height are
// clamped to 1..8 by the Stream append method.
type TextSizeOp struct {
	Width  int
	Height int
}

// JustifyOp changes horizontal alignment for subsequent lines.
type JustifyOp struct {
	Justification Justification
}

// FeedOp advances the paper by Lines lines.
type FeedOp struct {
	Lines int
}

// StoredLogoOp recalls the logo stored in the printer's NV memory.
type StoredLogoOp struct{}

// PulseOp fires the cash drawer kick pulse.
type PulseOp struct{}

// CutOp feeds and performs a partial cut.
type CutOp struct{}

// QROp prints a QR code with the given content.
type QROp struct {
	Content string
	Size    int
	Level   QRLevel
}

func (TextOp) isOp()       {}
func (TextSizeOp) isOp()   {}
func (JustifyOp) isOp()    {}
func (FeedOp) isOp()       {}
func (StoredLogoOp) isOp() {}
func (PulseOp) isOp()      {}
func (CutOp) isOp()        {}
func (QROp) isOp()         {}

// Stream accumulates printer operations in order. The zero value is ready
// to use. Append methods return the stream for chaining.
type Stream struct {
	ops []Op
}

// NewStream returns an empty operation stream.
func NewStream() *Stream {
	return &Stream{}
}

// Text appends a raw text op. The caller is responsible for sanitizing.
func (s *Stream) Text(text string) *Stream {
	s.ops = append(s.ops, TextOp{Text: text})
	return s
}

// Line appends text followed by a single line feed.
func (s *Stream) Line(text string) *Stream {
	return s.Text(text).Feed(1)
}

// TextSize appends a character size change, clamping both factors to 1..8.
func (s *Stream) TextSize(width, height int) *Stream {
	s.ops = append(s.ops, TextSizeOp{Width: clampSize(width), Height: clampSize(height)})
	return s
}

// Justify appends an alignment change.
func (s *Stream) Justify(j Justification) *Stream {
	s.ops = append(s.ops, JustifyOp{Justification: j})
	return s
}

// Feed appends a paper feed of n lines. Non-positive n is treated as 1.
func (s *Stream) Feed(n int) *Stream {
	if n < 1 {
		n = 1
	}
	s.ops = append(s.ops, FeedOp{Lines: n})
	return s
}

// StoredLogo appends a stored logo recall.
func (s *Stream) StoredLogo() *Stream {
	s.ops = append(s.ops, StoredLogoOp{})
	return s
}

// Pulse appends a cash drawer pulse.
func (s *Stream) Pulse() *Stream {
	s.ops = append(s.ops, PulseOp{})
	return s
}

// Cut appends a partial cut.
func (s *Stream) Cut() *Stream {
	s.ops = append(s.ops, CutOp{})
	return s
}

// QR appends a QR code print. Size outside 1..16 falls back to 5.
func (s *Stream) QR(content string, size int, level QRLevel) *Stream {
	if size < 1 || size > 16 {
		size = 5
	}
	s.ops = append(s.ops, QROp{Content: content, Size: size, Level: level})
	return s
}

// Ops returns a copy of the accumulated operations.
func (s *Stream) Ops() []Op {
	out := make([]Op, len(s.ops))
	copy(out, s.ops)
	return out
}

// Len reports the number of accumulated operations.
func (s *Stream) Len() int {
	return len(s.ops)
}

func clampSize(n int) int {
	if n < 1 {
		return 1
	}
	if n > 8 {
		return 8
	}
	return n
}
