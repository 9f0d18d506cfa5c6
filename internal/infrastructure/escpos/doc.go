// Package escpos builds printer command streams for thermal receipt
// printers. A Stream accumulates an ordered list of operations (text,
// sizing, justification, QR codes, drawer pulse, paper cut); pure
// encoder functions serialize the finished list either into a plain
// text body or into a raw ESC/POS byte sequence.
package escpos
