package source

import "fortio.org/safecast"

// Stream is a pull source over one file's bytes: a single current byte at a
// time, with an explicit push-back buffer so a scanner that over-reads (the
// maximal-munch operator matcher, the word/number scanner) can return bytes
// it decided not to consume.
type Stream struct {
	file    FileID
	content []byte
	offset  uint32 // byte index of the next Pop
	pushed  []byte // pushed-back bytes, popped in LIFO order before offset advances
}

// NewStream opens a stream over a file already registered in a FileSet.
func NewStream(f *File) *Stream {
	return &Stream{file: f.ID, content: f.Content}
}

// Pop returns the next byte and advances the stream, or ok=false at end of
// input. Pushed-back bytes are returned before new bytes from content.
func (s *Stream) Pop() (b byte, ok bool) {
	if n := len(s.pushed); n > 0 {
		b = s.pushed[n-1]
		s.pushed = s.pushed[:n-1]
		return b, true
	}
	if int(s.offset) >= len(s.content) {
		return 0, false
	}
	b = s.content[s.offset]
	s.offset++
	return b, true
}

// Push returns b to the stream; the next Pop call will yield it again.
func (s *Stream) Push(b byte) {
	s.pushed = append(s.pushed, b)
}

// AtEOF reports whether Pop would return ok=false right now.
func (s *Stream) AtEOF() bool {
	return len(s.pushed) == 0 && int(s.offset) >= len(s.content)
}

// Position returns the current byte offset as a zero-length Span, usable as
// the start of a token or error span. Pushed-back bytes count as not yet
// consumed, so Position reflects the offset Pop would resume from.
func (s *Stream) Position() Span {
	off, err := safecast.Conv[uint32](int(s.offset) - len(s.pushed))
	if err != nil {
		off = s.offset
	}
	return Span{File: s.file, Start: off, End: off}
}
