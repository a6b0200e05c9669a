package source

import "testing"

func newTestStream(t *testing.T, content string) *Stream {
	t.Helper()
	fs := NewFileSet()
	id := fs.AddVirtual("test.sg", []byte(content))
	return NewStream(fs.Get(id))
}

func TestStream_PopAdvances(t *testing.T) {
	s := newTestStream(t, "ab")

	b, ok := s.Pop()
	if !ok || b != 'a' {
		t.Fatalf("Pop() = %q, %v; want 'a', true", b, ok)
	}
	b, ok = s.Pop()
	if !ok || b != 'b' {
		t.Fatalf("Pop() = %q, %v; want 'b', true", b, ok)
	}
	if _, ok = s.Pop(); ok {
		t.Fatal("Pop() at end of input should report ok=false")
	}
}

func TestStream_PushReturnsByteToNextPop(t *testing.T) {
	s := newTestStream(t, "ab")

	a, _ := s.Pop()
	s.Push(a)

	b, ok := s.Pop()
	if !ok || b != 'a' {
		t.Fatalf("Pop() after Push = %q, %v; want 'a', true", b, ok)
	}
	b, ok = s.Pop()
	if !ok || b != 'b' {
		t.Fatalf("Pop() = %q, %v; want 'b', true", b, ok)
	}
}

func TestStream_PushMultipleIsLIFO(t *testing.T) {
	s := newTestStream(t, "x")
	s.Pop()

	s.Push('2')
	s.Push('1')

	got := []byte{}
	for {
		b, ok := s.Pop()
		if !ok {
			break
		}
		got = append(got, b)
	}
	if string(got) != "12" {
		t.Errorf("pushed bytes replayed as %q, want \"12\"", got)
	}
}

func TestStream_AtEOF(t *testing.T) {
	s := newTestStream(t, "a")
	if s.AtEOF() {
		t.Fatal("AtEOF() before reading should be false")
	}
	s.Pop()
	if !s.AtEOF() {
		t.Fatal("AtEOF() after consuming all bytes should be true")
	}
	s.Push('a')
	if s.AtEOF() {
		t.Fatal("AtEOF() with a pushed-back byte should be false")
	}
}

func TestStream_PositionTracksPushback(t *testing.T) {
	s := newTestStream(t, "abc")

	if got := s.Position(); got.Start != 0 {
		t.Fatalf("initial Position() = %+v, want Start=0", got)
	}

	a, _ := s.Pop()
	if got := s.Position(); got.Start != 1 {
		t.Fatalf("Position() after one Pop = %+v, want Start=1", got)
	}

	s.Push(a)
	if got := s.Position(); got.Start != 0 {
		t.Fatalf("Position() after Push should rewind to 0, got %+v", got)
	}
}
