package xdrcursor

import "testing"

func TestReadExactAdvances(t *testing.T) {
	c := New([]byte{1, 2, 3, 4, 5})
	b, err := c.ReadExact(3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(b) != 3 || b[0] != 1 || b[2] != 3 {
		t.Fatalf("unexpected slice: %v", b)
	}
	if c.Tell() != 3 {
		t.Fatalf("expected offset 3, got %d", c.Tell())
	}
}

func TestReadExactShortRead(t *testing.T) {
	c := New([]byte{1, 2})
	if _, err := c.ReadExact(3); err != ErrShortRead {
		t.Fatalf("expected ErrShortRead, got %v", err)
	}
}

func TestPeekDoesNotAdvance(t *testing.T) {
	c := New([]byte{1, 2, 3})
	if _, err := c.Peek(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Tell() != 0 {
		t.Fatalf("peek must not advance, got offset %d", c.Tell())
	}
}

func TestSeekAndSpeculativeRestore(t *testing.T) {
	c := New([]byte{1, 2, 3, 4})
	saved := c
	if _, err := c.ReadExact(4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	c = saved
	if c.Tell() != 0 {
		t.Fatalf("expected restored offset 0, got %d", c.Tell())
	}
	if err := c.Seek(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Remaining() != 2 {
		t.Fatalf("expected 2 remaining bytes, got %d", c.Remaining())
	}
}

func TestSeekOutOfBounds(t *testing.T) {
	c := New([]byte{1, 2, 3})
	if err := c.Seek(10); err != ErrShortRead {
		t.Fatalf("expected ErrShortRead, got %v", err)
	}
	if err := c.Seek(-1); err != ErrShortRead {
		t.Fatalf("expected ErrShortRead, got %v", err)
	}
}
