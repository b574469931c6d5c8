package cords

import "io"

// Reader returns a reader for the bytes of cord.
func (cord Cord) Reader() io.Reader {
	return &cordReader{cord: cord}
}

type cordReader struct {
	cord   Cord
	cursor uint64
}

func (cr *cordReader) Read(p []byte) (n int, err error) {
	l := min(uint64(len(p)), cr.cord.Len()-cr.cursor)
	if l == 0 && len(p) > 0 {
		return 0, io.EOF
	}
	s, err := cr.cord.Report(cr.cursor, l)
	if err != nil {
		return 0, err
	}
	n = copy(p, s)
	cr.cursor += uint64(n)
	return n, nil
}
