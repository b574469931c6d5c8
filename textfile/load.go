package textfile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/guiguan/caster"
	"github.com/npillmayer/augtree/cords"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// fragment is a piece of a file's content, published by the reader.
type fragment struct {
	pos  int64 // start position within the file
	text string
	err  error
}

// textFile represents an OS file which will be loaded as a cord.
type textFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for loaded fragments
}

// Load reads a file, which must be a UTF-8 text file, and loads it as a cord
// of store st. Clients may indicate a recommended fragment length; 0 lets
// Load choose a size depending on the file size.
func Load(st *cords.Store, name string, fragSize int64) (cords.Cord, error) {
	tf, err := openFile(name)
	if err != nil {
		return cords.Cord{}, err
	}
	defer tf.file.Close()
	fragSize = fragmentSize(tf.info.Size(), fragSize)
	sub, ok := tf.cast.Sub(context.Background(), 4)
	if !ok {
		return cords.Cord{}, errors.New("textfile: cannot subscribe to fragments")
	}
	go readFragments(tf, fragSize)
	var cord cords.Cord
	var loadErr error
	for msg := range sub {
		frag := msg.(fragment)
		if loadErr != nil {
			continue // drain
		}
		if frag.err != nil {
			loadErr = frag.err
			continue
		}
		c, err := st.FromString(frag.text)
		if err != nil {
			loadErr = fmt.Errorf("fragment at %d of %s: %w", frag.pos, tf.path, err)
			continue
		}
		cord = cords.Concat(cord, c)
	}
	if loadErr != nil {
		return cords.Cord{}, loadErr
	}
	tracer().Debugf("loaded %s: %d bytes in %d fragments", tf.path, cord.Len(), cord.FragmentCount())
	return cord, nil
}

func fragmentSize(size, fragSize int64) int64 {
	if fragSize > 0 && fragSize <= tenKb {
		return max(fragSize, utf8.UTFMax)
	}
	switch {
	case size < 1024:
		return 64
	case size < tenKb:
		return 256
	case size < hundredKb:
		return 512
	case size < oneMb:
		return twoKb
	}
	return sixKb
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file %s is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	return &textFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil), // we will broadcast messages when fragments are loaded
	}, nil
}

// readFragments publishes the content of tf in pieces of about fragSize
// bytes. A rune is never cut: incomplete trailing bytes are carried over to
// the next fragment.
func readFragments(tf *textFile, fragSize int64) {
	defer tf.cast.Close()
	buf := make([]byte, fragSize)
	var carry int
	var pos int64
	for {
		n, err := io.ReadFull(tf.file, buf[carry:])
		n += carry
		if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
			tf.cast.Pub(fragment{pos: pos, err: fmt.Errorf("error loading text fragment: %w", err)})
			return
		}
		end := n
		if err == nil {
			end = completeRunes(buf[:n])
		}
		if end > 0 {
			tf.cast.Pub(fragment{pos: pos, text: string(buf[:end])})
			pos += int64(end)
		}
		if err != nil {
			return
		}
		carry = copy(buf, buf[end:n])
	}
}

// completeRunes returns the length of the longest prefix of b not ending in
// an incomplete rune.
func completeRunes(b []byte) int {
	for k := 1; k <= utf8.UTFMax && k <= len(b); k++ {
		if utf8.RuneStart(b[len(b)-k]) {
			if utf8.FullRune(b[len(b)-k:]) {
				return len(b)
			}
			return len(b) - k
		}
	}
	return len(b)
}
