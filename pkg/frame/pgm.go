package frame

import (
	"bufio"
	"fmt"
	"io"
)

// WritePGM encodes the frame as a binary PGM (P5) image with maxval 255.
//
// Values outside 0-255 are clamped during conversion, the float state is
// not modified.
func WritePGM(w io.Writer, f *Frame) error {
	if _, err := fmt.Fprintf(w, "P5\n%d %d\n255\n", f.Width, f.Height); err != nil {
		return err
	}
	_, err := w.Write(f.ToBytes())
	return err
}

// ReadPGM decodes a binary PGM (P5) image with maxval 255 into a frame.
//
// Comments and arbitrary whitespace in the header are accepted. Only the
// single-channel 8-bit variant is supported; anything else is an error.
func ReadPGM(r io.Reader) (*Frame, error) {
	br := bufio.NewReader(r)

	magic, err := pgmToken(br)
	if err != nil {
		return nil, err
	}
	if magic != "P5" {
		return nil, fmt.Errorf("frame: unsupported PGM magic %q", magic)
	}

	var width, height, maxval int
	for _, dst := range []*int{&width, &height, &maxval} {
		tok, err := pgmToken(br)
		if err != nil {
			return nil, err
		}
		if _, err := fmt.Sscanf(tok, "%d", dst); err != nil {
			return nil, fmt.Errorf("frame: malformed PGM header token %q", tok)
		}
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("frame: invalid PGM dimensions %dx%d", width, height)
	}
	if maxval != 255 {
		return nil, fmt.Errorf("frame: unsupported PGM maxval %d", maxval)
	}

	data := make([]byte, width*height)
	if _, err := io.ReadFull(br, data); err != nil {
		return nil, fmt.Errorf("frame: short PGM pixel data: %w", err)
	}
	return FromBytes(width, height, data)
}

// pgmToken reads the next whitespace-delimited header token, skipping
// '#' comments to end of line.
func pgmToken(br *bufio.Reader) (string, error) {
	var tok []byte
	inComment := false
	for {
		b, err := br.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			return "", fmt.Errorf("frame: truncated PGM header: %w", err)
		}
		switch {
		case inComment:
			if b == '\n' {
				inComment = false
			}
		case b == '#':
			inComment = true
		case b == ' ' || b == '\t' || b == '\r' || b == '\n':
			if len(tok) > 0 {
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}
