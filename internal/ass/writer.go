package ass

import (
	"bufio"
	"bytes"
	"io"
)

// eventsPerBlock is how many output events are written before an extra blank line.
const eventsPerBlock = 3

// Write serializes headers and format lines verbatim, a blank line, then the
// expanded events with one extra blank line after every third event.
func Write(w io.Writer, doc *Document, events []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range doc.Headers {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}
	for _, line := range doc.Format {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
	}
	if err := bw.WriteByte('\n'); err != nil {
		return err
	}
	for i, event := range events {
		if _, err := bw.WriteString(event); err != nil {
			return err
		}
		if (i+1)%eventsPerBlock == 0 {
			if err := bw.WriteByte('\n'); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

// Render is Write into memory.
func Render(doc *Document, events []string) []byte {
	var buf bytes.Buffer
	// bytes.Buffer writes do not fail.
	_ = Write(&buf, doc, events)
	return buf.Bytes()
}
