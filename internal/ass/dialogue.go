package ass

import (
	"errors"
	"fmt"
	"strings"
)

// dialogueFieldCount is the number of comma separated fields in an event line:
// marker+layer, start, end, style, name, marginL, marginR, marginV, effect, text.
// Only the first nine commas separate fields; the text keeps the rest.
const dialogueFieldCount = 10

// ErrMalformedDialogue is returned when an event line has too few fields.
var ErrMalformedDialogue = errors.New("malformed dialogue line")

// Dialogue is one event line split into its fields.
type Dialogue struct {
	Marker  string // "Dialogue: 0"
	Start   string
	End     string
	Style   string
	Name    string
	MarginL string
	MarginR string
	MarginV string
	Effect  string
	Text    string // raw payload, including override tags and the line terminator
}

// SplitDialogue splits an event line into exactly ten fields.
func SplitDialogue(line string) (Dialogue, error) {
	parts := strings.SplitN(line, ",", dialogueFieldCount)
	if len(parts) != dialogueFieldCount {
		return Dialogue{}, fmt.Errorf("%w: got %d fields, want %d: %q",
			ErrMalformedDialogue, len(parts), dialogueFieldCount, strings.TrimRight(line, "\n"))
	}
	return Dialogue{
		Marker:  parts[0],
		Start:   parts[1],
		End:     parts[2],
		Style:   parts[3],
		Name:    parts[4],
		MarginL: parts[5],
		MarginR: parts[6],
		MarginV: parts[7],
		Effect:  parts[8],
		Text:    parts[9],
	}, nil
}
