package ass

import (
	"io"
	"strings"
)

// Section markers recognised by the router. Any other bracketed label is
// still a section, its lines are kept as format lines.
const (
	SectionScriptInfo = "[Script Info]"
	SectionStyles     = "[V4+ Styles]"
	SectionEvents     = "[Events]"
)

const dialoguePrefix = "Dialogue"

// Document holds the input split into the three buckets the converter works on.
// Every line keeps its "\n" terminator (the final line may lack one).
type Document struct {
	Headers   []string // [Script Info] and [V4+ Styles] lines, verbatim
	Format    []string // everything else under a section, except dialogue events
	Dialogues []string // "Dialogue" lines under [Events]
}

type bucket int

const (
	bucketDrop bucket = iota
	bucketHeader
	bucketFormat
	bucketDialogue
)

// route decides where a line goes given the active section.
// An empty section means no marker has been seen yet.
func route(section, trimmed string) bucket {
	switch section {
	case "":
		return bucketDrop
	case SectionScriptInfo, SectionStyles:
		return bucketHeader
	case SectionEvents:
		if strings.HasPrefix(trimmed, dialoguePrefix) {
			return bucketDialogue
		}
		return bucketFormat
	default:
		return bucketFormat
	}
}

// Parse reads the whole subtitle file from r and splits it into a Document.
func Parse(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseLines(SplitLines(string(data))), nil
}

// ParseLines routes raw lines into headers, format lines and dialogue lines.
// A section marker line is routed using the section it opens.
func ParseLines(lines []string) *Document {
	doc := &Document{}
	section := ""
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") {
			section = trimmed
		}
		switch route(section, trimmed) {
		case bucketHeader:
			doc.Headers = append(doc.Headers, line)
		case bucketDialogue:
			doc.Dialogues = append(doc.Dialogues, line)
		case bucketFormat:
			doc.Format = append(doc.Format, line)
		}
	}
	return doc
}

// SplitLines splits text into lines that keep their terminator.
// A leading UTF-8 BOM is dropped and CRLF / CR terminators become "\n".
func SplitLines(text string) []string {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
