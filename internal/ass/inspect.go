package ass

import (
	"bytes"
	"io"
	"sort"

	"github.com/asticode/go-astisub"
	"github.com/rivo/uniseg"
)

// Report summarizes what a conversion of the file would see.
type Report struct {
	HeaderLines int
	FormatLines int
	Dialogues   int
	Groups      int
	// Duplicates counts occurrences beyond the first in each group.
	Duplicates int
	// EmptyText counts occurrences whose text is nothing but override tags.
	EmptyText int
	// WidestLine is the longest normalized text in grapheme clusters.
	WidestLine int
	WidestText string

	// Decoder cross-check. DecoderError is set when astisub rejects the file.
	DecoderEvents int
	DecoderStyles []string
	DecoderError  string
}

// Inspect parses the file like a conversion would and returns statistics.
// Malformed dialogue lines are reported as an error.
func Inspect(r io.Reader) (Report, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Report{}, err
	}
	doc := ParseLines(SplitLines(string(data)))
	groups, err := GroupDialogues(doc.Dialogues)
	if err != nil {
		return Report{}, err
	}

	rep := Report{
		HeaderLines: len(doc.Headers),
		FormatLines: len(doc.Format),
		Dialogues:   len(doc.Dialogues),
		Groups:      len(groups),
	}
	for _, g := range groups {
		rep.Duplicates += len(g.Occurrences) - 1
		if g.Key == "" {
			rep.EmptyText += len(g.Occurrences)
		}
		if w := uniseg.GraphemeClusterCount(g.Key); w > rep.WidestLine {
			rep.WidestLine = w
			rep.WidestText = g.Key
		}
	}

	subs, err := astisub.ReadFromSSA(bytes.NewReader(data))
	if err != nil {
		rep.DecoderError = err.Error()
		return rep, nil
	}
	rep.DecoderEvents = len(subs.Items)
	for name := range subs.Styles {
		rep.DecoderStyles = append(rep.DecoderStyles, name)
	}
	sort.Strings(rep.DecoderStyles)
	return rep, nil
}
