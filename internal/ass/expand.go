package ass

import (
	"fmt"
	"strings"
)

const (
	DefaultPrevStyle    = "P"
	DefaultCurrentStyle = "Default"
	DefaultNextStyle    = "F"
	DefaultPlaceholder  = "..."
)

// Options controls the synthesized context events. Empty fields fall back to
// the Default* constants.
type Options struct {
	PrevStyle    string
	CurrentStyle string
	NextStyle    string
	Placeholder  string
}

func (o Options) withDefaults() Options {
	if o.PrevStyle == "" {
		o.PrevStyle = DefaultPrevStyle
	}
	if o.CurrentStyle == "" {
		o.CurrentStyle = DefaultCurrentStyle
	}
	if o.NextStyle == "" {
		o.NextStyle = DefaultNextStyle
	}
	if o.Placeholder == "" {
		o.Placeholder = DefaultPlaceholder
	}
	return o
}

// ContextStyles returns the style names used for previous and next lines.
func (o Options) ContextStyles() []string {
	o = o.withDefaults()
	return []string{o.PrevStyle, o.NextStyle}
}

// Occurrence is one appearance of a line of dialogue.
type Occurrence struct {
	Start string
	End   string
	Text  string // original payload, tags and terminator included
}

// Group collects every occurrence sharing the same normalized text.
type Group struct {
	Key         string
	Occurrences []Occurrence
}

// GroupDialogues splits each event line and groups occurrences by normalized
// text. Groups are returned in order of first appearance.
func GroupDialogues(lines []string) ([]Group, error) {
	var groups []Group
	index := make(map[string]int)
	for i, line := range lines {
		d, err := SplitDialogue(line)
		if err != nil {
			return nil, fmt.Errorf("dialogue %d: %w", i+1, err)
		}
		key := NormalizeText(d.Text)
		pos, ok := index[key]
		if !ok {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, Group{Key: key})
		}
		groups[pos].Occurrences = append(groups[pos].Occurrences, Occurrence{
			Start: d.Start,
			End:   d.End,
			Text:  d.Text,
		})
	}
	return groups, nil
}

// Expand emits a previous/current/next triple for every occurrence, walking
// groups in order. Context text comes from the neighbouring groups.
func Expand(groups []Group, opts Options) []string {
	opts = opts.withDefaults()
	total := 0
	for _, g := range groups {
		total += len(g.Occurrences)
	}
	out := make([]string, 0, total*3)
	for i, g := range groups {
		prev := opts.Placeholder
		if i > 0 {
			prev = groups[i-1].Key
		}
		next := opts.Placeholder
		if i < len(groups)-1 {
			next = groups[i+1].Key
		}
		for _, occ := range g.Occurrences {
			current := occ.Text
			if !strings.HasSuffix(current, "\n") {
				current += "\n"
			}
			out = append(out,
				formatEvent(occ, opts.PrevStyle, prev+"\n"),
				formatEvent(occ, opts.CurrentStyle, current),
				formatEvent(occ, opts.NextStyle, next+"\n\n"),
			)
		}
	}
	return out
}

// ExpandDialogues groups the event lines and expands them in one step.
func ExpandDialogues(lines []string, opts Options) ([]string, error) {
	groups, err := GroupDialogues(lines)
	if err != nil {
		return nil, err
	}
	return Expand(groups, opts), nil
}

func formatEvent(occ Occurrence, style, text string) string {
	return "Dialogue: 0," + occ.Start + "," + occ.End + "," + style + ",,0,0,0,," + text
}
