package ass

import "strings"

const stylePrefix = "Style:"

// InjectContextStyles adds a Style line for every context style missing from
// the [V4+ Styles] section. New styles are cloned from the current-line style
// and inserted after the last existing Style line. It returns the names that
// were added; nothing is added when the base style is absent.
func InjectContextStyles(doc *Document, opts Options) []string {
	opts = opts.withDefaults()

	section := ""
	baseIdx, lastIdx := -1, -1
	existing := make(map[string]bool)
	for i, line := range doc.Headers {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") {
			section = trimmed
			continue
		}
		if section != SectionStyles || !strings.HasPrefix(trimmed, stylePrefix) {
			continue
		}
		name := styleName(trimmed)
		existing[name] = true
		lastIdx = i
		if name == opts.CurrentStyle {
			baseIdx = i
		}
	}
	if baseIdx < 0 {
		return nil
	}

	base := strings.TrimSpace(doc.Headers[baseIdx])
	_, rest, _ := strings.Cut(strings.TrimPrefix(base, stylePrefix), ",")

	var added []string
	var lines []string
	for _, name := range opts.ContextStyles() {
		if existing[name] {
			continue
		}
		existing[name] = true
		added = append(added, name)
		lines = append(lines, stylePrefix+" "+name+","+rest+"\n")
	}
	if len(lines) == 0 {
		return nil
	}

	if !strings.HasSuffix(doc.Headers[lastIdx], "\n") {
		doc.Headers[lastIdx] += "\n"
	}
	headers := make([]string, 0, len(doc.Headers)+len(lines))
	headers = append(headers, doc.Headers[:lastIdx+1]...)
	headers = append(headers, lines...)
	headers = append(headers, doc.Headers[lastIdx+1:]...)
	doc.Headers = headers
	return added
}

func styleName(trimmed string) string {
	name, _, _ := strings.Cut(strings.TrimPrefix(trimmed, stylePrefix), ",")
	return strings.TrimSpace(name)
}
