package ass

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInjectContextStyles(t *testing.T) {
	doc := ParseLines(SplitLines(sampleHeader + sampleEventsFormat))

	added := InjectContextStyles(doc, Options{})
	require.Equal(t, []string{"P", "F"}, added)

	headers := strings.Join(doc.Headers, "")
	require.Contains(t, headers,
		"Style: Default,Arial,20,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,1,2,10,10,10,1\n"+
			"Style: P,Arial,20,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,1,2,10,10,10,1\n"+
			"Style: F,Arial,20,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,1,2,10,10,10,1\n")

	// Second pass is a no-op.
	require.Empty(t, InjectContextStyles(doc, Options{}))
	require.Equal(t, headers, strings.Join(doc.Headers, ""))
}

func TestInjectContextStyles_KeepsExisting(t *testing.T) {
	input := "[V4+ Styles]\n" +
		"Style: Default,Arial,20\n" +
		"Style: P,Arial,14\n" +
		"Style: Sign,Arial,30\n"
	doc := ParseLines(SplitLines(input))

	added := InjectContextStyles(doc, Options{})
	require.Equal(t, []string{"F"}, added)
	require.Equal(t, []string{
		"[V4+ Styles]\n",
		"Style: Default,Arial,20\n",
		"Style: P,Arial,14\n",
		"Style: Sign,Arial,30\n",
		"Style: F,Arial,20\n",
	}, doc.Headers)
}

func TestInjectContextStyles_NoBaseStyle(t *testing.T) {
	input := "[V4+ Styles]\nStyle: Main,Arial,20\n"
	doc := ParseLines(SplitLines(input))
	require.Empty(t, InjectContextStyles(doc, Options{}))
	require.Len(t, doc.Headers, 2)
}

func TestInjectContextStyles_IgnoresScriptInfoStyleLines(t *testing.T) {
	input := "[Script Info]\nStyle: Default,Bogus\n[V4+ Styles]\nStyle: Main,Arial,20\n"
	doc := ParseLines(SplitLines(input))
	require.Empty(t, InjectContextStyles(doc, Options{}))
}
