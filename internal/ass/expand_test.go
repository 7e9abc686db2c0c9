package ass

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpandDialogues_HelloWorld(t *testing.T) {
	lines := []string{
		dialogueLine("0:00:01.00", "0:00:02.00", "Hello"),
		dialogueLine("0:00:03.00", "0:00:04.00", `{\i1}World{\i0}`),
	}

	groups, err := GroupDialogues(lines)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	require.Equal(t, "Hello", groups[0].Key)
	require.Equal(t, "World", groups[1].Key)

	out := Expand(groups, Options{})
	require.Equal(t, []string{
		"Dialogue: 0,0:00:01.00,0:00:02.00,P,,0,0,0,,...\n",
		"Dialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,Hello\n",
		"Dialogue: 0,0:00:01.00,0:00:02.00,F,,0,0,0,,World\n\n",
		"Dialogue: 0,0:00:03.00,0:00:04.00,P,,0,0,0,,Hello\n",
		"Dialogue: 0,0:00:03.00,0:00:04.00,Default,,0,0,0,,{\\i1}World{\\i0}\n",
		"Dialogue: 0,0:00:03.00,0:00:04.00,F,,0,0,0,,...\n\n",
	}, out)
}

func TestExpandDialogues_SameTextSingleGroup(t *testing.T) {
	lines := []string{
		dialogueLine("0:00:01.00", "0:00:02.00", "Same"),
		dialogueLine("0:00:05.00", "0:00:06.00", "Same"),
	}

	groups, err := GroupDialogues(lines)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Occurrences, 2)

	out := Expand(groups, Options{})
	require.Equal(t, []string{
		"Dialogue: 0,0:00:01.00,0:00:02.00,P,,0,0,0,,...\n",
		"Dialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,Same\n",
		"Dialogue: 0,0:00:01.00,0:00:02.00,F,,0,0,0,,...\n\n",
		"Dialogue: 0,0:00:05.00,0:00:06.00,P,,0,0,0,,...\n",
		"Dialogue: 0,0:00:05.00,0:00:06.00,Default,,0,0,0,,Same\n",
		"Dialogue: 0,0:00:05.00,0:00:06.00,F,,0,0,0,,...\n\n",
	}, out)
}

func TestGroupDialogues_FirstSeenOrder(t *testing.T) {
	lines := []string{
		dialogueLine("0:00:01.00", "0:00:02.00", "B"),
		dialogueLine("0:00:02.00", "0:00:03.00", "A"),
		dialogueLine("0:00:03.00", "0:00:04.00", `{\b1}B`),
		dialogueLine("0:00:04.00", "0:00:05.00", "C"),
		dialogueLine("0:00:05.00", "0:00:06.00", "A "),
	}
	groups, err := GroupDialogues(lines)
	require.NoError(t, err)

	keys := make([]string, 0, len(groups))
	for _, g := range groups {
		keys = append(keys, g.Key)
	}
	require.Equal(t, []string{"B", "A", "C"}, keys)
	require.Equal(t, []Occurrence{
		{Start: "0:00:01.00", End: "0:00:02.00", Text: "B\n"},
		{Start: "0:00:03.00", End: "0:00:04.00", Text: "{\\b1}B\n"},
	}, groups[0].Occurrences)
}

// Context comes from the neighbouring group, not the neighbouring event.
func TestExpand_ContextFollowsGroupOrder(t *testing.T) {
	lines := []string{
		dialogueLine("0:00:01.00", "0:00:02.00", "A"),
		dialogueLine("0:00:02.00", "0:00:03.00", "B"),
		dialogueLine("0:00:03.00", "0:00:04.00", "A"),
		dialogueLine("0:00:04.00", "0:00:05.00", "C"),
	}
	out, err := ExpandDialogues(lines, Options{})
	require.NoError(t, err)
	require.Len(t, out, 12)

	// Triples: A@1, A@3, B@2, C@4.
	require.Equal(t, "Dialogue: 0,0:00:01.00,0:00:02.00,F,,0,0,0,,B\n\n", out[2])
	require.Equal(t, "Dialogue: 0,0:00:03.00,0:00:04.00,P,,0,0,0,,...\n", out[3])
	require.Equal(t, "Dialogue: 0,0:00:03.00,0:00:04.00,F,,0,0,0,,B\n\n", out[5])
	require.Equal(t, "Dialogue: 0,0:00:02.00,0:00:03.00,P,,0,0,0,,A\n", out[6])
	require.Equal(t, "Dialogue: 0,0:00:02.00,0:00:03.00,F,,0,0,0,,C\n\n", out[8])
	require.Equal(t, "Dialogue: 0,0:00:04.00,0:00:05.00,P,,0,0,0,,B\n", out[9])
	require.Equal(t, "Dialogue: 0,0:00:04.00,0:00:05.00,F,,0,0,0,,...\n\n", out[11])
}

func TestExpand_TripleCountMatchesInput(t *testing.T) {
	for n := 0; n < 20; n++ {
		lines := make([]string, 0, n)
		for i := 0; i < n; i++ {
			// Every third line repeats so groups and events diverge.
			text := fmt.Sprintf("line %d", i)
			if i%3 == 2 {
				text = "repeat"
			}
			lines = append(lines, dialogueLine("0:00:00.00", "0:00:01.00", text))
		}
		out, err := ExpandDialogues(lines, Options{})
		require.NoError(t, err)
		require.Len(t, out, 3*n)
	}
}

func TestExpand_EmptyNormalizedTextFormsGroup(t *testing.T) {
	lines := []string{
		dialogueLine("0:00:01.00", "0:00:02.00", "Hi"),
		dialogueLine("0:00:02.00", "0:00:03.00", `{\fad(0,200)}`),
		dialogueLine("0:00:03.00", "0:00:04.00", "Bye"),
	}
	groups, err := GroupDialogues(lines)
	require.NoError(t, err)
	require.Len(t, groups, 3)
	require.Equal(t, "", groups[1].Key)

	out := Expand(groups, Options{})
	require.Equal(t, "Dialogue: 0,0:00:01.00,0:00:02.00,F,,0,0,0,,\n\n", out[2])
	require.Equal(t, "Dialogue: 0,0:00:03.00,0:00:04.00,P,,0,0,0,,\n", out[6])
}

func TestExpand_UnterminatedLastLine(t *testing.T) {
	lines := []string{"Dialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,End"}
	out, err := ExpandDialogues(lines, Options{})
	require.NoError(t, err)
	require.Equal(t, "Dialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,End\n", out[1])
}

func TestExpand_CustomOptions(t *testing.T) {
	lines := []string{dialogueLine("0:00:01.00", "0:00:02.00", "Solo")}
	out, err := ExpandDialogues(lines, Options{
		PrevStyle:    "Prev",
		CurrentStyle: "Main",
		NextStyle:    "Next",
		Placeholder:  "—",
	})
	require.NoError(t, err)
	require.Equal(t, []string{
		"Dialogue: 0,0:00:01.00,0:00:02.00,Prev,,0,0,0,,—\n",
		"Dialogue: 0,0:00:01.00,0:00:02.00,Main,,0,0,0,,Solo\n",
		"Dialogue: 0,0:00:01.00,0:00:02.00,Next,,0,0,0,,—\n\n",
	}, out)
}

func TestGroupDialogues_MalformedReportsIndex(t *testing.T) {
	lines := []string{
		dialogueLine("0:00:01.00", "0:00:02.00", "ok"),
		"Dialogue: 0,0:00:01.00\n",
	}
	_, err := GroupDialogues(lines)
	require.ErrorIs(t, err, ErrMalformedDialogue)
	require.True(t, strings.HasPrefix(err.Error(), "dialogue 2:"), err.Error())
}
