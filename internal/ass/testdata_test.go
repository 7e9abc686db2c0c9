package ass

const sampleHeader = "[Script Info]\n" +
	"Title: sample\n" +
	"ScriptType: v4.00+\n" +
	"\n" +
	"[V4+ Styles]\n" +
	"Format: Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, Encoding\n" +
	"Style: Default,Arial,20,&H00FFFFFF,&H000000FF,&H00000000,&H00000000,0,0,0,0,100,100,0,0,1,2,1,2,10,10,10,1\n" +
	"\n"

const sampleEventsFormat = "[Events]\n" +
	"Format: Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text\n"

func dialogueLine(start, end, text string) string {
	return "Dialogue: 0," + start + "," + end + ",Default,,0,0,0,," + text + "\n"
}
