package pipeline

// ConversionStatus is the terminal state of a conversion run.
type ConversionStatus string

const (
	ConversionStatusSuccess ConversionStatus = "Success"
	ConversionStatusSkipped ConversionStatus = "Skipped"
)

// ConversionResult describes what RunConversion produced.
type ConversionResult struct {
	Status     ConversionStatus
	OutputPath string
	Dialogues  int // input dialogue events, equal to the number of triples written
	Groups     int // distinct normalized lines
	Events     int // synthesized output events
	// InjectedStyles lists styles added to the [V4+ Styles] section.
	InjectedStyles []string
}
