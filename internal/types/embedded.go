package types

// Embedded is a cue sheet found inside an audio file. Exactly one of Text
// and Sheet is set.
type Embedded struct {
	// Text is raw cue sheet text stored in a tag.
	Text string
	// Sheet is converted from a binary cue sheet structure.
	Sheet *CueSheet
	// SampleRate is the stream's sample rate, if known.
	SampleRate uint32
}
