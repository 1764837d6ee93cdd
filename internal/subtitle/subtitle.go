package subtitle

// represents single timed text block
type Paragraph struct {
	Number    int
	StartTime TimeCode
	EndTime   TimeCode
	Text      string
}

// ordered subtitle document; slice order is presentation order
type Subtitle struct {
	Paragraphs []Paragraph
}

// rewrites every paragraph number to its 1-based position
func (s *Subtitle) Renumber() {
	for i := range s.Paragraphs {
		s.Paragraphs[i].Number = i + 1
	}
}

// interface for writing subtitles to files
type FileWriter interface {
	Write(sub *Subtitle, path string) error
}
