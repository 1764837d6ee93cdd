package subtitle

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// parsed SubRip file together with the quality report of its parse
type SRTFile struct {
	source string
	sub    *Subtitle
	result Result
}

// Open reads and parses the SubRip file at path
func Open(path string, parser *Parser) (*SRTFile, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open SRT file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	return Read(file, path, parser)
}

// Read decodes r (UTF-8, or UTF-16 when a byte order mark says so) and
// parses it. source only labels log output.
func Read(r io.Reader, source string, parser *Parser) (*SRTFile, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	data, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return nil, fmt.Errorf("error reading SRT file: %w", err)
	}

	if parser == nil {
		parser = NewParser(ParserOptions{})
	}

	sub := &Subtitle{}
	result := parser.Parse(sub, SplitLines(string(data)), source)

	return &SRTFile{
		source: source,
		sub:    sub,
		result: result,
	}, nil
}

// splits on \r\n, \r or \n; a final line ending does not add an empty line
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

func (f *SRTFile) Source() string {
	return f.source
}

func (f *SRTFile) Subtitle() *Subtitle {
	return f.sub
}

func (f *SRTFile) Result() Result {
	return f.result
}

// writes the parsed subtitle back out; a nil writer uses LF endings
func (f *SRTFile) Write(path string, w FileWriter) error {
	if w == nil {
		w = NewWriter(LineEndingLF)
	}
	return w.Write(f.sub, path)
}
