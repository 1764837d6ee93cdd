package subtitle

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/natefinch/atomic"
)

const (
	LineEndingLF   = "\n"
	LineEndingCRLF = "\r\n"
)

// SRTWriter renders SubRip text
type SRTWriter struct {
	LineEnding string // default LineEndingLF
}

func NewWriter(lineEnding string) *SRTWriter {
	return &SRTWriter{LineEnding: lineEnding}
}

func (w *SRTWriter) newline() string {
	if w == nil || w.LineEnding == "" {
		return LineEndingLF
	}
	return w.LineEnding
}

// ToText serializes sub with "\n" line endings
func ToText(sub *Subtitle) string {
	return (&SRTWriter{}).Render(sub)
}

// renders every paragraph as number, time range, text and a blank line.
// Leading and trailing whitespace of the whole output is trimmed.
func (w *SRTWriter) Render(sub *Subtitle) string {
	nl := w.newline()

	var sb strings.Builder
	for _, p := range sub.Paragraphs {
		sb.WriteString(strconv.Itoa(p.Number))
		sb.WriteString(nl)

		// timestamps: 00:00:00,000 --> 00:00:00,000
		sb.WriteString(p.StartTime.String())
		sb.WriteString(" --> ")
		sb.WriteString(p.EndTime.String())
		sb.WriteString(nl)

		sb.WriteString(convertLineEndings(p.Text, nl))
		sb.WriteString(nl)
		sb.WriteString(nl)
	}

	return strings.TrimSpace(sb.String())
}

// writes the subtitle to an SRT file, replacing it atomically
func (w *SRTWriter) Write(sub *Subtitle, path string) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	_, statErr := os.Stat(path)
	existed := statErr == nil

	content := w.Render(sub) + w.newline()
	if err := atomic.WriteFile(path, strings.NewReader(content)); err != nil {
		return fmt.Errorf("failed to write SRT file: %w", err)
	}

	// atomic.WriteFile keeps the mode of a replaced file but leaves new
	// files owner-only
	if !existed {
		if err := os.Chmod(path, 0644); err != nil {
			return fmt.Errorf("failed to set file permissions: %w", err)
		}
	}
	return nil
}

func convertLineEndings(text, nl string) string {
	if nl == LineEndingLF {
		return text
	}
	return strings.ReplaceAll(text, "\n", nl)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}
