package subtitle

import (
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"
)

// renumbering is skipped once a pass reaches this many errors
const DefaultErrorThreshold = 100

// line the block parser expects next
type State int

const (
	ExpectingNumber State = iota
	ExpectingTimeCodes
	ExpectingText
)

func (s State) String() string {
	switch s {
	case ExpectingNumber:
		return "expecting-number"
	case ExpectingTimeCodes:
		return "expecting-timecodes"
	case ExpectingText:
		return "expecting-text"
	default:
		return "unknown"
	}
}

// recoverable format problem counted during a parse pass
type AnomalyKind int

const (
	NoAnomaly AnomalyKind = iota
	MalformedNumber
	MalformedTimeCodes
	MissingBlankLine
	MissingNumber
)

func (k AnomalyKind) String() string {
	switch k {
	case NoAnomaly:
		return "none"
	case MalformedNumber:
		return "malformed-number"
	case MalformedTimeCodes:
		return "malformed-timecodes"
	case MissingBlankLine:
		return "missing-blank-line"
	case MissingNumber:
		return "missing-number"
	default:
		return "unknown"
	}
}

type Anomaly struct {
	Line int // 1-based
	Kind AnomalyKind
	Text string
}

// outcome of feeding one line to the state machine
type Transition struct {
	State     State
	Paragraph Paragraph  // in-progress paragraph after the step
	Committed *Paragraph // set when a block was completed
	Anomaly   AnomalyKind
}

// Step advances the block state machine by one line. It has no side
// effects; next is the raw following line or "" at end of input.
func Step(
	state State,
	cur Paragraph,
	line, next string,
	clean Cleaner,
) Transition {
	t := Transition{State: state, Paragraph: cur}

	switch state {
	case ExpectingNumber:
		if n, err := strconv.Atoi(line); err == nil {
			t.Paragraph.Number = n
			t.State = ExpectingTimeCodes
		} else if !IsBlank(line) {
			t.Anomaly = MalformedNumber
		}

	case ExpectingTimeCodes:
		if start, end, ok := ParseTimeRange(line); ok {
			t.Paragraph.StartTime = start
			t.Paragraph.EndTime = end
			t.Paragraph.Text = ""
			t.State = ExpectingText
		} else if !IsBlank(line) {
			t.Anomaly = MalformedTimeCodes
			t.State = ExpectingNumber
		}

	case ExpectingText:
		switch {
		case !IsBlank(line) || IsText(next):
			text := strings.TrimRightFunc(clean(line), unicode.IsSpace)
			text = strings.ReplaceAll(text, "\n\n", "\n")
			if t.Paragraph.Text != "" {
				t.Paragraph.Text += "\n"
			}
			t.Paragraph.Text += text

		case line == "" && cur.Text == "":
			// blank before any text; an index or time range right after
			// means the block has no text at all
			if next != "" && (IsInteger(next) || timeRangeLenient.MatchString(next)) {
				t = commit(cur)
			}

		default:
			t = commit(cur)
		}
	}

	return t
}

func commit(cur Paragraph) Transition {
	done := cur
	return Transition{
		State:     ExpectingNumber,
		Committed: &done,
	}
}

type ParserOptions struct {
	ErrorThreshold int     // default DefaultErrorThreshold
	Cleaner        Cleaner // default RemoveBadChars
	Logger         *zap.SugaredLogger
}

// Parser reads SubRip lines into a Subtitle, repairing what it can.
// Pass state is local to Parse so a Parser can be reused.
type Parser struct {
	threshold int
	clean     Cleaner
	log       *zap.SugaredLogger
}

func NewParser(opts ParserOptions) *Parser {
	p := &Parser{
		threshold: opts.ErrorThreshold,
		clean:     opts.Cleaner,
		log:       opts.Logger,
	}
	if p.threshold <= 0 {
		p.threshold = DefaultErrorThreshold
	}
	if p.clean == nil {
		p.clean = RemoveBadChars
	}
	if p.log == nil {
		p.log = zap.NewNop().Sugar()
	}
	return p
}

// summary of one parse pass
type Result struct {
	ErrorCount int
	Renumbered bool
	Anomalies  []Anomaly
}

// Parse appends the blocks found in lines to sub. source only labels log
// output.
func (p *Parser) Parse(sub *Subtitle, lines []string, source string) Result {
	var res Result
	first := len(sub.Paragraphs)
	state := ExpectingNumber
	cur := Paragraph{}
	renumber := false

	record := func(lineNum int, kind AnomalyKind, text string) {
		res.ErrorCount++
		res.Anomalies = append(res.Anomalies, Anomaly{
			Line: lineNum,
			Kind: kind,
			Text: text,
		})
		p.log.Debugw("Recovered from malformed input",
			"source", source,
			"line", lineNum,
			"kind", kind.String(),
			"text", text,
		)
	}

	apply := func(t Transition) {
		if t.Committed != nil {
			sub.Paragraphs = append(sub.Paragraphs, *t.Committed)
		}
		state = t.State
		cur = t.Paragraph
	}

	for i, raw := range lines {
		lineNum := i + 1
		line := strings.TrimRightFunc(raw, unicode.IsSpace)
		line = strings.Trim(line, "\u007f")

		next := ""
		hasNext := i+1 < len(lines)
		if hasNext {
			next = lines[i+1]
		}

		// two blocks run together without a blank line
		if state == ExpectingText && hasNext && cur.Text != "" &&
			IsInteger(line) && timeRangeLenient.MatchString(next) {
			record(lineNum, MissingBlankLine, line)
			apply(Step(state, cur, "", "", p.clean))
		}

		// index line omitted
		if state == ExpectingNumber && IsTimeRangeLine(line) {
			record(lineNum, MissingNumber, line)
			state = ExpectingTimeCodes
			renumber = true
		}

		t := Step(state, cur, line, next, p.clean)
		if t.Anomaly != NoAnomaly {
			record(lineNum, t.Anomaly, line)
		}
		apply(t)
	}

	if !IsBlank(cur.Text) {
		sub.Paragraphs = append(sub.Paragraphs, cur)
	}

	for i := first; i < len(sub.Paragraphs); i++ {
		sub.Paragraphs[i].Text = strings.ReplaceAll(
			sub.Paragraphs[i].Text, "\n\n", "\n",
		)
	}

	if renumber && res.ErrorCount < p.threshold {
		sub.Renumber()
		res.Renumbered = true
	}

	p.log.Debugw("Parsed subtitle lines",
		"source", source,
		"lines", len(lines),
		"paragraphs", len(sub.Paragraphs)-first,
		"errors", res.ErrorCount,
		"renumbered", res.Renumbered,
	)

	return res
}
