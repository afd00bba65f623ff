package output

import (
	"fmt"
	"io"

	"github.com/rnglib/rng/internal/fileutil"
)

type NameRecord struct {
	Language string `json:"language"`
	Name     string `json:"name"`
}

type SyllableRecord struct {
	Language       string `json:"language"`
	Classification string `json:"classification"`
	Value          string `json:"value"`
	Previous       string `json:"previous,omitempty"`
	Next           string `json:"next,omitempty"`
	Line           string `json:"line"`
}

type LanguageRecord struct {
	Name     string `json:"name"`
	Source   string `json:"source"`
	Checksum string `json:"checksum"`
	Valid    bool   `json:"valid"`
	Prefixes int    `json:"prefixes"`
	Centers  int    `json:"centers"`
	Suffixes int    `json:"suffixes"`
}

type DeadEndRecord struct {
	Syllable string `json:"syllable"`
	Missing  string `json:"missing"`
}

type DiagnosisRecord struct {
	Language     string          `json:"language"`
	Healthy      bool            `json:"healthy"`
	Problems     []string        `json:"problems,omitempty"`
	InvalidLines []string        `json:"invalid_lines,omitempty"`
	DeadEnds     []DeadEndRecord `json:"dead_ends,omitempty"`
}

// Printer writes records in one format.
type Printer struct {
	w      io.Writer
	format Format
	theme  Theme
}

func NewPrinter(w io.Writer, format Format, plain bool) *Printer {
	return &Printer{w: w, format: format, theme: NewTheme(w, plain)}
}

func (p *Printer) Format() Format {
	return p.format
}

// Names prints "Language: Name" lines in text format.
func (p *Printer) Names(records []NameRecord) error {
	switch p.format {
	case FormatJSON:
		return fileutil.PrintJSON(p.w, records)
	case FormatJSONL:
		return fileutil.WriteJSONL(p.w, records)
	}
	for _, r := range records {
		if _, err := fmt.Fprintf(p.w, "%s %s\n", p.theme.Language.Render(r.Language+":"), p.theme.Name.Render(r.Name)); err != nil {
			return err
		}
	}
	return nil
}

// Syllables prints one rendered syllable per line in text format. JSON is not
// offered because a dump is meant to be streamed.
func (p *Printer) Syllables(records []SyllableRecord) error {
	switch p.format {
	case FormatJSONL:
		return fileutil.WriteJSONL(p.w, records)
	case FormatJSON:
		return fmt.Errorf("unsupported dump format %q (supported: text, jsonl)", p.format)
	}
	for _, r := range records {
		if _, err := fmt.Fprintln(p.w, r.Line); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) Languages(records []LanguageRecord) error {
	switch p.format {
	case FormatJSON:
		return fileutil.PrintJSON(p.w, records)
	case FormatJSONL:
		return fileutil.WriteJSONL(p.w, records)
	}
	for _, r := range records {
		line := p.theme.Language.Render(r.Name)
		details := fmt.Sprintf("(%s, prefixes=%d centers=%d suffixes=%d)", r.Source, r.Prefixes, r.Centers, r.Suffixes)
		line += " " + p.theme.Muted.Render(details)
		if !r.Valid {
			line += " " + p.theme.Error.Render("invalid")
		}
		if _, err := fmt.Fprintln(p.w, line); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) Diagnoses(records []DiagnosisRecord) error {
	switch p.format {
	case FormatJSON:
		return fileutil.PrintJSON(p.w, records)
	case FormatJSONL:
		return fileutil.WriteJSONL(p.w, records)
	}

	healthy := 0
	for _, r := range records {
		status := p.theme.Name.Render("ok")
		if !r.Healthy {
			status = p.theme.Error.Render("issues")
		} else {
			healthy++
		}
		if _, err := fmt.Fprintf(p.w, "%s %s\n", p.theme.Language.Render(r.Language+":"), status); err != nil {
			return err
		}
		for _, problem := range r.Problems {
			fmt.Fprintf(p.w, "  %s %s\n", p.theme.Error.Render("[error]"), problem)
		}
		for _, line := range r.InvalidLines {
			fmt.Fprintf(p.w, "  %s invalid line %q\n", p.theme.Error.Render("[error]"), line)
		}
		for _, d := range r.DeadEnds {
			fmt.Fprintf(p.w, "  %s %s has no %s successor\n", p.theme.Warning.Render("[warning]"), d.Syllable, d.Missing)
		}
	}
	_, err := fmt.Fprintf(p.w, "doctor: %d/%d languages healthy\n", healthy, len(records))
	return err
}
