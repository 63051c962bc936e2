package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jmhart/outlay/internal/model"
	"github.com/jmhart/outlay/internal/parse"
)

// Prompter implements the interactive prompting flows shared by the menu
// actions. Validation failures are reported inline and re-prompted; they
// never escape past the prompt boundary.
type Prompter struct {
	writer io.Writer
	reader *LineReader
}

// NewPrompter creates a prompter over the given streams, defaulting to
// stdin/stdout.
func NewPrompter(reader io.Reader, writer io.Writer) *Prompter {
	if reader == nil {
		reader = os.Stdin
	}
	if writer == nil {
		writer = os.Stdout
	}

	return &Prompter{
		reader: NewLineReader(reader),
		writer: writer,
	}
}

// Writer exposes the output stream so callers can print around prompts.
func (p *Prompter) Writer() io.Writer {
	return p.writer
}

// Line prompts for one line of free text, trimmed. Empty is allowed.
func (p *Prompter) Line(ctx context.Context, label string) (string, error) {
	fmt.Fprint(p.writer, FormatPrompt(label))
	return p.reader.ReadLine(ctx)
}

// Date prompts until the user enters a valid YYYY-MM-DD calendar date.
func (p *Prompter) Date(ctx context.Context, label string) (string, error) {
	for {
		raw, err := p.Line(ctx, label)
		if err != nil {
			return "", err
		}
		date, err := parse.Date(raw)
		if err != nil {
			fmt.Fprintln(p.writer, FormatError("Invalid date, please try again."))
			continue
		}
		return date, nil
	}
}

// OptionalDate prompts for a date where empty input means "no value".
// Non-empty input is validated with the usual retry loop.
func (p *Prompter) OptionalDate(ctx context.Context, label string) (string, error) {
	for {
		raw, err := p.Line(ctx, label)
		if err != nil {
			return "", err
		}
		if raw == "" {
			return "", nil
		}
		date, err := parse.Date(raw)
		if err != nil {
			fmt.Fprintln(p.writer, FormatError("Invalid date, please try again."))
			continue
		}
		return date, nil
	}
}

// Amount prompts until the user enters a valid positive amount.
func (p *Prompter) Amount(ctx context.Context, label string) (float64, error) {
	for {
		raw, err := p.Line(ctx, label)
		if err != nil {
			return 0, err
		}
		amount, err := parse.Amount(raw)
		if err != nil {
			fmt.Fprintln(p.writer, FormatError("Invalid amount, must be positive number."))
			continue
		}
		return amount, nil
	}
}

// IntRange prompts until the user enters an integer within [lo, hi].
func (p *Prompter) IntRange(ctx context.Context, label string, lo, hi int) (int, error) {
	for {
		raw, err := p.Line(ctx, label)
		if err != nil {
			return 0, err
		}
		value, convErr := strconv.Atoi(raw)
		if convErr != nil || value < lo || value > hi {
			fmt.Fprintln(p.writer, FormatError(fmt.Sprintf("Enter a number between %d and %d.", lo, hi)))
			continue
		}
		return value, nil
	}
}

// Confirm asks a yes/no question. Accepts y/yes/n/no case-insensitively and
// falls back to the default on empty input.
func (p *Prompter) Confirm(ctx context.Context, question string, defaultYes bool) (bool, error) {
	suffix := " [y/N]"
	if defaultYes {
		suffix = " [Y/n]"
	}

	for {
		raw, err := p.Line(ctx, question+suffix)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(raw) {
		case "":
			return defaultYes, nil
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		fmt.Fprintln(p.writer, FormatError("Please answer with 'y' or 'n'."))
	}
}

// SelectCategory lists the categories and prompts for one by id. Empty
// input means "no category"; anything else must match a listed id. There is
// no cancel distinct from "no category". Returns nil when the list itself
// is empty.
func (p *Prompter) SelectCategory(ctx context.Context, categories []model.Category) (*int64, error) {
	if len(categories) == 0 {
		fmt.Fprintln(p.writer, FormatWarning("No categories yet. Add one first."))
		return nil, nil
	}

	fmt.Fprintln(p.writer, "Available categories:")
	for _, cat := range categories {
		fmt.Fprintf(p.writer, "  [%d] %s\n", cat.ID, cat.Name)
	}

	for {
		raw, err := p.Line(ctx, "Enter category id (or empty for none)")
		if err != nil {
			return nil, err
		}
		if raw == "" {
			return nil, nil
		}
		id, convErr := strconv.ParseInt(raw, 10, 64)
		if convErr == nil {
			for _, cat := range categories {
				if cat.ID == id {
					return &cat.ID, nil
				}
			}
		}
		fmt.Fprintln(p.writer, FormatError("Invalid category id."))
	}
}

// Pause waits for the user to acknowledge before the menu redraws.
func (p *Prompter) Pause(ctx context.Context) error {
	fmt.Fprint(p.writer, SubtleStyle.Render("\nPress Enter to continue..."))
	_, err := p.reader.ReadLine(ctx)
	return err
}
