package cli

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmhart/outlay/internal/model"
)

func newTestPrompter(input string) (*Prompter, *strings.Builder) {
	var out strings.Builder
	return NewPrompter(strings.NewReader(input), &out), &out
}

func TestReadLineCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	// A pipe with no writer never produces input, so only cancellation
	// can unblock the read.
	pr, pw := io.Pipe()
	defer pw.Close()

	reader := NewLineReader(pr)
	_, err := reader.ReadLine(ctx)
	assert.ErrorIs(t, err, ErrInputCancelled)
}

func TestReadLineEndOfInput(t *testing.T) {
	reader := NewLineReader(strings.NewReader(""))
	_, err := reader.ReadLine(context.Background())
	assert.ErrorIs(t, err, ErrInputCancelled)
}

func TestLineTrimsInput(t *testing.T) {
	p, _ := newTestPrompter("  hello world  \n")
	got, err := p.Line(context.Background(), "Description (optional)")
	require.NoError(t, err)
	assert.Equal(t, "hello world", got)
}

func TestDateRetriesUntilValid(t *testing.T) {
	p, out := newTestPrompter("2025-02-30\nnot-a-date\n2025-02-28\n")
	got, err := p.Date(context.Background(), "Date (YYYY-MM-DD)")
	require.NoError(t, err)
	assert.Equal(t, "2025-02-28", got)
	assert.Equal(t, 2, strings.Count(out.String(), "Invalid date"))
}

func TestOptionalDateEmptyMeansUnset(t *testing.T) {
	p, _ := newTestPrompter("\n")
	got, err := p.OptionalDate(context.Background(), "From date or empty")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestOptionalDateValidatesNonEmpty(t *testing.T) {
	p, out := newTestPrompter("2025/01/01\n2025-01-01\n")
	got, err := p.OptionalDate(context.Background(), "From date or empty")
	require.NoError(t, err)
	assert.Equal(t, "2025-01-01", got)
	assert.Contains(t, out.String(), "Invalid date")
}

func TestAmountRetriesUntilValid(t *testing.T) {
	p, out := newTestPrompter("abc\n-1\n0\n12,5\n")
	got, err := p.Amount(context.Background(), "Amount")
	require.NoError(t, err)
	assert.InDelta(t, 12.5, got, 0.0001)
	assert.Equal(t, 3, strings.Count(out.String(), "Invalid amount"))
}

func TestIntRange(t *testing.T) {
	p, out := newTestPrompter("0\n13\nx\n6\n")
	got, err := p.IntRange(context.Background(), "Month (1-12)", 1, 12)
	require.NoError(t, err)
	assert.Equal(t, 6, got)
	assert.Equal(t, 3, strings.Count(out.String(), "between 1 and 12"))
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		defaultYes bool
		want       bool
	}{
		{name: "yes short", input: "y\n", want: true},
		{name: "yes long uppercase", input: "YES\n", want: true},
		{name: "no short", input: "n\n", defaultYes: true, want: false},
		{name: "no long", input: "no\n", defaultYes: true, want: false},
		{name: "empty takes default yes", input: "\n", defaultYes: true, want: true},
		{name: "empty takes default no", input: "\n", want: false},
		{name: "garbage then answer", input: "maybe\nn\n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, _ := newTestPrompter(tt.input)
			got, err := p.Confirm(context.Background(), "Are you sure?", tt.defaultYes)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectCategory(t *testing.T) {
	categories := []model.Category{
		{ID: 1, Name: "Food"},
		{ID: 2, Name: "Transport"},
	}

	t.Run("empty input means no category", func(t *testing.T) {
		p, _ := newTestPrompter("\n")
		got, err := p.SelectCategory(context.Background(), categories)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("picks a listed id", func(t *testing.T) {
		p, out := newTestPrompter("2\n")
		got, err := p.SelectCategory(context.Background(), categories)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, int64(2), *got)
		assert.Contains(t, out.String(), "[1] Food")
		assert.Contains(t, out.String(), "[2] Transport")
	})

	t.Run("rejects unknown and non-numeric ids", func(t *testing.T) {
		p, out := newTestPrompter("99\nabc\n1\n")
		got, err := p.SelectCategory(context.Background(), categories)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, int64(1), *got)
		assert.Equal(t, 2, strings.Count(out.String(), "Invalid category id"))
	})

	t.Run("no categories at all", func(t *testing.T) {
		p, out := newTestPrompter("")
		got, err := p.SelectCategory(context.Background(), nil)
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.Contains(t, out.String(), "No categories yet")
	})
}
