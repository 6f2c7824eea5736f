package prompt

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/skillset/internal/errors"
	"github.com/thoreinstein/skillset/internal/overwrite"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestOverwritePrompter_Answers(t *testing.T) {
	tests := []struct {
		input string
		want  overwrite.Decision
	}{
		{"y\n", overwrite.DecisionYes},
		{"yes\n", overwrite.DecisionYes},
		{"a\n", overwrite.DecisionAll},
		{"all\n", overwrite.DecisionAll},
		{"n\n", overwrite.DecisionNo},
		{"\n", overwrite.DecisionNo},
		{"whatever\n", overwrite.DecisionNo},
		{"", overwrite.DecisionNo},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			p := NewOverwritePrompter(strings.NewReader(tt.input), &out)

			got, err := p.Decide(context.Background(), "alpha", "Cursor")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Skill 'alpha' already exists at Cursor. Overwrite? [y/n/all]")
		})
	}
}

func TestOverwritePrompter_ReadsSuccessiveLines(t *testing.T) {
	var out bytes.Buffer
	p := NewOverwritePrompter(strings.NewReader("n\ny\nall\n"), &out)
	ctx := context.Background()

	var got []overwrite.Decision
	for _, label := range []string{"T1", "T2", "T3"} {
		d, err := p.Decide(ctx, "alpha", label)
		require.NoError(t, err)
		got = append(got, d)
	}

	assert.Equal(t, []overwrite.Decision{overwrite.DecisionNo, overwrite.DecisionYes, overwrite.DecisionAll}, got)
}

func TestOverwritePrompter_WithArbiter(t *testing.T) {
	var out bytes.Buffer
	a := overwrite.NewArbiter(NewOverwritePrompter(strings.NewReader("all\n"), &out))
	ctx := context.Background()

	for _, label := range []string{"T1", "T2", "T3"} {
		ok, err := a.Allow(ctx, "alpha", label)
		require.NoError(t, err)
		assert.True(t, ok)
	}
	assert.Equal(t, 1, strings.Count(out.String(), "Overwrite?"))
}

func TestOverwritePrompter_ReadError(t *testing.T) {
	var out bytes.Buffer
	p := NewOverwritePrompter(failingReader{}, &out)

	_, err := p.Decide(context.Background(), "alpha", "Cursor")
	assert.Error(t, err)
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"y\n", true},
		{"YES\n", true},
		{"n\n", false},
		{"\n", false},
		{"all\n", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(strings.TrimSpace(tt.input), func(t *testing.T) {
			var out bytes.Buffer
			got, err := Confirm(strings.NewReader(tt.input), &out, "Remove 'alpha'?")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Contains(t, out.String(), "Remove 'alpha'? [y/N]")
		})
	}
}
