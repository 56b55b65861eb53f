package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/recipe/internal/adapters/logger"
	"go.trai.ch/recipe/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name:         "wrapped chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle"), "outer"),
			wantMessages: []string{"outer", "middle", "root cause"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name:         "metadata on one link",
			err:          zerr.With(zerr.With(zerr.New("base"), "k1", "v1"), "k2", 42),
			wantMessages: []string{"base"},
			wantMetadata: []map[string]any{{"k1": "v1", "k2": 42}},
		},
		{
			name:         "metadata on a standard error moves to it",
			err:          zerr.With(errors.New("exit status 2"), "exit_code", 2),
			wantMessages: []string{"exit status 2"},
			wantMetadata: []map[string]any{{"exit_code": 2}},
		},
		{
			name:         "failure shows its sentinel as a link",
			err:          zerr.With(domain.Fail(domain.ErrStoreReadFailed, errors.New("permission denied")), "path", "/x"),
			wantMessages: []string{domain.ErrStoreReadFailed.Error(), "permission denied"},
			wantMetadata: []map[string]any{{"path": "/x"}, nil},
		},
		{
			name:         "nil",
			err:          nil,
			wantMessages: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)
			if tt.err == nil {
				assert.Empty(t, entries)
				return
			}

			assert.Len(t, entries, len(tt.wantMessages))
			for i, want := range tt.wantMessages {
				assert.Equal(t, want, entries[i].Message)
				assert.Equal(t, tt.wantMetadata[i], entries[i].Metadata)
			}
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "single error"}},
			want:    "Error: single error",
		},
		{
			name: "causes with sorted metadata",
			entries: []logger.ErrorEntry{
				{Message: "outer", Metadata: map[string]any{"b": 2, "a": "x"}},
				{Message: "inner"},
				{Message: "root", Metadata: map[string]any{"path": "/tmp"}},
			},
			want: "Error: outer\n" +
				"  a=x\n" +
				"  b=2\n" +
				"\n" +
				"  Caused by:\n" +
				"    → inner\n" +
				"    → root\n" +
				"      path=/tmp",
		},
		{
			name:    "multiline message",
			entries: []logger.ErrorEntry{{Message: "first\nsecond"}},
			want:    "Error: first\n       second",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
