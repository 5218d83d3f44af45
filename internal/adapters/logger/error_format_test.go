package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/syncnm/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
		},
		{
			name:         "zerr single error",
			err:          zerr.New("zerr error"),
			wantMessages: []string{"zerr error"},
		},
		{
			name: "zerr wrapped chain",
			err: zerr.Wrap(
				zerr.Wrap(errors.New("root cause"), "middle layer"),
				"outer layer",
			),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntriesExported(tt.err)

			messages := make([]string, 0, len(entries))
			for _, e := range entries {
				messages = append(messages, e.Message)
			}
			assert.Equal(t, tt.wantMessages, messages)
		})
	}
}

func TestCollectErrorEntries_Metadata(t *testing.T) {
	err := zerr.With(zerr.New("failed to move directory"), "from", "/a")

	entries := logger.CollectErrorEntriesExported(err)

	assert.Len(t, entries, 1)
	assert.Equal(t, "/a", entries[0].Metadata["from"])
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "boom"}},
			want:    "Error: boom",
		},
		{
			name: "sorted main metadata",
			entries: []logger.ErrorEntry{{
				Message:  "failed to install dependencies",
				Metadata: map[string]any{"exit_code": 1, "command": "npm install"},
			}},
			want: "Error: failed to install dependencies\n" +
				"       command: npm install\n" +
				"       exit_code: 1",
		},
		{
			name: "multiline main message",
			entries: []logger.ErrorEntry{{
				Message: "yaml: unmarshal errors:\n  line 3: bad",
			}},
			want: "Error: yaml: unmarshal errors:\n" +
				"         line 3: bad",
		},
		{
			name: "causes with metadata",
			entries: []logger.ErrorEntry{
				{Message: "failed to parse file", Metadata: map[string]any{"path": "/p/package.json"}},
				{Message: "unexpected end of JSON input\nat byte 4", Metadata: map[string]any{"offset": 4}},
			},
			want: "Error: failed to parse file\n" +
				"       path: /p/package.json\n" +
				"\n" +
				"  Caused by:\n" +
				"    → unexpected end of JSON input\n" +
				"      at byte 4\n" +
				"      offset: 4",
		},
		{
			name: "several causes share one header",
			entries: []logger.ErrorEntry{
				{Message: "outer"},
				{Message: "middle"},
				{Message: "root"},
			},
			want: "Error: outer\n\n  Caused by:\n    → middle\n    → root",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntriesExported(tt.entries))
		})
	}
}
