package catalog

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"twerr/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRecords(t *testing.T, src string) []model.ErrorRecord {
	t.Helper()
	var records []model.ErrorRecord
	require.NoError(t, json.Unmarshal([]byte(src), &records))
	return records
}

func TestBuild(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want map[string]string
	}{
		{
			name: "numeric and string codes",
			src:  `[{"code": 11200, "message": "HTTP retrieval failure"}, {"code": "21211", "message": "Invalid 'To' Phone Number"}]`,
			want: map[string]string{"11200": "HTTP retrieval failure", "21211": "Invalid 'To' Phone Number"},
		},
		{
			name: "duplicate code keeps last message",
			src:  `[{"code": 1, "message": "first"}, {"code": 1, "message": "second"}]`,
			want: map[string]string{"1": "second"},
		},
		{
			name: "empty array",
			src:  `[]`,
			want: map[string]string{},
		},
		{
			name: "extra fields ignored",
			src:  `[{"code": 30004, "message": "Message blocked", "log_level": "ERROR", "secondary_message": ""}]`,
			want: map[string]string{"30004": "Message blocked"},
		},
		{
			name: "empty message kept",
			src:  `[{"code": 20003, "message": ""}]`,
			want: map[string]string{"20003": ""},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Build(decodeRecords(t, tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildSchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"missing code", `[{"message": "orphan"}]`},
		{"missing message", `[{"code": 11200}]`},
		{"missing field after valid records", `[{"code": 1, "message": "ok"}, {"code": 2}]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(decodeRecords(t, tt.src))
			assert.ErrorIs(t, err, ErrSchema)
		})
	}
}

func TestWriteLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.json")
	mapping := map[string]string{
		"11200": "HTTP retrieval failure",
		"21211": "Invalid 'To' Phone Number",
	}

	require.NoError(t, Write(path, mapping))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, mapping, got)
}

func TestWriteEmptyMapping(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.json")
	require.NoError(t, Write(path, map[string]string{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestWriteOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "errors.json")
	require.NoError(t, Write(path, map[string]string{"1": "first"}))
	require.NoError(t, Write(path, map[string]string{"2": "second"}))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"2": "second"}, got)
}

func TestWriteMissingParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "no-such-dir", "errors.json")
	assert.Error(t, Write(path, map[string]string{"1": "one"}))
}

func TestWriteLeavesNoTempFileOnFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out", "errors.json")
	assert.Error(t, Write(path, map[string]string{"1": "one"}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
