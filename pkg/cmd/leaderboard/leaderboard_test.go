package leaderboard

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpapenbr/gc-segments/pkg/config"
	"github.com/mpapenbr/gc-segments/pkg/render"
)

func withInput(t *testing.T, input string, activityID int, format string) {
	t.Helper()
	oldInput, oldID, oldFormat, oldType := config.Input, config.ActivityID,
		config.OutputFormat, config.IntervalType
	t.Cleanup(func() {
		config.Input, config.ActivityID, config.OutputFormat, config.IntervalType = oldInput,
			oldID, oldFormat, oldType
	})
	config.Input, config.ActivityID, config.OutputFormat = input, activityID, format
	config.IntervalType = "ROUTE"
}

func TestPrepareConfig(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		activityID int
		format     string
		wantErr    error
	}{
		{name: "file", input: "export.json", format: "text"},
		{name: "db", activityID: 3, format: "json"},
		{name: "none", format: "text", wantErr: ErrNoSource},
		{name: "both", input: "export.json", activityID: 3, format: "text", wantErr: ErrAmbiguousInput},
		{name: "bad format", input: "export.json", format: "html", wantErr: render.ErrUnknownFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withInput(t, tt.input, tt.activityID, tt.format)
			err := prepareConfig()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRun_File(t *testing.T) {
	withInput(t, "../../source/file/testdata/export.json", 0, "json")
	require.NoError(t, prepareConfig())

	buf := &bytes.Buffer{}
	require.NoError(t, run(t.Context(), buf))
	var got struct {
		Overview struct {
			NumSegments int `json:"numSegments"`
		} `json:"overview"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, 2, got.Overview.NumSegments)
}

func TestRun_MissingFile(t *testing.T) {
	withInput(t, "does-not-exist.json", 0, "text")
	require.NoError(t, prepareConfig())

	buf := &bytes.Buffer{}
	require.NoError(t, run(t.Context(), buf))
	assert.Contains(t, buf.String(), "Failed to load segments")
}
