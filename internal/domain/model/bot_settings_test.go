package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBotSettings_Normalize(t *testing.T) {
	s := BotSettings{
		JobTitles: []string{" Backend Engineer ", "", "  "},
		Keywords:  []string{"Go", " Django", ""},
	}
	s.Normalize()

	assert.Equal(t, []string{"Backend Engineer"}, s.JobTitles)
	assert.Equal(t, []string{"Go", "Django"}, s.Keywords)
}

func TestBotSettings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		in      BotSettings
		wantErr string
	}{
		{name: "defaults are valid", in: DefaultBotSettings()},
		{
			name: "equal thresholds are valid",
			in:   BotSettings{AutoResponseThreshold: 0.5, AutoRejectionThreshold: 0.5},
		},
		{
			name:    "negative rejection threshold",
			in:      BotSettings{AutoResponseThreshold: 1, AutoRejectionThreshold: -1},
			wantErr: "autoRejectionThreshold must be a non-negative number",
		},
		{
			name:    "response below rejection",
			in:      BotSettings{AutoResponseThreshold: 0.2, AutoRejectionThreshold: 0.7},
			wantErr: "autoResponseThreshold must be equal to or greater than autoRejectionThreshold",
		},
		{
			name:    "negative maximum candidates",
			in:      BotSettings{MaximumCandidates: -5},
			wantErr: "maximumCandidates must be a non-negative number",
		},
		{
			name:    "too many candidates",
			in:      BotSettings{MaximumCandidates: maxCandidatesCap + 1},
			wantErr: "maximumCandidates cannot exceed",
		},
		{
			name:    "keyword too long",
			in:      BotSettings{Keywords: []string{strings.Repeat("k", maxEntryLen+1)}},
			wantErr: "characters",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.in.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestBotSettings_FieldErrors(t *testing.T) {
	s := BotSettings{AutoResponseThreshold: 0.1, AutoRejectionThreshold: 0.9}
	fe := s.FieldErrors()
	require.Contains(t, fe, "autoResponseThreshold")
	assert.Nil(t, DefaultBotSettings().FieldErrors())
}

func TestBotSettings_CloneDoesNotAlias(t *testing.T) {
	orig := BotSettings{JobTitles: []string{"Engineer"}, Keywords: nil}
	cp := orig.Clone()
	cp.JobTitles[0] = "Designer"

	if orig.JobTitles[0] != "Engineer" {
		t.Fatalf("clone aliased JobTitles: %v", orig.JobTitles)
	}
	if cp.Keywords == nil {
		t.Fatalf("clone should never carry nil lists")
	}
}
