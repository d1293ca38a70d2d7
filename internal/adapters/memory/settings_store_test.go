package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emomoto/auto-recruiter/internal/domain/model"
)

func TestSettingsStore_LoadSave(t *testing.T) {
	store := NewSettingsStore()
	ctx := context.Background()

	_, found, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	in := model.BotSettings{MaximumCandidates: 10, JobTitles: []string{"Engineer"}}
	require.NoError(t, store.Save(ctx, in))
	in.JobTitles[0] = "mutated"

	got, found, err := store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, 10, got.MaximumCandidates)
	assert.Equal(t, []string{"Engineer"}, got.JobTitles)
}
