package entity_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/entitykit/pkg/entity"
)

func TestNewRecord(t *testing.T) {
	t.Parallel()

	before := time.Now()
	rec := entity.NewRecord("rec-1")
	after := time.Now()

	assert.Equal(t, "rec-1", rec.ID)
	assert.Equal(t, "rec-1", rec.EntityID())
	assert.False(t, rec.CreatedAt.Before(before))
	assert.False(t, rec.CreatedAt.After(after))
	assert.False(t, rec.UpdatedAt.Before(rec.CreatedAt), "UpdatedAt must not precede CreatedAt")
}

func TestRecord_Touch(t *testing.T) {
	t.Parallel()

	rec := entity.NewRecord("rec-1")
	created := rec.CreatedAt

	time.Sleep(time.Millisecond)
	rec.Touch()

	require.Equal(t, created, rec.CreatedAt, "Touch must not change CreatedAt")
	assert.True(t, rec.UpdatedAt.After(created))
}
