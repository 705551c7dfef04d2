package store

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tsawler/outline/model"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "data", "outlines.db"))
	require.NoError(t, err)
	t.Cleanup(func() { assert.NoError(t, s.Close()) })
	return s
}

func sampleRecord() *Record {
	return &Record{
		Source:       "/docs/report.pdf",
		DocumentType: "report",
		Pages:        12,
		Outline: model.Outline{
			Title: "Annual Report",
			Headings: []model.Heading{
				{Level: model.H1, Text: "1. Introduction", Page: 1},
				{Level: model.H2, Text: "1.1 Scope", Page: 2},
			},
		},
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	rec := sampleRecord()
	require.NoError(t, s.Save(ctx, rec))
	assert.NotEmpty(t, rec.ID)
	assert.False(t, rec.CreatedAt.IsZero())

	got, err := s.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.ID, got.ID)
	assert.Equal(t, "/docs/report.pdf", got.Source)
	assert.Equal(t, "report", got.DocumentType)
	assert.Equal(t, 12, got.Pages)
	assert.Equal(t, rec.Outline, got.Outline)
	assert.True(t, rec.CreatedAt.Equal(got.CreatedAt))
}

func TestStore_SaveReplaces(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	rec := sampleRecord()
	require.NoError(t, s.Save(ctx, rec))

	rec.Outline.Title = "Revised Report"
	rec.Outline.Headings = nil
	require.NoError(t, s.Save(ctx, rec))

	got, err := s.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "Revised Report", got.Outline.Title)
	assert.Empty(t, got.Outline.Headings)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestStore_GetMissing(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.Get(context.Background(), "does-not-exist")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStore_ListNewestFirst(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, title := range []string{"first", "second", "third"} {
		rec := sampleRecord()
		rec.Outline.Title = title
		rec.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, s.Save(ctx, rec))
	}

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "third", all[0].Outline.Title)
	assert.Equal(t, "second", all[1].Outline.Title)
	assert.Equal(t, "first", all[2].Outline.Title)
}

func TestStore_ListEmpty(t *testing.T) {
	s := setupTestStore(t)

	all, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestStore_Delete(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	rec := sampleRecord()
	require.NoError(t, s.Save(ctx, rec))
	require.NoError(t, s.Delete(ctx, rec.ID))

	_, err := s.Get(ctx, rec.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, rec.ID), ErrNotFound)
}

func TestStore_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "outlines.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	rec := sampleRecord()
	require.NoError(t, s.Save(ctx, rec))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, rec.Outline.Title, got.Outline.Title)
	assert.Equal(t, path, s.Path())
}

func TestStore_ConcurrentSave(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Save(ctx, sampleRecord()))
		}()
	}
	wg.Wait()

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 8)
}
