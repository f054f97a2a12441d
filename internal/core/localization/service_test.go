// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package localization_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/aqar/internal/core/localization"
	"github.com/taibuivan/aqar/internal/platform/apperr"
)

// memoryRepository is an in-memory [localization.Repository].
type memoryRepository struct {
	entries []localization.Entry
	failing error
}

func (repository *memoryRepository) AppendEntry(_ context.Context, entry localization.Entry) error {
	if repository.failing != nil {
		return repository.failing
	}
	repository.entries = append(repository.entries, entry)
	return nil
}

func (repository *memoryRepository) ListEntries(context.Context) ([]localization.Entry, error) {
	if repository.failing != nil {
		return nil, repository.failing
	}
	return append([]localization.Entry(nil), repository.entries...), nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestService_AddTranslation verifies persistence happens before the entry is applied.
*/
func TestService_AddTranslation(t *testing.T) {
	repository := &memoryRepository{}
	dictionary := seeded()
	service := localization.NewService(repository, dictionary, discardLogger())

	entry, err := service.AddTranslation(context.Background(), "  Villa ", "فيلا جديدة", "ops-1")
	require.NoError(t, err)

	assert.Equal(t, localization.Entry{Source: "Villa", Target: "فيلا جديدة"}, entry)
	assert.Equal(t, []localization.Entry{entry}, repository.entries)

	got, err := service.Lookup("VILLA")
	require.NoError(t, err)
	assert.Equal(t, "فيلا جديدة", got.Target)
	assert.Len(t, service.List(), 2)
}

/*
TestService_AddTranslation_Validation rejects empty phrases without touching storage.
*/
func TestService_AddTranslation_Validation(t *testing.T) {
	repository := &memoryRepository{}
	service := localization.NewService(repository, seeded(), discardLogger())

	_, err := service.AddTranslation(context.Background(), " ", "", "ops-1")
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Len(t, ae.Details, 2)
	assert.Empty(t, repository.entries)
}

/*
TestService_AddTranslation_StorageFailure keeps the dictionary unchanged.
*/
func TestService_AddTranslation_StorageFailure(t *testing.T) {
	repository := &memoryRepository{failing: errors.New("redis down")}
	dictionary := seeded()
	service := localization.NewService(repository, dictionary, discardLogger())

	_, err := service.AddTranslation(context.Background(), "Chalet", "شاليه", "ops-1")
	require.Error(t, err)
	assert.Equal(t, "INTERNAL_ERROR", apperr.As(err).Code)

	_, found := dictionary.Lookup("Chalet")
	assert.False(t, found)
}

/*
TestService_Restore replays persisted additions in order.
*/
func TestService_Restore(t *testing.T) {
	repository := &memoryRepository{entries: []localization.Entry{
		{Source: "Chalet", Target: "شاليه"},
		{Source: "Villa", Target: "فيلا مستقلة"},
		{Source: "Chalet", Target: "شاليه بحري"},
	}}
	dictionary := seeded()
	service := localization.NewService(repository, dictionary, discardLogger())

	replayed, err := service.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, replayed)

	assert.Equal(t, []localization.Entry{
		{Source: "Villa", Target: "فيلا مستقلة"},
		{Source: "Apartment", Target: "شقة"},
		{Source: "Chalet", Target: "شاليه بحري"},
	}, dictionary.All())
}

func TestService_Lookup_NotFound(t *testing.T) {
	service := localization.NewService(&memoryRepository{}, seeded(), discardLogger())

	_, err := service.Lookup("Unknown Phrase")
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
