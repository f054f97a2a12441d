// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package localization

import (
	"context"
	"log/slog"
	"strings"

	"github.com/taibuivan/aqar/internal/platform/apperr"
	"github.com/taibuivan/aqar/internal/platform/ctxutil"
	"github.com/taibuivan/aqar/internal/platform/validate"
)

// maxPhraseLength bounds dictionary phrases; they are labels, not prose.
const maxPhraseLength = 200

// Service exposes the dictionary to the HTTP layer and keeps runtime
// additions persisted.
type Service struct {
	repo       Repository
	dictionary *Dictionary
	logger     *slog.Logger
}

// NewService constructs a dictionary [Service].
func NewService(repo Repository, dictionary *Dictionary, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		dictionary: dictionary,
		logger:     logger,
	}
}

// Restore replays persisted additions on top of the seeded dictionary.
// It returns the number of replayed entries.
func (service *Service) Restore(context context.Context) (int, error) {
	entries, err := service.repo.ListEntries(context)
	if err != nil {
		return 0, err
	}

	service.dictionary.AddAll(entries)
	service.logger.Info("dictionary_additions_restored",
		slog.Int("replayed", len(entries)),
		slog.Int("size", service.dictionary.Len()),
	)
	return len(entries), nil
}

// AddTranslation validates, persists and then applies a dictionary entry.
// The entry only becomes visible once it is stored.
func (service *Service) AddTranslation(context context.Context, source, target, addedBy string) (Entry, error) {
	source = strings.TrimSpace(source)
	target = strings.TrimSpace(target)

	v := &validate.Validator{}
	v.Required("source", source).MaxLen("source", source, maxPhraseLength)
	v.Required("target", target).MaxLen("target", target, maxPhraseLength)
	if err := v.Err(); err != nil {
		return Entry{}, err
	}

	entry := Entry{Source: source, Target: target}
	if err := service.repo.AppendEntry(context, entry); err != nil {
		return Entry{}, apperr.Internal(err)
	}

	replaced := service.dictionary.Contains(source)
	service.dictionary.Add(entry.Source, entry.Target)

	ctxutil.GetLogger(context).Info("dictionary_entry_added",
		slog.String("source", entry.Source),
		slog.Bool("overwrite", replaced),
		slog.String("added_by", addedBy),
	)
	return entry, nil
}

// Lookup resolves a single phrase through both dictionary tiers.
func (service *Service) Lookup(phrase string) (Entry, error) {
	target, ok := service.dictionary.Lookup(phrase)
	if !ok {
		return Entry{}, apperr.NotFound("Translation")
	}
	return Entry{Source: phrase, Target: target}, nil
}

// List returns the full dictionary in insertion order.
func (service *Service) List() []Entry {
	return service.dictionary.All()
}
