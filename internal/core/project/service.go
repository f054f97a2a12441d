// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package project

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/aqar/internal/core/localization"
	"github.com/taibuivan/aqar/internal/platform/apperr"
	"github.com/taibuivan/aqar/internal/platform/dberr"
	"github.com/taibuivan/aqar/pkg/slice"
)

// Service renders projects for a display locale.
type Service struct {
	repo     Repository
	resolver *localization.Resolver
	logger   *slog.Logger
}

// NewService constructs a project [Service].
func NewService(repo Repository, resolver *localization.Resolver, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		resolver: resolver,
		logger:   logger,
	}
}

// List returns a page of projects localized for locale and the total count.
func (service *Service) List(context context.Context, locale string, limit, offset int) ([]View, int, error) {
	projects, total, err := service.repo.List(context, limit, offset)
	if err != nil {
		return nil, 0, err
	}

	views := slice.Map(projects, func(project *Project) View {
		return service.view(project, locale)
	})
	if views == nil {
		views = []View{}
	}
	return views, total, nil
}

// Get returns one project localized for locale, with both stored variants of
// each field. Variants never go through the dictionary.
func (service *Service) Get(context context.Context, id int64, locale string) (*View, error) {
	project, err := service.repo.FindByID(context, id)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Project")
		}
		return nil, err
	}

	view := service.view(project, locale)
	names := service.resolver.ResolveBoth(project, FieldName)
	locations := service.resolver.ResolveBoth(project, FieldLocation)
	view.Names = &names
	view.Locations = &locations

	return &view, nil
}

func (service *Service) view(project *Project, locale string) View {
	return View{
		ID:        project.ID,
		Name:      service.resolver.Resolve(project, FieldName, locale),
		Location:  service.resolver.Resolve(project, FieldLocation, locale),
		CreatedAt: project.CreatedAt,
		UpdatedAt: project.UpdatedAt,
	}
}
