// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package availability

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/aqar/internal/core/localization"
	"github.com/taibuivan/aqar/internal/platform/apperr"
	"github.com/taibuivan/aqar/internal/platform/ctxutil"
	"github.com/taibuivan/aqar/internal/platform/dberr"
	"github.com/taibuivan/aqar/pkg/pagination"
	"github.com/taibuivan/aqar/pkg/slice"
)

// # Service Layer

// Service serves the reconciled availability listing. Every call reads both
// sources afresh; nothing is cached between requests.
type Service struct {
	repo       Repository
	reconciler *Reconciler
	resolver   *localization.Resolver
	logger     *slog.Logger
}

// NewService constructs a new availability [Service].
func NewService(repo Repository, reconciler *Reconciler, resolver *localization.Resolver, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		reconciler: reconciler,
		resolver:   resolver,
		logger:     logger,
	}
}

/*
List returns one page of the filtered, ordered and localized listing.

Parameters:
  - context: context.Context
  - query: Query (Filters, sort key and page)
  - locale: string (Display locale for the display labels)

Returns:
  - []Record: The requested page
  - int: Total records matching the filters
  - error: Repository failures or fatal reconciliation defects
*/
func (service *Service) List(context context.Context, query Query, locale string) ([]Record, int, error) {
	result, err := service.load(context)
	if err != nil {
		return nil, 0, err
	}

	records := slice.Filter(result.Records, func(record Record) bool {
		return query.Matches(&record)
	})
	query.Order(records)

	total := len(records)
	page := pagination.Window(records, query.Page)
	service.localize(page, locale)

	return page, total, nil
}

/*
Get returns a single localized record by canonical id ("s_12", "u_7").

Returns:
  - *Record: The reconciled record
  - error: NOT_FOUND for unknown prefixes, malformed ids or missing rows
*/
func (service *Service) Get(context context.Context, id, locale string) (*Record, error) {
	source, nativeID, ok := service.reconciler.ParseID(id)
	if !ok {
		return nil, apperr.NotFound("Availability")
	}

	row, err := service.repo.FindRow(context, source, nativeID)
	if err != nil {
		if errors.Is(err, dberr.ErrNotFound) {
			return nil, apperr.NotFound("Availability")
		}
		return nil, err
	}

	var sales, units []Row
	if source == SourceSales {
		sales = []Row{row}
	} else {
		units = []Row{row}
	}

	result, err := service.reconciler.Reconcile(context, sales, units)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	service.localize(result.Records, locale)
	return &result.Records[0], nil
}

// Summary aggregates the reconciled listing.
type Summary struct {
	Total       int               `json:"total"`
	BySource    map[Source]int    `json:"by_source"`
	ByProject   map[string]int    `json:"by_project"`
	Areas       map[Field]float64 `json:"areas"`
	Diagnostics int               `json:"diagnostics"`
}

// summedAreas are the area fields totalled by [Service.Summary].
var summedAreas = []Field{FieldLandArea, FieldBuiltArea, FieldGardenArea, FieldRoofArea}

/*
Summary counts records per source and project and totals the main areas.
Null areas contribute nothing and records without a project are not counted
under any project.
*/
func (service *Service) Summary(context context.Context) (*Summary, error) {
	result, err := service.load(context)
	if err != nil {
		return nil, err
	}

	initial := &Summary{
		BySource:    map[Source]int{SourceSales: 0, SourceUnits: 0},
		ByProject:   map[string]int{},
		Areas:       make(map[Field]float64, len(summedAreas)),
		Diagnostics: len(result.Diagnostics),
	}

	return slice.Reduce(result.Records, initial, func(summary *Summary, record Record) *Summary {
		summary.Total++
		summary.BySource[record.Source]++
		if record.Project != nil {
			summary.ByProject[*record.Project]++
		}
		for _, field := range summedAreas {
			if area := record.area(field); area != nil {
				summary.Areas[field] += *area
			}
		}
		return summary
	}), nil
}

// load reads both sources and reconciles them.
func (service *Service) load(context context.Context) (Result, error) {
	sales, err := service.repo.ListRows(context, SourceSales)
	if err != nil {
		return Result{}, err
	}

	units, err := service.repo.ListRows(context, SourceUnits)
	if err != nil {
		return Result{}, err
	}

	result, err := service.reconciler.Reconcile(context, sales, units)
	if err != nil {
		return Result{}, apperr.Internal(err)
	}

	if len(result.Diagnostics) > 0 {
		ctxutil.GetLogger(context).Warn("availability_reconciled_with_gaps",
			slog.Int("records", len(result.Records)),
			slog.Int("diagnostics", len(result.Diagnostics)),
		)
	}
	return result, nil
}

// localize fills the display labels of each record for locale.
func (service *Service) localize(records []Record, locale string) {
	for i := range records {
		record := &records[i]
		record.Display = make(map[Field]string, len(displayFields))
		for _, field := range displayFields {
			if label := service.resolver.Resolve(record, string(field), locale); label != "" {
				record.Display[field] = label
			}
		}
	}
}
