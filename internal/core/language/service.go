// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package language

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/taibuivan/iso639/internal/platform/apperr"
	"github.com/taibuivan/iso639/internal/platform/constants"
	"github.com/taibuivan/iso639/internal/platform/dberr"
	"github.com/taibuivan/iso639/internal/platform/validate"
	"github.com/taibuivan/iso639/pkg/pagination"
)

// Service implements the lookup use cases on top of a loaded [Registry].
//
// Errors leaving the service are [*apperr.AppError] values. Usage counting is
// best effort: a failing [StatsRepository] is logged and never fails a lookup.
type Service struct {
	registry *Registry
	stats    StatsRepository
	logger   *slog.Logger
}

// NewService constructs a new language [Service]. stats may be nil, in which
// case resolutions are not counted and [Service.Popular] is unavailable.
func NewService(registry *Registry, stats StatsRepository, logger *slog.Logger) *Service {
	return &Service{
		registry: registry,
		stats:    stats,
		logger:   logger,
	}
}

// Registry returns the registry the service reads from.
func (service *Service) Registry() *Registry {
	return service.registry
}

// ReportCollisions logs every reverse-index key that more than one code claimed.
func (service *Service) ReportCollisions() {
	collisions := service.registry.Collisions()
	for _, collision := range collisions {
		service.logger.Warn("language_index_collision",
			slog.String("field", collision.Field.String()),
			slog.String("key", collision.Key),
			slog.String("previous", collision.Previous),
			slog.String("winner", collision.Current),
		)
	}

	service.logger.Info("language_registry_ready",
		slog.Int("records", service.registry.Len()),
		slog.Int("collisions", len(collisions)),
	)
}

// # Resolution

/*
Match resolves any code or name.

Parameters:
  - ctx: context.Context
  - input: Code or name as typed by the caller
  - ignoreCase: Retry with lowercase and title-case forms on a miss

Returns:
  - *Language: The canonical record
  - error: Validation or NotFound errors
*/
func (service *Service) Match(ctx context.Context, input string, ignoreCase bool) (*Language, error) {
	v := &validate.Validator{}
	v.Custom("q", input == "", "This field is required")
	v.MaxLen("q", input, constants.MaxQueryLength)
	if err := v.Err(); err != nil {
		return nil, err
	}

	lang, err := service.registry.Match(input, caseMode(ignoreCase))
	if err != nil {
		return nil, notFound(err)
	}

	service.count(ctx, lang)
	return lang, nil
}

// BatchMatch pairs one input with the record it resolved to.
type BatchMatch struct {
	Input    string    `json:"input"`
	Language *Language `json:"language"`
}

// BatchResult splits a batch into resolved and unresolved inputs, each in
// request order.
type BatchResult struct {
	Resolved   []BatchMatch `json:"resolved"`
	Unresolved []string     `json:"unresolved"`
}

/*
MatchMany resolves several inputs at once.

Description: A miss does not fail the batch; the input is listed under
Unresolved instead.

Parameters:
  - ctx: context.Context
  - inputs: Codes or names, at most constants.MaxBatchSize
  - ignoreCase: Same as [Service.Match]

Returns:
  - *BatchResult: Resolved and unresolved inputs
  - error: Validation errors
*/
func (service *Service) MatchMany(ctx context.Context, inputs []string, ignoreCase bool) (*BatchResult, error) {
	v := &validate.Validator{}
	v.Custom("q", len(inputs) == 0, "At least one input is required")
	v.Custom("q", len(inputs) > constants.MaxBatchSize, fmt.Sprintf("At most %d inputs per batch", constants.MaxBatchSize))
	for _, input := range inputs {
		v.MaxLen("q", input, constants.MaxQueryLength)
	}
	if err := v.Err(); err != nil {
		return nil, err
	}

	result := &BatchResult{
		Resolved:   []BatchMatch{},
		Unresolved: []string{},
	}

	mode := caseMode(ignoreCase)
	for _, input := range inputs {
		lang, err := service.registry.Match(input, mode)
		if err != nil {
			result.Unresolved = append(result.Unresolved, input)
			continue
		}
		service.count(ctx, lang)
		result.Resolved = append(result.Resolved, BatchMatch{Input: input, Language: lang})
	}

	return result, nil
}

// GetBy resolves value against a single kind of identifier (see [LookupFields]).
func (service *Service) GetBy(ctx context.Context, field, value string) (*Language, error) {
	v := &validate.Validator{}
	v.OneOf("field", field, LookupFields...)
	v.Required("value", value).MaxLen("value", value, constants.MaxQueryLength)
	if err := v.Err(); err != nil {
		return nil, err
	}

	lang, err := service.registry.Lookup(field, value)
	if err != nil {
		return nil, notFound(err)
	}

	service.count(ctx, lang)
	return lang, nil
}

// # Browsing

/*
List returns one page of records matching filter, ordered by part3 code.

Parameters:
  - ctx: context.Context
  - filter: Empty fields match anything
  - params: Page and limit, already clamped

Returns:
  - []*Language: The page (never nil)
  - pagination.Meta: Totals for the filtered set
  - error: Validation errors for unknown classification codes
*/
func (service *Service) List(ctx context.Context, filter Filter, params pagination.Params) ([]*Language, pagination.Meta, error) {
	v := &validate.Validator{}
	if filter.Status != "" {
		v.OneOf("status", string(filter.Status), string(StatusActive), string(StatusRetired))
	}
	if filter.Scope != "" {
		v.OneOf("scope", string(filter.Scope),
			string(ScopeIndividual), string(ScopeMacrolanguage), string(ScopeSpecial), string(ScopeCollection))
	}
	if filter.Type != "" {
		v.OneOf("type", string(filter.Type),
			string(TypeAncient), string(TypeConstructed), string(TypeExtinct),
			string(TypeHistorical), string(TypeLiving), string(TypeSpecial))
	}
	if err := v.Err(); err != nil {
		return nil, pagination.Meta{}, err
	}

	page, meta := pagination.Window(service.registry.Filter(filter), params)
	return page, meta, nil
}

// Members lists the individual languages of the macrolanguage part3.
// Anything that is not a macrolanguage has no members.
func (service *Service) Members(ctx context.Context, part3 string) ([]*Language, error) {
	macro, err := service.registry.FromPart3(part3)
	if err != nil {
		return nil, notFound(err)
	}

	members := service.registry.Members(macro)
	if members == nil {
		members = []*Language{}
	}
	return members, nil
}

// Successor follows the retirement chain of part3 to an active record.
func (service *Service) Successor(ctx context.Context, part3 string) (*Language, error) {
	lang, err := service.registry.FromPart3(part3)
	if err != nil {
		return nil, notFound(err)
	}

	successor, err := service.registry.Successor(lang)
	if err != nil {
		return nil, apperr.NotFound(fmt.Sprintf("Successor of %q", part3)).WithCause(err)
	}

	return successor, nil
}

// # Usage Statistics

// Popular returns the most resolved languages, highest count first.
func (service *Service) Popular(ctx context.Context, limit int) ([]Usage, error) {
	if service.stats == nil {
		return nil, apperr.ServiceUnavailable("Usage statistics are disabled")
	}

	v := &validate.Validator{}
	v.Range("limit", limit, 1, pagination.MaxLimit)
	if err := v.Err(); err != nil {
		return nil, err
	}

	usages, err := service.stats.Top(ctx, limit)
	if err != nil {
		return nil, dberr.Wrap(err, "language_stats_top")
	}

	return usages, nil
}

// count records a successful resolution; failures are only logged.
func (service *Service) count(ctx context.Context, lang *Language) {
	if service.stats == nil {
		return
	}

	if err := service.stats.Increment(ctx, lang.Part3); err != nil {
		service.logger.WarnContext(ctx, "language_stats_increment_failed",
			slog.String("part3", lang.Part3),
			slog.Any("error", err),
		)
	}
}

// # Helpers

func caseMode(ignoreCase bool) CaseMode {
	if ignoreCase {
		return CaseInsensitive
	}
	return CaseSensitive
}

// notFound converts a [*NotFoundError] into a client-safe 404 naming the input.
func notFound(err error) error {
	var missing *NotFoundError
	if errors.As(err, &missing) {
		return apperr.NotFound(fmt.Sprintf("Language %q", missing.Input)).WithCause(err)
	}
	return apperr.Internal(err)
}
