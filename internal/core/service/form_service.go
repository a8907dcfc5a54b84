package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/holamundo/registry-api/internal/core/domain"
	"github.com/holamundo/registry-api/internal/core/ports"
	"github.com/holamundo/registry-api/internal/core/validation"
)

const formScope = "forms"

type FormService struct {
	repo   ports.FormRepository
	guard  *idempotencyGuard
	rules  *validation.Ruleset[ports.CreateFormInput]
	opts   options
	logger zerolog.Logger
}

func NewFormService(repo ports.FormRepository, idem ports.IdempotencyStore, logger zerolog.Logger, opts ...Option) *FormService {
	o := buildOptions(opts)
	return &FormService{
		repo:   repo,
		guard:  newIdempotencyGuard(idem, formScope, logger),
		rules:  validation.FormRules(o.now),
		opts:   o,
		logger: logger,
	}
}

// Create validates and stores a new form, replaying earlier results for a
// known idempotency key.
func (s *FormService) Create(ctx context.Context, in ports.CreateFormInput) (*ports.FormResult, error) {
	key := in.IdempotencyKey
	in.IdempotencyKey = ""
	return runIdempotent(ctx, s.guard, key, in, createOps[*ports.FormResult]{
		create:   func(ctx context.Context) (*ports.FormResult, string, error) { return s.create(ctx, in) },
		load:     s.load,
		replayed: replayedForm,
		notFound: domain.ErrFormNotFound,
	})
}

func (s *FormService) create(ctx context.Context, in ports.CreateFormInput) (*ports.FormResult, string, error) {
	result := s.rules.Validate(in)
	if !result.Valid() {
		s.logger.Debug().Strs("errors", result.Errors()).Msg("form rejected")
		return nil, "", &domain.ValidationError{Result: result}
	}

	form, err := s.repo.Create(ctx, newForm(in, s.opts.now()))
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create form")
		return nil, "", fmt.Errorf("create form: %w", err)
	}

	s.logger.Info().Str("form_id", form.ID).Float64("final_price", form.FinalPrice()).Msg("form created")

	return &ports.FormResult{FormDetail: toFormDetail(form), Warnings: result.Warnings()}, form.ID, nil
}

func (s *FormService) load(ctx context.Context, id string) (*ports.FormResult, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.FormResult{FormDetail: toFormDetail(f)}, nil
}

func replayedForm(r *ports.FormResult) *ports.FormResult {
	c := *r
	c.Warnings = []string{}
	c.Replayed = true
	return &c
}

// Validate runs the form rules without storing anything.
func (s *FormService) Validate(_ context.Context, in ports.CreateFormInput) (domain.ValidationResult, error) {
	return s.rules.Validate(in), nil
}

func (s *FormService) Get(ctx context.Context, in ports.GetFormInput) (*ports.FormDetail, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		return nil, domain.ErrFormNotFound
	}
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrFormNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get form: %w", err)
	}
	d := toFormDetail(f)
	return &d, nil
}

func (s *FormService) List(ctx context.Context, in ports.ListFormsInput) (*ports.ListFormsResult, error) {
	page, size := normalizePage(in.Page, in.PageSize)
	filter := ports.FormFilter{Category: strings.TrimSpace(in.Category), Page: page, PageSize: size}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count forms: %w", err)
	}
	forms, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list forms: %w", err)
	}

	items := make([]ports.FormSummary, 0, len(forms))
	for _, f := range forms {
		items = append(items, toFormSummary(f))
	}
	return &ports.ListFormsResult{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages(total, size),
	}, nil
}
