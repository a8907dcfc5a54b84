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

const userScope = "users"

type UserService struct {
	repo   ports.UserRepository
	guard  *idempotencyGuard
	rules  *validation.Ruleset[ports.CreateUserInput]
	opts   options
	logger zerolog.Logger
}

// NewUserService wires the user use cases. idem may be nil, in which case
// Idempotency-Key values are ignored.
func NewUserService(repo ports.UserRepository, idem ports.IdempotencyStore, logger zerolog.Logger, opts ...Option) *UserService {
	o := buildOptions(opts)
	return &UserService{
		repo:   repo,
		guard:  newIdempotencyGuard(idem, userScope, logger),
		rules:  validation.UserRules(o.now),
		opts:   o,
		logger: logger,
	}
}

// Create validates and stores a new user. A repeated idempotency key with the
// same payload returns the user it created first, without side effects.
func (s *UserService) Create(ctx context.Context, in ports.CreateUserInput) (*ports.UserResult, error) {
	key := in.IdempotencyKey
	in.IdempotencyKey = ""
	return runIdempotent(ctx, s.guard, key, in, createOps[*ports.UserResult]{
		create:   func(ctx context.Context) (*ports.UserResult, string, error) { return s.create(ctx, in) },
		load:     s.load,
		replayed: replayedUser,
		notFound: domain.ErrUserNotFound,
	})
}

func (s *UserService) create(ctx context.Context, in ports.CreateUserInput) (*ports.UserResult, string, error) {
	result := s.rules.Validate(in)
	if !result.Valid() {
		s.logger.Debug().Strs("errors", result.Errors()).Msg("user rejected")
		return nil, "", &domain.ValidationError{Result: result}
	}

	user, err := s.repo.Create(ctx, newUser(in, s.opts.now()))
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create user")
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID).Int("warnings", len(result.Warnings())).Msg("user created")

	return &ports.UserResult{
		UserDetail: toUserDetail(user, s.opts.now()),
		Warnings:   result.Warnings(),
	}, user.ID, nil
}

func (s *UserService) load(ctx context.Context, id string) (*ports.UserResult, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.UserResult{UserDetail: toUserDetail(u, s.opts.now())}, nil
}

func replayedUser(r *ports.UserResult) *ports.UserResult {
	c := *r
	c.Warnings = []string{}
	c.Replayed = true
	return &c
}

// Validate runs the user rules without storing anything.
func (s *UserService) Validate(_ context.Context, in ports.CreateUserInput) (domain.ValidationResult, error) {
	return s.rules.Validate(in), nil
}

func (s *UserService) Get(ctx context.Context, in ports.GetUserInput) (*ports.UserDetail, error) {
	id := strings.TrimSpace(in.ID)
	if id == "" {
		return nil, domain.ErrUserNotFound
	}
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	d := toUserDetail(u, s.opts.now())
	return &d, nil
}

// List returns one page of users. Pages past the end are empty, not an error.
func (s *UserService) List(ctx context.Context, in ports.ListUsersInput) (*ports.ListUsersResult, error) {
	page, size := normalizePage(in.Page, in.PageSize)
	filter := ports.UserFilter{Search: strings.TrimSpace(in.Filter), Page: page, PageSize: size}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	users, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	items := make([]ports.UserSummary, 0, len(users))
	for _, u := range users {
		items = append(items, toUserSummary(u))
	}
	return &ports.ListUsersResult{
		Items:      items,
		Total:      total,
		Page:       page,
		PageSize:   size,
		TotalPages: totalPages(total, size),
	}, nil
}
