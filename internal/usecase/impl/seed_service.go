// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"civic/config"
	"civic/internal/domain/entity"
	domainerrors "civic/internal/domain/errors"
	"civic/internal/domain/repository"
	"civic/internal/domain/service"
	"civic/internal/errors"
	"civic/internal/usecase"

	"go.uber.org/fx"
)

const (
	// pinnedCallPhone is the White House switchboard, the target of the first call action.
	pinnedCallPhone = "2024561111"

	proseMinChars        = 5
	proseMaxChars        = 999
	talkingPointMaxChars = 69
	scriptMinChars       = 40
	scriptMaxChars       = 1000
)

// seedService implements the SeedUsecase interface.
type seedService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	actionRepo  repository.ActionRepository
	generator   service.FixtureGenerator
	validator   service.RecordValidator
	metrics     service.SeedMetrics
	pinnedEmail string
	logger      *slog.Logger
}

// SeedServiceParams holds dependencies for SeedService, injected by Fx.
type SeedServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	UserRepo   repository.UserRepository
	ActionRepo repository.ActionRepository
	Generator  service.FixtureGenerator
	Validator  service.RecordValidator
	Metrics    service.SeedMetrics
	Config     *config.Config
	Logger     *slog.Logger
}

// NewSeedService is the constructor for seedService.
func NewSeedService(params SeedServiceParams) usecase.SeedUsecase {
	return &seedService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		actionRepo:  params.ActionRepo,
		generator:   params.Generator,
		validator:   params.Validator,
		metrics:     params.Metrics,
		pinnedEmail: params.Config.Seed.PinnedEmail,
		logger:      params.Logger,
	}
}

// SeedUsers creates count users. Every seventh user, starting with the first, gets a secondary address line.
func (srv *seedService) SeedUsers(ctx context.Context, count int) (int, error) {
	return srv.run(ctx, service.RecordKindUser, count, func(ctx context.Context, i int) error {
		user := srv.buildUser(i)
		if err := srv.validator.Validate(user); err != nil {
			return err
		}

		return srv.userRepo.Create(ctx, user)
	})
}

// SeedCallActions creates count call actions. The first one targets the pinned phone number.
func (srv *seedService) SeedCallActions(ctx context.Context, count int) (int, error) {
	if err := srv.ensureUsers(ctx, count); err != nil {
		return 0, err
	}

	return srv.run(ctx, service.KindOf(entity.ActionCategoryCall), count, func(ctx context.Context, i int) error {
		action, err := srv.buildCallAction(ctx, i)
		if err != nil {
			return err
		}
		if err := srv.validator.Validate(action); err != nil {
			return err
		}

		return srv.actionRepo.CreateCallAction(ctx, action)
	})
}

// SeedEmailActions creates count email actions. The first one targets the pinned address.
func (srv *seedService) SeedEmailActions(ctx context.Context, count int) (int, error) {
	if err := srv.ensureUsers(ctx, count); err != nil {
		return 0, err
	}

	return srv.run(ctx, service.KindOf(entity.ActionCategoryEmail), count, func(ctx context.Context, i int) error {
		action, err := srv.buildEmailAction(ctx, i)
		if err != nil {
			return err
		}
		if err := srv.validator.Validate(action); err != nil {
			return err
		}

		return srv.actionRepo.CreateEmailAction(ctx, action)
	})
}

// SeedEventActions creates count event actions. Events end when their listing ends.
func (srv *seedService) SeedEventActions(ctx context.Context, count int) (int, error) {
	if err := srv.ensureUsers(ctx, count); err != nil {
		return 0, err
	}

	return srv.run(ctx, service.KindOf(entity.ActionCategoryEvent), count, func(ctx context.Context, i int) error {
		action, err := srv.buildEventAction(ctx, i)
		if err != nil {
			return err
		}
		if err := srv.validator.Validate(action); err != nil {
			return err
		}

		return srv.actionRepo.CreateEventAction(ctx, action)
	})
}

// SeedAll runs the routines parents first. On failure the summary still holds what was stored.
func (srv *seedService) SeedAll(ctx context.Context, plan usecase.SeedPlan) (*usecase.SeedSummary, error) {
	start := time.Now()
	summary := &usecase.SeedSummary{}

	steps := []struct {
		name   string
		count  int
		seed   func(context.Context, int) (int, error)
		stored *int
	}{
		{"users", plan.Users, srv.SeedUsers, &summary.Users},
		{"call actions", plan.CallActions, srv.SeedCallActions, &summary.CallActions},
		{"email actions", plan.EmailActions, srv.SeedEmailActions, &summary.EmailActions},
		{"event actions", plan.EventActions, srv.SeedEventActions, &summary.EventActions},
	}

	for _, step := range steps {
		stored, err := step.seed(ctx, step.count)
		*step.stored = stored
		if err != nil {
			summary.Duration = time.Since(start)

			return summary, errors.Wrapf(err, "failed to seed %s", step.name)
		}
	}

	summary.Duration = time.Since(start)
	srv.logger.InfoContext(ctx, "Seeding finished",
		slog.Int("users", summary.Users),
		slog.Int("callActions", summary.CallActions),
		slog.Int("emailActions", summary.EmailActions),
		slog.Int("eventActions", summary.EventActions),
		slog.Duration("duration", summary.Duration),
	)

	return summary, nil
}

// Reset deletes actions before users so no foreign key is left dangling.
func (srv *seedService) Reset(ctx context.Context) (*usecase.ResetResult, error) {
	result := &usecase.ResetResult{}

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		actions, err := txRepoFactory.NewActionRepository().DeleteAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to delete actions")
		}

		users, err := txRepoFactory.NewUserRepository().DeleteAll(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to delete users")
		}

		result.Actions = actions
		result.Users = users

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to execute reset transaction")
	}

	srv.logger.InfoContext(ctx, "Fixture tables reset",
		slog.Int64("users", result.Users),
		slog.Int64("actions", result.Actions),
	)

	return result, nil
}

// run creates count records one at a time and stops at the first failure.
func (srv *seedService) run(ctx context.Context, kind string, count int, create func(context.Context, int) error) (int, error) {
	if count < 0 {
		return 0, domainerrors.ErrInvalidSeedCount.WithDetails(fmt.Sprintf("%s count %d", kind, count))
	}

	for i := range count {
		if err := ctx.Err(); err != nil {
			return i, errors.Wrapf(err, "seeding %s interrupted", kind)
		}

		if err := create(ctx, i); err != nil {
			srv.metrics.RecordFailed(kind)
			srv.logger.ErrorContext(ctx, "Failed to seed record",
				slog.String("kind", kind),
				slog.Int("index", i),
				slog.String("code", domainerrors.Code(err)),
				slog.Any("error", err),
				slog.String("stack", errors.StackTrace(err)),
			)

			return i, errors.Wrapf(err, "failed to seed %s #%d", kind, i)
		}

		srv.metrics.RecordSeeded(kind)
	}

	srv.logger.InfoContext(ctx, "Seeded records", slog.String("kind", kind), slog.Int("count", count))

	return count, nil
}

// ensureUsers fails before any action is built when there is no user to own it.
func (srv *seedService) ensureUsers(ctx context.Context, count int) error {
	if count <= 0 {
		return nil
	}

	users, err := srv.userRepo.Count(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to count users")
	}
	if users == 0 {
		return domainerrors.ErrNoUsersAvailable
	}

	return nil
}

func (srv *seedService) buildUser(i int) *entity.User {
	g := srv.generator

	user := &entity.User{
		UserName:       g.UserName(),
		DeviceID:       g.DeviceID(),
		Email:          g.Email(),
		FirstName:      g.FirstName(),
		LastName:       g.LastName(),
		About:          g.Prose(g.IntRange(proseMinChars, proseMaxChars)),
		StreetAddress1: g.StreetAddress(),
		City:           g.City(),
		State:          g.StateAbbr(),
		Zip:            g.Zip(),
	}
	if i%7 == 0 {
		user.StreetAddress2 = ptr(g.SecondaryAddress())
	}

	return user
}

func (srv *seedService) buildCallAction(ctx context.Context, i int) (*entity.CallAction, error) {
	g := srv.generator

	stance := g.Stance()
	actionCopy := g.ActionCopy(entity.ActionCategoryCall, stance)
	point := stance.Imperative() + actionCopy.Issue

	action, err := srv.buildAction(ctx, i, actionCopy, g.ListingWindow())
	if err != nil {
		return nil, err
	}

	call := &entity.CallAction{
		Action:        *action,
		Script:        g.CallScript(point, g.IntRange(scriptMinChars, scriptMaxChars)),
		TalkingPoint1: point,
	}

	switch {
	case i == 0:
		call.TargetPhoneNumber = ptr(pinnedCallPhone)
	case i%2 == 0:
		phone, err := g.PhoneNumber()
		if err != nil {
			return nil, err
		}
		call.TargetPhoneNumber = &phone
	}
	if i%2 == 0 || i%5 == 0 {
		call.TargetName = ptr(g.FullName())
	}
	if i%2 == 1 {
		call.TargetOfficialType = ptr(g.OfficialType())
	}
	if i%4 != 0 {
		call.TalkingPoint2 = ptr(g.Prose(g.IntRange(proseMinChars, talkingPointMaxChars)))
	}
	if i%8 == 1 {
		call.TalkingPoint3 = ptr(g.Prose(g.IntRange(proseMinChars, talkingPointMaxChars)))
	}

	return call, nil
}

func (srv *seedService) buildEmailAction(ctx context.Context, i int) (*entity.EmailAction, error) {
	g := srv.generator

	stance := g.Stance()
	actionCopy := g.ActionCopy(entity.ActionCategoryEmail, stance)

	action, err := srv.buildAction(ctx, i, actionCopy, g.ListingWindow())
	if err != nil {
		return nil, err
	}

	email := &entity.EmailAction{
		Action:       *action,
		EmailSubject: stance.Imperative() + actionCopy.Issue,
		Body:         g.Prose(g.IntRange(proseMinChars, proseMaxChars)),
	}

	switch {
	case i == 0:
		email.TargetEmail = ptr(srv.pinnedEmail)
	case i%2 == 0:
		email.TargetEmail = ptr(g.Email())
	}
	if i%2 == 0 || i%5 == 0 {
		email.TargetName = ptr(g.FullName())
	}
	if i%2 == 0 {
		email.TargetOfficialType = ptr(g.OfficialType())
	}

	return email, nil
}

func (srv *seedService) buildEventAction(ctx context.Context, i int) (*entity.EventAction, error) {
	g := srv.generator

	actionCopy := g.ActionCopy(entity.ActionCategoryEvent, g.Stance())
	window := g.EventWindow()

	action, err := srv.buildAction(ctx, i, actionCopy, window.ListingWindow)
	if err != nil {
		return nil, err
	}

	lat, lon := g.VenuePoint()

	return &entity.EventAction{
		Action:             *action,
		Location:           g.Location(),
		Latitude:           lat,
		Longitude:          lon,
		EventStartDatetime: window.EventStart,
		EventEndDatetime:   window.End,
	}, nil
}

// buildAction fills the fields every action shares and assigns a random owner.
func (srv *seedService) buildAction(ctx context.Context, i int, actionCopy service.ActionCopy, window service.ListingWindow) (*entity.Action, error) {
	g := srv.generator

	action := &entity.Action{
		Title:             actionCopy.Title,
		Headline:          actionCopy.Headline,
		ListStartDatetime: window.Start,
		ListEndDatetime:   window.End,
		KudosText:         g.KudosText(),
	}
	if i%11 != 0 {
		action.Description = ptr(g.Prose(g.IntRange(proseMinChars, proseMaxChars)))
	}

	owner, err := g.PickUser(ctx, srv.userRepo)
	if err != nil {
		return nil, err
	}
	action.UserID = owner.ID

	return action, nil
}

func ptr[T any](v T) *T {
	return &v
}
