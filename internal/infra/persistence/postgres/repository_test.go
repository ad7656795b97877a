package postgres

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"civic/config"
	"civic/internal/domain/entity"
	domainerrors "civic/internal/domain/errors"
	"civic/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.Config{}
	cfg.Database.Driver = config.DriverSQLite
	cfg.Database.SQLitePath = ":memory:"

	db, err := Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	require.NoError(t, Migrate(context.Background(), db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func testUser(name string) *entity.User {
	apt := "Apt. 101"

	return &entity.User{
		UserName:       name,
		DeviceID:       strings.Repeat("X", entity.DeviceIDLength),
		Email:          name + "@example.org",
		FirstName:      "Test",
		LastName:       "User",
		About:          "About me.",
		StreetAddress1: "1 Main St",
		StreetAddress2: &apt,
		City:           "Portland",
		State:          "OR",
		Zip:            "97201",
	}
}

func testAction(userID uuid.UUID) entity.Action {
	now := time.Now().UTC().Truncate(time.Second)

	return entity.Action{
		UserID:            userID,
		Title:             "Act for Peace",
		Headline:          "Peace Lorem",
		ListStartDatetime: now,
		ListEndDatetime:   now.Add(24 * time.Hour),
		KudosText:         "You did it. Good job!",
	}
}

func TestUserRepository_CreateCountFind(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(newTestDB(t))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	names := []string{"first", "second", "third"}
	for _, name := range names {
		user := testUser(name)
		require.NoError(t, repo.Create(ctx, user))
		assert.NotEqual(t, uuid.Nil, user.ID)
		assert.False(t, user.CreatedAt.IsZero())
	}

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	seen := map[string]bool{}
	for offset := range int64(3) {
		user, err := repo.FindAtOffset(ctx, offset)
		require.NoError(t, err)
		seen[user.UserName] = true
		require.NotNil(t, user.StreetAddress2)
		assert.Equal(t, "Apt. 101", *user.StreetAddress2)
	}
	assert.Len(t, seen, 3)

	_, err = repo.FindAtOffset(ctx, 3)
	require.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestActionRepository_CreateAndCount(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	actions := NewActionRepository(db)

	owner := testUser("owner")
	require.NoError(t, users.Create(ctx, owner))

	phone := "2024561111"
	call := &entity.CallAction{
		Action:            testAction(owner.ID),
		TargetPhoneNumber: &phone,
		Script:            "Hello.",
		TalkingPoint1:     "Support Peace",
	}
	require.NoError(t, actions.CreateCallAction(ctx, call))
	assert.NotEqual(t, uuid.Nil, call.ID)

	email := &entity.EmailAction{
		Action:       testAction(owner.ID),
		EmailSubject: "Support Peace",
		Body:         "Body.",
	}
	require.NoError(t, actions.CreateEmailAction(ctx, email))

	base := testAction(owner.ID)
	event := &entity.EventAction{
		Action:             base,
		Location:           "1 Main St, Portland, OR 97201",
		Latitude:           45.5,
		Longitude:          -122.6,
		EventStartDatetime: base.ListEndDatetime.Add(-2 * time.Hour),
		EventEndDatetime:   base.ListEndDatetime,
	}
	require.NoError(t, actions.CreateEventAction(ctx, event))

	for _, category := range []entity.ActionCategory{entity.ActionCategoryCall, entity.ActionCategoryEmail, entity.ActionCategoryEvent} {
		count, err := actions.CountByCategory(ctx, category)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count, category)
	}

	_, err := actions.CountByCategory(ctx, entity.ActionCategory("petition"))
	require.Error(t, err)
}

func TestActionRepository_MissingOwner(t *testing.T) {
	ctx := context.Background()
	actions := NewActionRepository(newTestDB(t))

	call := &entity.CallAction{
		Action:        testAction(uuid.New()),
		Script:        "Hello.",
		TalkingPoint1: "Oppose Racism",
	}

	err := actions.CreateCallAction(ctx, call)
	require.ErrorIs(t, err, domainerrors.ErrRecordCreationFailed)
	assert.Equal(t, "RECORD_CREATION_FAILED", domainerrors.Code(err))
}

func TestTransactionManager_ResetRollsBack(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	require.NoError(t, users.Create(ctx, testUser("kept")))

	tm := NewTransactionManager(db)
	boom := domainerrors.ErrInvalidSeedCount

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		deleted, err := f.NewUserRepository().DeleteAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		return boom
	})
	require.ErrorIs(t, err, boom)

	count, err := users.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestTransactionManager_DeleteAllCommits(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	users := NewUserRepository(db)
	actions := NewActionRepository(db)

	owner := testUser("owner")
	require.NoError(t, users.Create(ctx, owner))
	require.NoError(t, actions.CreateEmailAction(ctx, &entity.EmailAction{
		Action:       testAction(owner.ID),
		EmailSubject: "Support Peace",
		Body:         "Body.",
	}))

	err := NewTransactionManager(db).Execute(ctx, func(f repository.RepositoryFactory) error {
		if _, err := f.NewActionRepository().DeleteAll(ctx); err != nil {
			return err
		}
		_, err := f.NewUserRepository().DeleteAll(ctx)

		return err
	})
	require.NoError(t, err)

	count, err := users.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = "oracle"

	_, err := Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestOpen_PostgresWithoutConfig(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Driver = config.DriverPostgres

	_, err := Open(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Error(t, err)
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, ":memory:?_foreign_keys=on", sqliteDSN(":memory:"))
	assert.Equal(t, "file:x.db?cache=shared&_foreign_keys=on", sqliteDSN("file:x.db?cache=shared"))
}
