package postgres

import (
	"context"

	"civic/internal/domain/entity"
	"civic/internal/domain/repository"
	"civic/internal/errors"
	"civic/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// actionRepository implements the repository.ActionRepository interface.
type actionRepository struct {
	db *gorm.DB
}

// NewActionRepository is the constructor for actionRepository.
func NewActionRepository(db *gorm.DB) repository.ActionRepository {
	return &actionRepository{
		db: db,
	}
}

// CreateCallAction persists a call action.
func (repo *actionRepository) CreateCallAction(ctx context.Context, action *entity.CallAction) error {
	callM := &model.CallActionModel{
		ActionFields:       fromActionDomain(&action.Action),
		TargetPhoneNumber:  action.TargetPhoneNumber,
		TargetName:         action.TargetName,
		TargetOfficialType: action.TargetOfficialType,
		Script:             action.Script,
		TalkingPoint1:      action.TalkingPoint1,
		TalkingPoint2:      action.TalkingPoint2,
		TalkingPoint3:      action.TalkingPoint3,
	}

	if err := repo.db.WithContext(ctx).Create(callM).Error; err != nil {
		return mapCreateError(err, "call action")
	}
	applyGenerated(&action.Action, &callM.ActionFields)

	return nil
}

// CreateEmailAction persists an email action.
func (repo *actionRepository) CreateEmailAction(ctx context.Context, action *entity.EmailAction) error {
	emailM := &model.EmailActionModel{
		ActionFields:       fromActionDomain(&action.Action),
		TargetEmail:        action.TargetEmail,
		TargetName:         action.TargetName,
		TargetOfficialType: action.TargetOfficialType,
		EmailSubject:       action.EmailSubject,
		Body:               action.Body,
	}

	if err := repo.db.WithContext(ctx).Create(emailM).Error; err != nil {
		return mapCreateError(err, "email action")
	}
	applyGenerated(&action.Action, &emailM.ActionFields)

	return nil
}

// CreateEventAction persists an event action.
func (repo *actionRepository) CreateEventAction(ctx context.Context, action *entity.EventAction) error {
	eventM := &model.EventActionModel{
		ActionFields:       fromActionDomain(&action.Action),
		Location:           action.Location,
		Latitude:           action.Latitude,
		Longitude:          action.Longitude,
		EventStartDatetime: action.EventStartDatetime,
		EventEndDatetime:   action.EventEndDatetime,
	}

	if err := repo.db.WithContext(ctx).Create(eventM).Error; err != nil {
		return mapCreateError(err, "event action")
	}
	applyGenerated(&action.Action, &eventM.ActionFields)

	return nil
}

// CountByCategory counts the rows of the category's table.
func (repo *actionRepository) CountByCategory(ctx context.Context, category entity.ActionCategory) (int64, error) {
	target, err := modelFor(category)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := repo.db.WithContext(ctx).Model(target).Count(&count).Error; err != nil {
		return 0, errors.Wrapf(err, "failed to count %s actions", category)
	}

	return count, nil
}

// DeleteAll removes the rows of every action table and returns the total.
func (repo *actionRepository) DeleteAll(ctx context.Context) (int64, error) {
	db := repo.db.WithContext(ctx).Session(&gorm.Session{AllowGlobalUpdate: true})

	var total int64
	for _, target := range []any{&model.CallActionModel{}, &model.EmailActionModel{}, &model.EventActionModel{}} {
		result := db.Delete(target)
		if result.Error != nil {
			return total, errors.Wrap(result.Error, "failed to delete actions")
		}
		total += result.RowsAffected
	}

	return total, nil
}

func modelFor(category entity.ActionCategory) (any, error) {
	switch category {
	case entity.ActionCategoryCall:
		return &model.CallActionModel{}, nil
	case entity.ActionCategoryEmail:
		return &model.EmailActionModel{}, nil
	case entity.ActionCategoryEvent:
		return &model.EventActionModel{}, nil
	default:
		return nil, errors.Errorf("unknown action category: %s", category)
	}
}

// fromActionDomain converts the shared action fields to their GORM representation.
func fromActionDomain(data *entity.Action) model.ActionFields {
	return model.ActionFields{
		ID:                data.ID,
		UserID:            data.UserID,
		Title:             data.Title,
		Headline:          data.Headline,
		Description:       data.Description,
		ListStartDatetime: data.ListStartDatetime,
		ListEndDatetime:   data.ListEndDatetime,
		KudosText:         data.KudosText,
	}
}

// applyGenerated copies database assigned values back onto the entity.
func applyGenerated(action *entity.Action, data *model.ActionFields) {
	action.ID = data.ID
	action.CreatedAt = data.CreatedAt
	action.UpdatedAt = data.UpdatedAt
}
