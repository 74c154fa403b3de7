package repository

import (
	"context"
	"errors"
	"jobboard/cmd/internal/domain/entity"
	"strings"

	"gorm.io/gorm"
)

type DefaultUserRepository struct {
	*Store[entity.User, *entity.User]
}

func NewUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{Store: NewStore[entity.User, *entity.User](db, "id")}
}

func (u *DefaultUserRepository) FindByEmail(ctx context.Context, email string, view entity.View) (*entity.User, error) {
	var user entity.User
	err := Visible(u.db.WithContext(ctx), view).
		Where("email = ?", strings.ToLower(email)).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, translate("find by email", err)
	}
	return &user, nil
}

// ExistsByEmail looks at deleted accounts too, emails stay reserved.
func (u *DefaultUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return u.Exists(ctx, map[string]any{"email": strings.ToLower(email)}, entity.AllView)
}
