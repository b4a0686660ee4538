package repository

import (
	"context"
	"errors"

	"dental-care-api/internal/domain/entity"
	domainRepo "dental-care-api/internal/domain/repository"

	"gorm.io/gorm"
)

var userSearchSpec = entity.SearchSpec{
	Fields: []entity.SearchField{
		{Column: "name", Fold: true},
		{Column: "email", Fold: true},
		{Column: "role", Fold: true},
	},
}

var userSortColumns = map[string]string{
	"id":        "id",
	"name":      "name",
	"email":     "email",
	"role":      "role",
	"createdAt": "created_at",
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context, q entity.PageQuery) ([]entity.User, int64, error) {
	var total int64
	countQuery := applySearch(r.db.WithContext(ctx).Model(&entity.User{}), userSearchSpec, q.Search)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var users []entity.User
	findQuery := applySearch(r.db.WithContext(ctx).Model(&entity.User{}), userSearchSpec, q.Search)
	err := applySort(findQuery, userSortColumns, q).
		Offset(q.Offset()).
		Limit(q.Size).
		Find(&users).Error
	if err != nil {
		return nil, 0, err
	}

	return users, total, nil
}

func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.User{}).Count(&count).Error
	return count, err
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return r.db.WithContext(ctx).Save(user).Error
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.User{}).Error
}
