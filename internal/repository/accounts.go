package repository

import (
	"context"
	"fmt"

	"github.com/vladislavprovich/rental-cache/internal/model"
)

func (r *Repository) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	var a model.Account
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("get account %s: %w", id, notFound(err))
	}
	return &a, nil
}

func (r *Repository) ListAccounts(ctx context.Context) ([]model.Account, error) {
	var accounts []model.Account
	if err := r.db.WithContext(ctx).Order("created_at").Find(&accounts).Error; err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}

// SearchAccountsByEmail returns accounts whose email contains query,
// ignoring case.
func (r *Repository) SearchAccountsByEmail(ctx context.Context, query string) ([]model.Account, error) {
	var accounts []model.Account
	err := r.db.WithContext(ctx).
		Where(`LOWER(email) LIKE ? ESCAPE '\'`, containsPattern(query)).
		Order("email").
		Find(&accounts).Error
	if err != nil {
		return nil, fmt.Errorf("search accounts by email %s: %w", query, err)
	}
	return accounts, nil
}

func (r *Repository) CreateAccount(ctx context.Context, a *model.Account) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("create account %s: %w", a.Email, duplicate(err))
	}
	return nil
}

func (r *Repository) UpdateAccount(ctx context.Context, a *model.Account) error {
	res := r.db.WithContext(ctx).Model(&model.Account{}).Where("id = ?", a.ID).
		Select("email", "first_name", "last_name", "phone", "updated_at").
		Updates(a)
	if err := affected(res); err != nil {
		return fmt.Errorf("update account %s: %w", a.ID, duplicate(err))
	}
	return nil
}

func (r *Repository) DeleteAccount(ctx context.Context, id string) error {
	if err := affected(r.db.WithContext(ctx).Delete(&model.Account{}, "id = ?", id)); err != nil {
		return fmt.Errorf("delete account %s: %w", id, err)
	}
	return nil
}
