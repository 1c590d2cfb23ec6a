package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vladislavprovich/rental-cache/internal/model"
)

func (s *Service) GetAccount(ctx context.Context, id string) (*model.Account, error) {
	c := s.caches.Accounts

	acc, err := fetch(ctx, s.logger, "account:"+id,
		func() (model.Account, bool) { return c.GetEntity(id) },
		func() (model.Account, error) {
			a, err := s.repo.GetAccount(ctx, id)
			if err != nil {
				return model.Account{}, err
			}
			return *a, nil
		},
		func(a model.Account) { c.SetEntity(id, a, s.ttl.Account) },
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "service GetAccount", slog.String("id", id), slog.Any("error", err))
		return nil, err
	}

	return &acc, nil
}

func (s *Service) ListAccounts(ctx context.Context) ([]model.Account, error) {
	c := s.caches.Accounts

	accounts, err := fetch(ctx, s.logger, "all_accounts",
		c.GetAll,
		func() ([]model.Account, error) { return s.repo.ListAccounts(ctx) },
		func(list []model.Account) { c.SetAll(list, s.ttl.AccountList) },
	)
	if err != nil {
		s.logger.ErrorContext(ctx, "service ListAccounts", slog.Any("error", err))
		return nil, err
	}

	return accounts, nil
}

// SearchAccounts returns accounts whose email contains query, ignoring case.
// Searches are free-form, so their results are not cached.
func (s *Service) SearchAccounts(ctx context.Context, query string) ([]model.Account, error) {
	if err := model.ValidateEmailQuery(query); err != nil {
		return nil, err
	}

	accounts, err := s.repo.SearchAccountsByEmail(ctx, query)
	if err != nil {
		s.logger.ErrorContext(ctx, "service SearchAccounts", slog.String("query", query), slog.Any("error", err))
		return nil, err
	}

	s.logger.InfoContext(ctx, "account search", slog.String("query", query), slog.Int("results", len(accounts)))
	return accounts, nil
}

func (s *Service) CreateAccount(ctx context.Context, req *model.AccountRequest) (*model.Account, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	acc := &model.Account{
		ID:        uuid.NewString(),
		Email:     req.Email,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}
	if err := s.repo.CreateAccount(ctx, acc); err != nil {
		s.logger.ErrorContext(ctx, "service CreateAccount", slog.Any("error", err))
		return nil, err
	}

	s.caches.Accounts.InvalidateWrite(acc.ID)
	s.logger.InfoContext(ctx, "account created", slog.String("id", acc.ID))

	return acc, nil
}

func (s *Service) UpdateAccount(ctx context.Context, id string, req *model.AccountRequest) (*model.Account, error) {
	if err := req.ValidateWithContext(ctx); err != nil {
		return nil, err
	}

	acc, err := s.repo.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	acc.Email = req.Email
	acc.FirstName = req.FirstName
	acc.LastName = req.LastName
	acc.Phone = req.Phone

	if err = s.repo.UpdateAccount(ctx, acc); err != nil {
		s.logger.ErrorContext(ctx, "service UpdateAccount", slog.String("id", id), slog.Any("error", err))
		return nil, err
	}

	s.caches.Accounts.InvalidateWrite(id)
	s.logger.InfoContext(ctx, "account updated", slog.String("id", id))

	return acc, nil
}

func (s *Service) DeleteAccount(ctx context.Context, id string) error {
	if err := s.repo.DeleteAccount(ctx, id); err != nil {
		return fmt.Errorf("delete account: %w", err)
	}

	s.caches.Accounts.InvalidateWrite(id)
	s.logger.InfoContext(ctx, "account deleted", slog.String("id", id))

	return nil
}
