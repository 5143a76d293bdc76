package usecase

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rocketscienceinc/gomoku-backend/internal/apperror"
)

const MaxNameLength = 32

type nameRepo interface {
	Remember(ctx context.Context, name string) error
	List(ctx context.Context) ([]string, error)
	Forget(ctx context.Context, name string) error
}

type NameUseCase interface {
	RememberName(ctx context.Context, name string) error
	Names(ctx context.Context) ([]string, error)
	ForgetName(ctx context.Context, name string) error
}

type nameUseCase struct {
	repo nameRepo
}

func NewNameUseCase(repo nameRepo) NameUseCase {
	return &nameUseCase{
		repo: repo,
	}
}

// CleanName trims a display name and rejects empty or overlong ones.
func CleanName(name string) (string, error) {
	cleaned := strings.TrimSpace(name)
	if cleaned == "" || utf8.RuneCountInString(cleaned) > MaxNameLength {
		return "", fmt.Errorf("%w: %q", apperror.ErrInvalidName, name)
	}

	return cleaned, nil
}

func (that *nameUseCase) RememberName(ctx context.Context, name string) error {
	cleaned, err := CleanName(name)
	if err != nil {
		return err
	}

	if err = that.repo.Remember(ctx, cleaned); err != nil {
		return fmt.Errorf("failed to remember name: %w", err)
	}

	return nil
}

func (that *nameUseCase) Names(ctx context.Context) ([]string, error) {
	names, err := that.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list names: %w", err)
	}

	return names, nil
}

func (that *nameUseCase) ForgetName(ctx context.Context, name string) error {
	if err := that.repo.Forget(ctx, strings.TrimSpace(name)); err != nil {
		return fmt.Errorf("failed to forget name: %w", err)
	}

	return nil
}
