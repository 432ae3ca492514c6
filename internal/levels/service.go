package levels

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	dErrors "dotback/pkg/domain-errors"
)

// managedLogoPrefix marks logo URLs whose files this service owns and cleans
// up when a level stops referencing them.
const managedLogoPrefix = "/uploads/"

// Service owns level configuration lifecycle, including cleanup of logo
// files the upload handler wrote.
type Service struct {
	store     Store
	uploadDir string
	logger    *slog.Logger
}

// NewService constructs the level service. uploadDir is the directory that
// backs the /uploads/ URL namespace.
func NewService(store Store, uploadDir string, logger *slog.Logger) *Service {
	return &Service{store: store, uploadDir: uploadDir, logger: logger}
}

// List returns all level configurations ordered by level number.
func (s *Service) List(ctx context.Context) ([]*Level, error) {
	out, err := s.store.List(ctx)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "")
	}
	return out, nil
}

// Get returns a single level configuration.
func (s *Service) Get(ctx context.Context, number int) (*Level, error) {
	level, err := s.store.FindByNumber(ctx, number)
	if err != nil {
		return nil, s.storeError(err)
	}
	return level, nil
}

// Create validates and persists a new level configuration.
func (s *Service) Create(ctx context.Context, payload *ConfigPayload) (*Level, error) {
	if err := payload.ValidateNumber(); err != nil {
		return nil, err
	}
	if err := payload.ValidateColors(); err != nil {
		return nil, err
	}

	level := &Level{Number: payload.Number}
	payload.Apply(level)

	if err := s.store.Create(ctx, level); err != nil {
		return nil, s.storeError(err)
	}
	return level, nil
}

// Update validates and overwrites a level's configuration. When the logo URL
// changes away from a managed upload, the old file is deleted best-effort.
func (s *Service) Update(ctx context.Context, number int, payload *ConfigPayload) (*Level, error) {
	if err := payload.ValidateColors(); err != nil {
		return nil, err
	}

	current, err := s.store.FindByNumber(ctx, number)
	if err != nil {
		return nil, s.storeError(err)
	}

	if current.LogoURL != "" && current.LogoURL != payload.LogoURL {
		s.removeManagedLogo(ctx, current.LogoURL)
	}

	updated, err := s.store.Update(ctx, number, payload)
	if err != nil {
		return nil, s.storeError(err)
	}
	return updated, nil
}

// Delete removes a level configuration and its managed logo file, returning
// the removed record.
func (s *Service) Delete(ctx context.Context, number int) (*Level, error) {
	level, err := s.store.Delete(ctx, number)
	if err != nil {
		return nil, s.storeError(err)
	}

	if level.LogoURL != "" {
		s.removeManagedLogo(ctx, level.LogoURL)
	}
	return level, nil
}

// removeManagedLogo deletes the file behind a /uploads/ URL. A missing file
// is not worth logging; anything else is, but never fails the request.
func (s *Service) removeManagedLogo(ctx context.Context, logoURL string) {
	name, ok := strings.CutPrefix(logoURL, managedLogoPrefix)
	if !ok {
		return
	}
	name = filepath.Base(name) // uploads are flat; strips any traversal
	if name == "." || name == string(filepath.Separator) {
		return
	}

	path := filepath.Join(s.uploadDir, name)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.WarnContext(ctx, "failed to delete logo file",
			"path", path,
			"error", err,
		)
	}
}

func (s *Service) storeError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return dErrors.New(dErrors.CodeNotFound, "Level not found.")
	case errors.Is(err, ErrDuplicateLevel):
		return dErrors.New(dErrors.CodeConflict, "Level already exists.")
	default:
		return dErrors.Wrap(err, dErrors.CodeInternal, "")
	}
}
