package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tzy-lab/paperdesk/internal/logger"
	"github.com/tzy-lab/paperdesk/internal/store"
	"github.com/tzy-lab/paperdesk/models"
)

type clientProfileService struct {
	localStore *store.ClientStorages
	logger     *logger.Logger
}

func NewClientProfileService(localStore *store.ClientStorages, logger *logger.Logger) ClientProfileService {
	return &clientProfileService{localStore: localStore, logger: logger}
}

func (p *clientProfileService) Theme(ctx context.Context) (models.Theme, error) {
	value, ok, err := p.localStore.PreferenceRepository.GetPreference(ctx, store.PrefKeyTheme)
	if err != nil {
		return "", fmt.Errorf("load theme: %w", err)
	}

	theme := models.Theme(value)
	if !ok || !theme.Valid() {
		return models.ThemeLight, nil
	}
	return theme, nil
}

func (p *clientProfileService) SetTheme(ctx context.Context, theme models.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}

	if err := p.localStore.PreferenceRepository.SetPreference(ctx, store.PrefKeyTheme, string(theme)); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

func (p *clientProfileService) Avatar(ctx context.Context) (string, error) {
	value, _, err := p.localStore.PreferenceRepository.GetPreference(ctx, store.PrefKeyAvatar)
	if err != nil {
		return "", fmt.Errorf("load avatar: %w", err)
	}
	return value, nil
}

func (p *clientProfileService) SetAvatar(ctx context.Context, avatar string) error {
	if err := p.localStore.PreferenceRepository.SetPreference(ctx, store.PrefKeyAvatar, avatar); err != nil {
		return fmt.Errorf("save avatar: %w", err)
	}
	return nil
}

func (p *clientProfileService) Profile(ctx context.Context) (models.UserProfile, error) {
	value, ok, err := p.localStore.PreferenceRepository.GetPreference(ctx, store.PrefKeyProfile)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("load profile: %w", err)
	}
	if !ok {
		return models.UserProfile{}, nil
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(value), &profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("decode persisted profile: %w", err)
	}
	return profile, nil
}

func (p *clientProfileService) SaveProfile(ctx context.Context, profile models.UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	if err := p.localStore.PreferenceRepository.SetPreference(ctx, store.PrefKeyProfile, string(raw)); err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

func (p *clientProfileService) SelectedSubjects(ctx context.Context) ([]string, error) {
	value, ok, err := p.localStore.PreferenceRepository.GetPreference(ctx, store.PrefKeySelectedSubjects)
	if err != nil {
		return nil, fmt.Errorf("load selected subjects: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var keys []string
	if err := json.Unmarshal([]byte(value), &keys); err != nil {
		return nil, fmt.Errorf("decode persisted subject keys: %w", err)
	}
	return keys, nil
}

func (p *clientProfileService) SetSelectedSubjects(ctx context.Context, keys []string) error {
	// пустой список не хранится, ключ просто удаляется
	if len(keys) == 0 {
		if err := p.localStore.PreferenceRepository.DeletePreference(ctx, store.PrefKeySelectedSubjects); err != nil {
			return fmt.Errorf("clear selected subjects: %w", err)
		}
		return nil
	}

	raw, err := json.Marshal(keys)
	if err != nil {
		return fmt.Errorf("encode subject keys: %w", err)
	}

	if err := p.localStore.PreferenceRepository.SetPreference(ctx, store.PrefKeySelectedSubjects, string(raw)); err != nil {
		return fmt.Errorf("save selected subjects: %w", err)
	}
	return nil
}
