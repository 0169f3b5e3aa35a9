package service

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"linha-viva/internal/model"
	"linha-viva/internal/repository"
)

// EndpointStore resolves the spreadsheet URL: the one saved in settings,
// else the configured default.
type EndpointStore struct {
	repo       repository.SettingRepository
	defaultURL string

	mu     sync.RWMutex
	cached *string
}

func NewEndpointStore(repo repository.SettingRepository, defaultURL string) *EndpointStore {
	return &EndpointStore{repo: repo, defaultURL: strings.TrimSpace(defaultURL)}
}

// URL matches sheets.URLProvider.
func (e *EndpointStore) URL(ctx context.Context) string {
	e.mu.RLock()
	if e.cached != nil {
		v := *e.cached
		e.mu.RUnlock()
		return e.orDefault(v)
	}
	e.mu.RUnlock()

	v, _, err := e.repo.Get(model.SettingSheetsURL)
	if err != nil {
		return e.defaultURL
	}
	e.mu.Lock()
	e.cached = &v
	e.mu.Unlock()
	return e.orDefault(v)
}

// Set saves u. An empty value restores the default.
func (e *EndpointStore) Set(ctx context.Context, u string) error {
	u = strings.TrimSpace(u)
	if u != "" {
		parsed, err := url.Parse(u)
		if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") || parsed.Host == "" {
			return invalid("endpoint must be an http(s) URL")
		}
	}
	if err := e.repo.Set(model.SettingSheetsURL, u); err != nil {
		return err
	}
	e.mu.Lock()
	e.cached = &u
	e.mu.Unlock()
	return nil
}

func (e *EndpointStore) orDefault(v string) string {
	if v != "" {
		return v
	}
	return e.defaultURL
}
