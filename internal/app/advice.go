package app

import (
	"context"

	"github.com/yonasmekonnen/nesha/internal/models"
)

// DailyAdvice returns today's aphorism, serving the cached entry when one
// exists so the model is asked at most once per calendar day.
func (s *Service) DailyAdvice(ctx context.Context) string {
	day := Today()

	s.mu.Lock()
	cached, err := s.store.GetCachedAdvice(day)
	lang := s.settings.Language
	s.mu.Unlock()

	if err == nil && cached != "" {
		return cached
	}
	return s.fetchAdvice(ctx, day, lang)
}

// RefreshAdvice bypasses the cache and replaces today's entry.
func (s *Service) RefreshAdvice(ctx context.Context) string {
	return s.fetchAdvice(ctx, Today(), s.Settings().Language)
}

func (s *Service) fetchAdvice(ctx context.Context, day string, lang models.Language) string {
	// Network call happens outside the collection lock.
	text := s.ai.DailyAdvice(ctx, lang)

	s.mu.Lock()
	persist("advice-cache", s.store.SaveCachedAdvice(day, text))
	s.mu.Unlock()
	return text
}
