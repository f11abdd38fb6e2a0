package memory

import (
	"time"

	"mock-interview-be/internal/dto"

	"github.com/patrickmn/go-cache"
)

// ResultRepository keeps recently computed analysis results hot so the
// result endpoint does not hit the database for every poll.
type ResultRepository struct {
	cache *cache.Cache
}

func NewResultRepository() *ResultRepository {
	// Default expiration 1 hour, purge sweep every 10 minutes
	c := cache.New(1*time.Hour, 10*time.Minute)
	return &ResultRepository{
		cache: c,
	}
}

func (r *ResultRepository) Save(result *dto.InterviewResultResponse) {
	// Keyed by both identifiers so callers can look up with either one
	r.cache.Set(result.SessionId, result, cache.DefaultExpiration)
	r.cache.Set(result.InterviewId, result, cache.DefaultExpiration)
	r.cache.Set("latest", result, cache.DefaultExpiration)
}

func (r *ResultRepository) Get(sessionId string) (*dto.InterviewResultResponse, bool) {
	if x, found := r.cache.Get(sessionId); found {
		return x.(*dto.InterviewResultResponse), true
	}
	return nil, false
}

// Latest returns the most recently saved result regardless of session.
func (r *ResultRepository) Latest() (*dto.InterviewResultResponse, bool) {
	if x, found := r.cache.Get("latest"); found {
		return x.(*dto.InterviewResultResponse), true
	}
	return nil, false
}

func (r *ResultRepository) Delete(sessionId string) {
	r.cache.Delete(sessionId)
}
