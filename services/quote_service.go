package services

import (
	"errors"
	"time"

	"backend/cache"
	"backend/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// FallbackQuote is served once every stored quote has been used up.
var FallbackQuote = models.MotivationalQuote{
	Text:   "Your health is an investment, not an expense.",
	Author: "Unknown",
}

type QuoteService struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewQuoteService(db *gorm.DB, logger *zap.Logger) *QuoteService {
	return &QuoteService{db: db, logger: logger}
}

func quoteCacheKey(day time.Time) string {
	return "quote:" + day.Format("2006-01-02")
}

// QuoteOfDay returns the quote pinned to today, choosing and pinning a random
// unused one on the first call of the day. When every quote has been used the
// hardcoded fallback is returned instead. Results are cached in Redis until
// midnight; the cache being down just means an extra DB read.
func (s *QuoteService) QuoteOfDay(on time.Time) (models.MotivationalQuote, error) {
	day := dayStart(on)

	var cached models.MotivationalQuote
	if err := cache.Get(quoteCacheKey(day), &cached); err == nil {
		return cached, nil
	}

	quote, err := s.quoteForDay(day)
	if err != nil {
		return models.MotivationalQuote{}, err
	}

	if ttl := time.Until(day.AddDate(0, 0, 1)); ttl > 0 {
		if err := cache.Set(quoteCacheKey(day), quote, ttl); err != nil && !errors.Is(err, cache.ErrUnavailable) {
			s.logger.Warn("quote_cache_set_failed", zap.Error(err))
		}
	}
	return quote, nil
}

func (s *QuoteService) quoteForDay(day time.Time) (models.MotivationalQuote, error) {
	var quote models.MotivationalQuote

	// Already pinned for today?
	err := s.db.Where("used_date = ?", day).First(&quote).Error
	if err == nil {
		return quote, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return models.MotivationalQuote{}, err
	}

	// Pick a random unused quote and pin it. Once the pool is exhausted the
	// fallback takes over for good.
	err = s.db.Where("used_date IS NULL").Order("RANDOM()").First(&quote).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return FallbackQuote, nil
	}
	if err != nil {
		return models.MotivationalQuote{}, err
	}

	if err := s.db.Model(&quote).Update("used_date", day).Error; err != nil {
		return models.MotivationalQuote{}, err
	}
	quote.UsedDate = &day
	return quote, nil
}
