package llm

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-redis/redis/v8"
	"golang.org/x/time/rate"
)

// Logger interface for service logging
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
}

// Common errors
var (
	ErrAPIRequestFailed  = errors.New("LLM API request failed")
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
	ErrEmptyResponse     = errors.New("LLM returned an empty response")
	ErrInvalidProvider   = errors.New("invalid LLM provider specified")
	ErrCacheMiss         = errors.New("cache miss")
)

// DefaultLogger provides a basic implementation of the Logger interface
type DefaultLogger struct{}

func (l *DefaultLogger) Debug(msg string, keysAndValues ...interface{}) {
	log.Printf("[DEBUG] %s %v", msg, keysAndValues)
}

func (l *DefaultLogger) Info(msg string, keysAndValues ...interface{}) {
	log.Printf("[INFO] %s %v", msg, keysAndValues)
}

func (l *DefaultLogger) Error(msg string, keysAndValues ...interface{}) {
	log.Printf("[ERROR] %s %v", msg, keysAndValues)
}

// Provider interface for LLM providers
type Provider interface {
	// GenerateText generates text from a prompt
	GenerateText(ctx context.Context, prompt string, temperature float32) (string, error)

	// GenerateWithImages generates text from a prompt and a sequence of images
	GenerateWithImages(ctx context.Context, prompt string, images [][]byte, temperature float32) (string, error)

	// GetName returns the name of the provider
	GetName() string

	// Close performs any necessary cleanup
	Close() error
}

// Service handles LLM API interactions with caching and rate limiting
type Service struct {
	providers       map[string]Provider
	defaultProvider string
	redisClient     *redis.Client
	limiter         *rate.Limiter
	cacheTTL        time.Duration
	maxRetries      int
	retryDelay      time.Duration
	requestTimeout  time.Duration
	temperature     float32
	mutex           sync.RWMutex
	logger          Logger
}

// ServiceOptions contains configuration for the LLM service
type ServiceOptions struct {
	DefaultProvider string
	RedisClient     *redis.Client
	RateLimit       rate.Limit
	RateBurst       int
	CacheTTL        time.Duration
	MaxRetries      int
	RetryDelay      time.Duration
	RequestTimeout  time.Duration
	Temperature     float32
	Logger          Logger
}

// NewService creates a new LLM service with the specified options
func NewService(opts ServiceOptions) *Service {
	if opts.CacheTTL == 0 {
		opts.CacheTTL = 24 * time.Hour
	}
	if opts.RateLimit == 0 {
		opts.RateLimit = rate.Limit(10)
	}
	if opts.RateBurst == 0 {
		opts.RateBurst = 1
	}
	if opts.MaxRetries == 0 {
		opts.MaxRetries = 3
	}
	if opts.RetryDelay == 0 {
		opts.RetryDelay = 1 * time.Second
	}
	if opts.RequestTimeout == 0 {
		opts.RequestTimeout = 2 * time.Minute
	}
	if opts.Temperature == 0 {
		opts.Temperature = 0.7
	}
	if opts.Logger == nil {
		opts.Logger = &DefaultLogger{}
	}

	return &Service{
		providers:       make(map[string]Provider),
		defaultProvider: opts.DefaultProvider,
		redisClient:     opts.RedisClient,
		limiter:         rate.NewLimiter(opts.RateLimit, opts.RateBurst),
		cacheTTL:        opts.CacheTTL,
		maxRetries:      opts.MaxRetries,
		retryDelay:      opts.RetryDelay,
		requestTimeout:  opts.RequestTimeout,
		temperature:     opts.Temperature,
		logger:          opts.Logger,
	}
}

// RegisterProvider registers an LLM provider with the service
func (s *Service) RegisterProvider(provider Provider) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	providerName := provider.GetName()
	s.providers[providerName] = provider

	if s.defaultProvider == "" {
		s.defaultProvider = providerName
	}

	s.logger.Info("Registered LLM provider", "provider", providerName)
}

// GetProvider returns a provider by name, using the default if name is empty
func (s *Service) GetProvider(name string) (Provider, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if name == "" {
		name = s.defaultProvider
	}

	provider, exists := s.providers[name]
	if !exists {
		return nil, ErrInvalidProvider
	}

	return provider, nil
}

// Close closes all registered providers
func (s *Service) Close() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	for name, provider := range s.providers {
		if err := provider.Close(); err != nil {
			s.logger.Error("Failed to close provider", "provider", name, "error", err)
		}
	}
}

// generateCacheKey creates a cache key from the prompt text
func (s *Service) generateCacheKey(provider, prompt string) string {
	sum := sha256.Sum256([]byte(prompt))
	return fmt.Sprintf("llm:%s:%s", provider, hex.EncodeToString(sum[:]))
}

// getFromCache retrieves a generated text from Redis cache
func (s *Service) getFromCache(ctx context.Context, key string) (string, error) {
	if s.redisClient == nil {
		return "", ErrCacheMiss
	}

	text, err := s.redisClient.Get(ctx, key).Result()
	if err != nil || text == "" {
		return "", ErrCacheMiss
	}

	return text, nil
}

// saveToCache saves a generated text to Redis cache
func (s *Service) saveToCache(ctx context.Context, key, text string) error {
	if s.redisClient == nil {
		return nil
	}
	return s.redisClient.Set(ctx, key, text, s.cacheTTL).Err()
}

// Generate produces text for a prompt using the default provider, with
// caching, rate limiting and retries
func (s *Service) Generate(ctx context.Context, prompt string) (string, error) {
	return s.GenerateWith(ctx, prompt, "")
}

// GenerateWith produces text for a prompt using a named provider
func (s *Service) GenerateWith(ctx context.Context, prompt, providerName string) (string, error) {
	startTime := time.Now()

	provider, err := s.GetProvider(providerName)
	if err != nil {
		return "", err
	}

	cacheKey := s.generateCacheKey(provider.GetName(), prompt)
	if cached, err := s.getFromCache(ctx, cacheKey); err == nil {
		s.logger.Debug("Cache hit for text generation", "provider", provider.GetName())
		return cached, nil
	}

	if err := s.limiter.Wait(ctx); err != nil {
		s.logger.Error("Rate limit exceeded", "error", err)
		return "", ErrRateLimitExceeded
	}

	text, err := s.withRetries(ctx, provider.GetName(), func(callCtx context.Context) (string, error) {
		return provider.GenerateText(callCtx, prompt, s.temperature)
	})
	if err != nil {
		return "", err
	}

	if err := s.saveToCache(ctx, cacheKey, text); err != nil {
		s.logger.Error("Failed to cache LLM response", "error", err)
	}

	s.logger.Info("Generated text successfully",
		"provider", provider.GetName(),
		"time", time.Since(startTime))

	return text, nil
}

// GenerateWithImages produces text for a prompt accompanied by images.
// Image requests are not cached.
func (s *Service) GenerateWithImages(ctx context.Context, prompt string, images [][]byte) (string, error) {
	startTime := time.Now()

	provider, err := s.GetProvider("")
	if err != nil {
		return "", err
	}

	if err := s.limiter.Wait(ctx); err != nil {
		s.logger.Error("Rate limit exceeded", "error", err)
		return "", ErrRateLimitExceeded
	}

	text, err := s.withRetries(ctx, provider.GetName(), func(callCtx context.Context) (string, error) {
		return provider.GenerateWithImages(callCtx, prompt, images, s.temperature)
	})
	if err != nil {
		return "", err
	}

	s.logger.Info("Generated text from images successfully",
		"provider", provider.GetName(),
		"images", len(images),
		"time", time.Since(startTime))

	return text, nil
}

// withRetries executes an API call with exponential backoff between attempts.
// Each attempt runs under its own request timeout so a hung provider call
// cannot stall the caller past the configured bound.
func (s *Service) withRetries(ctx context.Context, providerName string, call func(context.Context) (string, error)) (string, error) {
	var text string
	var lastErr error

	for retry := 0; retry <= s.maxRetries; retry++ {
		if retry > 0 {
			s.logger.Info("Retrying LLM API request",
				"attempt", retry,
				"provider", providerName)

			select {
			case <-time.After(s.retryDelay * time.Duration(1<<uint(retry-1))):
			case <-ctx.Done():
				return "", ctx.Err()
			}
		}

		text, lastErr = s.boundedCall(ctx, call)
		if lastErr == nil {
			break
		}

		s.logger.Error("LLM API request failed",
			"error", lastErr,
			"provider", providerName,
			"retry", retry)
	}

	if lastErr != nil {
		return "", fmt.Errorf("%w: %v", ErrAPIRequestFailed, lastErr)
	}

	return text, nil
}

// boundedCall runs a single provider attempt under the request timeout
func (s *Service) boundedCall(ctx context.Context, call func(context.Context) (string, error)) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()
	return call(callCtx)
}
