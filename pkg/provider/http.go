package provider

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	apperrors "github.com/limaJavier/sectionplanner/pkg/errors"
	"github.com/limaJavier/sectionplanner/pkg/model"
)

// HTTPOptions tunes how registrar pages are fetched
type HTTPOptions struct {
	Timeout       time.Duration
	UserAgent     string
	RatePerSecond float64
	Burst         int
}

// HTTPProvider fetches registrar course pages, at most RatePerSecond requests per second
type HTTPProvider struct {
	client    *http.Client
	limiter   *rate.Limiter
	userAgent string
	logger    *zap.Logger
}

func NewHTTPProvider(options HTTPOptions, logger *zap.Logger) *HTTPProvider {
	if logger == nil {
		logger = zap.NewNop()
	}
	limit := rate.Inf
	if options.RatePerSecond > 0 {
		limit = rate.Limit(options.RatePerSecond)
	}
	return &HTTPProvider{
		client:    &http.Client{Timeout: options.Timeout},
		limiter:   rate.NewLimiter(limit, max(options.Burst, 1)),
		userAgent: options.UserAgent,
		logger:    logger,
	}
}

// Course downloads and parses the page of a single course
func (provider *HTTPProvider) Course(ctx context.Context, url string) (*model.CourseOffering, error) {
	if err := provider.limiter.Wait(ctx); err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrFetchFailed.Code, "rate limiter")
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrFetchFailed.Code, fmt.Sprintf("invalid course URL %q", url))
	}
	if provider.userAgent != "" {
		request.Header.Set("User-Agent", provider.userAgent)
	}

	started := time.Now()
	response, err := provider.client.Do(request)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrFetchFailed.Code, fmt.Sprintf("cannot fetch %s", url))
	}
	defer response.Body.Close()

	provider.logger.Debug("course page fetched",
		zap.String("url", url),
		zap.Int("status", response.StatusCode),
		zap.Duration("elapsed", time.Since(started)),
	)
	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, apperrors.Clonef(apperrors.ErrFetchFailed, "fetching %s returned %s", url, response.Status)
	}

	return ParseCoursePage(response.Body, provider.logger)
}

func (provider *HTTPProvider) Courses(ctx context.Context, url string) ([]*model.CourseOffering, error) {
	course, err := provider.Course(ctx, url)
	if err != nil {
		return nil, err
	}
	return []*model.CourseOffering{course}, nil
}
