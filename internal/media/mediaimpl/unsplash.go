package mediaimpl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"strings"

	"github.com/orgball2608/insta-story-player/internal/media"
	"github.com/orgball2608/insta-story-player/internal/ratelimit"
	"github.com/orgball2608/insta-story-player/pkg/logger"
	"github.com/orgball2608/insta-story-player/pkg/retry"
)

const unsplashLimiterKey = "unsplash"

type unsplashPhoto struct {
	ID   string `json:"id"`
	URLs struct {
		Raw     string `json:"raw"`
		Full    string `json:"full"`
		Regular string `json:"regular"`
		Small   string `json:"small"`
		Thumb   string `json:"thumb"`
	} `json:"urls"`
}

type UnsplashOpts struct {
	BaseURL   string
	AccessKey string
	MinImages int
	MaxImages int
	Client    *http.Client
	Limiter   ratelimit.Limiter
	Retry     retry.Config
	Logger    logger.Logger
}

// UnsplashResolver asks the Unsplash API for count random photos per story.
type UnsplashResolver struct {
	opts UnsplashOpts
	intn func(n int) int
}

func NewUnsplashResolver(opts UnsplashOpts) *UnsplashResolver {
	if opts.Client == nil {
		opts.Client = http.DefaultClient
	}
	if opts.MinImages < 1 {
		opts.MinImages = 1
	}
	if opts.MaxImages < opts.MinImages {
		opts.MaxImages = opts.MinImages
	}
	opts.BaseURL = strings.TrimRight(opts.BaseURL, "/")
	opts.Logger = opts.Logger.WithComponent("UnsplashResolver")

	return &UnsplashResolver{opts: opts, intn: rand.Intn}
}

var _ media.Resolver = (*UnsplashResolver)(nil)

func (u *UnsplashResolver) GetStoryImages(ctx context.Context, userID int) ([]string, error) {
	count := u.opts.MinImages + u.intn(u.opts.MaxImages-u.opts.MinImages+1)

	var photos []unsplashPhoto
	err := retry.Do(ctx, u.opts.Logger, "unsplash_random_photos", func() error {
		if err := u.opts.Limiter.Wait(ctx, unsplashLimiterKey); err != nil {
			return retry.Permanent(err)
		}

		var err error
		photos, err = u.fetch(ctx, count)
		return err
	}, u.opts.Retry)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch story images for user %d: %w", userID, err)
	}

	urls := make([]string, 0, len(photos))
	for _, photo := range photos {
		if photo.URLs.Regular != "" {
			urls = append(urls, photo.URLs.Regular)
		}
	}
	return urls, nil
}

func (u *UnsplashResolver) fetch(ctx context.Context, count int) ([]unsplashPhoto, error) {
	url := fmt.Sprintf("%s/photos/random?count=%d", u.opts.BaseURL, count)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, retry.Permanent(err)
	}
	req.Header.Set("Authorization", "Client-ID "+u.opts.AccessKey)
	req.Header.Set("Accept-Version", "v1")

	resp, err := u.opts.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("%w: %d %s", media.ErrBadStatus, resp.StatusCode, strings.TrimSpace(string(body)))
		// only throttling and server errors are worth another attempt
		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			return nil, err
		}
		return nil, retry.Permanent(err)
	}

	var photos []unsplashPhoto
	if err := json.NewDecoder(resp.Body).Decode(&photos); err != nil {
		return nil, retry.Permanent(fmt.Errorf("failed to decode unsplash response: %w", err))
	}
	return photos, nil
}
