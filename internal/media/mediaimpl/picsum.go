package mediaimpl

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"strconv"

	"github.com/orgball2608/insta-story-player/internal/media"
)

// PicsumResolver generates picsum.photos references without any network call.
type PicsumResolver struct {
	baseURL  string
	min, max int
	intn     func(n int) int
}

func NewPicsumResolver(baseURL string, minImages, maxImages int) *PicsumResolver {
	if minImages < 1 {
		minImages = 1
	}
	if maxImages < minImages {
		maxImages = minImages
	}
	return &PicsumResolver{
		baseURL: baseURL,
		min:     minImages,
		max:     maxImages,
		intn:    rand.Intn,
	}
}

var _ media.Resolver = (*PicsumResolver)(nil)

func (p *PicsumResolver) GetStoryImages(ctx context.Context, userID int) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	count := p.min + p.intn(p.max-p.min+1)
	urls := make([]string, 0, count)
	for i := 0; i < count; i++ {
		urls = append(urls, p.imageURL(userID, i))
	}
	return urls, nil
}

// imageURL is stable for a given (user, index) pair.
func (p *PicsumResolver) imageURL(userID, index int) string {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d_%d", userID, index)))
	return p.baseURL + "?random=" + strconv.FormatUint(h.Sum64(), 10)
}
