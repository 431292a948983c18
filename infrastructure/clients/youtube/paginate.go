package youtube

import (
	"context"
	"fmt"
)

// maxPages is a hard stop against an API that never returns a terminating
// page token.
const maxPages = 1000

// page is one fetch of a paginated listing. totalResults is the API's hint
// of the overall result count; zero means no hint.
type page[T any] struct {
	items         []T
	nextPageToken string
	totalResults  int64
}

// fetchAllPages walks a paginated listing until exhaustion: it keeps
// requesting with the continuation token until no token is returned or the
// accumulated item count reaches the total-results hint, whichever comes
// first. Any page error aborts the whole aggregation.
func fetchAllPages[T any](ctx context.Context, fetch func(ctx context.Context, pageToken string) (page[T], error)) ([]T, error) {
	all := make([]T, 0)
	token := ""
	for i := 0; i < maxPages; i++ {
		p, err := fetch(ctx, token)
		if err != nil {
			return nil, err
		}
		all = append(all, p.items...)
		if p.totalResults > 0 && int64(len(all)) >= p.totalResults {
			return all, nil
		}
		if p.nextPageToken == "" {
			return all, nil
		}
		token = p.nextPageToken
	}
	return nil, fmt.Errorf("pagination did not terminate within %d pages", maxPages)
}

// chunkIDs splits an id list into chunks no larger than size, for batched
// by-id lookups against the API's page-size limit.
func chunkIDs(ids []string, size int) [][]string {
	if size <= 0 || len(ids) == 0 {
		return nil
	}
	chunks := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
