package jservice

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"jeopardy/internal/domain"

	"go.uber.org/zap"
)

// CategoryClient implements repository.CategorySource over the jService API
type CategoryClient struct {
	baseURL       string
	maxCategoryID int
	minClues      int
	httpClient    *http.Client
	intn          func(n int) int
	logger        *zap.Logger
}

// Option configures a CategoryClient
type Option func(*CategoryClient)

// WithRandom replaces the identifier sampler, mostly for tests
func WithRandom(intn func(n int) int) Option {
	return func(cc *CategoryClient) { cc.intn = intn }
}

// NewCategoryClient creates a client for the API at baseURL.
// Identifiers are drawn from [0, maxCategoryID); categories with fewer than
// minClues clues are logged but still returned.
func NewCategoryClient(baseURL string, maxCategoryID, minClues int, logger *zap.Logger, opts ...Option) *CategoryClient {
	c := &CategoryClient{
		baseURL:       strings.TrimRight(baseURL, "/"),
		maxCategoryID: maxCategoryID,
		minClues:      minClues,
		httpClient:    &http.Client{},
		intn:          rand.Intn,
		logger:        logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SelectCategoryIdentifiers samples count identifiers uniformly with replacement.
// Duplicates are possible and kept.
func (c *CategoryClient) SelectCategoryIdentifiers(count int) []int {
	ids := make([]int, 0, count)
	for i := 0; i < count; i++ {
		ids = append(ids, c.intn(c.maxCategoryID))
	}
	c.logger.Debug("Selected category identifiers", zap.Ints("ids", ids))
	return ids
}

// categoryResponse uses pointers so absent fields can be told apart from empty ones
type categoryResponse struct {
	Title *string         `json:"title"`
	Clues *[]clueResponse `json:"clues"`
}

type clueResponse struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// FetchCategory loads a category by identifier
func (c *CategoryClient) FetchCategory(ctx context.Context, id int) (*domain.Category, error) {
	u := c.baseURL + "/category?" + url.Values{"id": {strconv.Itoa(id)}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, &domain.FetchError{CategoryID: id, Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &domain.FetchError{CategoryID: id, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &domain.FetchError{CategoryID: id, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var body categoryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, &domain.FetchError{CategoryID: id, Err: fmt.Errorf("decode response: %w", err)}
	}
	if body.Title == nil {
		return nil, &domain.FetchError{CategoryID: id, Err: fmt.Errorf("response has no title")}
	}
	if body.Clues == nil {
		return nil, &domain.FetchError{CategoryID: id, Err: fmt.Errorf("response has no clues")}
	}

	clues := *body.Clues
	if len(clues) < c.minClues {
		c.logger.Warn("Category has fewer clues than board rows",
			zap.Int("category_id", id),
			zap.Int("clues", len(clues)),
			zap.Int("expected", c.minClues),
		)
	}

	pairs := make([]domain.ClueData, 0, len(clues))
	for _, cl := range clues {
		pairs = append(pairs, domain.ClueData{Question: cl.Question, Answer: cl.Answer})
	}

	return domain.NewCategory(id, *body.Title, pairs), nil
}
