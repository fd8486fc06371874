package shopify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"sync"
	"time"

	"github.com/profitlens/backend/internal/domain/profit"
)

// maxResponseSize is the maximum allowed response size from the Admin API (10MB)
const maxResponseSize = 10 * 1024 * 1024

// ordersPageLimit is the Admin API maximum page size
const ordersPageLimit = 250

// linkNextPattern extracts the next-page URL from the Link response header
var linkNextPattern = regexp.MustCompile(`<([^>]+)>;\s*rel="next"`)

// Adapter implements profit.OrderSource against the Shopify Admin API.
// Access tokens are held per shop; in production they are loaded from the
// app installation records.
type Adapter struct {
	config     *Config
	httpClient *http.Client

	tokens map[string]string
	mu     sync.RWMutex // protects tokens map
}

// NewAdapter creates a new Shopify adapter with the given configuration
func NewAdapter(config *Config) (*Adapter, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &Adapter{
		config: config,
		httpClient: &http.Client{
			Timeout: time.Duration(config.TimeoutSeconds) * time.Second,
		},
		tokens: make(map[string]string),
	}, nil
}

// SetShopToken sets the Admin API access token for a shop
func (a *Adapter) SetShopToken(shop, token string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tokens[shop] = token
}

func (a *Adapter) shopToken(shop string) (string, error) {
	a.mu.RLock()
	token, ok := a.tokens[shop]
	a.mu.RUnlock()
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrShopNotConfigured, shop)
	}
	return token, nil
}

// FetchOrdersForDate retrieves the shop's paid orders created on the given
// UTC calendar date, following pagination until the day is exhausted
func (a *Adapter) FetchOrdersForDate(ctx context.Context, shop, date string) ([]profit.Order, error) {
	token, err := a.shopToken(shop)
	if err != nil {
		return nil, err
	}

	requestURL, err := a.ordersURL(shop, date)
	if err != nil {
		return nil, err
	}

	var orders []profit.Order
	for requestURL != "" {
		page, next, err := a.fetchPage(ctx, requestURL, token)
		if err != nil {
			return nil, err
		}
		for i := range page.Orders {
			orders = append(orders, page.Orders[i].toDomain())
		}
		requestURL = next
	}

	return orders, nil
}

func (a *Adapter) ordersURL(shop, date string) (string, error) {
	base := a.config.APIBaseURL
	if base == "" {
		base = "https://" + shop
	}

	u, err := url.Parse(fmt.Sprintf("%s/admin/api/%s/orders.json", base, a.config.APIVersion))
	if err != nil {
		return "", fmt.Errorf("shopify: invalid base url: %w", err)
	}

	q := u.Query()
	q.Set("status", "any")
	q.Set("financial_status", "paid")
	q.Set("created_at_min", date+"T00:00:00Z")
	q.Set("created_at_max", date+"T23:59:59Z")
	q.Set("limit", fmt.Sprintf("%d", ordersPageLimit))
	u.RawQuery = q.Encode()

	return u.String(), nil
}

// fetchPage requests one page of orders and returns the parsed payload plus
// the next-page URL from the Link header, if any
func (a *Adapter) fetchPage(ctx context.Context, requestURL, token string) (*orderListResponse, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("shopify: build request: %w", err)
	}
	req.Header.Set("X-Shopify-Access-Token", token)
	req.Header.Set("Accept", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("shopify: request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, "", fmt.Errorf("shopify: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("shopify: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var page orderListResponse
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, "", fmt.Errorf("shopify: decode response: %w", err)
	}

	return &page, nextPageURL(resp.Header.Get("Link")), nil
}

// nextPageURL parses the cursor-pagination Link header and returns the URL
// marked rel="next", or empty when this was the last page
func nextPageURL(linkHeader string) string {
	if linkHeader == "" {
		return ""
	}
	matches := linkNextPattern.FindStringSubmatch(linkHeader)
	if len(matches) < 2 {
		return ""
	}
	return matches[1]
}

var _ profit.OrderSource = (*Adapter)(nil)
