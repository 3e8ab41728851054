package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/SergeyBogomolovv/order-coordinator/internal/config"
	"github.com/SergeyBogomolovv/order-coordinator/internal/entities"
	"github.com/SergeyBogomolovv/order-coordinator/pkg/tracing"
	"github.com/SergeyBogomolovv/order-coordinator/pkg/utils"

	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/singleflight"
)

type MenuCache interface {
	Get(restaurantID string) (entities.Menu, bool)
	Set(restaurantID string, menu entities.Menu)
}

// Client is a read-only client of the restaurant catalog service.
// It never retries: failures are reported as ErrCatalogUnavailable and the caller decides.
type Client struct {
	logger  *slog.Logger
	http    *http.Client
	baseURL string

	menus MenuCache
	group singleflight.Group
}

func NewClient(logger *slog.Logger, cfg config.Catalog, menus MenuCache) *Client {
	return &Client{
		logger: logger.With(slog.String("client", "catalog")),
		http: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: tracing.Transport(http.DefaultTransport),
		},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		menus:   menus,
	}
}

type restaurantResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type menuResponse struct {
	Categories []struct {
		Name  string              `json:"name"`
		Items []entities.MenuItem `json:"items"`
	} `json:"categories"`
}

func (c *Client) GetRestaurant(ctx context.Context, restaurantID string) (entities.Restaurant, error) {
	ctx, span := tracing.Start(ctx, "catalog.GetRestaurant", attribute.String("restaurant.id", restaurantID))

	var res restaurantResponse
	status, err := utils.DoJSON(ctx, c.http, http.MethodGet, c.url("restaurants", restaurantID), nil, &res)
	err = classify(status, err, entities.ErrRestaurantNotFound)
	tracing.End(span, err)
	if err != nil {
		return entities.Restaurant{}, err
	}

	return entities.Restaurant{ID: res.ID, Name: res.Name}, nil
}

// GetMenu returns the restaurant's menu. A restaurant without a menu yields an empty menu.
// Concurrent requests for the same restaurant share one downstream call, and a caller that
// gives up does not fail the others.
func (c *Client) GetMenu(ctx context.Context, restaurantID string) (entities.Menu, error) {
	if menu, ok := c.menus.Get(restaurantID); ok {
		return menu, nil
	}

	// the shared fetch outlives any single caller; the client timeout still bounds it
	ch := c.group.DoChan(restaurantID, func() (any, error) {
		return c.fetchMenu(context.WithoutCancel(ctx), restaurantID)
	})

	select {
	case <-ctx.Done():
		return entities.Menu{}, fmt.Errorf("%w: %w", entities.ErrCatalogUnavailable, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return entities.Menu{}, res.Err
		}
		return res.Val.(entities.Menu), nil
	}
}

func (c *Client) fetchMenu(ctx context.Context, restaurantID string) (entities.Menu, error) {
	ctx, span := tracing.Start(ctx, "catalog.GetMenu", attribute.String("restaurant.id", restaurantID))

	var res menuResponse
	status, err := utils.DoJSON(ctx, c.http, http.MethodGet, c.url("restaurants", restaurantID, "menu"), nil, &res)
	if status == http.StatusNotFound {
		span.End()
		return entities.Menu{RestaurantID: restaurantID}, nil
	}
	err = classify(status, err, nil)
	tracing.End(span, err)
	if err != nil {
		return entities.Menu{}, err
	}

	menu := entities.Menu{
		RestaurantID: restaurantID,
		Categories:   make([]entities.MenuCategory, 0, len(res.Categories)),
	}
	for _, cat := range res.Categories {
		menu.Categories = append(menu.Categories, entities.MenuCategory{Name: cat.Name, Items: cat.Items})
	}

	c.menus.Set(restaurantID, menu)
	c.logger.DebugContext(ctx, "menu fetched", slog.String("restaurant_id", restaurantID), slog.Int("items", menu.Len()))
	return menu, nil
}

func (c *Client) url(parts ...string) string {
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = url.PathEscape(p)
	}
	return c.baseURL + "/" + strings.Join(escaped, "/")
}

// classify turns a transport result into a domain error. notFound, when set, is returned for 404.
func classify(status int, err error, notFound error) error {
	switch {
	case err != nil:
		return fmt.Errorf("%w: %w", entities.ErrCatalogUnavailable, err)
	case status == http.StatusNotFound && notFound != nil:
		return notFound
	case status < 200 || status > 299:
		return fmt.Errorf("%w: unexpected status %d", entities.ErrCatalogUnavailable, status)
	}
	return nil
}
