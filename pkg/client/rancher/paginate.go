package rancher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// defaultPageSize is the limit requested on the first page of a collection
// walk. Next links carry their own paging parameters.
const defaultPageSize = 100

// ErrStopIteration ends a collection walk early without error.
var ErrStopIteration = errors.New("stop iteration")

// ListAll walks every page of a v3 collection path (e.g. "/v3/clusters"),
// invoking fn for each item in response order. Items are handed over page by
// page and never buffered across pages; each call starts a fresh walk.
// Returning ErrStopIteration from fn stops the walk; any other error aborts
// it and is returned to the caller.
func (c *Client) ListAll(ctx context.Context, path string, fn func(item json.RawMessage) error) error {
	pageURL := c.absoluteURL(path)
	sep := "?"
	if strings.Contains(pageURL, "?") {
		sep = "&"
	}
	pageURL += sep + "limit=" + strconv.Itoa(defaultPageSize)

	for {
		var page Collection
		if err := c.getJSON(ctx, pageURL, &page); err != nil {
			return err
		}

		for _, item := range page.Data {
			if err := fn(item); err != nil {
				if errors.Is(err, ErrStopIteration) {
					return nil
				}
				return err
			}
		}

		next := page.Links["next"]
		if next == "" {
			return nil
		}
		pageURL = next
	}
}

// ListClusters walks /v3/clusters and returns every cluster record.
func (c *Client) ListClusters(ctx context.Context) ([]Cluster, error) {
	var clusters []Cluster
	err := c.ListAll(ctx, "/v3/clusters", func(item json.RawMessage) error {
		var cluster Cluster
		if err := json.Unmarshal(item, &cluster); err != nil {
			return fmt.Errorf("failed to decode cluster record: %w", err)
		}
		clusters = append(clusters, cluster)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list clusters: %w", err)
	}
	return clusters, nil
}
