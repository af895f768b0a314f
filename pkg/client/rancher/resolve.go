package rancher

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrClusterNotFound is returned when a cluster name matches nothing after a
// full walk of the cluster listing.
var ErrClusterNotFound = errors.New("cluster not found")

// IsClusterID reports whether the input already looks like a Rancher cluster
// ID rather than a display name. Anything containing ':' or prefixed "c-" is
// treated as an ID and never resolved by name; a display name containing a
// colon is therefore misclassified. Kept for compatibility with existing
// callers.
func IsClusterID(nameOrID string) bool {
	return strings.Contains(nameOrID, ":") || strings.HasPrefix(nameOrID, "c-")
}

// ResolveClusterID accepts either a cluster ID or a human-readable cluster
// name and returns the cluster ID. IDs are returned verbatim without a
// network call; names are matched against name and displayName across the
// paged cluster listing, first match wins.
func (c *Client) ResolveClusterID(ctx context.Context, nameOrID string) (string, error) {
	if IsClusterID(nameOrID) {
		return nameOrID, nil
	}

	var resolved string
	err := c.ListAll(ctx, "/v3/clusters", func(item json.RawMessage) error {
		var cluster Cluster
		if err := json.Unmarshal(item, &cluster); err != nil {
			return fmt.Errorf("failed to decode cluster record: %w", err)
		}
		if (cluster.Name == nameOrID || cluster.DisplayName == nameOrID) && cluster.ID != "" {
			resolved = cluster.ID
			return ErrStopIteration
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("failed to resolve cluster '%s': %w", nameOrID, err)
	}

	if resolved == "" {
		return "", fmt.Errorf("%w: '%s' (use cluster_list to get available cluster IDs)", ErrClusterNotFound, nameOrID)
	}
	return resolved, nil
}
