// Package rancher provides the cluster-inspection toolset.
// It implements MCP tools for read-only Rancher operations:
//   - Clusters (list)
//   - Pods (list, cluster-wide or per namespace, via the Kubernetes proxy)
//
// Cluster references accept either a Rancher cluster ID or a display name;
// names are resolved against the paged cluster listing.
//
// All tools support multiple output formats (JSON, YAML, table) and
// are read-only operations.
package rancher
