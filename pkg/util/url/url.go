// Package url provides URL normalization utilities for Rancher API endpoints.
package url

import "strings"

// NormalizeRancherURL handles the URL formats users commonly paste:
// - "https://rancher.example.com/" -> strips the trailing slash
// - "https://rancher.example.com/v3" -> strips /v3
// - "https://rancher.example.com" -> uses as-is
func NormalizeRancherURL(url string) string {
	url = strings.TrimRight(url, "/")
	return strings.TrimSuffix(url, "/v3")
}

// GetNormanURL returns URL with /v3 for the Norman (management) API
func GetNormanURL(baseURL string) string {
	return NormalizeRancherURL(baseURL) + "/v3"
}

// GetClusterProxyURL returns the Kubernetes API proxy root for a cluster
func GetClusterProxyURL(baseURL string, clusterID string) string {
	return NormalizeRancherURL(baseURL) + "/k8s/clusters/" + clusterID
}
