package rancher

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"

	"github.com/futuretea/rancher-api-mcp-server/pkg/client/rancher"
	"github.com/futuretea/rancher-api-mcp-server/pkg/config"
	"github.com/futuretea/rancher-api-mcp-server/pkg/toolsets/common"
)

// fakeRancher serves a three-page cluster listing and a namespaced pod
// listing for cluster c-abc12, rejecting requests without the expected
// bearer token.
func fakeRancher(t *testing.T) *httptest.Server {
	t.Helper()

	var server *httptest.Server
	server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok123" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		switch {
		case r.URL.Path == "/v3/clusters":
			switch r.URL.Query().Get("page") {
			case "", "1":
				fmt.Fprintf(w, `{
					"data": [{"id": "c-abc12", "name": "prod", "displayName": "Production", "state": "active",
						"rancherKubernetesEngineConfig": {"kubernetesVersion": "v1.28.9-rancher1-1"}}],
					"links": {"next": "%s/v3/clusters?page=2"}
				}`, server.URL)
			case "2":
				fmt.Fprintf(w, `{
					"data": [{"id": "c-def34", "name": "staging", "state": "active"}],
					"links": {"next": "%s/v3/clusters?page=3"}
				}`, server.URL)
			case "3":
				fmt.Fprint(w, `{"data": [{"id": "local", "name": "local", "state": "active"}], "links": {}}`)
			default:
				http.NotFound(w, r)
			}
		case r.URL.Path == "/k8s/clusters/c-abc12/api/v1/namespaces/default/pods":
			fmt.Fprint(w, `{
				"items": [
					{
						"metadata": {"name": "web-0", "namespace": "default", "creationTimestamp": "2024-05-01T12:00:00Z"},
						"status": {
							"phase": "Running",
							"containerStatuses": [
								{"name": "web", "ready": true},
								{"name": "cache", "ready": true},
								{"name": "sidecar", "ready": false}
							]
						}
					},
					{
						"metadata": {"name": "job-1", "namespace": "default"},
						"status": {"phase": "Pending"}
					}
				]
			}`)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	return server
}

func fakeClient(t *testing.T, baseURL string) *rancher.Client {
	t.Helper()

	client, err := rancher.NewClient(&config.StaticConfig{
		RancherServerURL: baseURL,
		RancherToken:     "tok123",
		HTTPTimeout:      15,
		MaxRetries:       3,
	})
	require.NoError(t, err)
	t.Cleanup(client.Close)

	return client
}

func TestClusterListHandler(t *testing.T) {
	server := fakeRancher(t)
	client := fakeClient(t, server.URL)

	result, err := clusterListHandler(client, map[string]interface{}{"format": "json"})
	require.NoError(t, err)

	var rows []map[string]string
	require.NoError(t, json.Unmarshal([]byte(result), &rows))
	require.Len(t, rows, 3)

	assert.Equal(t, map[string]string{
		"id":                "c-abc12",
		"name":              "prod",
		"displayName":       "Production",
		"state":             "active",
		"kubernetesVersion": "v1.28.9-rancher1-1",
	}, rows[0])

	// Missing remote fields surface empty rather than failing
	assert.Equal(t, "", rows[1]["displayName"])
	assert.Equal(t, "", rows[1]["kubernetesVersion"])
	assert.Equal(t, "local", rows[2]["id"])
}

func TestClusterListHandlerTableFormat(t *testing.T) {
	server := fakeRancher(t)
	client := fakeClient(t, server.URL)

	result, err := clusterListHandler(client, map[string]interface{}{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(result, "\n"), "\n")
	require.Len(t, lines, 4) // header + 3 clusters
	assert.Contains(t, lines[1], "c-abc12")
}

func TestClusterListHandlerInvalidFormat(t *testing.T) {
	server := fakeRancher(t)
	client := fakeClient(t, server.URL)

	_, err := clusterListHandler(client, map[string]interface{}{"format": "xml"})
	assert.ErrorIs(t, err, common.ErrInvalidFormat)
}

func TestPodListHandler(t *testing.T) {
	server := fakeRancher(t)
	client := fakeClient(t, server.URL)

	// "prod" resolves to c-abc12 before the proxy fetch
	result, err := podListHandler(client, map[string]interface{}{
		"cluster":   "prod",
		"namespace": "default",
		"format":    "json",
	})
	require.NoError(t, err)

	var rows []map[string]string
	require.NoError(t, json.Unmarshal([]byte(result), &rows))
	require.Len(t, rows, 2)

	assert.Equal(t, map[string]string{
		"name":      "web-0",
		"namespace": "default",
		"ready":     "2/3",
		"status":    "Running",
		"age":       "2024-05-01T12:00:00Z",
	}, rows[0])

	assert.Equal(t, "0/0", rows[1]["ready"])
	assert.Equal(t, "", rows[1]["age"])
}

func TestPodListHandlerMissingCluster(t *testing.T) {
	server := fakeRancher(t)
	client := fakeClient(t, server.URL)

	_, err := podListHandler(client, map[string]interface{}{})
	assert.ErrorIs(t, err, common.ErrMissingParameter)
}

func TestPodListHandlerUnknownCluster(t *testing.T) {
	server := fakeRancher(t)
	client := fakeClient(t, server.URL)

	_, err := podListHandler(client, map[string]interface{}{"cluster": "nonexistent"})
	require.Error(t, err)
	assert.ErrorIs(t, err, rancher.ErrClusterNotFound)
	assert.Contains(t, err.Error(), "nonexistent")
}

func TestPodListHandlerPropagatesFetchErrors(t *testing.T) {
	server := fakeRancher(t)
	client := fakeClient(t, server.URL)

	// c-zzz99 has no pod endpoint on the fake server; the failure must
	// surface instead of an empty listing.
	_, err := podListHandler(client, map[string]interface{}{
		"cluster":   "c-zzz99",
		"namespace": "default",
	})
	require.Error(t, err)

	var apiErr *rancher.APIError
	assert.True(t, errors.As(err, &apiErr))
}

func TestHandlersRequireClient(t *testing.T) {
	if _, err := clusterListHandler(nil, map[string]interface{}{}); !errors.Is(err, common.ErrRancherNotConfigured) {
		t.Errorf("clusterListHandler without client: expected ErrRancherNotConfigured, got %v", err)
	}

	if _, err := podListHandler(nil, map[string]interface{}{"cluster": "prod"}); !errors.Is(err, common.ErrRancherNotConfigured) {
		t.Errorf("podListHandler without client: expected ErrRancherNotConfigured, got %v", err)
	}
}

func TestReadyRatio(t *testing.T) {
	tests := []struct {
		name     string
		statuses []corev1.ContainerStatus
		want     string
	}{
		{
			name: "two of three ready",
			statuses: []corev1.ContainerStatus{
				{Ready: true},
				{Ready: true},
				{Ready: false},
			},
			want: "2/3",
		},
		{
			name:     "no statuses",
			statuses: nil,
			want:     "0/0",
		},
		{
			name: "all ready",
			statuses: []corev1.ContainerStatus{
				{Ready: true},
			},
			want: "1/1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := readyRatio(tt.statuses); got != tt.want {
				t.Errorf("readyRatio() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestToolsetDefinitions(t *testing.T) {
	toolset := &Toolset{}

	if toolset.GetName() != "rancher" {
		t.Errorf("expected toolset name 'rancher', got %q", toolset.GetName())
	}

	tools := toolset.GetTools(nil)
	require.Len(t, tools, 2)

	names := make(map[string]bool)
	for _, tool := range tools {
		names[tool.Tool.Name] = true
		if tool.Annotations.ReadOnlyHint == nil || !*tool.Annotations.ReadOnlyHint {
			t.Errorf("tool %s should be marked read-only", tool.Tool.Name)
		}
		if tool.Handler == nil {
			t.Errorf("tool %s has no handler", tool.Tool.Name)
		}
	}

	if !names["cluster_list"] || !names["pod_list"] {
		t.Errorf("expected cluster_list and pod_list tools, got %v", names)
	}
}
