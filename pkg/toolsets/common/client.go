package common

import (
	"github.com/futuretea/rancher-api-mcp-server/pkg/client/rancher"
)

// ValidateRancherClient validates and returns a configured Rancher client
func ValidateRancherClient(client interface{}) (*rancher.Client, error) {
	rancherClient, ok := client.(*rancher.Client)
	if !ok || rancherClient == nil {
		return nil, ErrRancherNotConfigured
	}
	return rancherClient, nil
}
