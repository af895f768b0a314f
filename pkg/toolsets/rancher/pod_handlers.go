package rancher

import (
	"context"
	"fmt"
	"time"

	corev1 "k8s.io/api/core/v1"

	"github.com/futuretea/rancher-api-mcp-server/pkg/toolsets/common"
)

var podListHeaders = []string{"name", "namespace", "ready", "status", "age"}

// podListHandler handles the pod_list tool
func podListHandler(client interface{}, params map[string]interface{}) (string, error) {
	rancherClient, err := common.ValidateRancherClient(client)
	if err != nil {
		return "", err
	}

	cluster, err := common.ExtractRequiredString(params, common.ParamCluster)
	if err != nil {
		return "", err
	}
	namespace := common.ExtractOptionalString(params, common.ParamNamespace, "")

	format := common.ExtractFormat(params)
	if err := common.ValidateFormat(format); err != nil {
		return "", err
	}

	podList, err := rancherClient.ListPods(context.Background(), cluster, namespace)
	if err != nil {
		return "", fmt.Errorf("failed to list pods: %w", err)
	}

	rows := make([]map[string]string, len(podList.Items))
	for i, pod := range podList.Items {
		rows[i] = projectPod(pod)
	}

	return common.FormatList(rows, podListHeaders, format)
}

// projectPod reduces a pod to the fields the tool reports, matching the
// shape of kubectl get pods output.
func projectPod(pod corev1.Pod) map[string]string {
	return map[string]string{
		"name":      pod.Name,
		"namespace": pod.Namespace,
		"ready":     readyRatio(pod.Status.ContainerStatuses),
		"status":    string(pod.Status.Phase),
		"age":       formatCreationTimestamp(pod),
	}
}

// readyRatio renders "ready/total" over the pod's container statuses.
// A pod with no status data yields "0/0".
func readyRatio(statuses []corev1.ContainerStatus) string {
	ready := 0
	for _, status := range statuses {
		if status.Ready {
			ready++
		}
	}
	return fmt.Sprintf("%d/%d", ready, len(statuses))
}

func formatCreationTimestamp(pod corev1.Pod) string {
	if pod.CreationTimestamp.IsZero() {
		return ""
	}
	return pod.CreationTimestamp.UTC().Format(time.RFC3339)
}
