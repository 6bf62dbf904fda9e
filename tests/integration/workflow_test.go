package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// openIntakeAllDay widens the intake window so the test is independent of
// the wall clock it runs at.
func openIntakeAllDay(t *testing.T) {
	doRequest(t, http.MethodPut, "/api/admin/settings/restriction", adminToken, map[string]interface{}{
		"start_time": "00:00:00",
		"end_time":   "23:59:59",
		"available_days": []string{
			"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
		},
		"announcement": "integration window",
	}, http.StatusOK)
}

func TestRequestLifecycle(t *testing.T) {
	openIntakeAllDay(t)

	// Intake: a paid request starts PENDING.
	w := doRequest(t, http.MethodPost, "/api/requests", "", map[string]interface{}{
		"requester_id":   "requester-7",
		"full_name":      "Dana Cruz",
		"contact_number": "+10000000007",
		"documents": []map[string]interface{}{
			{"doc_id": "doc-cert", "quantity": 2},
			{"doc_id": "doc-transcript"},
		},
		"admin_fee":      25,
		"payment_status": true,
	}, http.StatusCreated)

	var created struct {
		TrackingNumber string  `json:"tracking_number"`
		TotalCost      float64 `json:"total_cost"`
		Status         string  `json:"status"`
	}
	decode(t, w, &created)
	require.NotEmpty(t, created.TrackingNumber)
	require.Equal(t, float64(245), created.TotalCost)
	require.Equal(t, "PENDING", created.Status)

	tracking := created.TrackingNumber

	// Auto-assign picks it up; admin1 sorts first by email.
	w = doRequest(t, http.MethodPost, "/api/admin/assignments/auto", adminToken,
		map[string]interface{}{"count": 5}, http.StatusOK)
	var assigned struct {
		Assigned int `json:"assigned"`
	}
	decode(t, w, &assigned)
	require.Equal(t, 1, assigned.Assigned)

	w = doRequest(t, http.MethodGet, "/api/admin/my-requests", adminToken, nil, http.StatusOK)
	require.Contains(t, w.Body.String(), tracking)

	// Work it through the pipeline.
	doRequest(t, http.MethodPut, "/api/admin/requests/"+tracking+"/status", adminToken,
		map[string]string{"status": "IN-PROGRESS"}, http.StatusOK)

	// Reject with two deficiencies.
	doRequest(t, http.MethodPost, "/api/admin/requests/"+tracking+"/reject", adminToken,
		map[string]interface{}{
			"changes": []map[string]string{
				{"requirement_id": "req-id-photo", "remarks": "photo is blurry"},
				{"requirement_id": "req-clearance", "remarks": "form unsigned"},
			},
		}, http.StatusOK)

	// A rejected request cannot be moved by a plain status update.
	doRequest(t, http.MethodPut, "/api/admin/requests/"+tracking+"/status", adminToken,
		map[string]string{"status": "IN-PROGRESS"}, http.StatusBadRequest)

	w = doRequest(t, http.MethodGet, "/api/admin/requests/"+tracking+"/changes", adminToken, nil, http.StatusOK)
	var changes []struct {
		ChangeID string `json:"change_id"`
		Status   string `json:"status"`
	}
	decode(t, w, &changes)
	require.Len(t, changes, 2)

	// First remediation upload: still rejected.
	w = doUpload(t, fmt.Sprintf("/api/tracking/%s/changes/%s", tracking, changes[0].ChangeID),
		userToken, "photo.jpg", []byte("fake image"), http.StatusOK)
	var remediation struct {
		Reinstated bool `json:"reinstated"`
	}
	decode(t, w, &remediation)
	require.False(t, remediation.Reinstated)

	// Re-uploading the same change conflicts.
	doUpload(t, fmt.Sprintf("/api/tracking/%s/changes/%s", tracking, changes[0].ChangeID),
		userToken, "photo2.jpg", []byte("fake image"), http.StatusConflict)

	// Second upload completes the set and reinstates to PENDING.
	w = doUpload(t, fmt.Sprintf("/api/tracking/%s/changes/%s", tracking, changes[1].ChangeID),
		userToken, "clearance.pdf", []byte("fake pdf"), http.StatusOK)
	decode(t, w, &remediation)
	require.True(t, remediation.Reinstated)

	w = doRequest(t, http.MethodPost, "/api/tracking", "", map[string]string{
		"tracking_number": tracking,
		"requester_id":    "requester-7",
	}, http.StatusOK)
	require.Contains(t, w.Body.String(), `"status":"PENDING"`)

	// Finish the pipeline; a repeated RELEASED update is a harmless no-op.
	doRequest(t, http.MethodPut, "/api/admin/requests/"+tracking+"/status", adminToken,
		map[string]string{"status": "IN-PROGRESS"}, http.StatusOK)
	doRequest(t, http.MethodPut, "/api/admin/requests/"+tracking+"/status", adminToken,
		map[string]string{"status": "DOC-READY"}, http.StatusOK)
	doRequest(t, http.MethodPut, "/api/admin/requests/"+tracking+"/status", adminToken,
		map[string]string{"status": "RELEASED"}, http.StatusOK)
	doRequest(t, http.MethodPut, "/api/admin/requests/"+tracking+"/status", adminToken,
		map[string]string{"status": "RELEASED"}, http.StatusOK)

	// Unassigning from the wrong admin removes nothing.
	doRequest(t, http.MethodPost, "/api/admin/assignments/unassign", adminToken,
		map[string]string{"request_id": tracking, "admin_id": "admin2@example.com"}, http.StatusNotFound)

	// Progress counts the released request as completed.
	w = doRequest(t, http.MethodGet, "/api/admin/progress", adminToken, nil, http.StatusOK)
	require.Contains(t, w.Body.String(), `"completed":1`)
}

func TestIntakeWindowBlocksRequests(t *testing.T) {
	// Shrink the window to a single impossible second.
	doRequest(t, http.MethodPut, "/api/admin/settings/restriction", adminToken, map[string]interface{}{
		"start_time":     "00:00:00",
		"end_time":       "00:00:00",
		"available_days": []string{"Monday"},
	}, http.StatusOK)
	defer openIntakeAllDay(t)

	doRequest(t, http.MethodPost, "/api/requests", "", map[string]interface{}{
		"requester_id": "requester-8",
		"full_name":    "Evan Reyes",
		"documents":    []map[string]interface{}{{"doc_id": "doc-cert"}},
	}, http.StatusForbidden)

	w := doRequest(t, http.MethodGet, "/api/intake/status", "", nil, http.StatusOK)
	require.Contains(t, w.Body.String(), `"allowed":false`)
}

func TestCapacitySettings(t *testing.T) {
	doRequest(t, http.MethodPut, "/api/admin/settings/max-requests", adminToken,
		map[string]int{"max_requests": 3}, http.StatusOK)

	w := doRequest(t, http.MethodGet, "/api/admin/settings/max-requests", adminToken, nil, http.StatusOK)
	require.Contains(t, w.Body.String(), `"max_requests":3`)

	doRequest(t, http.MethodPut, "/api/admin/admins/admin2@example.com/max-requests", adminToken,
		map[string]int{"max_requests": 1}, http.StatusOK)

	w = doRequest(t, http.MethodGet, "/api/admin/admins/admin2@example.com/max-requests", adminToken, nil, http.StatusOK)
	require.Contains(t, w.Body.String(), `"max_requests":1`)
}
