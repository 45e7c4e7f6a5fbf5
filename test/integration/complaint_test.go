package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"smartcity-server/internal/model"
)

func TestComplaintLifecycle(t *testing.T) {
	e := newEnv(t)
	mariaToken := e.login(t, e.maria.Email).AccessToken
	jorgeToken := e.login(t, e.jorge.Email).AccessToken
	adminToken := e.login(t, e.admin.Email).AccessToken

	status, resp := e.do(t, http.MethodPost, "/api/v1/citizen/complaints", mariaToken, model.CreateComplaintRequest{
		ComplaintType: "POTHOLE",
		Description:   "large pothole on 5th avenue",
		Address:       "5th Avenue 123",
	})
	require.Equal(t, http.StatusCreated, status)
	created := decodeData[model.Complaint](t, resp)
	require.Equal(t, e.maria.ID, created.UserID)
	require.Equal(t, model.ComplaintPending, created.Status)

	path := fmt.Sprintf("/api/v1/citizen/complaints/%d", created.ID)

	t.Run("owner reads it back", func(t *testing.T) {
		status, resp := e.do(t, http.MethodGet, path, mariaToken, nil)
		require.Equal(t, http.StatusOK, status)
		got := decodeData[model.Complaint](t, resp)
		require.Equal(t, created.ID, got.ID)
	})

	t.Run("another citizen gets 403", func(t *testing.T) {
		status, resp := e.do(t, http.MethodGet, path, jorgeToken, nil)
		require.Equal(t, http.StatusForbidden, status)
		require.Equal(t, "FORBIDDEN", resp.Error.Code)
	})

	t.Run("admin reads it through the admin surface", func(t *testing.T) {
		status, resp := e.do(t, http.MethodGet, fmt.Sprintf("/api/v1/admin/complaints/%d", created.ID), adminToken, nil)
		require.Equal(t, http.StatusOK, status)
		got := decodeData[model.Complaint](t, resp)
		require.Equal(t, created.ID, got.ID)
	})

	t.Run("owner updates the description", func(t *testing.T) {
		status, resp := e.do(t, http.MethodPut, path, mariaToken, model.UpdateComplaintRequest{
			Description: "pothole repaired halfway, still dangerous",
		})
		require.Equal(t, http.StatusOK, status)
		got := decodeData[model.Complaint](t, resp)
		require.Equal(t, "pothole repaired halfway, still dangerous", got.Description)
	})

	t.Run("admin moves the status", func(t *testing.T) {
		status, resp := e.do(t, http.MethodPatch, fmt.Sprintf("/api/v1/admin/complaints/%d", created.ID), adminToken, model.ChangeComplaintStatusRequest{
			Status: model.ComplaintInProgress,
		})
		require.Equal(t, http.StatusOK, status)
		got := decodeData[model.Complaint](t, resp)
		require.Equal(t, model.ComplaintInProgress, got.Status)
	})

	t.Run("unknown id is 404", func(t *testing.T) {
		status, _ := e.do(t, http.MethodGet, "/api/v1/citizen/complaints/9999", mariaToken, nil)
		require.Equal(t, http.StatusNotFound, status)
	})

	t.Run("non numeric id is 400", func(t *testing.T) {
		status, _ := e.do(t, http.MethodGet, "/api/v1/citizen/complaints/abc", mariaToken, nil)
		require.Equal(t, http.StatusBadRequest, status)
	})
}

func TestComplaintListScoping(t *testing.T) {
	e := newEnv(t)
	mariaToken := e.login(t, e.maria.Email).AccessToken
	jorgeToken := e.login(t, e.jorge.Email).AccessToken
	adminToken := e.login(t, e.admin.Email).AccessToken

	for _, body := range []model.CreateComplaintRequest{
		{ComplaintType: "NOISE", Description: "construction at night"},
		{ComplaintType: "TRASH", Description: "missed pickup"},
	} {
		status, _ := e.do(t, http.MethodPost, "/api/v1/citizen/complaints", mariaToken, body)
		require.Equal(t, http.StatusCreated, status)
	}
	status, _ := e.do(t, http.MethodPost, "/api/v1/citizen/complaints", jorgeToken, model.CreateComplaintRequest{
		ComplaintType: "LIGHTING", Description: "streetlight out",
	})
	require.Equal(t, http.StatusCreated, status)

	status, resp := e.do(t, http.MethodGet, "/api/v1/citizen/complaints", mariaToken, nil)
	require.Equal(t, http.StatusOK, status)
	own := decodeData[[]model.Complaint](t, resp)
	require.Len(t, own, 2)
	for _, complaint := range own {
		require.Equal(t, e.maria.ID, complaint.UserID)
	}

	status, resp = e.do(t, http.MethodGet, "/api/v1/admin/complaints", adminToken, nil)
	require.Equal(t, http.StatusOK, status)
	all := decodeData[[]model.Complaint](t, resp)
	require.Len(t, all, 3)
}

func TestRoleGates(t *testing.T) {
	e := newEnv(t)
	mariaToken := e.login(t, e.maria.Email).AccessToken
	adminToken := e.login(t, e.admin.Email).AccessToken

	t.Run("citizen cannot use the admin surface", func(t *testing.T) {
		status, resp := e.do(t, http.MethodGet, "/api/v1/admin/complaints", mariaToken, nil)
		require.Equal(t, http.StatusForbidden, status)
		require.Equal(t, "insufficient permissions", resp.Error.Message)
	})

	t.Run("admin cannot use the citizen surface", func(t *testing.T) {
		status, _ := e.do(t, http.MethodGet, "/api/v1/citizen/complaints", adminToken, nil)
		require.Equal(t, http.StatusForbidden, status)
	})
}
