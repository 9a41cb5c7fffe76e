package routes

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Govind-619/BooksCourier/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.request(t, http.MethodGet, "/", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Server Running Successfully", w.Body.String())
}

func TestCreateUser(t *testing.T) {
	s := newTestServer(t)
	body := map[string]interface{}{"email": buyerEmail, "display_name": "Buyer", "role": models.RoleAdmin}

	w := s.request(t, http.MethodPost, "/users", body, "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created models.User
	decode(t, w, &created)
	assert.Equal(t, models.RoleUser, created.Role, "clients cannot pick their role")
	assert.False(t, created.CreatedAt.IsZero())

	w = s.request(t, http.MethodPost, "/users", body, "")
	require.Equal(t, http.StatusOK, w.Code)
	var again struct {
		Exists bool        `json:"exists"`
		User   models.User `json:"user"`
	}
	decode(t, w, &again)
	assert.True(t, again.Exists)
	assert.Equal(t, created.ID, again.User.ID)

	w = s.request(t, http.MethodPost, "/users", map[string]interface{}{"email": "not-an-email"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListUsersSearch(t *testing.T) {
	s := newTestServer(t)
	s.seedUser(t, "tagore@example.com", models.RoleUser)
	s.seedUser(t, "ghosh@example.com", models.RoleUser)

	w := s.request(t, http.MethodGet, "/users?searchText=TAG", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.request(t, http.MethodGet, "/users?searchText=TAG", nil, buyerToken)
	require.Equal(t, http.StatusOK, w.Code)
	var users []models.User
	env := decode(t, w, &users)
	require.Len(t, users, 1)
	assert.Equal(t, "tagore@example.com", users[0].Email)
	assert.Equal(t, int64(1), env.Pagination.Total)
}

func TestGetUser(t *testing.T) {
	s := newTestServer(t)
	user := s.seedUser(t, buyerEmail, models.RoleUser)

	w := s.request(t, http.MethodGet, fmt.Sprintf("/users/%d", user.ID), nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, http.StatusNotFound, s.request(t, http.MethodGet, "/users/999", nil, "").Code)
	assert.Equal(t, http.StatusBadRequest, s.request(t, http.MethodGet, "/users/abc", nil, "").Code)
}

func TestUpdateUserIgnoresRole(t *testing.T) {
	s := newTestServer(t)
	user := s.seedUser(t, buyerEmail, models.RoleUser)
	path := fmt.Sprintf("/users/%d", user.ID)

	w := s.request(t, http.MethodPatch, path, map[string]interface{}{"display_name": "New Name", "role": "admin"}, buyerToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored models.User
	require.NoError(t, s.db.First(&stored, user.ID).Error)
	assert.Equal(t, "New Name", stored.DisplayName)
	assert.Equal(t, models.RoleUser, stored.Role)

	w = s.request(t, http.MethodPatch, path, map[string]interface{}{"role": "admin"}, buyerToken)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUserRole(t *testing.T) {
	s := newTestServer(t)
	s.seedUser(t, adminEmail, models.RoleAdmin)

	var data struct {
		Role string `json:"role"`
	}
	w := s.request(t, http.MethodGet, "/users/"+adminEmail+"/role", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &data)
	assert.Equal(t, models.RoleAdmin, data.Role)

	w = s.request(t, http.MethodGet, "/users/stranger@example.com/role", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &data)
	assert.Equal(t, models.RoleUser, data.Role)
}

func TestDeleteUserRequiresAdmin(t *testing.T) {
	s := newTestServer(t)
	s.seedUser(t, adminEmail, models.RoleAdmin)
	s.seedUser(t, buyerEmail, models.RoleUser)
	victim := s.seedUser(t, otherEmail, models.RoleUser)
	path := fmt.Sprintf("/users/%d", victim.ID)

	assert.Equal(t, http.StatusUnauthorized, s.request(t, http.MethodDelete, path, nil, "").Code)
	assert.Equal(t, http.StatusUnauthorized, s.request(t, http.MethodDelete, path, nil, "forged-token").Code)
	assert.Equal(t, http.StatusForbidden, s.request(t, http.MethodDelete, path, nil, buyerToken).Code)

	w := s.request(t, http.MethodDelete, path, nil, adminToken)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var n int64
	require.NoError(t, s.db.Model(&models.User{}).Where("id = ?", victim.ID).Count(&n).Error)
	assert.Zero(t, n)

	assert.Equal(t, http.StatusNotFound, s.request(t, http.MethodDelete, path, nil, adminToken).Code)
}
