/* Copyright © 2025-2026 Mike Brown. All Rights Reserved.
 *
 * See LICENSE file at the root of this repository for license terms
 */
package http

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikeb26/swisstd/store/memory"
	"github.com/mikeb26/swisstd/swiss"
)

func newTestHandler() *Handler {
	return NewHandler(memory.New(), slog.Default())
}

func TestRegisterAndGetSection(t *testing.T) {
	h := newTestHandler()
	srv := httptest.NewServer(h.Router())
	defer srv.Close()

	body, _ := json.Marshal(swiss.Player{ID: "A", Name: "Alice", Rating: 1800})
	resp, err := srv.Client().Post(srv.URL+"/api/v1/sections/Open/players", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp2, err := srv.Client().Get(srv.URL + "/api/v1/sections/Open/")
	require.NoError(t, err)
	assert.Equal(t, 200, resp2.StatusCode)

	var out APIResponse
	require.NoError(t, json.NewDecoder(resp2.Body).Decode(&out))
	assert.True(t, out.Success)
}

func TestGetSectionMissingReturnsError(t *testing.T) {
	h := newTestHandler()
	srv := httptest.NewServer(h.Router())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL + "/api/v1/sections/DoesNotExist/")
	require.NoError(t, err)
	assert.NotEqual(t, 200, resp.StatusCode)
}

func TestFullRoundTripThroughAPI(t *testing.T) {
	h := newTestHandler()
	srv := httptest.NewServer(h.Router())
	defer srv.Close()
	client := srv.Client()

	for _, p := range []swiss.Player{
		{ID: "A", Name: "Alice", Rating: 1800},
		{ID: "B", Name: "Bob", Rating: 1600},
	} {
		body, _ := json.Marshal(p)
		resp, err := client.Post(srv.URL+"/api/v1/sections/Open/players", "application/json", bytes.NewReader(body))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	}

	resp, err := client.Post(srv.URL+"/api/v1/sections/Open/lock", "application/json", nil)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = client.Post(srv.URL+"/api/v1/sections/Open/pair", "application/json", nil)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resultBody, _ := json.Marshal(resultRequest{Token: swiss.WhiteWins})
	resp, err = client.Post(srv.URL+"/api/v1/sections/Open/rounds/1/boards/1/result", "application/json", bytes.NewReader(resultBody))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	resp, err = client.Get(srv.URL + "/api/v1/sections/Open/standings")
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
