package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/lk16/reversi/internal/models"
	"github.com/stretchr/testify/require"
)

// doRequest sends a request to app and returns the status code and body.
func doRequest(t *testing.T, app *fiber.App, method, path string, body any, headers map[string]string) (int, []byte) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequest(method, path, reader)
	require.NoError(t, err)

	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, respBody
}

func decodeView(t *testing.T, body []byte) *models.GameView {
	t.Helper()

	var view models.GameView
	require.NoError(t, json.Unmarshal(body, &view), string(body))
	return &view
}

func decodeError(t *testing.T, body []byte) string {
	t.Helper()

	var resp struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(body, &resp), string(body))
	return resp.Error
}

// createGame starts a session and returns its view.
func createGame(t *testing.T, app *fiber.App, humanSide string) *models.GameView {
	t.Helper()

	status, body := doRequest(t, app, http.MethodPost, "/api/games", models.CreateGamePayload{HumanSide: humanSide}, nil)
	require.Equal(t, http.StatusCreated, status, string(body))
	return decodeView(t, body)
}
