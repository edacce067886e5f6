package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"inkwell/internal/media"
	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// imagePart describes one file attached to a multipart request.
type imagePart struct {
	field       string
	filename    string
	contentType string
	content     []byte
}

// multipartBody builds a multipart form with text fields and optional files.
func multipartBody(t *testing.T, fields map[string]string, files ...imagePart) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)

	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	for _, f := range files {
		h := textproto.MIMEHeader{}
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, f.field, f.filename))
		h.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return buf, w.FormDataContentType()
}

func TestUpdateMe(t *testing.T) {
	stored := models.User{
		ID:     4,
		Name:   "Jane",
		Email:  "jane@example.com",
		Bio:    "writer",
		Avatar: "https://media.example.com/avatars/old.png",
	}

	t.Run("Name and bio via JSON", func(t *testing.T) {
		s, app, userRepo, _, uploader := newTestServer()
		u := stored
		userRepo.On("GetByID", mock.Anything, uint(4)).Return(&u, nil)
		userRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		payload, err := json.Marshal(map[string]string{"name": "Jane Doe", "bio": "novelist"})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPut, "/api/users/me", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearer(t, s, 4))

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		data := decodeBody(t, resp)["data"].(map[string]any)
		assert.Equal(t, "Jane Doe", data["name"])
		assert.Equal(t, "novelist", data["bio"])
		assert.Equal(t, stored.Avatar, data["avatar"])
		assert.Empty(t, uploader.calls)
	})

	t.Run("Avatar upload via multipart", func(t *testing.T) {
		s, app, userRepo, _, uploader := newTestServer()
		u := stored
		userRepo.On("GetByID", mock.Anything, uint(4)).Return(&u, nil)
		userRepo.On("Update", mock.Anything, mock.Anything).Return(nil)

		body, contentType := multipartBody(t, map[string]string{"bio": "novelist"},
			imagePart{field: "avatar", filename: "me.png", contentType: "image/png", content: []byte("img-bytes")})

		req := httptest.NewRequest(http.MethodPut, "/api/users/me", body)
		req.Header.Set("Content-Type", contentType)
		req.Header.Set("Authorization", bearer(t, s, 4))

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		data := decodeBody(t, resp)["data"].(map[string]any)
		assert.Equal(t, uploader.url, data["avatar"])
		require.Len(t, uploader.calls, 1)
		assert.Equal(t, media.AvatarFolder, uploader.calls[0].Folder)
		assert.Equal(t, []byte("img-bytes"), uploader.calls[0].Content)
	})

	t.Run("Oversized name rejected", func(t *testing.T) {
		s, app, userRepo, _, _ := newTestServer()
		u := stored
		userRepo.On("GetByID", mock.Anything, uint(4)).Return(&u, nil)

		longName := make([]byte, 60)
		for i := range longName {
			longName[i] = 'a'
		}
		payload, err := json.Marshal(map[string]string{"name": string(longName)})
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPut, "/api/users/me", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("Authorization", bearer(t, s, 4))

		resp, err := app.Test(req)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
