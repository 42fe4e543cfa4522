package server

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommentLifecycle(t *testing.T) {
	app := setupTestApp(t)
	token := registerAndLogin(t, app, "alice@example.com", "s3cret")
	postID := createPost(t, app, token, "Host post", "Body")

	var commentID uint

	t.Run("create returns the stored comment", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodPost,
			fmt.Sprintf("/comments?post_id=%d&content=Nice+post", postID), token, nil)
		require.Equal(t, http.StatusCreated, status)
		assert.Equal(t, "Nice post", body["content"])
		assert.Equal(t, float64(postID), body["post_id"])

		author, ok := body["author"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "alice@example.com", author["email"])

		commentID = uint(body["id"].(float64))
	})

	t.Run("comment on a missing post is 404", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodPost,
			"/comments?post_id=9999&content=Orphan", token, nil)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Post not found", body["error"])
	})

	t.Run("create rejects missing content", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodPost,
			fmt.Sprintf("/comments?post_id=%d", postID), token, nil)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Content is required", body["error"])
	})

	t.Run("create rejects missing post id", func(t *testing.T) {
		status, _ := doRequest(t, app, http.MethodPost, "/comments?content=Floating", token, nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("list and get are public", func(t *testing.T) {
		status, comments := doRequestList(t, app, "/comments", "")
		require.Equal(t, http.StatusOK, status)
		assert.NotEmpty(t, comments)

		status, body := doRequest(t, app, http.MethodGet,
			fmt.Sprintf("/comments/%d", commentID), "", nil)
		assert.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Nice post", body["content"])
	})

	t.Run("get with non-positive id is 404", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodGet, "/comments/0", "", nil)
		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "Comment not found", body["error"])
	})

	t.Run("author can update", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodPut,
			fmt.Sprintf("/comments/%d?content=Edited", commentID), token, nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Edited", body["content"])
	})

	t.Run("author can delete", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodDelete,
			fmt.Sprintf("/comments/%d", commentID), token, nil)
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "Comment deleted successfully", body["message"])

		status, _ = doRequest(t, app, http.MethodGet,
			fmt.Sprintf("/comments/%d", commentID), "", nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestCommentOwnership(t *testing.T) {
	app := setupTestApp(t)
	authorToken := registerAndLogin(t, app, "author@example.com", "s3cret")
	otherToken := registerAndLogin(t, app, "other@example.com", "s3cret")

	postID := createPost(t, app, authorToken, "Host", "Body")

	status, body := doRequest(t, app, http.MethodPost,
		fmt.Sprintf("/comments?post_id=%d&content=Original", postID), authorToken, nil)
	require.Equal(t, http.StatusCreated, status)
	commentID := uint(body["id"].(float64))

	t.Run("non-author cannot update", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodPut,
			fmt.Sprintf("/comments/%d?content=Hijacked", commentID), otherToken, nil)
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "You are not the author of this comment", body["error"])
	})

	t.Run("non-author cannot delete", func(t *testing.T) {
		status, body := doRequest(t, app, http.MethodDelete,
			fmt.Sprintf("/comments/%d", commentID), otherToken, nil)
		assert.Equal(t, http.StatusForbidden, status)
		assert.Equal(t, "You are not the author of this comment", body["error"])
	})
}

func TestCommentsSurvivePostDeletion(t *testing.T) {
	app := setupTestApp(t)
	token := registerAndLogin(t, app, "alice@example.com", "s3cret")

	postID := createPost(t, app, token, "Short-lived", "Body")

	status, body := doRequest(t, app, http.MethodPost,
		fmt.Sprintf("/comments?post_id=%d&content=Survivor", postID), token, nil)
	require.Equal(t, http.StatusCreated, status)
	commentID := uint(body["id"].(float64))

	status, _ = doRequest(t, app, http.MethodDelete, fmt.Sprintf("/posts/%d", postID), token, nil)
	require.Equal(t, http.StatusOK, status)

	// Comments are not cascaded; the orphan remains retrievable.
	status, body = doRequest(t, app, http.MethodGet,
		fmt.Sprintf("/comments/%d", commentID), "", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Survivor", body["content"])

	// But new comments against the deleted post are rejected.
	status, _ = doRequest(t, app, http.MethodPost,
		fmt.Sprintf("/comments?post_id=%d&content=Too+late", postID), token, nil)
	assert.Equal(t, http.StatusNotFound, status)
}
