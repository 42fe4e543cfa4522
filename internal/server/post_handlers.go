package server

import (
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /posts?title=&content= (protected)
func (s *Server) CreatePost(c *fiber.Ctx) error {
	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		AuthorEmail: callerEmail(c),
		Title:       c.Query("title"),
		Content:     c.Query("content"),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// ListPosts handles GET /posts (public)
func (s *Server) ListPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListPosts(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(posts)
}

// GetPost handles GET /posts/:id (public)
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := parseID(c, "Post")
	if err != nil {
		return nil
	}

	post, err := s.postService.GetPost(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// UpdatePost handles PUT /posts/:id?title=&content= (author only)
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := parseID(c, "Post")
	if err != nil {
		return nil
	}

	post, err := s.postService.UpdatePost(c.UserContext(), service.UpdatePostInput{
		CallerEmail: callerEmail(c),
		PostID:      id,
		Title:       c.Query("title"),
		Content:     c.Query("content"),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /posts/:id (author only)
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := parseID(c, "Post")
	if err != nil {
		return nil
	}

	if err := s.postService.DeletePost(c.UserContext(), service.DeletePostInput{
		CallerEmail: callerEmail(c),
		PostID:      id,
	}); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Post deleted successfully"})
}
