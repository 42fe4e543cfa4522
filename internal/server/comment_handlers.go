package server

import (
	"inkwell/internal/models"
	"inkwell/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreateComment handles POST /comments?post_id=&content= (protected)
func (s *Server) CreateComment(c *fiber.Ctx) error {
	postID := c.QueryInt("post_id")
	if postID <= 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid post ID"))
	}

	comment, err := s.commentService.CreateComment(c.UserContext(), service.CreateCommentInput{
		AuthorEmail: callerEmail(c),
		PostID:      uint(postID),
		Content:     c.Query("content"),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(comment)
}

// ListComments handles GET /comments (public)
func (s *Server) ListComments(c *fiber.Ctx) error {
	comments, err := s.commentService.ListComments(c.UserContext())
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(comments)
}

// GetComment handles GET /comments/:id (public)
func (s *Server) GetComment(c *fiber.Ctx) error {
	id, err := parseID(c, "Comment")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.GetComment(c.UserContext(), id)
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(comment)
}

// UpdateComment handles PUT /comments/:id?content= (author only)
func (s *Server) UpdateComment(c *fiber.Ctx) error {
	id, err := parseID(c, "Comment")
	if err != nil {
		return nil
	}

	comment, err := s.commentService.UpdateComment(c.UserContext(), service.UpdateCommentInput{
		CallerEmail: callerEmail(c),
		CommentID:   id,
		Content:     c.Query("content"),
	})
	if err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(comment)
}

// DeleteComment handles DELETE /comments/:id (author only)
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	id, err := parseID(c, "Comment")
	if err != nil {
		return nil
	}

	if err := s.commentService.DeleteComment(c.UserContext(), service.DeleteCommentInput{
		CallerEmail: callerEmail(c),
		CommentID:   id,
	}); err != nil {
		return respondServiceError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Comment deleted successfully"})
}
