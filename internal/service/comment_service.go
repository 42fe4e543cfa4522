package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
)

const maxCommentLen = 10000

// CommentService implements comment operations on top of the repositories.
type CommentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
	userRepo    repository.UserRepository
}

// CreateCommentInput carries the fields for creating a comment.
type CreateCommentInput struct {
	AuthorEmail string
	PostID      uint
	Content     string
}

// UpdateCommentInput carries the fields for updating a comment.
type UpdateCommentInput struct {
	CallerEmail string
	CommentID   uint
	Content     string
}

// DeleteCommentInput carries the fields for deleting a comment.
type DeleteCommentInput struct {
	CallerEmail string
	CommentID   uint
}

// NewCommentService returns a new CommentService.
func NewCommentService(
	commentRepo repository.CommentRepository,
	postRepo repository.PostRepository,
	userRepo repository.UserRepository,
) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

// CreateComment inserts a comment against an existing post. A missing parent
// post surfaces as NOT_FOUND before anything is written.
func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	if err := validateCommentContent(in.Content); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByEmail(ctx, in.AuthorEmail)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, models.NewUnauthorizedError("Unknown user")
	}

	comment := &models.Comment{
		Content:  in.Content,
		AuthorID: author.ID,
		PostID:   post.ID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID)
}

// GetComment returns a comment by id.
func (s *CommentService) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	return s.commentRepo.GetByID(ctx, id)
}

// ListComments returns all comments.
func (s *CommentService) ListComments(ctx context.Context) ([]*models.Comment, error) {
	return s.commentRepo.List(ctx)
}

// UpdateComment replaces a comment's content if the caller is its author.
func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	if err := validateCommentContent(in.Content); err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return nil, err
	}
	if comment.Author.Email != in.CallerEmail {
		observability.OwnershipDenialsTotal.WithLabelValues("comment").Inc()
		return nil, models.NewForbiddenError("You are not the author of this comment")
	}

	if err := s.commentRepo.UpdateOwned(ctx, in.CommentID, comment.AuthorID, in.Content); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, in.CommentID)
}

// DeleteComment hard-deletes a comment if the caller is its author.
func (s *CommentService) DeleteComment(ctx context.Context, in DeleteCommentInput) error {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID)
	if err != nil {
		return err
	}
	if comment.Author.Email != in.CallerEmail {
		observability.OwnershipDenialsTotal.WithLabelValues("comment").Inc()
		return models.NewForbiddenError("You are not the author of this comment")
	}

	return s.commentRepo.DeleteOwned(ctx, in.CommentID, comment.AuthorID)
}

func validateCommentContent(content string) error {
	if content == "" {
		return models.NewValidationError("Content is required")
	}
	if len(content) > maxCommentLen {
		return models.NewValidationError("Comment too long (max 10000 characters)")
	}
	return nil
}
