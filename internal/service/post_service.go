// Package service contains the application's domain logic: input validation,
// author resolution, and ownership enforcement.
package service

import (
	"context"

	"inkwell/internal/models"
	"inkwell/internal/observability"
	"inkwell/internal/repository"
)

const (
	maxTitleLen   = 255
	maxContentLen = 50000
)

// PostService implements post operations on top of the repositories.
type PostService struct {
	postRepo repository.PostRepository
	userRepo repository.UserRepository
}

// CreatePostInput carries the fields for creating a post.
type CreatePostInput struct {
	AuthorEmail string
	Title       string
	Content     string
}

// UpdatePostInput carries the fields for updating a post.
type UpdatePostInput struct {
	CallerEmail string
	PostID      uint
	Title       string
	Content     string
}

// DeletePostInput carries the fields for deleting a post.
type DeletePostInput struct {
	CallerEmail string
	PostID      uint
}

// NewPostService returns a new PostService.
func NewPostService(postRepo repository.PostRepository, userRepo repository.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// CreatePost resolves the author by the authenticated email and inserts a new post.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (*models.Post, error) {
	if err := validatePostFields(in.Title, in.Content); err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByEmail(ctx, in.AuthorEmail)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, models.NewUnauthorizedError("Unknown user")
	}

	post := &models.Post{
		Title:    in.Title,
		Content:  in.Content,
		AuthorID: author.ID,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, post.ID)
}

// GetPost returns a post by id.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	return s.postRepo.GetByID(ctx, id)
}

// ListPosts returns all posts.
func (s *PostService) ListPosts(ctx context.Context) ([]*models.Post, error) {
	return s.postRepo.List(ctx)
}

// UpdatePost replaces a post's title and content if the caller is its author.
// The ownership check compares the authenticated email against the stored
// author's email, never against anything in the request payload.
func (s *PostService) UpdatePost(ctx context.Context, in UpdatePostInput) (*models.Post, error) {
	if err := validatePostFields(in.Title, in.Content); err != nil {
		return nil, err
	}

	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return nil, err
	}
	if post.Author.Email != in.CallerEmail {
		observability.OwnershipDenialsTotal.WithLabelValues("post").Inc()
		return nil, models.NewForbiddenError("You are not the author of this post")
	}

	// The mutation re-asserts ownership in its WHERE clause, so a post
	// deleted between the check and the write surfaces as NOT_FOUND.
	if err := s.postRepo.UpdateOwned(ctx, in.PostID, post.AuthorID, in.Title, in.Content); err != nil {
		return nil, err
	}

	return s.postRepo.GetByID(ctx, in.PostID)
}

// DeletePost hard-deletes a post if the caller is its author. Comments on
// the post are left in place.
func (s *PostService) DeletePost(ctx context.Context, in DeletePostInput) error {
	post, err := s.postRepo.GetByID(ctx, in.PostID)
	if err != nil {
		return err
	}
	if post.Author.Email != in.CallerEmail {
		observability.OwnershipDenialsTotal.WithLabelValues("post").Inc()
		return models.NewForbiddenError("You are not the author of this post")
	}

	return s.postRepo.DeleteOwned(ctx, in.PostID, post.AuthorID)
}

func validatePostFields(title, content string) error {
	if title == "" || content == "" {
		return models.NewValidationError("Title and content are required")
	}
	if len(title) > maxTitleLen {
		return models.NewValidationError("Title too long (max 255 characters)")
	}
	if len(content) > maxContentLen {
		return models.NewValidationError("Content too long (max 50000 characters)")
	}
	return nil
}
