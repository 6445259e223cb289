package server

import (
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreatePostRequest is the body for POST /posts and PUT /posts/:id.
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// CreatePost handles POST /posts and PUT /posts (both create)
func (s *Server) CreatePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req CreatePostRequest
	if err := s.decodeBody(c, &req); err != nil {
		return nil
	}

	post := &models.Post{
		Title:   req.Title,
		Content: req.Content,
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(post)
}

// ListPosts handles GET /posts
func (s *Server) ListPosts(c *fiber.Ctx) error {
	ctx := c.UserContext()

	posts, err := s.postRepo.List(ctx)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(posts)
}

// GetPost handles GET /posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return respondStorageError(c, "Post", err)
	}

	return c.JSON(post)
}

// ReplacePost handles PUT /posts/:id, overwriting both mutable fields
func (s *Server) ReplacePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req CreatePostRequest
	if err := s.decodeBody(c, &req); err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return respondStorageError(c, "Post", err)
	}

	post.Title = req.Title
	post.Content = req.Content

	if err := s.postRepo.Update(ctx, post); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(post)
}

// PatchPost handles PATCH /posts/:id, applying only the fields present
// in the request body
func (s *Server) PatchPost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var patch models.PostPatch
	if err := s.decodePatch(c, &patch); err != nil {
		return nil
	}

	if _, err := s.postRepo.GetByID(ctx, id); err != nil {
		return respondStorageError(c, "Post", err)
	}

	if err := s.postRepo.UpdateFields(ctx, id, patch.Fields()); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return respondStorageError(c, "Post", err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /posts/:id. Comments referencing the post
// are left in place; deletes do not cascade.
func (s *Server) DeletePost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if _, err := s.postRepo.GetByID(ctx, id); err != nil {
		return respondStorageError(c, "Post", err)
	}

	if err := s.postRepo.Delete(ctx, id); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{"message": "Post deleted successfully"})
}

// ListPostComments handles GET /posts/:id/comments. A post with no
// comments (or no post at all) yields an empty list, not an error.
func (s *Server) ListPostComments(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comments, err := s.commentRepo.ListByPost(ctx, id)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(comments)
}
