package server

import (
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateCommentRequest is the body for POST /comments and PUT /comments/:id.
// The referenced post is not required to exist.
type CreateCommentRequest struct {
	PostID  uint   `json:"post_id" validate:"required"`
	Content string `json:"content" validate:"required"`
}

// CreateComment handles POST /comments and PUT /comments (both create)
func (s *Server) CreateComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req CreateCommentRequest
	if err := s.decodeBody(c, &req); err != nil {
		return nil
	}

	comment := &models.Comment{
		PostID:  req.PostID,
		Content: req.Content,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(comment)
}

// ListComments handles GET /comments
func (s *Server) ListComments(c *fiber.Ctx) error {
	ctx := c.UserContext()

	comments, err := s.commentRepo.List(ctx)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(comments)
}

// GetComment handles GET /comments/:id
func (s *Server) GetComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return respondStorageError(c, "Comment", err)
	}

	return c.JSON(comment)
}

// ReplaceComment handles PUT /comments/:id, overwriting both mutable fields
func (s *Server) ReplaceComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req CreateCommentRequest
	if err := s.decodeBody(c, &req); err != nil {
		return nil
	}

	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return respondStorageError(c, "Comment", err)
	}

	comment.PostID = req.PostID
	comment.Content = req.Content

	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(comment)
}

// PatchComment handles PATCH /comments/:id, applying only the fields
// present in the request body
func (s *Server) PatchComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var patch models.CommentPatch
	if err := s.decodePatch(c, &patch); err != nil {
		return nil
	}

	if _, err := s.commentRepo.GetByID(ctx, id); err != nil {
		return respondStorageError(c, "Comment", err)
	}

	if err := s.commentRepo.UpdateFields(ctx, id, patch.Fields()); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return respondStorageError(c, "Comment", err)
	}

	return c.JSON(comment)
}

// DeleteComment handles DELETE /comments/:id
func (s *Server) DeleteComment(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if _, err := s.commentRepo.GetByID(ctx, id); err != nil {
		return respondStorageError(c, "Comment", err)
	}

	if err := s.commentRepo.Delete(ctx, id); err != nil {
		return models.RespondWithError(c, fiber.StatusInternalServerError, err)
	}

	return c.JSON(fiber.Map{"message": "Comment deleted successfully"})
}

// GetCommentPost handles GET /comments/:id/post. Because deletes do not
// cascade, the comment may exist while its post does not; that case is a 404.
func (s *Server) GetCommentPost(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	comment, err := s.commentRepo.GetByID(ctx, id)
	if err != nil {
		return respondStorageError(c, "Comment", err)
	}

	post, err := s.postRepo.GetByID(ctx, comment.PostID)
	if err != nil {
		return respondStorageError(c, "Post", err)
	}

	return c.JSON(post)
}
