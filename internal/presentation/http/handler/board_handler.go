package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/clubops/clubops-api/internal/application/service"
	"github.com/clubops/clubops-api/internal/presentation/http/dto/request"
	"github.com/clubops/clubops-api/internal/presentation/http/dto/response"
)

// BoardHandler handles bulletin board HTTP requests
type BoardHandler struct {
	boardService *service.BoardService
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(boardService *service.BoardService) *BoardHandler {
	return &BoardHandler{boardService: boardService}
}

// Create creates a new post
func (h *BoardHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req request.BoardPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	post, err := h.boardService.CreatePost(c.Request.Context(), *userID, &service.BoardPostInput{
		Title:  req.Title,
		Body:   req.Body,
		Pinned: req.Pinned,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Post created", post)
}

// Get returns one post
func (h *BoardHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	post, err := h.boardService.GetPost(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Post retrieved", post)
}

// Update updates a post
func (h *BoardHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	var req request.BoardPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	post, err := h.boardService.UpdatePost(c.Request.Context(), id, &service.BoardPostInput{
		Title:  req.Title,
		Body:   req.Body,
		Pinned: req.Pinned,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Post updated", post)
}

// Delete removes a post
func (h *BoardHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.boardService.DeletePost(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Post deleted", nil)
}

// List returns posts, pinned first
func (h *BoardHandler) List(c *gin.Context) {
	params := GetPaginationParams(c)
	search := c.Query("search")

	result, err := h.boardService.ListPosts(c.Request.Context(), params, search)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Posts retrieved", result)
}

// Draft asks the AI to draft a notice and stores it as a post
func (h *BoardHandler) Draft(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "Not authenticated")
		return
	}

	var req request.DraftPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	post, err := h.boardService.DraftPost(c.Request.Context(), *userID, req.Prompt)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Draft created", post)
}
