package service

import (
	"context"

	"github.com/clubops/clubops-api/internal/domain/entity"
	"github.com/clubops/clubops-api/internal/domain/repository"
	infraRepo "github.com/clubops/clubops-api/internal/infrastructure/repository"
	"github.com/clubops/clubops-api/pkg/apperror"
	"github.com/clubops/clubops-api/pkg/pagination"
	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"
)

// ChatCompleter is the slice of the OpenAI client the board service uses
type ChatCompleter interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// BoardService handles the internal bulletin board, with optional AI-drafted
// notices
type BoardService struct {
	boardRepo repository.BoardRepository
	ai        ChatCompleter
	aiModel   string
}

// NewBoardService creates a new board service. The AI client may be nil, in
// which case drafting is unavailable.
func NewBoardService(boardRepo repository.BoardRepository, ai ChatCompleter, aiModel string) *BoardService {
	return &BoardService{
		boardRepo: boardRepo,
		ai:        ai,
		aiModel:   aiModel,
	}
}

// BoardPostInput represents the create/update post input
type BoardPostInput struct {
	Title  string
	Body   string
	Pinned bool
}

// CreatePost creates a new bulletin board post
func (s *BoardService) CreatePost(ctx context.Context, authorID uuid.UUID, input *BoardPostInput) (*entity.BoardPost, error) {
	venueID, ok := infraRepo.GetVenueID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Venue context required")
	}
	if input.Title == "" {
		return nil, apperror.NewBadRequestError("Post title must not be empty")
	}
	if input.Body == "" {
		return nil, apperror.NewBadRequestError("Post body must not be empty")
	}

	post := &entity.BoardPost{
		VenueID:  venueID,
		AuthorID: authorID,
		Title:    input.Title,
		Body:     input.Body,
		Pinned:   input.Pinned,
	}
	if err := s.boardRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost retrieves a post by ID
func (s *BoardService) GetPost(ctx context.Context, id uuid.UUID) (*entity.BoardPost, error) {
	post, err := s.boardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperror.NewNotFoundError("Post")
	}
	return post, nil
}

// UpdatePost updates a post
func (s *BoardService) UpdatePost(ctx context.Context, id uuid.UUID, input *BoardPostInput) (*entity.BoardPost, error) {
	post, err := s.boardRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, apperror.NewNotFoundError("Post")
	}
	if input.Title == "" {
		return nil, apperror.NewBadRequestError("Post title must not be empty")
	}
	if input.Body == "" {
		return nil, apperror.NewBadRequestError("Post body must not be empty")
	}

	post.Title = input.Title
	post.Body = input.Body
	post.Pinned = input.Pinned

	if err := s.boardRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// DeletePost deletes a post
func (s *BoardService) DeletePost(ctx context.Context, id uuid.UUID) error {
	post, err := s.boardRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if post == nil {
		return apperror.NewNotFoundError("Post")
	}
	return s.boardRepo.Delete(ctx, id)
}

// ListPosts returns posts, pinned first
func (s *BoardService) ListPosts(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.BoardPost], error) {
	posts, total, err := s.boardRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(posts, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// DraftPost asks the AI to draft a notice from a short prompt and stores it
// as an unpinned post marked as AI-generated
func (s *BoardService) DraftPost(ctx context.Context, authorID uuid.UUID, prompt string) (*entity.BoardPost, error) {
	venueID, ok := infraRepo.GetVenueID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Venue context required")
	}
	if s.ai == nil {
		return nil, apperror.NewBadRequestError("AI drafting is not configured")
	}
	if prompt == "" {
		return nil, apperror.NewBadRequestError("Prompt must not be empty")
	}

	resp, err := s.ai.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.aiModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleSystem,
				Content: "You draft short internal notices for nightlife venue staff. " +
					"Reply with a single notice: first line is the title, the rest is the body. " +
					"Write in the language of the request.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return nil, apperror.NewAppError(502, "AI drafting failed: "+err.Error())
	}
	if len(resp.Choices) == 0 {
		return nil, apperror.NewAppError(502, "AI drafting returned no content")
	}

	title, body := splitDraft(resp.Choices[0].Message.Content)

	post := &entity.BoardPost{
		VenueID:     venueID,
		AuthorID:    authorID,
		Title:       title,
		Body:        body,
		AIGenerated: true,
	}
	if err := s.boardRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// splitDraft separates the first line as title from the rest as body
func splitDraft(content string) (string, string) {
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			title := content[:i]
			body := content[i+1:]
			for len(body) > 0 && body[0] == '\n' {
				body = body[1:]
			}
			if body == "" {
				body = title
			}
			return title, body
		}
	}
	return content, content
}
