package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	postUC "github.com/princepatel/folio/internal/application/usecase/post"
)

type PostHandler struct {
	listPostsUseCase  *postUC.ListPostsUseCase
	listRecentUseCase *postUC.ListRecentPostsUseCase
	getPostUseCase    *postUC.GetPostUseCase
}

func NewPostHandler(
	listUC *postUC.ListPostsUseCase,
	recentUC *postUC.ListRecentPostsUseCase,
	getUC *postUC.GetPostUseCase,
) *PostHandler {
	return &PostHandler{
		listPostsUseCase:  listUC,
		listRecentUseCase: recentUC,
		getPostUseCase:    getUC,
	}
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	input := postUC.ListPostsInput{
		Tag: c.Query("tag"),
	}
	output, err := h.listPostsUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": ToPostSummaryDTOs(output.Posts),
		"tags":  output.Tags,
	})
}

func (h *PostHandler) ListRecentPosts(c *gin.Context) {
	output, err := h.listRecentUseCase.Execute(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToPostSummaryDTOs(output.Posts))
}

func (h *PostHandler) GetPost(c *gin.Context) {
	input := postUC.GetPostInput{Slug: c.Param("slug")}
	output, err := h.getPostUseCase.Execute(c.Request.Context(), input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ToPostDTO(output.Post))
}
