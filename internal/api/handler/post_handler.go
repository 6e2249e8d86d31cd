package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-api/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations. Reads are
// open; mutations pass the session explicitly into the service, which
// owns the authorization decision.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /api/posts.
//
// @Summary      List all posts, newest first
// @Tags         posts
// @Produce      json
// @Success      200  {object}  postListResponse
// @Failure      500  {object}  map[string]string
// @Router       /api/posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		code, msg := errorStatus(err)
		return c.JSON(code, errorResponse{Error: msg})
	}
	return c.JSON(http.StatusOK, toPostListResponse(posts))
}

// Get handles GET /api/posts/:id.
//
// @Summary      Get a single post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  postEnvelope
// @Failure      404  {object}  map[string]string
// @Router       /api/posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		code, msg := errorStatus(err)
		return c.JSON(code, errorResponse{Error: msg})
	}
	return c.JSON(http.StatusOK, postEnvelope{Post: toPostResponse(post)})
}

// Create handles POST /api/posts.
//
// @Summary      Create a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        body  body      createPostRequest  true  "Post content"
// @Success      201   {object}  postEnvelope
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	post, err := h.service.Create(c.Request().Context(), currentSession(c), ports.CreatePostInput{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		code, msg := errorStatus(err)
		return c.JSON(code, errorResponse{Error: msg})
	}
	return c.JSON(http.StatusCreated, postEnvelope{Post: toPostResponse(post)})
}

// Update handles PUT /api/posts/:id.
//
// @Summary      Update a post (owner only, partial)
// @Tags         posts
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Post id"
// @Param        body  body      updatePostRequest  true  "Fields to change"
// @Success      200   {object}  postEnvelope
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}

	post, err := h.service.Update(c.Request().Context(), currentSession(c), c.Param("id"), ports.PostPatch{
		Title: req.Title,
		Body:  req.Body,
	})
	if err != nil {
		code, msg := errorStatus(err)
		return c.JSON(code, errorResponse{Error: msg})
	}
	return c.JSON(http.StatusOK, postEnvelope{Post: toPostResponse(post)})
}

// Delete handles DELETE /api/posts/:id.
//
// @Summary      Delete a post (owner only)
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  okResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), currentSession(c), c.Param("id")); err != nil {
		code, msg := errorStatus(err)
		return c.JSON(code, errorResponse{Error: msg})
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}
