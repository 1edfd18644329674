package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/petsitting/pet-sitting-system/internal/api/metrics"
	"github.com/petsitting/pet-sitting-system/internal/core/domain"
	"github.com/petsitting/pet-sitting-system/internal/core/ports"
)

const maxPostImages = 9

// PostHandler handles the social feed: posts, likes and comments. Post
// creation accepts multipart uploads, so it also holds the image store.
type PostHandler struct {
	service  ports.PostService
	store    ports.Storage
	maxBytes int64
}

func NewPostHandler(service ports.PostService, store ports.Storage, maxBytes int64) *PostHandler {
	return &PostHandler{service: service, store: store, maxBytes: maxBytes}
}

// List handles GET /posts — the public feed.
//
// @Summary      Browse the public feed
// @Tags         posts
// @Produce      json
// @Param        pet_type  query     string  false  "Filter by pet type"
// @Param        tags      query     string  false  "Comma-separated tags, match any"
// @Param        page      query     int     false  "Page (1-based)"
// @Param        limit     query     int     false  "Page size"
// @Success      200       {object}  ports.ListPostsResult
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	filter := ports.ListPostsFilter{
		PetType: domain.PetType(c.QueryParam("pet_type")),
		Page:    queryInt(c, "page", 1),
		Limit:   queryInt(c, "limit", 10),
	}
	if raw := c.QueryParam("tags"); raw != "" {
		for _, t := range strings.Split(raw, ",") {
			if t = strings.TrimSpace(t); t != "" {
				filter.Tags = append(filter.Tags, t)
			}
		}
	}

	result, err := h.service.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, result)
}

// Get handles GET /posts/:id.
//
// @Summary      Get a post
// @Tags         posts
// @Produce      json
// @Param        id  path  string  true  "Post id"
// @Success      200  {object}  ports.PostView
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	view, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}

// Create handles POST /posts. The body is multipart: text fields plus up to
// nine image files under "images", stored through the image backend before
// the post is persisted.
//
// @Summary      Publish a post
// @Tags         posts
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        content    formData  string  true   "Post text"
// @Param        pet_type   formData  string  false  "Pet type tag"
// @Param        location   formData  string  false  "Location tag"
// @Param        tags       formData  string  false  "Comma-separated tags"
// @Param        is_public  formData  bool    false  "Visibility (default true)"
// @Param        images     formData  file    false  "Up to 9 image files"
// @Success      201  {object}  ports.PostView
// @Failure      400  {object}  errorResponse
// @Failure      413  {object}  errorResponse
// @Failure      415  {object}  errorResponse
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	content := strings.TrimSpace(c.FormValue("content"))
	if content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "content is required")
	}

	input := ports.CreatePostInput{
		Content:  content,
		Location: c.FormValue("location"),
		PetType:  domain.PetType(c.FormValue("pet_type")),
		IsPublic: true,
	}
	if raw := c.FormValue("is_public"); raw != "" {
		input.IsPublic = raw != "false"
	}
	for _, t := range strings.Split(c.FormValue("tags"), ",") {
		if t = strings.TrimSpace(t); t != "" {
			input.Tags = append(input.Tags, t)
		}
	}

	urls, err := h.storeImages(c)
	if err != nil {
		return err
	}
	input.Images = urls

	view, err := h.service.Create(c.Request().Context(), userID, input)
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, view)
}

// storeImages persists every "images" part through the storage backend and
// returns their public URLs. A post without images is valid.
func (h *PostHandler) storeImages(c echo.Context) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil
	}

	files := form.File["images"]
	if len(files) > maxPostImages {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "too many images")
	}

	urls := make([]string, 0, len(files))
	for _, fh := range files {
		if fh.Size > h.maxBytes {
			return nil, ports.ErrFileTooLarge
		}

		src, err := fh.Open()
		if err != nil {
			return nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable upload")
		}
		result, err := h.store.Save(c.Request().Context(), src, fh.Size, fh.Header.Get(echo.HeaderContentType))
		src.Close()
		if err != nil {
			return nil, err
		}
		urls = append(urls, result.URL)
	}
	return urls, nil
}

// Update handles PUT /posts/:id — author only.
//
// @Summary      Edit one of the caller's posts
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post id"
// @Param        body  body      updatePostRequest  true  "Editable fields"
// @Success      200   {object}  ports.PostView
// @Failure      404   {object}  errorResponse
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	public := true
	if req.IsPublic != nil {
		public = *req.IsPublic
	}

	view, err := h.service.Update(c.Request().Context(), userID, c.Param("id"), ports.PostUpdate{
		Content:  req.Content,
		Tags:     req.Tags,
		Location: req.Location,
		PetType:  domain.PetType(req.PetType),
		IsPublic: public,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}

// Delete handles DELETE /posts/:id — author only.
//
// @Summary      Delete one of the caller's posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Post id"
// @Success      200  {object}  messageResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, messageResponse{Message: "post deleted"})
}

// ToggleLike handles POST /posts/:id/like — flips the caller's like.
//
// @Summary      Like or unlike a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id  path  string  true  "Post id"
// @Success      200  {object}  ports.PostView
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id}/like [post]
func (h *PostHandler) ToggleLike(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	view, err := h.service.ToggleLike(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}

// AddComment handles POST /posts/:id/comments.
//
// @Summary      Comment on a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Post id"
// @Param        body  body      commentRequest  true  "Comment content"
// @Success      201   {object}  ports.PostView
// @Failure      404   {object}  errorResponse
// @Router       /posts/{id}/comments [post]
func (h *PostHandler) AddComment(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	view, err := h.service.AddComment(c.Request().Context(), userID, c.Param("id"), req.Content)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, view)
}

// DeleteComment handles DELETE /posts/:id/comments/:commentId.
// Allowed for the comment's author or the post's author.
//
// @Summary      Delete a comment
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id         path  string  true  "Post id"
// @Param        commentId  path  string  true  "Comment id"
// @Success      200  {object}  ports.PostView
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /posts/{id}/comments/{commentId} [delete]
func (h *PostHandler) DeleteComment(c echo.Context) error {
	userID, _, err := ctxUser(c)
	if err != nil {
		return err
	}

	view, err := h.service.DeleteComment(c.Request().Context(), userID, c.Param("id"), c.Param("commentId"))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, view)
}
