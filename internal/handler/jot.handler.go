package handler

import (
	"errors"
	"net/http"

	"github.com/duccv/jotspot/internal/model"
	"github.com/duccv/jotspot/internal/store"
	"github.com/duccv/jotspot/internal/validation"
	"github.com/duccv/jotspot/pkg/logger"
	"github.com/duccv/jotspot/util"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxCreateAttempts bounds id regeneration on the (practically impossible)
// collision with an existing jot.
const maxCreateAttempts = 3

type JotHandler struct {
	store store.JotStore
}

func NewJotHandler(s store.JotStore) *JotHandler {
	return &JotHandler{store: s}
}

// List godoc
//
//	@Summary	List jots
//	@Tags		Jots
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	model.Jot
//	@Failure	401	"Missing or invalid bearer token"
//	@Router		/jots [get]
func (h *JotHandler) List(c *gin.Context) {
	jots, err := h.store.GetAll(c.Request.Context())
	if err != nil {
		storeFailure(c, "list", err)
		return
	}
	c.JSON(http.StatusOK, jots)
}

// Create godoc
//
//	@Summary	Create jot
//	@Tags		Jots
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		model.JotRequest	true	"Jot"
//	@Success	201		{object}	model.Jot
//	@Header		201		{string}	Location	"/jots/{id}"
//	@Failure	400		"Malformed body"
//	@Failure	401		"Missing or invalid bearer token"
//	@Router		/jots [post]
func (h *JotHandler) Create(c *gin.Context) {
	body := validation.Body[model.JotRequest](c)

	var (
		jot model.Jot
		err error
	)
	for attempt := 0; attempt < maxCreateAttempts; attempt++ {
		jot = model.Jot{ID: uuid.New(), Title: body.Title, Text: body.Text}
		err = h.store.Add(c.Request.Context(), jot)
		if !errors.Is(err, store.ErrDuplicateID) {
			break
		}
	}
	if err != nil {
		storeFailure(c, "create", err)
		return
	}

	c.Header("Location", "/jots/"+jot.ID.String())
	c.JSON(http.StatusCreated, jot)
}

// Get answers 304 when If-None-Match already names the current ETag.
//
//	@Summary	Get jot
//	@Tags		Jots
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Jot id"	format(uuid)
//	@Success	200	{object}	model.Jot
//	@Header		200	{string}	ETag	"Entity tag"
//	@Failure	304	"Not modified"
//	@Failure	400	"Id is not a UUID"
//	@Failure	401	"Missing or invalid bearer token"
//	@Failure	404	"Not found"
//	@Router		/jots/{id} [get]
func (h *JotHandler) Get(c *gin.Context) {
	id, ok := jotID(c)
	if !ok {
		return
	}

	jot, found, err := h.store.GetByID(c.Request.Context(), id)
	if err != nil {
		storeFailure(c, "get", err)
		return
	}
	if !found {
		c.Status(http.StatusNotFound)
		return
	}

	etag := util.GenerateETag(jot)
	c.Header("ETag", etag)
	if util.MatchesETag(c.GetHeader("If-None-Match"), etag) {
		c.Status(http.StatusNotModified)
		return
	}
	c.JSON(http.StatusOK, jot)
}

// Update godoc
//
//	@Summary	Update jot
//	@Tags		Jots
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id		path		string				true	"Jot id"	format(uuid)
//	@Param		request	body		model.JotRequest	true	"Jot"
//	@Success	200		{object}	model.Jot
//	@Failure	400		"Malformed id or body"
//	@Failure	401		"Missing or invalid bearer token"
//	@Failure	404		"Not found"
//	@Router		/jots/{id} [put]
func (h *JotHandler) Update(c *gin.Context) {
	id, ok := jotID(c)
	if !ok {
		return
	}
	body := validation.Body[model.JotRequest](c)

	updated, found, err := h.store.Update(c.Request.Context(), id, func(jot *model.Jot) {
		jot.Title = body.Title
		jot.Text = body.Text
	})
	if err != nil {
		storeFailure(c, "update", err)
		return
	}
	if !found {
		c.Status(http.StatusNotFound)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete godoc
//
//	@Summary	Delete jot
//	@Tags		Jots
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Jot id"	format(uuid)
//	@Success	204	"Deleted"
//	@Failure	400	"Id is not a UUID"
//	@Failure	401	"Missing or invalid bearer token"
//	@Failure	404	"Not found"
//	@Router		/jots/{id} [delete]
func (h *JotHandler) Delete(c *gin.Context) {
	id, ok := jotID(c)
	if !ok {
		return
	}

	removed, err := h.store.Delete(c.Request.Context(), id)
	if err != nil {
		storeFailure(c, "delete", err)
		return
	}
	if !removed {
		c.Status(http.StatusNotFound)
		return
	}
	c.Status(http.StatusNoContent)
}

func jotID(c *gin.Context) (uuid.UUID, bool) {
	params := validation.Params[model.JotParams](c)
	id, err := uuid.Parse(params.ID)
	if err != nil {
		c.AbortWithStatus(http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func storeFailure(c *gin.Context, op string, err error) {
	logger.FromContext(c.Request.Context()).Error("Jot store failure", zap.String("op", op), zap.Error(err))
	_ = c.Error(err)
	c.AbortWithStatus(http.StatusInternalServerError)
}
