package handlers

import (
	"errors"
	"net/http"

	"recipeshare/internal/models"
	"recipeshare/internal/service"

	"github.com/gin-gonic/gin"
)

// Recipe creation body; pointer fields make absent keys detectable so the
// per-field "required" errors can be itemized.
type createRecipeRequest struct {
	Title             *string `json:"title"`
	Instructions      *string `json:"instructions"`
	MinutesToComplete *int    `json:"minutes_to_complete"`
}

const fieldRequiredMsg = "This field is required."

// @Summary      List all recipes
// @Tags         recipes
// @Produce      json
// @Success      200  {array}   models.Recipe
// @Failure      401  {object}  map[string]string
// @Router       /recipes [get]
func (h *Handler) listRecipes(c *gin.Context) {
	recipes, err := h.services.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError,
			"failed to load recipes", "list_recipes_failed", err)
		return
	}
	c.JSON(http.StatusOK, recipes)
}

// @Summary      Create a recipe owned by the session user
// @Tags         recipes
// @Accept       json
// @Produce      json
// @Param        body  body      createRecipeRequest  true  "recipe"
// @Success      201   {object}  models.Recipe
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]interface{}
// @Router       /recipes [post]
func (h *Handler) createRecipe(c *gin.Context) {
	var input createRecipeRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	if missing := missingRecipeFields(input); len(missing) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": missing})
		return
	}

	recipe, err := h.services.Create(c.Request.Context(), service.CreateRecipeParams{
		UserID:            currentUserID(c),
		Title:             *input.Title,
		Instructions:      *input.Instructions,
		MinutesToComplete: *input.MinutesToComplete,
	})
	if err != nil {
		h.createRecipeError(c, err)
		return
	}

	h.attachOwner(c, recipe)
	c.JSON(http.StatusCreated, recipe)
}

// attachOwner fills the flat owner summary on a freshly created recipe, so
// the create body carries the same shape as a listed one. Best-effort: a
// lookup failure is logged and leaves the owner out rather than failing the
// creation that already committed.
func (h *Handler) attachOwner(c *gin.Context, rec *models.Recipe) {
	user, err := h.services.GetByID(c.Request.Context(), rec.UserID)
	if err != nil || user == nil {
		if h.log != nil && err != nil {
			h.log.Errorw("load_recipe_owner_failed", "user_id", rec.UserID, "err", err)
		}
		return
	}
	rec.Owner = &models.UserRef{
		ID:       user.ID,
		Username: user.Username,
		ImageURL: user.ImageURL,
		Bio:      user.Bio,
	}
}

func missingRecipeFields(in createRecipeRequest) map[string]string {
	missing := map[string]string{}
	if in.Title == nil {
		missing["title"] = fieldRequiredMsg
	}
	if in.Instructions == nil {
		missing["instructions"] = fieldRequiredMsg
	}
	if in.MinutesToComplete == nil {
		missing["minutes_to_complete"] = fieldRequiredMsg
	}
	return missing
}

// createRecipeError translates creation failures to 422. Unexpected
// persistence errors echo their message to the caller; that mirrors the
// long-standing API behavior clients rely on, though mapping them to a bare
// 500 would leak less.
func (h *Handler) createRecipeError(c *gin.Context, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": ve.Fields})
	case errors.Is(err, service.ErrInstructionsTooShort):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": service.ErrInstructionsTooShort.Error()})
	default:
		if h.log != nil {
			h.log.Errorw("create_recipe_failed", "err", err)
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	}
}
