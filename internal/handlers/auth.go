package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"recipeshare/internal/models"
	"recipeshare/internal/repository"
	"recipeshare/internal/service"

	"github.com/gin-gonic/gin"
)

// Signup body. Pointer fields distinguish a key that is absent from one that
// holds an empty value; presence is checked before content.
type signupRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
	ImageURL *string `json:"image_url"`
	Bio      *string `json:"bio"`
}

// Login body. A key that is absent entirely is a bad request; a key holding
// an empty value still goes through authentication and earns the uniform 401.
type loginRequest struct {
	Username *string `json:"username"`
	Password *string `json:"password"`
}

// bindJSONOrBadRequest tries to bind the request body into dst and writes a 400 JSON on failure.
// Returns false if the request was already handled (aborted), true otherwise.
func (h *Handler) bindJSONOrBadRequest(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if h.log != nil {
			h.log.Infow("bad_request_body", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// @Summary      Create an account and start a session
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "credentials and profile"
// @Success      201   {object}  models.User
// @Failure      422   {object}  map[string]string
// @Router       /signup [post]
func (h *Handler) signup(c *gin.Context) {
	var input signupRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}

	if missing := missingSignupFields(input); len(missing) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": fmt.Sprintf("Missing fields: %s", strings.Join(missing, ", ")),
		})
		return
	}

	user, err := h.services.SignUp(c.Request.Context(), service.SignUpParams{
		Username: *input.Username,
		Password: *input.Password,
		ImageURL: *input.ImageURL,
		Bio:      *input.Bio,
	})
	if err != nil {
		h.signupError(c, input, err)
		return
	}

	if err := setSessionUser(c, user.ID); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError,
			"failed to start session", "session_save_failed", err, "user_id", user.ID)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func missingSignupFields(in signupRequest) []string {
	var missing []string
	if in.Username == nil {
		missing = append(missing, "username")
	}
	if in.Password == nil {
		missing = append(missing, "password")
	}
	if in.ImageURL == nil {
		missing = append(missing, "image_url")
	}
	if in.Bio == nil {
		missing = append(missing, "bio")
	}
	return missing
}

// signupError translates signup failures into 422 bodies. Duplicate usernames
// and conflicting concurrent inserts both land here, never as a raw fault.
func (h *Handler) signupError(c *gin.Context, input signupRequest, err error) {
	var ve *service.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": firstFieldMessage(ve)})
	case errors.Is(err, repository.ErrDuplicateUsername):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Username already in use."})
	default:
		if h.log != nil {
			h.log.Errorw("signup_failed", "username", derefOr(input.Username, ""), "err", err)
		}
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "User could not be created."})
	}
}

// @Summary      Log in with username and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "credentials"
// @Success      200   {object}  models.User
// @Failure      401   {object}  map[string]string
// @Router       /login [post]
func (h *Handler) login(c *gin.Context) {
	var input loginRequest
	if ok := h.bindJSONOrBadRequest(c, &input); !ok {
		return
	}
	if input.Username == nil || input.Password == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password are required"})
		return
	}

	user, err := h.services.Authenticate(c.Request.Context(), *input.Username, *input.Password)
	if err != nil {
		// Unknown user, wrong password and unexpected lookup failures
		// all answer the same way.
		if h.log != nil && !errors.Is(err, service.ErrInvalidCredentials) {
			h.log.Errorw("login_lookup_failed", "err", err)
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
		return
	}

	if err := setSessionUser(c, user.ID); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError,
			"failed to start session", "session_save_failed", err, "user_id", user.ID)
		return
	}

	c.JSON(http.StatusOK, h.userBody(c, user))
}

// @Summary      Return the user bound to the current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  models.User
// @Failure      401  {object}  map[string]string
// @Router       /check_session [get]
func (h *Handler) checkSession(c *gin.Context) {
	user, err := h.services.GetByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError,
			"failed to load user", "check_session_failed", err)
		return
	}
	if user == nil {
		// Session cookie referring to a user that no longer exists.
		_ = clearSessionUser(c)
		c.JSON(http.StatusUnauthorized, gin.H{"error": errUnauthorized})
		return
	}

	c.JSON(http.StatusOK, h.userBody(c, user))
}

// @Summary      End the current session
// @Tags         auth
// @Success      204
// @Failure      401  {object}  map[string]string
// @Router       /logout [delete]
func (h *Handler) logout(c *gin.Context) {
	if err := clearSessionUser(c); err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError,
			"failed to end session", "session_clear_failed", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// userBody fills the user's own recipe list for serialization. The lookup is
// best-effort: a read failure degrades to an empty list rather than failing
// an otherwise successful auth response.
func (h *Handler) userBody(c *gin.Context, user *models.User) *models.User {
	recipes, err := h.services.ListByUser(c.Request.Context(), user.ID)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("load_user_recipes_failed", "user_id", user.ID, "err", err)
		}
		recipes = []models.Recipe{}
	}
	user.Recipes = recipes
	return user
}

func firstFieldMessage(ve *service.ValidationError) string {
	names := make([]string, 0, len(ve.Fields))
	for f := range ve.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	if len(names) == 0 {
		return ve.Error()
	}
	return ve.Fields[names[0]]
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
