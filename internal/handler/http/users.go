package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sunjoo-dev/movein-registry/internal/logger"
	"github.com/sunjoo-dev/movein-registry/internal/service"
	"github.com/sunjoo-dev/movein-registry/internal/store"
	"github.com/sunjoo-dev/movein-registry/internal/utils"
	"github.com/sunjoo-dev/movein-registry/models"
)

// maxMultipartMemory caps the in-memory part of multipart form parsing.
const maxMultipartMemory = 10 << 20

// signUpData is the JSON "data" part of the multipart signup form.
type signUpData struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// profileData is the JSON "data" part of the multipart profile-update form.
type profileData struct {
	Username string `json:"username"`
}

// signInRequest is the JSON body of the signin endpoint.
type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signInResponse carries the authenticated identity and the access token.
type signInResponse struct {
	UserID      int64       `json:"user_id"`
	Username    string      `json:"username"`
	Email       string      `json:"email"`
	Role        models.Role `json:"role"`
	AccessToken string      `json:"access_token"`
}

// profileResponse is the account view served by the profile endpoints.
type profileResponse struct {
	models.User
	ImageURL string `json:"image_url,omitempty"`
}

// signUp registers a new account. Only administrators may provision accounts:
// the caller's admin token is checked before the form is even parsed.
//
// The request is a multipart form with a JSON "data" part
// {username, email, password, role} and an optional "image" file part.
func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if _, err := h.services.AuthService.RequireRole(ctx, r.Header.Get("Authorization"), models.RoleAdmin); err != nil {
		log.Err(err).Msg("signup admin gate rejected the request")
		http.Error(w, err.Error(), statusFromError(err))
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		log.Err(err).Msg("invalid multipart form")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	var data signUpData
	if err := json.Unmarshal([]byte(r.FormValue("data")), &data); err != nil {
		log.Err(err).Msg("invalid JSON in `data` form part")
		http.Error(w, "invalid JSON in `data` form part", http.StatusBadRequest)
		return
	}

	image, err := imageFromForm(r)
	if err != nil {
		log.Err(err).Msg("failed to read `image` form part")
		http.Error(w, "failed to read `image` form part", http.StatusBadRequest)
		return
	}

	user := models.User{
		Username: data.Username,
		Email:    data.Email,
		Role:     models.ParseRole(data.Role),
	}

	created, err := h.services.UserService.SignUp(ctx, user, data.Password, image)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrEmailAlreadyExists):
			log.Err(err).Msg("email already exists")
			http.Error(w, "email already exists", http.StatusConflict)
		default:
			log.Err(err).Msg("user signup failed")
			http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		}
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// signIn authenticates email+password credentials and returns the identity
// together with a fresh access token.
func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	user, err := h.services.AuthService.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound) || errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Msg("no user was found/wrong password")
			http.Error(w, "invalid email/password", http.StatusUnauthorized)
		default:
			log.Err(err).Msg("user signin failed")
			http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		}
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, signInResponse{
		UserID:      user.UserID,
		Username:    user.Username,
		Email:       user.Email,
		Role:        user.Role,
		AccessToken: token.SignedString,
	}, http.StatusOK)
}

// profile serves the authenticated caller's account and profile-image URL.
func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	user, imageURL, err := h.services.UserService.Profile(ctx, userID)
	if err != nil {
		log.Err(err).Msg("profile lookup failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, profileResponse{User: user, ImageURL: imageURL}, http.StatusOK)
}

// updateProfile replaces the caller's username and/or profile image.
// The request mirrors signup: a JSON "data" part {username} and an optional
// "image" file part.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		log.Err(err).Msg("invalid multipart form")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	var data profileData
	if raw := r.FormValue("data"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &data); err != nil {
			log.Err(err).Msg("invalid JSON in `data` form part")
			http.Error(w, "invalid JSON in `data` form part", http.StatusBadRequest)
			return
		}
	}

	image, err := imageFromForm(r)
	if err != nil {
		log.Err(err).Msg("failed to read `image` form part")
		http.Error(w, "failed to read `image` form part", http.StatusBadRequest)
		return
	}

	user, imageURL, err := h.services.UserService.UpdateProfile(ctx, userID, data.Username, image)
	if err != nil {
		log.Err(err).Msg("profile update failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, profileResponse{User: user, ImageURL: imageURL}, http.StatusOK)
}

// listUsers serves every account. Admin only.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if role, ok := utils.GetRoleFromContext(ctx); !ok || !role.IsAdmin() {
		log.Error().Msg("non-admin attempted to list users")
		http.Error(w, service.ErrForbidden.Error(), http.StatusForbidden)
		return
	}

	users, err := h.services.UserService.ListUsers(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

// deleteUser removes an account with its profile image. Admin only.
func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if role, ok := utils.GetRoleFromContext(ctx); !ok || !role.IsAdmin() {
		log.Error().Msg("non-admin attempted to delete a user")
		http.Error(w, service.ErrForbidden.Error(), http.StatusForbidden)
		return
	}

	userID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid user id", http.StatusBadRequest)
		return
	}

	if err := h.services.UserService.DeleteUser(ctx, userID); err != nil {
		log.Err(err).Int64("user_id", userID).Msg("user deletion failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteMessage(w, "user deleted", http.StatusOK)
}

// imageFromForm reads the optional "image" file part into memory.
// A form without an image part yields (nil, nil).
func imageFromForm(r *http.Request) (*service.ImageUpload, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &service.ImageUpload{Name: header.Filename, Data: data}, nil
}
