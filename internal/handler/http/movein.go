package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sunjoo-dev/movein-registry/internal/logger"
	"github.com/sunjoo-dev/movein-registry/internal/utils"
	"github.com/sunjoo-dev/movein-registry/models"
)

// createMoveIn registers a relocation notice for the authenticated caller.
// The RRN arrives in plaintext and is encrypted by the service before
// anything is written; the registration time in the request body is ignored.
func (h *Handler) createMoveIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var movein models.MoveIn
	if err := json.NewDecoder(r.Body).Decode(&movein); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	created, err := h.services.MoveInService.Create(ctx, movein, userID)
	if err != nil {
		log.Err(err).Msg("relocation notice creation failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

// listMoveIns serves all notices with the RRN in its stored, encrypted form.
// An optional ?name= query narrows the result by name, case-insensitively.
func (h *Handler) listMoveIns(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	moveins, err := h.services.MoveInService.List(ctx, r.URL.Query().Get("name"))
	if err != nil {
		log.Err(err).Msg("relocation notice listing failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, moveins, http.StatusOK)
}

// getMoveIn serves a single notice with the RRN decrypted.
func (h *Handler) getMoveIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := moveInID(r)
	if err != nil {
		http.Error(w, "invalid notice id", http.StatusBadRequest)
		return
	}

	movein, err := h.services.MoveInService.Get(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("relocation notice lookup failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, movein, http.StatusOK)
}

// updateMoveIn applies a partial update to a notice.
func (h *Handler) updateMoveIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := moveInID(r)
	if err != nil {
		http.Error(w, "invalid notice id", http.StatusBadRequest)
		return
	}

	var update models.MoveInUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updated, err := h.services.MoveInService.Update(ctx, id, update)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("relocation notice update failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

// approveMoveIn marks a notice approved. Admin only.
func (h *Handler) approveMoveIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if role, ok := utils.GetRoleFromContext(ctx); !ok || !role.IsAdmin() {
		log.Error().Msg("non-admin attempted to approve a notice")
		http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		return
	}

	id, err := moveInID(r)
	if err != nil {
		http.Error(w, "invalid notice id", http.StatusBadRequest)
		return
	}

	approved, err := h.services.MoveInService.Approve(ctx, id)
	if err != nil {
		log.Err(err).Int64("id", id).Msg("relocation notice approval failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, approved, http.StatusOK)
}

// deleteMoveIn removes a notice.
func (h *Handler) deleteMoveIn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	id, err := moveInID(r)
	if err != nil {
		http.Error(w, "invalid notice id", http.StatusBadRequest)
		return
	}

	if err := h.services.MoveInService.Delete(ctx, id); err != nil {
		log.Err(err).Int64("id", id).Msg("relocation notice deletion failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteMessage(w, "relocation notice deleted", http.StatusOK)
}

// moveInID parses the {id} route parameter.
func moveInID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
