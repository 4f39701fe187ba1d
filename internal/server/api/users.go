package api

import (
	"net/http"

	"github.com/IvanChernomyrdin/go-aquamate/internal/server/service/models"
	sharedModels "github.com/IvanChernomyrdin/go-aquamate/internal/shared/models"
)

// CreateUser регистрирует пользователя.
//
// @Summary      Create user
// @Description  Creates a user. Password is stored as argon2id hash and never returned.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        request body models.CreateUserRequest true "New user"
// @Success      201 {object} models.User
// @Failure      400 {object} models.ErrorResponse "Missing user_name/password or bad JSON"
// @Failure      415 {object} models.ErrorResponse "Body is not JSON"
// @Failure      500 {object} models.ErrorResponse
// @Router       /users [post]
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req sharedModels.CreateUserRequest
	if err := decodeJSON(r, &req, true); err != nil {
		h.fail(w, r, "create user", err)
		return
	}

	u, err := h.Svc.Users.Create(r.Context(), models.NewUserInput{
		Name:     req.Name,
		Password: req.Password,
		Bio:      req.Bio,
		X:        req.X,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		h.fail(w, r, "create user", err)
		return
	}
	writeJSON(w, http.StatusCreated, u)
}

// GetUser возвращает профиль пользователя.
//
// @Summary      Get user
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object} models.User
// @Failure      404 {object} models.ErrorResponse
// @Router       /users/{id} [get]
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "get user", err)
		return
	}

	u, err := h.Svc.Users.Get(r.Context(), id)
	if err != nil {
		h.fail(w, r, "get user", err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// UpdateUser частично обновляет профиль: переданные поля перезаписываются, остальные остаются.
//
// @Summary      Update user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id      path int                       true "User ID"
// @Param        request body models.UpdateUserRequest true "Fields to overwrite"
// @Success      200 {object} models.User
// @Failure      400 {object} models.ErrorResponse "Bad JSON"
// @Failure      404 {object} models.ErrorResponse
// @Failure      415 {object} models.ErrorResponse "Body is not JSON"
// @Router       /users/{id} [put]
func (h *Handler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "update user", err)
		return
	}

	var req sharedModels.UpdateUserRequest
	if err := decodeJSON(r, &req, true); err != nil {
		h.fail(w, r, "update user", err)
		return
	}

	u, err := h.Svc.Users.Update(r.Context(), id, models.UserPatch{
		Name:     req.Name,
		Bio:      req.Bio,
		X:        req.X,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		h.fail(w, r, "update user", err)
		return
	}
	writeJSON(w, http.StatusOK, u)
}

// Nearby возвращает пользователей рядом с последней записью о воде.
//
// Один и тот же пользователь может встретиться несколько раз (по разу на запись),
// если сервер не запущен с nearby.latest_only.
//
// @Summary      Nearby users
// @Tags         users
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {array}  models.NearbyUser
// @Failure      404 {object} models.ErrorResponse "No water record for this user, or no nearby records"
// @Router       /users/nearby/{id} [get]
func (h *Handler) Nearby(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		h.fail(w, r, "nearby", err)
		return
	}

	found, err := h.Svc.Nearby.Find(r.Context(), id)
	if err != nil {
		h.fail(w, r, "nearby", err)
		return
	}
	writeJSON(w, http.StatusOK, found)
}
