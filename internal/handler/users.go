package handler

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/schedulo-dev/staff-scheduler/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := h.currentUserID(r)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	user, err := h.repository.GetUserByID(userID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			h.errorResponse(w, r, "user not found")
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "profile fetched", map[string]any{
		"user": user,
	})
}

func (h *Handler) GetAllEmployeeProfiles(w http.ResponseWriter, r *http.Request) {
	page, limit, _ := h.listParams(r)

	users, total, err := h.repository.GetUsersByRole(domain.RoleEmployee, page, limit)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "employees fetched", map[string]any{
		"users":      users,
		"pagination": domain.NewPagination(total, page, limit),
	})
}

func (h *Handler) InviteUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email   string `json:"email" validate:"required,email"`
		Message string `json:"message"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	if _, err := h.repository.GetUserByEmail(req.Email); err == nil {
		h.errorResponse(w, r, "a user with this email already exists")
		return
	} else if !errors.Is(err, sql.ErrNoRows) {
		h.internalServerError(w, r, err)
		return
	}

	inviteToken := uuid.NewString()

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	if err := h.redisClient.Set(ctx, fmt.Sprintf("invite_%s", inviteToken), req.Email, time.Duration(h.config.Invite.Expiration)*time.Second).Err(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	mailMessage := domain.MailMessage{
		Type: "invite_user",
		To:   req.Email,
		Data: domain.InviteUserMailData{
			Email:       req.Email,
			Message:     req.Message,
			InviteToken: inviteToken,
		},
	}

	if err := h.publishMail(mailMessage); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "invitation sent", nil)
}

// Signup completes an invitation: the token from the invite email proves the
// address, and the account is created as an active employee.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req struct {
		InviteToken string `json:"inviteToken" validate:"required"`
		Name        string `json:"name" validate:"required"`
		Password    string `json:"password" validate:"required,min=8"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationTimeout)*time.Second)
	defer cancel()

	inviteKey := fmt.Sprintf("invite_%s", req.InviteToken)
	email, err := h.redisClient.Get(ctx, inviteKey).Result()
	if err != nil || email == "" {
		h.errorResponse(w, r, "invalid or expired invitation")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	user := &domain.User{
		Name:         &req.Name,
		Email:        email,
		PasswordHash: string(hashedPassword),
		Role:         domain.RoleEmployee,
	}
	if err := h.repository.CreateUser(user); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	if err := h.redisClient.Del(ctx, inviteKey).Err(); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "account created", map[string]any{
		"user": user,
	})
}

func (h *Handler) GetRating(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(UserInfoCtx).(*domain.User)

	rating, err := h.repository.GetRatingByUserID(user.ID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			// an unrated employee renders as all zeroes
			h.successResponse(w, r, "rating fetched", map[string]any{
				"rating": domain.Rating{UserID: user.ID},
			})
		default:
			h.internalServerError(w, r, err)
		}
		return
	}

	h.successResponse(w, r, "rating fetched", map[string]any{
		"rating": rating,
	})
}

func (h *Handler) UpdateRating(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(UserInfoCtx).(*domain.User)

	var req struct {
		Competence  domain.RatingCategory `json:"competence"`
		Punctuality domain.RatingCategory `json:"punctuality"`
		Behavior    domain.RatingCategory `json:"behavior"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	for _, star := range []int32{req.Competence.Star, req.Punctuality.Star, req.Behavior.Star} {
		if star < 0 || star > 5 {
			h.errorResponse(w, r, "stars must be between 0 and 5")
			return
		}
	}

	rating := &domain.Rating{
		UserID:      user.ID,
		Competence:  req.Competence,
		Punctuality: req.Punctuality,
		Behavior:    req.Behavior,
	}

	if err := h.repository.UpsertRating(rating); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "rating updated", map[string]any{
		"rating": rating,
	})
}
