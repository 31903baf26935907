package handler

import (
	"net/http"

	"github.com/schedulo-dev/staff-scheduler/backend/internal/domain"
	"github.com/schedulo-dev/staff-scheduler/backend/internal/utils"
	"golang.org/x/crypto/bcrypt"
)

func (h *Handler) GetManagerProfiles(w http.ResponseWriter, r *http.Request) {
	page, limit, _ := h.listParams(r)

	managers, total, err := h.repository.GetUsersByRole(domain.RoleManager, page, limit)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "managers fetched", map[string]any{
		"managers":   managers,
		"pagination": domain.NewPagination(total, page, limit),
	})
}

// AddManager creates a manager account directly, with a generated password
// delivered by email. Managers do not go through the invite flow.
func (h *Handler) AddManager(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name" validate:"required"`
		Email string `json:"email" validate:"required,email"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	password := utils.GenerateRandomPassword(h.config.NewManager.PasswordLength)
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		h.internalServerError(w, r, err)
		return
	}

	manager := &domain.User{
		Name:         &req.Name,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		Role:         domain.RoleManager,
	}

	if err := h.repository.CreateUser(manager); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	mailMessage := domain.MailMessage{
		Type: "add_manager",
		To:   manager.Email,
		Data: domain.AddManagerMailData{
			Name:     req.Name,
			Email:    req.Email,
			Password: password,
		},
	}

	if err := h.publishMail(mailMessage); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "manager added", map[string]any{
		"manager": manager,
	})
}

func (h *Handler) DeleteManager(w http.ResponseWriter, r *http.Request) {
	user := r.Context().Value(UserInfoCtx).(*domain.User)

	if user.Role != domain.RoleManager {
		h.errorResponse(w, r, "user is not a manager")
		return
	}

	if err := h.repository.DeleteUser(user.ID); err != nil {
		h.internalServerError(w, r, err)
		return
	}

	h.successResponse(w, r, "manager deleted", nil)
}
