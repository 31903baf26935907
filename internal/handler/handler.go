package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/schedulo-dev/staff-scheduler/backend/internal/chat"
	"github.com/schedulo-dev/staff-scheduler/backend/internal/config"
	"github.com/schedulo-dev/staff-scheduler/backend/internal/domain"
	"github.com/schedulo-dev/staff-scheduler/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client
	hub         *chat.Hub

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client, hub *chat.Hub) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	en := en.New()
	uni := ut.New(en, en)
	trans, _ := uni.GetTranslator("en")
	if err := en_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,
		hub:         hub,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// authentication
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Post("/forget", h.ForgetPassword)
		r.Post("/reset-password", h.ResetPassword)
		r.Post("/signup", h.Signup)
		r.With(h.auth).Post("/change-password", h.ChangePassword)
	})

	// everything below requires a valid session
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/user", func(r chi.Router) {
			r.Get("/profile", h.GetMyProfile)
			r.Get("/all-profile", h.GetAllEmployeeProfiles)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleManager})).Post("/invite-user", h.InviteUser)
			r.Get("/manager-profile", h.GetManagerProfiles)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Post("/add-manager", h.AddManager)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin})).Route("/delete-manager/{id}", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Delete("/", h.DeleteManager)
			})
			r.Route("/{id}/rating", func(r chi.Router) {
				r.Use(h.userInfo)
				r.Get("/", h.GetRating)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleManager})).Put("/", h.UpdateRating)
			})
		})

		r.Route("/location", func(r chi.Router) {
			r.Get("/", h.GetAllLocations)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleManager})).Post("/", h.CreateLocation)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.locationInfo)
				r.Get("/", h.GetLocation)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleManager})).Patch("/", h.UpdateLocation)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleManager})).Delete("/", h.DeleteLocation)
			})
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Get("/", h.GetShifts)
			r.Get("/calendar", h.GetShiftCalendar)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleManager})).Post("/assign", h.AssignShift)
			r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleManager})).Delete("/{id}", h.DeleteShift)
		})

		r.Route("/availability", func(r chi.Router) {
			r.Get("/", h.GetAvailability)
			r.Get("/calendar", h.GetAvailabilityCalendar)
			r.Post("/", h.CreateAvailability)
		})

		r.Route("/shift-request", func(r chi.Router) {
			r.Get("/", h.GetShiftRequests)
			r.Post("/", h.CreateShiftRequest)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.shiftRequestInfo)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleManager})).Patch("/status", h.UpdateShiftRequestStatus)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleManager})).Delete("/", h.DeleteShiftRequest)
			})
		})

		r.Route("/cv", func(r chi.Router) {
			r.Get("/", h.GetAllCVs)
			r.Post("/", h.SubmitCV)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.cvInfo)
				r.With(h.RequiredRole([]domain.Role{domain.RoleAdmin, domain.RoleManager})).Patch("/status", h.UpdateCVStatus)
			})
		})

		r.Route("/chat", func(r chi.Router) {
			r.Post("/create", h.CreateChat)
			r.Post("/create-group", h.CreateGroupChat)
			r.Get("/list", h.GetChatList)
			r.Route("/messages/{id}", func(r chi.Router) {
				r.Use(h.chatInfo)
				r.Use(h.requireChatParticipant)
				r.Get("/", h.GetChatMessages)
			})
			r.Post("/send", h.SendChatMessage)
			r.Post("/add-to-group", h.AddToGroup)
			r.Post("/remove-from-group", h.RemoveFromGroup)
			r.Route("/leave-group/{id}", func(r chi.Router) {
				r.Use(h.chatInfo)
				r.Use(h.requireChatParticipant)
				r.Delete("/", h.LeaveGroup)
			})
		})

		r.Get("/ws/chat", h.ServeChatSocket)
	})
}
