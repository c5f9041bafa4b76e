package handler

import (
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"github.com/syazwaniiiii/hr-management-system/internal/config"
	"github.com/syazwaniiiii/hr-management-system/internal/domain"
	"github.com/syazwaniiiii/hr-management-system/internal/repository"
	"github.com/syazwaniiiii/hr-management-system/internal/schedule"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	schedule    *schedule.Service
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, svc *schedule.Service, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// report fields under their wire names
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

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
		schedule:    svc,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
	})

	// everything below requires a logged-in employee
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.With(h.requiredRole(domain.RoleAdmin)).Get("/admin", h.AdminRoster)
		r.With(h.myInfo).Get("/employee", h.EmployeeContext)

		r.Route("/schedule", func(r chi.Router) {
			r.Get("/week", h.GetWeekSchedule)
			r.With(h.requiredRole(domain.RoleAdmin)).Post("/assign", h.AssignShift)
			r.With(h.requiredRole(domain.RoleAdmin)).Post("/reset", h.ResetWeekSchedule)
		})
	})
}
