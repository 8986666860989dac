package handler

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/locales/it"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	it_translations "github.com/go-playground/validator/v10/translations/it"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"

	"github.com/gestione-turni/backend/internal/config"
	"github.com/gestione-turni/backend/internal/repository"
)

type Handler struct {
	validate    *validator.Validate
	config      *config.Config
	repository  *repository.Repository
	translator  ut.Translator
	mailChannel *amqp.Channel
	redisClient *redis.Client

	Mux *chi.Mux
}

func NewHandler(cfg *config.Config, repo *repository.Repository, mailCh *amqp.Channel, rdb *redis.Client) (*Handler, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())
	it := it.New()
	uni := ut.New(it, it)
	trans, _ := uni.GetTranslator("it")
	if err := it_translations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, err
	}

	return &Handler{
		validate:    validate,
		config:      cfg,
		repository:  repo,
		translator:  trans,
		mailChannel: mailCh,
		redisClient: rdb,

		Mux: chi.NewRouter(),
	}, nil
}

func (h *Handler) RegisterRoutes() {
	h.Mux.Use(h.logger)
	h.Mux.Use(h.recoverer)

	// autenticazione
	h.Mux.Route("/auth", func(r chi.Router) {
		r.Post("/bootstrap-admin", h.BootstrapAdmin)
		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Route("/reset-password", func(r chi.Router) {
			r.Post("/require", h.RequireResetPassword)
			r.Post("/confirm", h.ConfirmResetPassword)
		})
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/change-password", h.ChangePassword)
		})
	})

	// tutto il resto richiede il login
	h.Mux.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Route("/people", func(r chi.Router) {
			r.Get("/", h.GetAllPeople)
			r.Post("/", h.CreatePerson)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.person)
				r.Patch("/", h.UpdatePerson)
				r.Delete("/", h.DeletePerson)
				r.Put("/rotation", h.SetPersonRotation)
			})
		})

		r.Route("/shifts", func(r chi.Router) {
			r.Get("/", h.GetAllShifts)
			r.Post("/", h.CreateShift)
			r.Route("/{id}", func(r chi.Router) {
				r.Use(h.shift)
				r.Patch("/", h.UpdateShift)
				r.Delete("/", h.DeleteShift)
			})
		})

		r.Route("/absences", func(r chi.Router) {
			r.Get("/", h.GetAllAbsences)
			r.Post("/", h.CreateAbsence)
			r.Delete("/{id}", h.DeleteAbsence)
		})

		r.Route("/weeks/{monday}", func(r chi.Router) {
			r.Use(h.week)
			r.Get("/plan", h.GetWeekPlan)
			r.Get("/absences", h.GetWeekAbsences)
			r.Put("/cell", h.PutCell)
			r.Post("/clear", h.ClearWeek)
			r.Get("/meta", h.GetWeekMeta)
			r.Put("/meta", h.PutWeekMeta)
		})
	})
}
