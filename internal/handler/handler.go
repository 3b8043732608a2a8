package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"photofolio/internal/mailer"
	"photofolio/internal/service"
)

type Handlers struct {
	AuthService     service.AuthService
	CategoryService service.CategoryService
	FileService     service.FileService
	PageService     service.PageService
	BlogService     service.BlogService
	HomeService     service.HomeService
	Mailer          mailer.Mailer
	Validate        *validator.Validate
}

func NewHandlers(services *service.Service, mail mailer.Mailer) *Handlers {
	return &Handlers{
		AuthService:     services.Auth,
		CategoryService: services.Category,
		FileService:     services.File,
		PageService:     services.Page,
		BlogService:     services.Blog,
		HomeService:     services.Home,
		Mailer:          mail,
		Validate:        validator.New(),
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{"status": "ok"}, http.StatusOK)
}
