package http

import (
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/competency-web/internal/domain/auth"
	"github.com/cmlabs-hris/competency-web/internal/handler/http/response"
	"github.com/cmlabs-hris/competency-web/internal/pkg/session"
	authService "github.com/cmlabs-hris/competency-web/internal/service/auth"
)

// registerRedirectAfter is how long the register success message stays up
// before moving on to the login screen, in seconds.
const registerRedirectAfter = 2

type AuthHandler interface {
	LoginPage(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
	RegisterPage(w http.ResponseWriter, r *http.Request)
	Register(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	screen
	authService authService.AuthService
}

type registerView struct {
	Form        authService.RegisterForm
	Roles       []auth.Role
	Role        string
	Departments []auth.Department
}

func newRegisterView(form authService.RegisterForm) registerView {
	role := string(form.Values.Role)
	if role == "" {
		role = string(auth.Roles[0])
	}
	return registerView{
		Form:        form,
		Roles:       auth.Roles,
		Role:        role,
		Departments: auth.Departments,
	}
}

func NewAuthHandler(views *response.Renderer, sessions session.Store, authService authService.AuthService) AuthHandler {
	return &AuthHandlerImpl{
		screen:      screen{views: views, sessions: sessions},
		authService: authService,
	}
}

// LoginPage implements AuthHandler.
func (a *AuthHandlerImpl) LoginPage(w http.ResponseWriter, r *http.Request) {
	a.render(w, r, http.StatusOK, "login", response.Page{Title: "Login", Data: authService.LoginForm{}})
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest
	if err := decodeForm(r, &loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	form, ok := a.authService.Login(r.Context(), loginReq)
	if !ok {
		a.render(w, r, http.StatusOK, "login", response.Page{Title: "Login", Data: form})
		return
	}

	slog.Info("User logged in", "username", loginReq.Username)
	a.redirect(w, r, "/")
}

// RegisterPage implements AuthHandler.
func (a *AuthHandlerImpl) RegisterPage(w http.ResponseWriter, r *http.Request) {
	a.render(w, r, http.StatusOK, "register", response.Page{
		Title: "Register",
		Data:  newRegisterView(authService.RegisterForm{}),
	})
}

// Register implements AuthHandler.
func (a *AuthHandlerImpl) Register(w http.ResponseWriter, r *http.Request) {
	var registerReq auth.RegisterRequest
	if err := decodeForm(r, &registerReq); err != nil {
		slog.Error("Register decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	form := a.authService.Register(r.Context(), registerReq)
	page := response.Page{Title: "Register", Data: newRegisterView(form)}
	if form.Registered() {
		page.RefreshURL = "/login"
		page.RefreshAfter = registerRedirectAfter
	}
	a.render(w, r, http.StatusOK, "register", page)
}
