package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cmlabs-hris/competency-web/internal/config"
	"github.com/cmlabs-hris/competency-web/internal/domain/competency"
	"github.com/cmlabs-hris/competency-web/internal/domain/employee"
	"github.com/cmlabs-hris/competency-web/internal/handler/http/response"
	"github.com/cmlabs-hris/competency-web/internal/pkg/apiclient"
	"github.com/cmlabs-hris/competency-web/internal/pkg/session"
	"github.com/cmlabs-hris/competency-web/internal/repository/rest"
	serviceAuth "github.com/cmlabs-hris/competency-web/internal/service/auth"
	competencyService "github.com/cmlabs-hris/competency-web/internal/service/competency"
	employeeService "github.com/cmlabs-hris/competency-web/internal/service/employee"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBackendToken = "backend-token"

// fakeBackend is an in-memory stand-in for the competency-management API.
type fakeBackend struct {
	mu           sync.Mutex
	competencies []competency.Competency
	employees    string
	calls        []string
	created      []employee.CreateEmployeeRequest
	registered   []map[string]string
}

func (b *fakeBackend) record(r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = append(b.calls, r.Method+" "+r.URL.Path)
}

func (b *fakeBackend) called(call string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, c := range b.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (b *fakeBackend) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			b.record(r)
			next.ServeHTTP(w, r)
		})
	})

	r.Post("/login", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req["password"] != "secret" {
			writeTestJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Incorrect username or password"})
			return
		}
		writeTestJSON(w, http.StatusOK, map[string]string{"access_token": testBackendToken, "token_type": "bearer"})
	})
	r.Post("/register", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		_ = json.NewDecoder(r.Body).Decode(&req)
		b.mu.Lock()
		b.registered = append(b.registered, req)
		b.mu.Unlock()
		writeTestJSON(w, http.StatusOK, map[string]string{"message": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Header.Get("Authorization") != "Bearer "+testBackendToken {
					writeTestJSON(w, http.StatusUnauthorized, map[string]string{"detail": "Not authenticated"})
					return
				}
				next.ServeHTTP(w, r)
			})
		})

		r.Get("/competencies", func(w http.ResponseWriter, r *http.Request) {
			b.mu.Lock()
			defer b.mu.Unlock()
			writeTestJSON(w, http.StatusOK, b.competencies)
		})
		r.Post("/competencies", func(w http.ResponseWriter, r *http.Request) {
			var c competency.Competency
			_ = json.NewDecoder(r.Body).Decode(&c)
			b.mu.Lock()
			c.ID = len(b.competencies) + 10
			b.competencies = append(b.competencies, c)
			b.mu.Unlock()
			writeTestJSON(w, http.StatusOK, c)
		})
		r.Put("/competencies/{id}", func(w http.ResponseWriter, r *http.Request) {
			var c competency.Competency
			_ = json.NewDecoder(r.Body).Decode(&c)
			c.ID, _ = strconv.Atoi(chi.URLParam(r, "id"))
			writeTestJSON(w, http.StatusOK, c)
		})
		r.Delete("/competencies/{id}", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNoContent)
		})
		r.Get("/employees", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, b.employees)
		})
		r.Post("/employees", func(w http.ResponseWriter, r *http.Request) {
			var req employee.CreateEmployeeRequest
			_ = json.NewDecoder(r.Body).Decode(&req)
			b.mu.Lock()
			b.created = append(b.created, req)
			b.mu.Unlock()
			writeTestJSON(w, http.StatusOK, map[string]interface{}{"id": 7, "emp_name": req.EmpName})
		})
		r.Get("/employee-competencies", func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(w, http.StatusOK, []interface{}{})
		})
	})
	return r
}

func writeTestJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestApp(t *testing.T) (http.Handler, *fakeBackend) {
	t.Helper()

	backend := &fakeBackend{
		competencies: []competency.Competency{
			{ID: 1, Code: "C1", Name: "Communication"},
			{ID: 2, Code: "C2", Name: "Leadership"},
		},
		employees: `[{"id": 1, "emp_number": "E-1", "emp_name": "Ada", "department_id": 2,
			"department": {"id": 2, "name": "IT"}, "evaluation_status": "IN_PROGRESS",
			"competencies": [
				{"competency_id": 1, "required_score": 7, "actual_score": 8},
				{"competency_id": 2, "required_score": 7, "actual_score": 6},
				{"competency_id": 3, "required_score": 5, "actual_score": null}
			]}]`,
	}
	srv := httptest.NewServer(backend.routes())
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		App:  config.AppConfig{Env: "test", Version: "test", LogLevel: "error"},
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}},
	}

	api, err := apiclient.NewClient(srv.URL, srv.Client())
	require.NoError(t, err)
	views, err := response.NewRenderer()
	require.NoError(t, err)
	sessions := session.NewCookieStore("router-test-secret", session.CookieOptions{Name: "token", MaxAge: time.Hour})

	competencyRepo := rest.NewCompetencyRepository(api)
	router := NewRouter(
		cfg,
		NewLogger(io.Discard, cfg.App),
		sessions,
		NewHomeHandler(views, sessions),
		NewAuthHandler(views, sessions, serviceAuth.NewAuthService(rest.NewAuthRepository(api))),
		NewCompetencyHandler(views, sessions, competencyService.NewCompetencyService(competencyRepo)),
		NewEmployeeHandler(views, sessions, employeeService.NewEmployeeService(rest.NewEmployeeRepository(api), competencyRepo)),
	)
	return router, backend
}

func send(h http.Handler, method, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	return nil
}

func login(t *testing.T, h http.Handler) *http.Cookie {
	t.Helper()
	rec := send(h, http.MethodPost, "/login", url.Values{"username": {"hr"}, "password": {"secret"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	return cookie
}

func TestPing(t *testing.T) {
	h, _ := newTestApp(t)
	rec := send(h, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHome(t *testing.T) {
	h, _ := newTestApp(t)

	rec := send(h, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "You are not signed in")

	rec = send(h, http.MethodGet, "/", nil, login(t, h))
	assert.Contains(t, rec.Body.String(), "You are signed in")
}

func TestLogin_SetsSessionAndRedirects(t *testing.T) {
	h, _ := newTestApp(t)

	rec := send(h, http.MethodPost, "/login", url.Values{"username": {"hr"}, "password": {"secret"}})
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	assert.True(t, cookie.HttpOnly)
	assert.NotEqual(t, testBackendToken, cookie.Value, "token is wrapped in a signed envelope")
}

func TestLogin_InvalidCredentials(t *testing.T) {
	h, _ := newTestApp(t)

	rec := send(h, http.MethodPost, "/login", url.Values{"username": {"hr"}, "password": {"nope"}})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials")
	assert.Nil(t, sessionCookie(rec))
}

func TestRegister(t *testing.T) {
	h, backend := newTestApp(t)

	rec := send(h, http.MethodGet, "/register", nil)
	assert.Contains(t, rec.Body.String(), `<option value="Fincance">Finance</option>`)

	rec = send(h, http.MethodPost, "/register", url.Values{"username": {"hod"}, "password": {"p"}, "role": {"HOD"}})
	assert.Contains(t, rec.Body.String(), "All fields are required")
	assert.Equal(t, 0, backend.called("POST /register"))

	rec = send(h, http.MethodPost, "/register", url.Values{
		"username": {"hod"}, "password": {"p"}, "role": {"HOD"}, "department_name": {"Fincance"},
	})
	body := rec.Body.String()
	assert.Contains(t, body, "User registered successfully!")
	assert.Contains(t, body, "url=/login")
	assert.Equal(t, 1, backend.called("POST /register"))
	require.Len(t, backend.registered, 1)
	assert.Equal(t, "Fincance", backend.registered[0]["department_name"], "department keeps the backend spelling")
}

func TestCompetencies_RequireSession(t *testing.T) {
	h, backend := newTestApp(t)

	rec := send(h, http.MethodGet, "/competencies", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "User not authenticated")
	assert.Equal(t, 0, backend.called("GET /competencies"))
}

func TestCompetencies_EditAndUpdate(t *testing.T) {
	h, backend := newTestApp(t)
	cookie := login(t, h)

	rec := send(h, http.MethodGet, "/competencies?edit=2", nil, cookie)
	body := rec.Body.String()
	assert.Contains(t, body, `action="/competencies/2/update"`)
	assert.Contains(t, body, `value="Leadership"`)

	rec = send(h, http.MethodPost, "/competencies/2/update", url.Values{"code": {"L1"}, "name": {"People leadership"}}, cookie)
	body = rec.Body.String()
	assert.Contains(t, body, "People leadership")
	assert.Contains(t, body, "Communication")
	assert.NotContains(t, body, "/competencies/2/update", "modal closes")
	assert.Equal(t, 1, backend.called("PUT /competencies/2"))
}

func TestCompetencies_DeleteNeedsConfirmation(t *testing.T) {
	h, backend := newTestApp(t)
	cookie := login(t, h)

	rec := send(h, http.MethodPost, "/competencies/2/delete", url.Values{}, cookie)
	assert.Contains(t, rec.Body.String(), "Are you sure you want to delete this competency?")
	assert.Equal(t, 0, backend.called("DELETE /competencies/2"))

	rec = send(h, http.MethodPost, "/competencies/2/delete", url.Values{"confirm": {"yes"}}, cookie)
	body := rec.Body.String()
	assert.Equal(t, 1, backend.called("DELETE /competencies/2"))
	assert.NotContains(t, body, "Leadership")
	assert.Contains(t, body, "Communication")
}

func TestCompetencyCreate(t *testing.T) {
	h, backend := newTestApp(t)
	cookie := login(t, h)

	rec := send(h, http.MethodPost, "/competencies/new", url.Values{"code": {""}, "name": {"Negotiation"}}, cookie)
	assert.Contains(t, rec.Body.String(), "Code is required")
	assert.Equal(t, 0, backend.called("POST /competencies"))

	rec = send(h, http.MethodPost, "/competencies/new", url.Values{"code": {"C9"}, "name": {"Negotiation"}}, cookie)
	body := rec.Body.String()
	assert.Contains(t, body, "Negotiation")
	assert.Contains(t, body, "created successfully!")
	assert.Equal(t, 1, backend.called("POST /competencies"))
}

func TestEmployees_ExpandRow(t *testing.T) {
	h, _ := newTestApp(t)
	cookie := login(t, h)

	rec := send(h, http.MethodGet, "/employees", nil, cookie)
	body := rec.Body.String()
	assert.Contains(t, body, "Ada")
	assert.Contains(t, body, "IN PROGRESS")
	assert.NotContains(t, body, "Average score")

	rec = send(h, http.MethodGet, "/employees?expanded=1", nil, cookie)
	body = rec.Body.String()
	assert.Contains(t, body, "Average score")
	assert.Contains(t, body, "7.0")
	assert.Contains(t, body, "Communication")
	assert.Contains(t, body, "Competency #3")
}

func TestEmployeeCreate_RowsAndSubmit(t *testing.T) {
	h, backend := newTestApp(t)
	cookie := login(t, h)

	rec := send(h, http.MethodGet, "/employees/new", nil, cookie)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "competencies[0].competency_id")

	rec = send(h, http.MethodPost, "/employees/new", url.Values{"emp_name": {"Linus"}, "action": {"add"}}, cookie)
	body := rec.Body.String()
	assert.Contains(t, body, "competencies[0].competency_id")
	assert.Contains(t, body, `value="Linus"`)

	incomplete := url.Values{
		"emp_name":                       {"Linus"},
		"competencies[0].competency_id":  {"0"},
		"competencies[0].required_score": {"5"},
		"action":                         {"submit"},
	}
	rec = send(h, http.MethodPost, "/employees/new", incomplete, cookie)
	assert.Contains(t, rec.Body.String(), "Please complete all competency selections")
	assert.Equal(t, 0, backend.called("POST /employees"))

	rec = send(h, http.MethodPost, "/employees/new", url.Values{
		"emp_name":                       {"Linus"},
		"department_id":                  {"abc"},
		"competencies[0].competency_id":  {"2"},
		"competencies[0].required_score": {"6"},
		"competencies[1].competency_id":  {"1"},
		"competencies[1].required_score": {"8"},
		"action":                         {"remove-0"},
	}, cookie)
	assert.NotContains(t, rec.Body.String(), "competencies[1].competency_id")
	assert.Equal(t, 0, backend.called("POST /employees"))

	rec = send(h, http.MethodPost, "/employees/new", url.Values{
		"emp_name":                       {"Linus"},
		"department_id":                  {"abc"},
		"competencies[0].competency_id":  {"1"},
		"competencies[0].required_score": {"8"},
		"action":                         {"submit"},
	}, cookie)
	assert.Contains(t, rec.Body.String(), "Employee added successfully!")
	require.Len(t, backend.created, 1)
	assert.Equal(t, 0, backend.created[0].DepartmentID, "unparsable department id is 0")
	assert.Equal(t, []employee.CompetencyRequirement{{CompetencyID: 1, RequiredScore: 8}}, backend.created[0].Competencies)
}

func TestEmployeeCreate_DuplicateCompetencyRejected(t *testing.T) {
	h, backend := newTestApp(t)
	cookie := login(t, h)

	rec := send(h, http.MethodPost, "/employees/new", url.Values{
		"emp_name":                       {"Linus"},
		"competencies[0].competency_id":  {"1"},
		"competencies[0].required_score": {"5"},
		"competencies[1].competency_id":  {"1"},
		"competencies[1].required_score": {"6"},
		"action":                         {"submit"},
	}, cookie)

	body := rec.Body.String()
	assert.Contains(t, body, "Each competency can only be selected once")
	assert.Contains(t, body, "competencies[1].competency_id", "rows are kept for correction")
	assert.Equal(t, 0, backend.called("POST /employees"))
	assert.Empty(t, backend.created)
}
