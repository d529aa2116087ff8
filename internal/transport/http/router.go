package http

import (
	"log/slog"
	"net/http"

	"orgadmin/internal/dto"
	"orgadmin/internal/form"
	"orgadmin/internal/observability/metrics"
	obsmw "orgadmin/internal/observability/middleware"
	"orgadmin/internal/routes"
	"orgadmin/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Deps struct {
	Devices      service.DeviceService
	Users        service.UserService
	Institutions service.InstitutionService
	Offers       service.OfferRequestService
	Catalog      service.CatalogService

	Routes     *routes.Table
	SigningKey []byte
	Logger     *slog.Logger

	// MaxUploadBytes caps a submission body; zero means the default.
	MaxUploadBytes int64
}

const defaultMaxUploadBytes = 10 << 20

type handler struct {
	deps Deps
	log  *slog.Logger
}

func NewRouter(deps Deps) http.Handler {
	if deps.Logger == nil {
		deps.Logger = slog.Default()
	}
	if deps.MaxUploadBytes <= 0 {
		deps.MaxUploadBytes = defaultMaxUploadBytes
	}
	if deps.Routes == nil {
		deps.Routes = routes.Default()
	}

	h := &handler{deps: deps, log: deps.Logger}

	r := chi.NewRouter()
	r.Use(obsmw.WithRequestAndTrace)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Use(BearerAuth(deps.SigningKey, deps.Routes))

		r.Post("/devices", h.createDevice)
		r.Get("/devices", h.listDevices)

		r.Post("/users", h.createUser)
		r.Get("/users", h.listUsers)

		r.Post("/institutions", h.createInstitution)
		r.Get("/institutions", h.getInstitutions)

		r.Get("/services", h.listServices)
		r.Get("/roles", h.listRoles)

		r.Get("/offer-requests/{id}", h.getOfferRequest)
	})

	return r
}

func (h *handler) submission(w http.ResponseWriter, r *http.Request) (*form.Submission, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.deps.MaxUploadBytes)
	sub, err := form.FromRequest(r, h.deps.MaxUploadBytes)
	if err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return nil, false
	}
	return sub, true
}

func (h *handler) createDevice(w http.ResponseWriter, r *http.Request) {
	sub, ok := h.submission(w, r)
	if !ok {
		metrics.EntitySubmissionsTotal.WithLabelValues("device", "rejected").Inc()
		return
	}
	device, err := h.deps.Devices.Create(r.Context(), sub)
	if err != nil {
		metrics.EntitySubmissionsTotal.WithLabelValues("device", "rejected").Inc()
		writeError(w, r, h.log, "device", err)
		return
	}
	metrics.EntitySubmissionsTotal.WithLabelValues("device", "created").Inc()
	writeJSON(w, http.StatusOK, dto.DeviceEnvelope{Success: true, Data: *device})
}

func (h *handler) listDevices(w http.ResponseWriter, r *http.Request) {
	devices, err := h.deps.Devices.List(r.Context())
	if err != nil {
		writeError(w, r, h.log, "device", err)
		return
	}
	writeJSON(w, http.StatusOK, devices)
}

func (h *handler) createUser(w http.ResponseWriter, r *http.Request) {
	sub, ok := h.submission(w, r)
	if !ok {
		metrics.EntitySubmissionsTotal.WithLabelValues("user", "rejected").Inc()
		return
	}
	user, err := h.deps.Users.Create(r.Context(), sub)
	if err != nil {
		metrics.EntitySubmissionsTotal.WithLabelValues("user", "rejected").Inc()
		writeError(w, r, h.log, "user", err)
		return
	}
	metrics.EntitySubmissionsTotal.WithLabelValues("user", "created").Inc()
	writeJSON(w, http.StatusOK, user)
}

func (h *handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.deps.Users.List(r.Context())
	if err != nil {
		writeError(w, r, h.log, "user", err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *handler) createInstitution(w http.ResponseWriter, r *http.Request) {
	sub, ok := h.submission(w, r)
	if !ok {
		metrics.EntitySubmissionsTotal.WithLabelValues("institution", "rejected").Inc()
		return
	}
	inst, err := h.deps.Institutions.Create(r.Context(), sub)
	if err != nil {
		metrics.EntitySubmissionsTotal.WithLabelValues("institution", "rejected").Inc()
		writeError(w, r, h.log, "institution", err)
		return
	}
	metrics.EntitySubmissionsTotal.WithLabelValues("institution", "created").Inc()
	writeJSON(w, http.StatusOK, inst)
}

// getInstitutions returns either all institutions ordered by name or, with
// the userId query parameter, the single institution assigned to that user.
func (h *handler) getInstitutions(w http.ResponseWriter, r *http.Request) {
	if raw := r.URL.Query().Get("userId"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			http.Error(w, "Invalid userId", http.StatusBadRequest)
			return
		}
		inst, err := h.deps.Institutions.GetByUser(r.Context(), userID)
		if err != nil {
			writeError(w, r, h.log, "institution", err)
			return
		}
		writeJSON(w, http.StatusOK, inst)
		return
	}

	institutions, err := h.deps.Institutions.List(r.Context())
	if err != nil {
		writeError(w, r, h.log, "institution", err)
		return
	}
	writeJSON(w, http.StatusOK, institutions)
}

func (h *handler) listServices(w http.ResponseWriter, r *http.Request) {
	services, err := h.deps.Catalog.Services(r.Context())
	if err != nil {
		writeError(w, r, h.log, "service", err)
		return
	}
	writeJSON(w, http.StatusOK, services)
}

func (h *handler) listRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.deps.Catalog.Roles(r.Context())
	if err != nil {
		writeError(w, r, h.log, "role", err)
		return
	}
	writeJSON(w, http.StatusOK, roles)
}

func (h *handler) getOfferRequest(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}
	req, err := h.deps.Offers.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, "offerRequest", err)
		return
	}
	writeJSON(w, http.StatusOK, req)
}
