package handlers

import (
	"net/http"

	"github.com/CrowderSoup/taskboard/database"
	"github.com/CrowderSoup/taskboard/services"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Options struct {
	Store *database.Store

	// Hub, when set, receives change events and is served at /ws.
	Hub *services.Hub

	// Auth, when set, requires a bearer token on writes.
	Auth *services.AuthService

	Logger *log.Logger

	// StaticDir, when set, is served at / for anything no route claims.
	StaticDir string
}

// NewRouter builds the full HTTP surface.
func NewRouter(opts Options) *mux.Router {
	logger := opts.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}

	b := &base{store: opts.Store, events: nopPublisher{}, logger: logger}
	if opts.Hub != nil {
		b.events = opts.Hub
	}

	r := mux.NewRouter()
	r.Use(RequestLogger(logger))
	if opts.Auth != nil {
		r.Use(NewAuthMiddleware(opts.Auth).Auth)
	}

	mount(r, newTaskResource(b))
	mount(r, newUserResource(b))
	mount(r, newBoardResource(b))
	mount(r, newColumnResource(b))
	mount(r, newAssigneeResource(b))

	r.HandleFunc("/tasks/{id:[0-9]+}/assignees", serveChildren(b, "Task", "assignees", b.store.TaskAssignees)).Methods(http.MethodGet)
	r.HandleFunc("/users/{id:[0-9]+}/boards", serveChildren(b, "User", "boards", b.store.UserBoards)).Methods(http.MethodGet)
	r.HandleFunc("/boards/{id:[0-9]+}/columns", serveChildren(b, "Board", "columns", b.store.BoardColumns)).Methods(http.MethodGet)
	r.HandleFunc("/columns/{id:[0-9]+}/tasks", serveChildren(b, "Column", "tasks", b.store.ColumnTasks)).Methods(http.MethodGet)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := b.store.Ping(r.Context()); err != nil {
			entry(r, logger).WithError(err).Error("health check failed")
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "error"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	if opts.Hub != nil {
		r.Handle("/ws", NewFeedHandler(opts.Hub, b)).Methods(http.MethodGet)
	}

	if opts.StaticDir != "" {
		r.PathPrefix("/").Handler(http.FileServer(http.Dir(opts.StaticDir))).Methods(http.MethodGet, http.MethodHead)
	}

	return r
}
