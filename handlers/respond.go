package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/CrowderSoup/taskboard/database"
	"github.com/CrowderSoup/taskboard/services"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// Publisher receives an event for every successful mutation.
type Publisher interface {
	Publish(ev services.Event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(services.Event) {}

// base carries what every entity handler needs.
type base struct {
	store  *database.Store
	events Publisher
	logger *log.Logger
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.WithError(err).Warn("Error encoding response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

// payloadError answers a request whose body failed validation.
func (b *base) payloadError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusBadRequest, err.Error())
}

// storeError maps a store failure onto a response. Only unexpected errors
// are logged; the client never sees their text.
func (b *base) storeError(w http.ResponseWriter, r *http.Request, title string, err error) {
	switch {
	case database.IsNotFound(err):
		writeError(w, http.StatusNotFound, title+" not found")
	case database.IsConstraint(err):
		writeError(w, http.StatusConflict, constraintMessage(err))
	default:
		entry(r, b.logger).WithError(err).Error("store operation failed")
		writeError(w, http.StatusInternalServerError, "Server error")
	}
}

func constraintMessage(err error) string {
	switch {
	case errors.Is(err, database.ErrDuplicateKey):
		return "duplicate value for a unique field"
	case errors.Is(err, database.ErrForeignKey):
		return "referenced record does not exist or is still referenced"
	case errors.Is(err, database.ErrNotNull):
		return "required field is null"
	default:
		return "constraint violation"
	}
}

// pathID returns the {id} route variable. Routes only match digits, so a
// parse failure means the value overflowed.
func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	return id, err == nil
}
