package handlers

import (
	"context"
	"net/http"

	"github.com/CrowderSoup/taskboard/services"
	"github.com/gorilla/mux"
)

// resource serves the five CRUD routes of one entity. R is the stored
// record, N the validated create request and P the validated partial update.
type resource[R, N, P any] struct {
	*base

	name   string // "task": event entity and "<name>_id" response key
	plural string // "tasks": route segment and list response key
	title  string // "Task": message prefix

	parseNew   func(v *validator) N
	parsePatch func(v *validator) P

	create func(ctx context.Context, n N) (int64, error)
	get    func(ctx context.Context, id int64) (*R, error)
	list   func(ctx context.Context) ([]R, error)
	update func(ctx context.Context, id int64, p P) error
	delete func(ctx context.Context, id int64) error
}

// mount registers the collection and item routes of res on r.
func mount[R, N, P any](r *mux.Router, res *resource[R, N, P]) {
	collection := "/" + res.plural
	item := collection + "/{id:[0-9]+}"

	r.HandleFunc(collection, res.Create).Methods(http.MethodPost)
	r.HandleFunc(collection, res.List).Methods(http.MethodGet)
	r.HandleFunc(item, res.Get).Methods(http.MethodGet)
	r.HandleFunc(item, res.Update).Methods(http.MethodPut)
	r.HandleFunc(item, res.Delete).Methods(http.MethodDelete)
}

func (res *resource[R, N, P]) publish(action string, id int64) {
	res.events.Publish(services.Event{Type: res.name + "." + action, Entity: res.name, ID: id})
}

// Create validates the body into N, inserts it and answers 201 with the new
// identity.
func (res *resource[R, N, P]) Create(w http.ResponseWriter, r *http.Request) {
	p, err := decodePayload(r)
	if err != nil {
		res.payloadError(w, err)
		return
	}

	v := &validator{p: p}
	n := res.parseNew(v)
	if v.err != nil {
		res.payloadError(w, v.err)
		return
	}

	id, err := res.create(r.Context(), n)
	if err != nil {
		res.storeError(w, r, res.title, err)
		return
	}
	res.publish("created", id)

	writeJSON(w, http.StatusCreated, map[string]any{
		"message":        res.title + " created successfully",
		res.name + "_id": id,
	})
}

// List answers every record, unfiltered and unpaginated.
func (res *resource[R, N, P]) List(w http.ResponseWriter, r *http.Request) {
	recs, err := res.list(r.Context())
	if err != nil {
		res.storeError(w, r, res.title, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{res.plural: recs})
}

func (res *resource[R, N, P]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, res.title+" not found")
		return
	}

	rec, err := res.get(r.Context(), id)
	if err != nil {
		res.storeError(w, r, res.title, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// Update overwrites only the fields present in the body.
func (res *resource[R, N, P]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, res.title+" not found")
		return
	}

	p, err := decodePayload(r)
	if err != nil {
		res.payloadError(w, err)
		return
	}

	v := &validator{p: p}
	patch := res.parsePatch(v)
	if v.err != nil {
		res.payloadError(w, v.err)
		return
	}

	if err := res.update(r.Context(), id, patch); err != nil {
		res.storeError(w, r, res.title, err)
		return
	}
	res.publish("updated", id)

	writeMessage(w, http.StatusOK, res.title+" updated successfully")
}

func (res *resource[R, N, P]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		writeError(w, http.StatusNotFound, res.title+" not found")
		return
	}

	if err := res.delete(r.Context(), id); err != nil {
		res.storeError(w, r, res.title, err)
		return
	}
	res.publish("deleted", id)

	writeMessage(w, http.StatusOK, res.title+" deleted successfully")
}

// serveChildren answers the records related to the {id} parent, or 404 when
// the parent does not exist.
func serveChildren[R any](b *base, parentTitle, key string, fetch func(ctx context.Context, id int64) ([]R, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r)
		if !ok {
			writeError(w, http.StatusNotFound, parentTitle+" not found")
			return
		}

		recs, err := fetch(r.Context(), id)
		if err != nil {
			b.storeError(w, r, parentTitle, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{key: recs})
	}
}
