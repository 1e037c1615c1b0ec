// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"foliopress/internal/storage"
	"foliopress/internal/store"
	"foliopress/internal/view"
)

// Descriptor configures one entity's resource controller: how to decode and
// validate its payload, which field holds its asset reference, and how its
// list renders.
type Descriptor[T any] struct {
	// Name appears in log lines and error messages ("testimonial").
	Name string

	// Decode parses a JSON payload into an entity and validates it.
	// On update, existing holds the stored row; Decode merges onto it so
	// partial localized maps keep untouched languages.
	Decode func(payload json.RawMessage, existing *T) (*T, error)

	// AssetRef returns a pointer to the entity's stored asset reference, or
	// nil when the entity carries no uploadable asset.
	AssetRef func(e *T) **string

	// Upload constrains the accepted file when AssetRef is set.
	Upload UploadRules

	// Columns and Actions describe the list table; EmptyMessage shows when
	// the filtered list has no rows.
	Columns      []view.Column
	Actions      []view.Action
	EmptyMessage string

	// AfterSave runs inside create/update after the row is written, for
	// side effects like join-table membership. May be nil.
	AfterSave func(r *http.Request, e *T, payload json.RawMessage) error

	// Decorate enriches a single-entity response with derived data such as
	// join-table membership. May be nil.
	Decorate func(r *http.Request, e *T) error
}

// Resource is the generic CRUD controller for one content entity. Every
// entity endpoint shares this exact request lifecycle; only the Descriptor
// differs.
type Resource[T any] struct {
	repo    *store.Repository[T]
	storage storage.Storage
	desc    Descriptor[T]
}

// NewResource wires a resource controller over its repository.
func NewResource[T any](repo *store.Repository[T], st storage.Storage, desc Descriptor[T]) *Resource[T] {
	return &Resource[T]{repo: repo, storage: st, desc: desc}
}

// Mount registers the CRUD routes on a chi router.
func (rs *Resource[T]) Mount(r chi.Router) {
	r.Get("/", rs.List)
	r.Post("/", rs.Create)
	r.Get("/{id}", rs.Get)
	r.Put("/{id}", rs.Update)
	r.Delete("/{id}", rs.Delete)
}

// List returns the filtered, paginated collection together with its
// rendered table and pagination view models.
func (rs *Resource[T]) List(w http.ResponseWriter, r *http.Request) {
	filter := store.ParseFilter(r.URL.Query())

	items, total, err := rs.repo.List(r.Context(), filter)
	if err != nil {
		respondInternal(w, "list "+rs.desc.Name, err)
		return
	}

	rows, err := toRows(items)
	if err != nil {
		respondInternal(w, "encode "+rs.desc.Name, err)
		return
	}
	rs.resolveAssetURLs(items, rows)

	table, err := view.BuildTable(rows, rs.desc.Columns, rs.desc.Actions, rs.desc.EmptyMessage)
	if err != nil {
		respondInternal(w, "table "+rs.desc.Name, err)
		return
	}

	totalPages := store.TotalPages(total, filter.Limit)
	respondJSON(w, http.StatusOK, map[string]any{
		"items":      items,
		"table":      table,
		"pagination": view.Paginate(filter.Page, totalPages),
		"total":      total,
		"page":       filter.Page,
		"limit":      filter.Limit,
	})
}

// Get returns a single entity by id.
func (rs *Resource[T]) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	e, err := rs.repo.Find(r.Context(), id)
	if err != nil {
		respondInternal(w, "find "+rs.desc.Name, err)
		return
	}
	if e == nil {
		respondError(w, http.StatusNotFound, rs.desc.Name+" not found")
		return
	}

	if rs.desc.Decorate != nil {
		if err := rs.desc.Decorate(r, e); err != nil {
			respondInternal(w, "decorate "+rs.desc.Name, err)
			return
		}
	}

	respondJSON(w, http.StatusOK, rs.withAssetURL(e))
}

// Create decodes the payload (plain JSON or multipart with a file part),
// uploads the asset first, then inserts the row. A failed insert removes
// the just-uploaded blob so it never orphans silently.
func (rs *Resource[T]) Create(w http.ResponseWriter, r *http.Request) {
	payload, up, err := rs.parseRequest(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	e, err := rs.desc.Decode(payload, nil)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if up != nil {
		if err := rs.storage.Upload(r.Context(), up.Key, up.ContentType, up.Body, up.Size); err != nil {
			respondInternal(w, "upload "+rs.desc.Name+" asset", err)
			return
		}
		*rs.desc.AssetRef(e) = &up.Key
	}

	created, err := rs.repo.Create(r.Context(), e)
	if err != nil {
		if up != nil {
			rs.storage.Remove(r.Context(), up.Key)
		}
		respondInternal(w, "create "+rs.desc.Name, err)
		return
	}

	if rs.desc.AfterSave != nil {
		if err := rs.desc.AfterSave(r, created, payload); err != nil {
			respondInternal(w, "save "+rs.desc.Name+" relations", err)
			return
		}
	}

	respondJSON(w, http.StatusCreated, rs.withAssetURL(created))
}

// Update merges the payload onto the stored row. When a replacement file
// arrives, the new blob is uploaded before the row is written and the old
// blob is removed best-effort only after the write succeeds.
func (rs *Resource[T]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	existing, err := rs.repo.Find(r.Context(), id)
	if err != nil {
		respondInternal(w, "find "+rs.desc.Name, err)
		return
	}
	if existing == nil {
		respondError(w, http.StatusNotFound, rs.desc.Name+" not found")
		return
	}

	payload, up, err := rs.parseRequest(w, r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	e, err := rs.desc.Decode(payload, existing)
	if err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	var oldKey string
	if up != nil {
		if old := *rs.desc.AssetRef(existing); old != nil {
			oldKey = *old
		}
		if err := rs.storage.Upload(r.Context(), up.Key, up.ContentType, up.Body, up.Size); err != nil {
			respondInternal(w, "upload "+rs.desc.Name+" asset", err)
			return
		}
		*rs.desc.AssetRef(e) = &up.Key
	}

	updated, err := rs.repo.Update(r.Context(), id, e)
	if err != nil {
		if up != nil {
			rs.storage.Remove(r.Context(), up.Key)
		}
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, rs.desc.Name+" not found")
			return
		}
		respondInternal(w, "update "+rs.desc.Name, err)
		return
	}

	// Replaced asset: the row now points at the new blob, the old one can go.
	if oldKey != "" && !storage.IsIconClass(oldKey) && !strings.HasPrefix(oldKey, "http") {
		rs.storage.Remove(r.Context(), oldKey)
	}

	if rs.desc.AfterSave != nil {
		if err := rs.desc.AfterSave(r, updated, payload); err != nil {
			respondInternal(w, "save "+rs.desc.Name+" relations", err)
			return
		}
	}

	respondJSON(w, http.StatusOK, rs.withAssetURL(updated))
}

// Delete checks referential guards, removes the asset best-effort, then
// deletes the row. Blob removal failures never block the delete.
func (rs *Resource[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := rs.repo.InUse(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrInUse) {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		respondInternal(w, "delete "+rs.desc.Name, err)
		return
	}

	if rs.desc.AssetRef != nil {
		e, err := rs.repo.Find(r.Context(), id)
		if err != nil {
			respondInternal(w, "find "+rs.desc.Name, err)
			return
		}
		if e != nil {
			if ref := *rs.desc.AssetRef(e); ref != nil && *ref != "" &&
				!storage.IsIconClass(*ref) && !strings.HasPrefix(*ref, "http") {
				rs.storage.Remove(r.Context(), *ref)
			}
		}
	}

	if err := rs.repo.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, rs.desc.Name+" not found")
			return
		}
		if errors.Is(err, store.ErrInUse) {
			respondError(w, http.StatusConflict, err.Error())
			return
		}
		respondInternal(w, "delete "+rs.desc.Name, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// parseRequest extracts the JSON payload and optional file. Multipart
// requests carry the JSON in a "payload" field and the file in "file";
// anything else is treated as a plain JSON body.
func (rs *Resource[T]) parseRequest(w http.ResponseWriter, r *http.Request) (json.RawMessage, *upload, error) {
	ct := r.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "multipart/form-data") {
		var payload json.RawMessage
		if err := decodeJSON(r, &payload); err != nil {
			return nil, nil, fmt.Errorf("invalid JSON body: %w", err)
		}
		return payload, nil, nil
	}

	maxSize := rs.desc.Upload.MaxSize
	if maxSize == 0 {
		maxSize = maxImageSize
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+64<<10)
	if err := r.ParseMultipartForm(maxSize); err != nil {
		return nil, nil, fmt.Errorf("file too large (max %d MB)", maxSize>>20)
	}

	payload := json.RawMessage(r.FormValue("payload"))
	if len(payload) == 0 {
		payload = json.RawMessage("{}")
	}

	file, header, err := r.FormFile("file")
	if err == http.ErrMissingFile {
		return payload, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read file: %w", err)
	}
	if rs.desc.AssetRef == nil {
		file.Close()
		return nil, nil, fmt.Errorf("%s does not accept file uploads", rs.desc.Name)
	}

	up, err := validateUpload(file, header, rs.desc.Upload)
	if err != nil {
		file.Close()
		return nil, nil, err
	}
	return payload, up, nil
}

// withAssetURL decorates a single entity response with its resolved asset
// URL so the admin UI never needs to know about buckets or web roots.
func (rs *Resource[T]) withAssetURL(e *T) any {
	if rs.desc.AssetRef == nil {
		return e
	}
	ref := *rs.desc.AssetRef(e)
	url := ""
	if ref != nil {
		url = storage.ResolveURL(rs.storage, *ref)
	}
	return map[string]any{
		"item":      e,
		"asset_url": url,
	}
}

// resolveAssetURLs injects an "asset_url" key into each list row.
func (rs *Resource[T]) resolveAssetURLs(items []T, rows []view.Row) {
	if rs.desc.AssetRef == nil {
		return
	}
	for i := range items {
		ref := *rs.desc.AssetRef(&items[i])
		if ref != nil {
			rows[i]["asset_url"] = storage.ResolveURL(rs.storage, *ref)
		}
	}
}

// toRows serializes entities to generic field maps for the table builder.
func toRows[T any](items []T) ([]view.Row, error) {
	rows := make([]view.Row, len(items))
	for i := range items {
		raw, err := json.Marshal(items[i])
		if err != nil {
			return nil, err
		}
		var row view.Row
		if err := json.Unmarshal(raw, &row); err != nil {
			return nil, err
		}
		rows[i] = row
	}
	return rows, nil
}

// parseID reads the {id} URL parameter. Writes a 400 and returns false on
// anything that is not a positive integer.
func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}
