package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/rock-catalog/internal/httperr"
	"github.com/iliyamo/rock-catalog/internal/middleware"
	"github.com/iliyamo/rock-catalog/internal/model"
	"github.com/iliyamo/rock-catalog/internal/queue"
	"github.com/iliyamo/rock-catalog/internal/repository"
	"github.com/iliyamo/rock-catalog/internal/storage"
)

// RockHandler bundles dependencies for the specimen endpoints. The publish
// hooks are optional: nil disables event emission (as in tests), and a
// publish failure never fails the request.
type RockHandler struct {
	Rocks          repository.RockStore
	Uploads        *storage.Uploads
	PublishCreated func(ctx context.Context, ev queue.RockCreatedEvent) error
	PublishDeleted func(ctx context.Context, ev queue.RockDeletedEvent) error
}

func NewRockHandler(rocks repository.RockStore, uploads *storage.Uploads) *RockHandler {
	return &RockHandler{Rocks: rocks, Uploads: uploads}
}

// uploadRoutePrefix is the public URL prefix under which stored images are
// served; stored filenames are appended to it to form a rock's imageUrl.
const uploadRoutePrefix = "/api/rocks/uploads/"

type createRockReq struct {
	Name            string         `json:"name"`
	Category        string         `json:"category"`
	Description     string         `json:"description"`
	Properties      map[string]any `json:"properties"`
	Colors          []string       `json:"colors"`
	CommonUses      string         `json:"common_uses"`
	ImageQuality    string         `json:"imageQuality"`
	ConfidenceLevel string         `json:"confidenceLevel"`
}

// List returns the caller's rocks, newest first. Never any other owner's.
func (h *RockHandler) List(c echo.Context) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return httperr.Auth("unauthorized")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rocks, err := h.Rocks.ListByOwner(ctx, uid)
	if err != nil {
		return httperr.Internal(err)
	}
	return c.JSON(http.StatusOK, rocks)
}

// Create validates the specimen fields, stores the optional image and
// persists the record bound to the caller. If the insert fails after the
// image was written, the file is removed so no orphan survives.
func (h *RockHandler) Create(c echo.Context) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return httperr.Auth("unauthorized")
	}

	req, err := bindCreateRock(c)
	if err != nil {
		return err
	}
	if details := requireRockFields(req); len(details) > 0 {
		return httperr.Validation("Validation Error", details)
	}

	storedName, err := h.saveImage(c)
	if err != nil {
		return err
	}

	rock := &model.Rock{
		UserID:          uid,
		Name:            req.Name,
		Category:        req.Category,
		Description:     req.Description,
		Properties:      req.Properties,
		Colors:          req.Colors,
		CommonUses:      req.CommonUses,
		ImageQuality:    req.ImageQuality,
		ConfidenceLevel: req.ConfidenceLevel,
	}
	if storedName != "" {
		rock.ImageURL = uploadRoutePrefix + storedName
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Rocks.Create(ctx, rock); err != nil {
		if storedName != "" {
			_ = h.Uploads.Remove(storedName)
		}
		return httperr.Internal(err)
	}

	if h.PublishCreated != nil {
		_ = h.PublishCreated(ctx, queue.RockCreatedEvent{
			RockID:    rock.ID,
			UserID:    rock.UserID,
			Name:      rock.Name,
			Category:  rock.Category,
			ImageURL:  rock.ImageURL,
			CreatedAt: rock.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusCreated, rock)
}

// Delete removes a rock only when it belongs to the caller. Absence and
// ownership mismatch are reported identically as 404.
func (h *RockHandler) Delete(c echo.Context) error {
	uid, ok := middleware.UserID(c)
	if !ok {
		return httperr.Auth("unauthorized")
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		// A non-numeric id cannot name an existing rock.
		return httperr.NotFound("Rock not found")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	deleted, err := h.Rocks.DeleteByIDAndOwner(ctx, id, uid)
	if err != nil {
		return httperr.Internal(err)
	}
	if !deleted {
		return httperr.NotFound("Rock not found")
	}

	if h.PublishDeleted != nil {
		_ = h.PublishDeleted(ctx, queue.RockDeletedEvent{
			RockID:    id,
			UserID:    uid,
			DeletedAt: time.Now().UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{"message": "Rock deleted"})
}

// bindCreateRock reads the specimen fields from either a JSON body or a
// multipart form (the latter is used when an image accompanies the record;
// properties and colors arrive as JSON-encoded form values there).
func bindCreateRock(c echo.Context) (*createRockReq, error) {
	ctype := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(ctype, echo.MIMEMultipartForm) {
		var req createRockReq
		if err := c.Bind(&req); err != nil {
			return nil, httperr.Validation("Validation Error", "invalid request body")
		}
		return &req, nil
	}

	req := &createRockReq{
		Name:            c.FormValue("name"),
		Category:        c.FormValue("category"),
		Description:     c.FormValue("description"),
		CommonUses:      c.FormValue("common_uses"),
		ImageQuality:    c.FormValue("imageQuality"),
		ConfidenceLevel: c.FormValue("confidenceLevel"),
	}
	if v := c.FormValue("properties"); v != "" {
		if err := json.Unmarshal([]byte(v), &req.Properties); err != nil {
			return nil, httperr.Validation("Validation Error", "properties must be a JSON object")
		}
	}
	if v := c.FormValue("colors"); v != "" {
		if err := json.Unmarshal([]byte(v), &req.Colors); err != nil {
			return nil, httperr.Validation("Validation Error", "colors must be a JSON array of strings")
		}
	}
	return req, nil
}

// saveImage stores the optional "image" multipart file and returns its stored
// name, or "" when the request carries no file.
func (h *RockHandler) saveImage(c echo.Context) (string, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		// No multipart body or no file under the expected field.
		return "", nil
	}
	src, err := fh.Open()
	if err != nil {
		return "", httperr.Internal(err)
	}
	defer src.Close()

	name, err := h.Uploads.Save(src, fh.Filename)
	if err != nil {
		return "", httperr.Internal(err)
	}
	return name, nil
}

// requireRockFields checks the data-model minimum: name, category and
// description must all be present.
func requireRockFields(req *createRockReq) []string {
	var details []string
	for _, f := range []struct{ name, value string }{
		{"name", req.Name},
		{"category", req.Category},
		{"description", req.Description},
	} {
		if strings.TrimSpace(f.value) == "" {
			details = append(details, f.name+" is required")
		}
	}
	return details
}
