package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/iliyamo/voice-greetings/internal/config"
	"github.com/iliyamo/voice-greetings/internal/model"
	"github.com/iliyamo/voice-greetings/internal/repository"
	"github.com/iliyamo/voice-greetings/internal/transcode"
)

// GreetingHandler bundles dependencies for the greeting endpoints: both
// stores, the external transcoder, and the storage paths from config.
type GreetingHandler struct {
	Cfg        config.Config
	Users      UserStore
	Greetings  GreetingStore
	Transcoder transcode.Transcoder
}

func NewGreetingHandler(cfg config.Config, users UserStore, greetings GreetingStore, t transcode.Transcoder) *GreetingHandler {
	return &GreetingHandler{Cfg: cfg, Users: users, Greetings: greetings, Transcoder: t}
}

// ListGreetings returns every greeting matching the optional query filter.
func (h *GreetingHandler) ListGreetings(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	greetings, err := h.Greetings.Find(ctx, queryFilter(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, greetings)
}

// ListUserGreetings resolves a user and expands its greeting_ids into full
// greeting documents, in list order. 404 when the user is absent; a user
// with no greetings yields an empty sequence.
func (h *GreetingHandler) ListUserGreetings(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), storeTimeout)
	defer cancel()

	u, err := h.Users.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	if err != nil {
		return err
	}
	greetings, err := h.Greetings.FindByIDs(ctx, u.GreetingIDs)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, greetings)
}

// UploadGreeting accepts a multipart upload (`name` field plus a `greeting`
// audio file), derives the destination filename, and then runs the two
// halves of the workflow concurrently: persist the greeting document and
// push its id onto the user, while the transcoder writes the GSM file. The
// request succeeds only when both halves do.
//
// There is no compensation: a branch that committed before the other failed
// stays committed, so a failed request can leave a greeting document with no
// audio file, or a partial file with no document. Known risk;
// TestUploadTranscodeFailureKeepsDBWrite pins the behavior.
//
// The join deliberately carries no timeout or cancellation; a hung
// transcoder hangs this request.
func (h *GreetingHandler) UploadGreeting(c echo.Context) error {
	userID, ok := pathID(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "user not found"})
	}
	name := c.FormValue("name")
	fh, err := c.FormFile("greeting")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "greeting file required"})
	}

	src, err := h.spool(fh)
	if err != nil {
		return err
	}
	dst := filepath.Join(h.Cfg.GreetingDir, GreetingFilename(fh.Filename, time.Now()))

	ctx := c.Request().Context()
	var created model.Greeting
	var g errgroup.Group
	g.Go(func() error {
		saved, err := h.Greetings.Create(ctx, model.Greeting{Name: name, FolderLocation: dst})
		if err != nil {
			return err
		}
		created = saved
		return h.Users.PushGreetingID(ctx, userID, saved.ID)
	})
	g.Go(func() error {
		f, err := os.Create(dst)
		if err != nil {
			return err
		}
		f.Close()
		return h.Transcoder.Transcode(src, dst)
	})
	if err := g.Wait(); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, created)
}

// spool copies the uploaded part into the configured temp directory so the
// transcoder can read it from disk. The random name keeps concurrent uploads
// of the same file from clobbering each other's input.
func (h *GreetingHandler) spool(fh *multipart.FileHeader) (string, error) {
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	path := filepath.Join(h.Cfg.UploadTmpDir, uuid.NewString()+filepath.Ext(fh.Filename))
	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()
	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}
	return path, nil
}

// GreetingFilename derives the stored-file name from an upload's original
// name: the base name without its extension, a UTC timestamp with
// millisecond precision, and the .gsm extension. Two uploads of the same
// file within the same millisecond derive the same name; the later write
// wins silently.
func GreetingFilename(original string, now time.Time) string {
	base := filepath.Base(original)
	if i := strings.LastIndex(base, "."); i > 0 {
		base = base[:i]
	}
	now = now.UTC()
	stamp := now.Format("20060102150405") + fmt.Sprintf("%03d", now.Nanosecond()/int(time.Millisecond))
	return base + "-" + stamp + ".gsm"
}
