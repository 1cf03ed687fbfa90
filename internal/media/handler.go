package media

import (
	"context"
	"fmt"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	repo  *Repository
	store FileStore
	log   *zap.SugaredLogger
}

func NewHandler(repo *Repository, store FileStore, log *zap.SugaredLogger) *Handler {
	return &Handler{repo: repo, store: store, log: log}
}

// RegisterRoutes mounts the public listing routes on the app and the upload
// routes on the admin-gated router.
func RegisterRoutes(app *fiber.App, admin fiber.Router, h *Handler) {
	app.Get("/api/content", h.GetContent)
	app.Get("/api/media/teachers", h.ListTeacherMedia)
	app.Get("/api/media/students", h.ListStudentMedia)

	admin.Post("/upload-intro-video", h.UploadIntroVideo)
	admin.Post("/upload-intro-poster", h.UploadIntroPoster)
	admin.Post("/teacher-media", h.UploadTeacherMedia)
	admin.Post("/student-media", h.UploadStudentMedia)
	admin.Post("/upload-logo", h.UploadLogo)
	admin.Post("/teacher-avatar", h.UploadTeacherAvatar)
}

func (h *Handler) GetContent(c *fiber.Ctx) error {
	intro, err := h.repo.GetIntro(c.Context())
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(fiber.Map{"intro": intro})
}

func (h *Handler) ListTeacherMedia(c *fiber.Ctx) error {
	return h.listByKind(c, KindTeacher)
}

func (h *Handler) ListStudentMedia(c *fiber.Ctx) error {
	return h.listByKind(c, KindStudent)
}

func (h *Handler) listByKind(c *fiber.Ctx, kind string) error {
	items, err := h.repo.ListByKind(c.Context(), kind)
	if err != nil {
		return h.internal(c, err)
	}
	return c.JSON(items)
}

func (h *Handler) UploadIntroVideo(c *fiber.Ctx) error {
	return h.uploadIntro(c, "intro_video", ".mp4", h.repo.SetIntroVideo, "intro video saved")
}

func (h *Handler) UploadIntroPoster(c *fiber.Ctx) error {
	return h.uploadIntro(c, "intro_poster", ".jpg", h.repo.SetIntroPoster, "intro poster saved")
}

func (h *Handler) uploadIntro(c *fiber.Ctx, name, defaultExt string,
	save func(ctx context.Context, url string) error, message string) error {

	file, err := c.FormFile("file")
	if err != nil || file.Size == 0 {
		return noFile(c)
	}

	url, err := h.saveUpload(file, "intro/"+name+extOr(file.Filename, defaultExt))
	if err != nil {
		return h.internal(c, err)
	}

	if err := save(c.Context(), url); err != nil {
		return h.internal(c, err)
	}

	return c.JSON(fiber.Map{"message": message, "url": url})
}

func (h *Handler) UploadTeacherMedia(c *fiber.Ctx) error {
	teacherName := strings.TrimSpace(c.FormValue("teacherName"))
	if teacherName == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "teacher name is required"})
	}
	return h.uploadItems(c, KindTeacher, "teachers", &teacherName, nil, "teacher media saved")
}

func (h *Handler) UploadStudentMedia(c *fiber.Ctx) error {
	var caption *string
	if v := c.FormValue("caption"); v != "" {
		caption = &v
	}
	return h.uploadItems(c, KindStudent, "students", nil, caption, "student media saved")
}

func (h *Handler) uploadItems(c *fiber.Ctx, kind, subdir string, teacherName, caption *string, message string) error {
	form, err := c.MultipartForm()
	if err != nil {
		return noFile(c)
	}

	var files []*multipart.FileHeader
	for _, fs := range form.File {
		files = append(files, fs...)
	}
	if len(files) == 0 {
		return noFile(c)
	}

	for _, file := range files {
		name := strings.ReplaceAll(uuid.NewString(), "-", "") + extOr(file.Filename, ".dat")
		url, err := h.saveUpload(file, subdir+"/"+name)
		if err != nil {
			return h.internal(c, err)
		}

		item := &Item{
			Kind:        kind,
			TeacherName: teacherName,
			MediaType:   mediaTypeOf(file),
			FileURL:     url,
			Caption:     caption,
			CreatedAt:   time.Now().UTC(),
		}
		if err := h.repo.AddItem(c.Context(), item); err != nil {
			return h.internal(c, err)
		}
	}

	return c.JSON(fiber.Map{"message": message})
}

func (h *Handler) UploadLogo(c *fiber.Ctx) error {
	file, err := c.FormFile("file")
	if err != nil || file.Size == 0 {
		return noFile(c)
	}

	url, err := h.saveUpload(file, "branding/logo"+extOr(file.Filename, ".png"))
	if err != nil {
		return h.internal(c, err)
	}

	return c.JSON(fiber.Map{"message": "logo saved", "url": url})
}

func (h *Handler) UploadTeacherAvatar(c *fiber.Ctx) error {
	teacherKey := strings.TrimSpace(c.FormValue("teacherKey"))
	if teacherKey == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "teacher is required"})
	}

	file, err := c.FormFile("file")
	if err != nil || file.Size == 0 {
		return noFile(c)
	}

	url, err := h.saveUpload(file, "teachers/avatars/"+teacherKey+extOr(file.Filename, ".jpg"))
	if err != nil {
		return h.internal(c, err)
	}

	return c.JSON(fiber.Map{"message": "teacher avatar saved", "url": url})
}

func (h *Handler) saveUpload(file *multipart.FileHeader, relPath string) (string, error) {
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	return h.store.Save(relPath, src)
}

func (h *Handler) internal(c *fiber.Ctx, err error) error {
	h.log.Errorw("media request failed", "path", c.Path(), "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal error"})
}

func noFile(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "no file selected"})
}

func extOr(filename, fallback string) string {
	if ext := path.Ext(filename); ext != "" {
		return ext
	}
	return fallback
}

func mediaTypeOf(file *multipart.FileHeader) string {
	if strings.HasPrefix(strings.ToLower(file.Header.Get("Content-Type")), "video") {
		return "video"
	}
	return "image"
}
