package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"elgrace_backend/internal/config"
	"elgrace_backend/internal/imageprocessor"
	"elgrace_backend/internal/logger"
	"elgrace_backend/internal/media"
	"elgrace_backend/internal/models"
	"elgrace_backend/internal/repositories"
	"elgrace_backend/internal/services/dto"
	"elgrace_backend/internal/storage"
	"elgrace_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// MediaService handles uploads for model profiles. Images are recompressed
// before storage; videos are stored as received. Methods take the
// request-scoped db so writes share the request transaction.
type MediaService interface {
	Upload(ctx context.Context, db *gorm.DB, modelID string, role models.MediaRole, file *multipart.FileHeader) (*dto.MediaItemResponse, error)
	List(db *gorm.DB, modelID string) (*dto.MediaListResponse, error)
	Delete(ctx context.Context, db *gorm.DB, modelID, mediaID string) error
}

type MediaServiceImpl struct {
	mediaRepo repositories.MediaRepository
	store     storage.Storage
	processor *imageprocessor.Processor
	cfg       config.Config
}

func NewMediaService(mediaRepo repositories.MediaRepository, store storage.Storage, cfg config.Config) MediaService {
	return &MediaServiceImpl{
		mediaRepo: mediaRepo,
		store:     store,
		processor: imageprocessor.NewProcessor(cfg.Media.ImageQuality, cfg.Media.MaxImageEdge),
		cfg:       cfg,
	}
}

func (s *MediaServiceImpl) Upload(ctx context.Context, db *gorm.DB, modelID string, role models.MediaRole, file *multipart.FileHeader) (*dto.MediaItemResponse, error) {
	mediaType := role.MediaType()

	contentType := file.Header.Get("Content-Type")
	if err := s.validate(mediaType, contentType, file.Size); err != nil {
		return nil, err
	}

	src, err := file.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer src.Close()

	var body []byte
	if mediaType == models.MediaTypeImage {
		body, contentType, err = s.processor.Process(src)
		if err != nil {
			return nil, apperrors.ErrUnsupportedMedia("File is not a valid image")
		}
	} else {
		body, err = io.ReadAll(src)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	path := s.buildPath(modelID, role, file.Filename, contentType)
	if err := s.store.Save(ctx, path, bytes.NewReader(body), contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	sortOrder, err := s.mediaRepo.NextSortOrder(db, modelID, role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	item := &models.MediaItem{
		ModelID:   modelID,
		MediaType: mediaType,
		MediaRole: role,
		MediaURL:  url,
		SortOrder: sortOrder,
		MimeType:  contentType,
		Size:      int64(len(body)),
		Path:      path,
	}
	if err := s.mediaRepo.Create(db, item); err != nil {
		// Orphaned object cleanup is best effort.
		_ = s.store.Delete(ctx, path)
		return nil, apperrors.InternalError(err)
	}

	logger.Info("media uploaded", "model_id", modelID, "role", role, "size", item.Size)

	resp := dto.NewMediaItemResponse(item)
	resp.MediaURL = media.NormalizeURL(s.cfg.Media.BaseURL, item.MediaURL, fmt.Sprint(item.CreatedAt.Unix()))
	return &resp, nil
}

func (s *MediaServiceImpl) List(db *gorm.DB, modelID string) (*dto.MediaListResponse, error) {
	items, err := s.mediaRepo.FindByModelID(db, modelID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	resp := &dto.MediaListResponse{Items: make([]dto.MediaItemResponse, 0, len(items)), Total: len(items)}
	for i := range items {
		r := dto.NewMediaItemResponse(&items[i])
		r.MediaURL = media.NormalizeURL(s.cfg.Media.BaseURL, items[i].MediaURL, fmt.Sprint(items[i].UpdatedAt.Unix()))
		resp.Items = append(resp.Items, r)
	}
	return resp, nil
}

func (s *MediaServiceImpl) Delete(ctx context.Context, db *gorm.DB, modelID, mediaID string) error {
	item, err := s.mediaRepo.FindByID(db, mediaID)
	if err != nil {
		if errors.Is(err, repositories.ErrMediaNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	if item.ModelID != modelID {
		return apperrors.NewForbiddenError("media item belongs to another profile")
	}

	if err := s.mediaRepo.Delete(db, mediaID); err != nil {
		return apperrors.InternalError(err)
	}
	if item.Path != "" {
		if err := s.store.Delete(ctx, item.Path); err != nil {
			logger.Warn("failed to delete stored file", "path", item.Path, "error", err)
		}
	}
	return nil
}

func (s *MediaServiceImpl) validate(mediaType models.MediaType, contentType string, size int64) error {
	switch mediaType {
	case models.MediaTypeImage:
		if size > s.cfg.Media.MaxImageSize {
			return apperrors.ErrFileTooLarge(fmt.Sprintf("Image exceeds %d bytes", s.cfg.Media.MaxImageSize))
		}
		if !containsMime(s.cfg.Media.AllowedImages, contentType) {
			return apperrors.ErrUnsupportedMedia("Unsupported image type: " + contentType)
		}
	case models.MediaTypeVideo:
		if size > s.cfg.Media.MaxVideoSize {
			return apperrors.ErrFileTooLarge(fmt.Sprintf("Video exceeds %d bytes", s.cfg.Media.MaxVideoSize))
		}
		if !containsMime(s.cfg.Media.AllowedVideos, contentType) {
			return apperrors.ErrUnsupportedMedia("Unsupported video type: " + contentType)
		}
	}
	return nil
}

func (s *MediaServiceImpl) buildPath(modelID string, role models.MediaRole, filename, contentType string) string {
	ext := filepath.Ext(filename)
	if ext == "" {
		ext = extForMime(contentType)
	}
	return fmt.Sprintf("models/%s/%s/%d-%s%s", modelID, role, time.Now().Unix(), uuid.NewString()[:8], ext)
}

func containsMime(allowed []string, mime string) bool {
	mime = strings.ToLower(mime)
	for _, a := range allowed {
		if strings.EqualFold(a, mime) {
			return true
		}
	}
	return false
}

func extForMime(mime string) string {
	switch strings.ToLower(mime) {
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "video/mp4":
		return ".mp4"
	case "video/quicktime":
		return ".mov"
	default:
		return ".jpg"
	}
}
