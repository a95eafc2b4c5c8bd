package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/sbilibin2017/student-diary/internal/logger"
	"github.com/sbilibin2017/student-diary/internal/middlewares"
	"github.com/sbilibin2017/student-diary/internal/models"
	"github.com/sbilibin2017/student-diary/internal/services"
)

//go:generate mockgen -source=profile_picture.go -destination=profile_picture_mock.go -package=handlers

const (
	// MaxPictureSize is the largest accepted profile picture.
	MaxPictureSize = 5 << 20

	pictureField = "picture"

	msgPictureTooLarge = "picture must be at most 5 MiB"
	msgPictureMissing  = "picture file is required"
	msgPictureNotImage = "picture must be an image"
	msgNoPicture       = "Profile picture not set."
)

// PictureUploader stores picture bytes and returns the object key.
type PictureUploader interface {
	Upload(ctx context.Context, userID uuid.UUID, body io.Reader, size int64, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}

// PicturePresigner returns a temporary download URL for a stored picture.
type PicturePresigner interface {
	PresignURL(ctx context.Context, key string) (string, error)
}

// ProfilePictureUpdater records the picture key on the user.
type ProfilePictureUpdater interface {
	UpdateProfilePicture(ctx context.Context, userID uuid.UUID, path string) (models.Result, error)
}

// PictureResponse represents a successful picture upload
// swagger:model PictureResponse
type PictureResponse struct {
	// Success message
	// default: Profile picture updated successfully.
	Message string `json:"message"`

	// Object key of the stored picture
	Path string `json:"path"`
}

// NewUploadPictureHandler returns an HTTP handler that replaces the current user's profile picture.
// @Summary Upload profile picture
// @Description Accepts a multipart image up to 5 MiB in the "picture" field
// @Tags profile
// @Accept multipart/form-data
// @Produce json
// @Param picture formData file true "Image file"
// @Success 200 {object} handlers.PictureResponse "Picture stored"
// @Failure 400 {object} handlers.ErrorResponse "Missing, too large or not an image"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profile/picture [post]
// @Security BearerAuth
func NewUploadPictureHandler(uploader PictureUploader, profiles ProfileGetter, svc ProfilePictureUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		profile, err := profiles.GetUserProfile(r.Context(), userID)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		if profile == nil {
			writeError(w, http.StatusNotFound, services.MsgUserNotFound)
			return
		}
		previous := profile.ProfilePicturePath

		// room for the multipart envelope around the file
		r.Body = http.MaxBytesReader(w, r.Body, MaxPictureSize+1<<20)

		file, header, err := r.FormFile(pictureField)
		if err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				writeError(w, http.StatusBadRequest, msgPictureTooLarge)
				return
			}
			writeError(w, http.StatusBadRequest, msgPictureMissing)
			return
		}
		defer file.Close()

		if header.Size > MaxPictureSize {
			writeError(w, http.StatusBadRequest, msgPictureTooLarge)
			return
		}

		mtype, err := mimetype.DetectReader(file)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		if !strings.HasPrefix(mtype.String(), "image/") {
			writeError(w, http.StatusBadRequest, msgPictureNotImage)
			return
		}
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			writeInternalError(w, r, err)
			return
		}

		key, err := uploader.Upload(r.Context(), userID, file, header.Size, mtype.String())
		if err != nil {
			writeInternalError(w, r, err)
			return
		}

		res, err := svc.UpdateProfilePicture(r.Context(), userID, key)
		if err != nil {
			removePicture(r.Context(), uploader, key)
			writeInternalError(w, r, err)
			return
		}
		if !res.Success {
			removePicture(r.Context(), uploader, key)
			writeFailure(w, res)
			return
		}

		// the row points at key only once the transaction commits
		middlewares.OnTxDone(r.Context(), func(committed bool) {
			if !committed {
				removePicture(r.Context(), uploader, key)
				return
			}
			if previous != "" && previous != key {
				removePicture(r.Context(), uploader, previous)
			}
		})

		writeJSON(w, http.StatusOK, PictureResponse{Message: res.Message, Path: key})
	}
}

// removePicture deletes an object nothing refers to. Failures leave an orphan behind.
func removePicture(ctx context.Context, uploader PictureUploader, key string) {
	if err := uploader.Delete(ctx, key); err != nil {
		logger.Log.Warnw("failed to remove unused profile picture", "key", key, "err", err)
	}
}

// NewGetPictureHandler returns an HTTP handler that redirects to the current user's picture.
// @Summary Get profile picture
// @Description Redirects to a short-lived download URL of the profile picture
// @Tags profile
// @Success 302 "Redirect to the picture"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User or picture not found"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /profile/picture [get]
// @Security BearerAuth
func NewGetPictureHandler(profiles ProfileGetter, presigner PicturePresigner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := currentUserID(w, r)
		if !ok {
			return
		}

		profile, err := profiles.GetUserProfile(r.Context(), userID)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}
		if profile == nil {
			writeError(w, http.StatusNotFound, services.MsgUserNotFound)
			return
		}
		if profile.ProfilePicturePath == "" {
			writeError(w, http.StatusNotFound, msgNoPicture)
			return
		}

		url, err := presigner.PresignURL(r.Context(), profile.ProfilePicturePath)
		if err != nil {
			writeInternalError(w, r, err)
			return
		}

		http.Redirect(w, r, url, http.StatusFound)
	}
}
