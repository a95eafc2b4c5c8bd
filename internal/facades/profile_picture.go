package facades

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/sbilibin2017/student-diary/internal/logger"
)

// PresignExpiration is how long a presigned picture URL stays valid.
const PresignExpiration = 15 * time.Minute

var loadDefaultAWSConfig = config.LoadDefaultConfig

// S3ObjectStore uploads and removes objects.
type S3ObjectStore interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3GetPresigner presigns object downloads.
type S3GetPresigner interface {
	PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error)
}

// S3Config holds the object storage connection settings.
type S3Config struct {
	Endpoint  string
	Region    string
	AccessKey string
	SecretKey string
}

// NewS3Client builds a path-style client suitable for MinIO and other
// S3-compatible stores.
func NewS3Client(ctx context.Context, cfg S3Config) (*s3.Client, error) {
	awsCfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(cfg.Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = true
	}), nil
}

// ProfilePictureS3Facade stores profile pictures in an S3 bucket.
type ProfilePictureS3Facade struct {
	client    S3ObjectStore
	presigner S3GetPresigner
	bucket    string
}

// NewProfilePictureS3Facade creates a new facade for the given bucket.
func NewProfilePictureS3Facade(client S3ObjectStore, presigner S3GetPresigner, bucket string) *ProfilePictureS3Facade {
	return &ProfilePictureS3Facade{
		client:    client,
		presigner: presigner,
		bucket:    bucket,
	}
}

// PictureKey returns a fresh object key for a user's picture.
func PictureKey(userID uuid.UUID) string {
	return fmt.Sprintf("profile-pictures/%s/%s", userID, uuid.New())
}

// Upload stores the picture and returns its object key.
func (f *ProfilePictureS3Facade) Upload(
	ctx context.Context,
	userID uuid.UUID,
	body io.Reader,
	size int64,
	contentType string,
) (string, error) {
	key := PictureKey(userID)

	_, err := f.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(f.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		logger.Log.Errorw("failed to upload profile picture", "user_id", userID, "key", key, "error", err)
		return "", err
	}

	logger.Log.Infow("profile picture uploaded", "user_id", userID, "key", key, "size", size)
	return key, nil
}

// Delete removes the object stored under key.
func (f *ProfilePictureS3Facade) Delete(ctx context.Context, key string) error {
	_, err := f.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.Log.Errorw("failed to delete profile picture", "key", key, "error", err)
		return err
	}

	logger.Log.Infow("profile picture deleted", "key", key)
	return nil
}

// PresignURL returns a short-lived download URL for key.
func (f *ProfilePictureS3Facade) PresignURL(ctx context.Context, key string) (string, error) {
	req, err := f.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(f.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(PresignExpiration))
	if err != nil {
		logger.Log.Errorw("failed to presign profile picture", "key", key, "error", err)
		return "", err
	}
	return req.URL, nil
}
