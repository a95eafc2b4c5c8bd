package facades

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Fake S3 client ---
type fakeS3 struct {
	putInput    *s3.PutObjectInput
	deleteInput *s3.DeleteObjectInput
	getInput    *s3.GetObjectInput
	presignOp   s3.PresignOptions
	err         error
}

func (f *fakeS3) DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleteInput = in
	if f.err != nil {
		return nil, f.err
	}
	return &s3.DeleteObjectOutput{}, nil
}

func (f *fakeS3) PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.putInput = in
	if f.err != nil {
		return nil, f.err
	}
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeS3) PresignGetObject(ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
	f.getInput = in
	for _, fn := range optFns {
		fn(&f.presignOp)
	}
	if f.err != nil {
		return nil, f.err
	}
	return &v4.PresignedHTTPRequest{URL: "https://s3.local/" + aws.ToString(in.Key) + "?sig=1"}, nil
}

// --- Tests ---
func TestProfilePictureS3Facade_Upload(t *testing.T) {
	fake := &fakeS3{}
	facade := NewProfilePictureS3Facade(fake, fake, "pictures")
	userID := uuid.New()

	key, err := facade.Upload(context.Background(), userID, strings.NewReader("png"), 3, "image/png")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "profile-pictures/"+userID.String()+"/"))
	assert.Equal(t, "pictures", aws.ToString(fake.putInput.Bucket))
	assert.Equal(t, key, aws.ToString(fake.putInput.Key))
	assert.Equal(t, int64(3), aws.ToInt64(fake.putInput.ContentLength))
	assert.Equal(t, "image/png", aws.ToString(fake.putInput.ContentType))
}

func TestProfilePictureS3Facade_Upload_Error(t *testing.T) {
	fake := &fakeS3{err: errors.New("access denied")}
	facade := NewProfilePictureS3Facade(fake, fake, "pictures")

	key, err := facade.Upload(context.Background(), uuid.New(), strings.NewReader("x"), 1, "image/png")
	assert.Error(t, err)
	assert.Empty(t, key)
}

func TestProfilePictureS3Facade_Delete(t *testing.T) {
	fake := &fakeS3{}
	facade := NewProfilePictureS3Facade(fake, fake, "pictures")

	require.NoError(t, facade.Delete(context.Background(), "profile-pictures/u/old"))
	assert.Equal(t, "pictures", aws.ToString(fake.deleteInput.Bucket))
	assert.Equal(t, "profile-pictures/u/old", aws.ToString(fake.deleteInput.Key))

	fake.err = errors.New("access denied")
	assert.Error(t, facade.Delete(context.Background(), "profile-pictures/u/old"))
}

func TestProfilePictureS3Facade_PresignURL(t *testing.T) {
	fake := &fakeS3{}
	facade := NewProfilePictureS3Facade(fake, fake, "pictures")

	url, err := facade.PresignURL(context.Background(), "profile-pictures/u/p")
	require.NoError(t, err)

	assert.Equal(t, "https://s3.local/profile-pictures/u/p?sig=1", url)
	assert.Equal(t, "pictures", aws.ToString(fake.getInput.Bucket))
	assert.Equal(t, PresignExpiration, fake.presignOp.Expires)
}

func TestProfilePictureS3Facade_PresignURL_Error(t *testing.T) {
	fake := &fakeS3{err: errors.New("boom")}
	facade := NewProfilePictureS3Facade(fake, fake, "pictures")

	url, err := facade.PresignURL(context.Background(), "k")
	assert.Error(t, err)
	assert.Empty(t, url)
}

func TestNewS3Client(t *testing.T) {
	orig := loadDefaultAWSConfig
	t.Cleanup(func() { loadDefaultAWSConfig = orig })

	t.Run("applies region and endpoint", func(t *testing.T) {
		loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
			var lo awsconfig.LoadOptions
			for _, fn := range optFns {
				require.NoError(t, fn(&lo))
			}
			assert.Equal(t, "us-east-1", lo.Region)
			assert.NotNil(t, lo.Credentials)
			return aws.Config{Region: lo.Region}, nil
		}

		client, err := NewS3Client(context.Background(), S3Config{
			Endpoint:  "http://127.0.0.1:9000",
			Region:    "us-east-1",
			AccessKey: "minioadmin",
			SecretKey: "minioadmin",
		})
		require.NoError(t, err)

		opts := client.Options()
		assert.Equal(t, "http://127.0.0.1:9000", aws.ToString(opts.BaseEndpoint))
		assert.True(t, opts.UsePathStyle)
	})

	t.Run("config error", func(t *testing.T) {
		loadDefaultAWSConfig = func(ctx context.Context, optFns ...func(*awsconfig.LoadOptions) error) (aws.Config, error) {
			return aws.Config{}, errors.New("no config")
		}

		client, err := NewS3Client(context.Background(), S3Config{})
		assert.Error(t, err)
		assert.Nil(t, client)
	})
}
