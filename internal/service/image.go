package service

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/pageza/recipe-api/backend/config"
)

// MaxImageSize is the largest accepted recipe image
const MaxImageSize = 5 << 20

var imageExtensions = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// ObjectPutter is the subset of the S3 client used for uploads
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// ImageService stores recipe images in S3
type ImageService struct {
	client ObjectPutter
	bucket string
	urlFor func(key string) string
}

// NewImageService creates an ImageService backed by the configured bucket
func NewImageService(s3Config *config.S3Config) *ImageService {
	return &ImageService{
		client: s3Config.Client,
		bucket: s3Config.BucketName,
		urlFor: s3Config.ObjectURL,
	}
}

// NewImageServiceWithClient creates an ImageService around any ObjectPutter
func NewImageServiceWithClient(client ObjectPutter, bucket string, urlFor func(key string) string) *ImageService {
	return &ImageService{client: client, bucket: bucket, urlFor: urlFor}
}

// UploadRecipeImage stores the image and returns the URL to put in a recipe's imageUrl
func (s *ImageService) UploadRecipeImage(ctx context.Context, contentType string, size int64, body io.Reader) (string, error) {
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", &ValidationError{Messages: []string{fmt.Sprintf("Unsupported image type %q", contentType)}}
	}
	if size <= 0 || size > MaxImageSize {
		return "", &ValidationError{Messages: []string{fmt.Sprintf("Image must be between 1 byte and %d MiB", MaxImageSize>>20)}}
	}

	key := fmt.Sprintf("recipes/%s%s", uuid.New().String(), ext)
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(size),
	})
	if err != nil {
		return "", storeError("upload recipe image", err)
	}

	log.Printf("[ImageService] Uploaded %s to bucket %s", key, s.bucket)
	return s.urlFor(key), nil
}
