package utils

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const uploadTimeout = 8 * time.Second

// PhotoUpload is one attachment bound for object storage.
type PhotoUpload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// StorageClient stores photo attachments and returns their public URLs in
// the same order as the input attachments.
type StorageClient interface {
	UploadPhotos(ctx context.Context, photos []PhotoUpload) ([]string, error)
}

/* ------------------------------------------------------------------
   S3 implementation
------------------------------------------------------------------ */

type S3StorageClient struct {
	uploader *manager.Uploader
	bucket   string
}

func NewS3StorageClient(ctx context.Context, region, bucket string) (*S3StorageClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, err
	}
	client := s3.NewFromConfig(cfg)
	return &S3StorageClient{
		uploader: manager.NewUploader(client),
		bucket:   bucket,
	}, nil
}

// UploadPhotos uploads every attachment concurrently under a
// collision-resistant key and collects the resulting URLs order-preserved.
// The first failed upload cancels the rest and fails the whole batch with
// ErrStorageUploadFailed.
func (c *S3StorageClient) UploadPhotos(ctx context.Context, photos []PhotoUpload) ([]string, error) {
	urls := make([]string, len(photos))
	now := time.Now().UnixMilli()

	g, gctx := errgroup.WithContext(ctx)
	for i, photo := range photos {
		i, photo := i, photo
		g.Go(func() error {
			// Timestamp alone collides when two uploads of the same
			// filename land in the same millisecond.
			key := fmt.Sprintf("properties/%d-%s-%s", now, uuid.NewString()[:8], photo.Filename)

			upCtx, cancel := context.WithTimeout(gctx, uploadTimeout)
			defer cancel()

			out, err := c.uploader.Upload(upCtx, &s3.PutObjectInput{
				Bucket:      aws.String(c.bucket),
				Key:         aws.String(key),
				Body:        photo.Body,
				ContentType: aws.String(photo.ContentType),
			})
			if err != nil {
				Logger.WithError(err).Errorf("[Storage] Failed to upload %s", photo.Filename)
				return ErrStorageUploadFailed
			}
			if out.Location == "" {
				Logger.Errorf("[Storage] Upload of %s returned no location", photo.Filename)
				return ErrStorageUploadFailed
			}
			urls[i] = out.Location
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return urls, nil
}
