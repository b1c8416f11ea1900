// Package storage provides the object store client used for content
// payloads and thumbnails.
package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/spf13/viper"
)

// Presigned URLs stay valid long enough for a browser upload but not
// much longer
const presignExpiry = 15 * time.Minute

type ObjectStore struct {
	C        *s3.Client
	Presign  *s3.PresignClient
	Uploader *manager.Uploader
	Bucket   *string
}

func New() (*ObjectStore, error) {
	cfg, err := config.LoadDefaultConfig(context.TODO(),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			viper.GetString("s3.access_key_id"),
			viper.GetString("s3.secret_access_key"),
			"",
		)),
	)
	if err != nil {
		return nil, err
	}

	bucket := aws.String(viper.GetString("s3.bucket"))

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint := viper.GetString("s3.endpoint"); endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}

		o.Region = viper.GetString("s3.region")
	})

	_, err = client.HeadBucket(context.TODO(), &s3.HeadBucketInput{
		Bucket: bucket,
	})
	if err != nil {
		var apiErr smithy.APIError

		if errors.As(err, &apiErr) {
			if apiErr.ErrorCode() == "NotFound" {
				return nil, fmt.Errorf("bucket '%s' does not exist", *bucket)
			}
		}

		return nil, fmt.Errorf("failed to check if bucket exists, %w", err)
	}

	return &ObjectStore{
		C:        client,
		Presign:  s3.NewPresignClient(client),
		Uploader: manager.NewUploader(client),
		Bucket:   bucket,
	}, nil
}

// UploadURL returns a presigned PUT for a content payload.
func (o *ObjectStore) UploadURL(ctx context.Context, key string) (string, error) {
	req, err := o.Presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: o.Bucket,
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

// DownloadURL returns a presigned GET for a content payload.
func (o *ObjectStore) DownloadURL(ctx context.Context, key string) (string, error) {
	req, err := o.Presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: o.Bucket,
		Key:    aws.String(key),
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

// Upload streams a thumbnail or other small object directly.
func (o *ObjectStore) Upload(ctx context.Context, key, contentType string, body io.Reader) error {
	_, err := o.Uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      o.Bucket,
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
		Body:        body,
	})

	return err
}

// Delete removes the given object keys, best effort.
func (o *ObjectStore) Delete(ctx context.Context, keys ...string) error {
	objects := make([]types.ObjectIdentifier, 0, len(keys))
	for i := range keys {
		objects = append(objects, types.ObjectIdentifier{Key: &keys[i]})
	}

	_, err := o.C.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: o.Bucket,
		Delete: &types.Delete{Objects: objects},
	})

	return err
}
