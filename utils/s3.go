package utils

import (
	"context"
	"fmt"
	"log"
	"mime"
	"os"
	"path"
	"path/filepath"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/raushankrgupta/carma-scraper/config"
)

// S3Mirror copies the files of a run into a bucket
type S3Mirror struct {
	Client *s3.Client
	Bucket string
	Prefix string
}

// NewS3Mirror initializes the S3 client from the default AWS credential chain
func NewS3Mirror(ctx context.Context, cfg config.Config) (*S3Mirror, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config, %w", err)
	}

	log.Println("S3 Client Initialized")
	return &S3Mirror{
		Client: s3.NewFromConfig(awsCfg),
		Bucket: cfg.AWSBucketName,
		Prefix: cfg.AWSPrefix,
	}, nil
}

// ObjectKey places a local file name under the mirror prefix
func (m *S3Mirror) ObjectKey(name string) string {
	return path.Join(m.Prefix, filepath.Base(name))
}

// UploadFile uploads the file at localPath and returns the object key
func (m *S3Mirror) UploadFile(ctx context.Context, localPath string) (string, error) {
	f, err := os.Open(localPath)
	if err != nil {
		return "", err
	}
	defer f.Close()

	contentType := mime.TypeByExtension(filepath.Ext(localPath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	key := m.ObjectKey(localPath)
	_, err = m.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(m.Bucket),
		Key:         aws.String(key),
		Body:        f,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file to S3: %w", err)
	}

	return key, nil
}

// UploadAll uploads every path, logging failures, and returns how many made it
func (m *S3Mirror) UploadAll(ctx context.Context, paths []string) int {
	uploaded := 0
	for _, p := range paths {
		key, err := m.UploadFile(ctx, p)
		if err != nil {
			log.Printf("Failed to upload %s: %v", p, err)
			continue
		}
		log.Printf("Uploaded %s to s3://%s/%s", p, m.Bucket, key)
		uploaded++
	}
	return uploaded
}
