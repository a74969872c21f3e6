// Package s3 implements the document source over an S3 bucket holding the
// recipe collection, plus report upload for publishing the generated index.
package s3

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"recettes/internal/domain"
)

// Config carries the bucket coordinates and optional static credentials.
// Endpoint is used for S3-compatible stores (MinIO) and forces path style.
type Config struct {
	Bucket    string
	Prefix    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

var textExtensions = map[string]string{
	".txt":  "text/plain",
	".md":   "text/markdown",
	".text": "text/plain",
}

// Source lists and reads recipe documents stored under a bucket prefix.
type Source struct {
	client   *s3.Client
	uploader *manager.Uploader
	bucket   string
	prefix   string
}

// New builds the AWS client from config, preferring static credentials when
// provided and the ambient credential chain otherwise.
func New(ctx context.Context, cfg Config) (*Source, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 source: bucket is required")
	}

	var opts []func(*awsconfig.LoadOptions) error
	opts = append(opts, awsconfig.WithRegion(cfg.Region))
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("loading aws config: %w", err)
	}

	var s3Opts []func(*s3.Options)
	if cfg.Endpoint != "" {
		s3Opts = append(s3Opts, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		})
	}

	client := s3.NewFromConfig(awsCfg, s3Opts...)
	return &Source{
		client:   client,
		uploader: manager.NewUploader(client),
		bucket:   cfg.Bucket,
		prefix:   strings.TrimPrefix(cfg.Prefix, "/"),
	}, nil
}

// List pages through every object under the prefix and returns one document
// per text object.
func (s *Source) List(ctx context.Context) ([]domain.RawDocument, error) {
	var docs []domain.RawDocument
	paginator := s3.NewListObjectsV2Paginator(s.client, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(s.prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("s3 list: %w", err)
		}
		for _, obj := range page.Contents {
			key := aws.ToString(obj.Key)
			if strings.HasSuffix(key, "/") {
				continue
			}
			mime, ok := textExtensions[strings.ToLower(path.Ext(key))]
			if !ok {
				continue
			}
			base := path.Base(key)
			doc := domain.RawDocument{
				ID:          key,
				Name:        strings.TrimSuffix(base, path.Ext(base)),
				MimeType:    mime,
				FullPath:    strings.TrimPrefix(strings.TrimPrefix(key, s.prefix), "/"),
				WebViewLink: fmt.Sprintf("s3://%s/%s", s.bucket, key),
			}
			if obj.LastModified != nil {
				doc.ModifiedTime = obj.LastModified.UTC().Format(time.RFC3339)
			}
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

// Text downloads one object. Non-text keys yield "" per the acquisition
// contract.
func (s *Source) Text(ctx context.Context, doc domain.RawDocument) (string, error) {
	if _, ok := textExtensions[strings.ToLower(path.Ext(doc.ID))]; !ok {
		return "", nil
	}
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(doc.ID),
	})
	if err != nil {
		return "", fmt.Errorf("s3 get %s: %w", doc.ID, err)
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return "", fmt.Errorf("s3 read %s: %w", doc.ID, err)
	}
	return string(data), nil
}

// UploadReport publishes a generated report next to the collection, under
// <prefix>/reports/.
func (s *Source) UploadReport(ctx context.Context, name, contentType string, body io.Reader) (string, error) {
	key := path.Join(s.prefix, "reports", name)
	result, err := s.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("s3 upload %s: %w", key, err)
	}
	return result.Location, nil
}
