package storage

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"paperstash/internal/domain/upload"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

type S3Config struct {
	Region     string
	Bucket     string
	AccessKey  string
	SecretKey  string
	Endpoint   string
	PresignTTL time.Duration
}

type Client struct {
	cfg     S3Config
	s3      *s3.Client
	presign *s3.PresignClient
}

func NewClient(ctx context.Context, cfg S3Config) (*Client, error) {
	if cfg.Region == "" || cfg.Bucket == "" {
		return nil, errors.New("s3 region and bucket are required")
	}

	var opts []func(*config.LoadOptions) error
	opts = append(opts, config.WithRegion(cfg.Region))

	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}

	s3Client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})
	presignClient := s3.NewPresignClient(s3Client)

	return &Client{
		cfg:     cfg,
		s3:      s3Client,
		presign: presignClient,
	}, nil
}

// UploadFilePath is the object key raw bytes for an upload file land at.
func UploadFilePath(uploadID uuid.UUID, fileName string) string {
	return fmt.Sprintf("u/%s/%s", uploadID.String(), fileName)
}

// IssueUploadURL returns the destination for the upload: its object key, a
// time-limited PUT URL and the headers the PUT has to carry. The declared
// content type is always among those headers.
func (c *Client) IssueUploadURL(ctx context.Context, uploadID uuid.UUID, fileName, contentType string) (upload.SignedURL, error) {
	if uploadID == uuid.Nil {
		return upload.SignedURL{}, errors.New("upload id is required")
	}
	key := UploadFilePath(uploadID, fileName)
	signedURL, signed, err := c.PresignPut(ctx, key, contentType)
	if err != nil {
		return upload.SignedURL{}, err
	}
	return upload.SignedURL{
		Path:    key,
		URL:     signedURL,
		Headers: requiredHeaders(signed, contentType),
	}, nil
}

// PresignPut signs a PUT for key. The returned header set is what the
// signer bound into the request besides the query string.
func (c *Client) PresignPut(ctx context.Context, key, contentType string) (string, http.Header, error) {
	if c == nil {
		return "", nil, errors.New("s3 client not initialized")
	}
	if key == "" {
		return "", nil, errors.New("object key is required")
	}
	input := &s3.PutObjectInput{
		Bucket: aws.String(c.cfg.Bucket),
		Key:    aws.String(key),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	presigned, err := c.presign.PresignPutObject(ctx, input, func(po *s3.PresignOptions) {
		if c.cfg.PresignTTL > 0 {
			po.Expires = c.cfg.PresignTTL
		}
	})
	if err != nil {
		return "", nil, err
	}
	return presigned.URL, presigned.SignedHeader, nil
}

func requiredHeaders(signed http.Header, contentType string) map[string]string {
	headers := make(map[string]string, len(signed)+1)
	for name, values := range signed {
		name = http.CanonicalHeaderKey(name)
		if name == "Host" || len(values) == 0 {
			continue
		}
		headers[name] = values[0]
	}
	if contentType != "" {
		headers["Content-Type"] = contentType
	}
	return headers
}

// Ping checks that the bucket is reachable with the configured credentials.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.s3.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(c.cfg.Bucket)})
	return err
}
