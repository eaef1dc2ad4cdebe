package publish

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	domerrors "github.com/vango-dev/domkit/internal/errors"
)

// ContentType is set on every published page.
const ContentType = "text/html; charset=utf-8"

// ObjectPutter is the part of the S3 API the Publisher needs.
// *s3.Client satisfies it.
type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Page is a rendered page awaiting upload.
type Page struct {
	Name string
	HTML []byte
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithPrefix sets the key prefix, e.g. "reports/".
func WithPrefix(prefix string) Option {
	return func(p *Publisher) {
		p.prefix = prefix
	}
}

// WithCacheControl sets the Cache-Control header stored with each page.
func WithCacheControl(v string) Option {
	return func(p *Publisher) {
		p.cacheControl = v
	}
}

// WithLogger sets the logger used for upload records.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

// Publisher uploads rendered pages to a bucket.
type Publisher struct {
	client       ObjectPutter
	bucket       string
	prefix       string
	cacheControl string
	logger       *slog.Logger
	now          func() time.Time
}

// New creates a Publisher for bucket.
func New(client ObjectPutter, bucket string, opts ...Option) (*Publisher, error) {
	if bucket == "" {
		return nil, domerrors.New("E131").
			WithSuggestion(`Set "publish.bucket" in domkit.json or pass --bucket`)
	}
	p := &Publisher{
		client: client,
		bucket: bucket,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Key returns the object key for a page name.
func (p *Publisher) Key(name string) string {
	return p.prefix + name + ".html"
}

// Publish uploads one page and returns its key.
func (p *Publisher) Publish(ctx context.Context, name string, html []byte) (string, error) {
	if name == "" || strings.Contains(name, "..") {
		return "", domerrors.New("E130").WithDetailf("invalid page name %q", name)
	}
	key := p.Key(name)

	input := &s3.PutObjectInput{
		Bucket:      aws.String(p.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(html),
		ContentType: aws.String(ContentType),
		Metadata: map[string]string{
			"domkit-spec":  name,
			"publish-time": p.now().UTC().Format(time.RFC3339),
		},
	}
	if p.cacheControl != "" {
		input.CacheControl = aws.String(p.cacheControl)
	}

	if _, err := p.client.PutObject(ctx, input); err != nil {
		return "", domerrors.New("E130").
			WithDetailf("s3://%s/%s", p.bucket, key).
			Wrap(err)
	}
	p.logger.Info("published page", "bucket", p.bucket, "key", key, "bytes", len(html))
	return key, nil
}

// PublishAll uploads pages in order and stops at the first failure. The
// keys uploaded before the failure are returned with the error.
func (p *Publisher) PublishAll(ctx context.Context, pages []Page) ([]string, error) {
	keys := make([]string, 0, len(pages))
	for _, page := range pages {
		if err := ctx.Err(); err != nil {
			return keys, domerrors.New("E130").Wrap(err)
		}
		key, err := p.Publish(ctx, page.Name, page.HTML)
		if err != nil {
			return keys, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// Published lists the page keys under the prefix. The client must also
// implement s3.ListObjectsV2APIClient.
func (p *Publisher) Published(ctx context.Context) ([]string, error) {
	lister, ok := p.client.(s3.ListObjectsV2APIClient)
	if !ok {
		return nil, domerrors.New("E130").WithDetail("client cannot list objects")
	}

	paginator := s3.NewListObjectsV2Paginator(lister, &s3.ListObjectsV2Input{
		Bucket: aws.String(p.bucket),
		Prefix: aws.String(p.prefix),
	})

	var keys []string
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return keys, domerrors.New("E130").Wrap(err)
		}
		for _, obj := range page.Contents {
			if obj.Key != nil && strings.HasSuffix(*obj.Key, ".html") {
				keys = append(keys, *obj.Key)
			}
		}
	}
	return keys, nil
}

// NewS3Client creates an S3 client for region using credentials from the
// standard AWS environment variables. An empty region falls back to
// AWS_REGION. AWS_ENDPOINT_URL points the client at an S3-compatible store
// with path-style addressing.
func NewS3Client(region string) *s3.Client {
	if region == "" {
		region = os.Getenv("AWS_REGION")
	}
	opts := s3.Options{
		Region:      region,
		Credentials: aws.NewCredentialsCache(envCredentials()),
	}
	if endpoint := os.Getenv("AWS_ENDPOINT_URL"); endpoint != "" {
		opts.BaseEndpoint = aws.String(endpoint)
		opts.UsePathStyle = true
	}
	return s3.New(opts)
}

func envCredentials() aws.CredentialsProvider {
	return aws.CredentialsProviderFunc(func(context.Context) (aws.Credentials, error) {
		creds := aws.Credentials{
			AccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
			SessionToken:    os.Getenv("AWS_SESSION_TOKEN"),
			Source:          "environment",
		}
		if creds.AccessKeyID == "" || creds.SecretAccessKey == "" {
			return aws.Credentials{}, domerrors.New("E130").
				WithDetail("AWS_ACCESS_KEY_ID and AWS_SECRET_ACCESS_KEY must be set")
		}
		return creds, nil
	})
}
