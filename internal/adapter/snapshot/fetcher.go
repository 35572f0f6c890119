// Package snapshot downloads the product snapshot used to provision a fresh
// catalog. Sources are http(s):// URLs and s3://bucket/key objects; the
// payload is a JSON array of product records.
package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/heartmarshall/healthscan-backend/internal/config"
)

// maxSnapshotBytes caps the downloaded payload.
const maxSnapshotBytes = 64 << 20

// ObjectGetter is the subset of *s3.Client used here.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Fetcher retrieves snapshot records from a URL.
type Fetcher struct {
	httpClient *http.Client
	region     string

	s3Once sync.Once
	s3     ObjectGetter
	s3Err  error
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) { f.httpClient = c }
}

// WithS3Client sets the S3 client instead of loading the default AWS config.
func WithS3Client(c ObjectGetter) Option {
	return func(f *Fetcher) {
		f.s3 = c
		f.s3Once.Do(func() {})
	}
}

// NewFetcher creates a Fetcher from bootstrap settings.
func NewFetcher(cfg config.BootstrapConfig, opts ...Option) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{Timeout: cfg.FetchTimeout},
		region:     cfg.S3Region,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch downloads and decodes the snapshot at rawURL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) ([]Record, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse snapshot URL: %w", err)
	}

	var body io.ReadCloser
	switch u.Scheme {
	case "http", "https":
		body, err = f.fetchHTTP(ctx, u.String())
	case "s3":
		body, err = f.fetchS3(ctx, u.Host, strings.TrimPrefix(u.Path, "/"))
	default:
		return nil, fmt.Errorf("unsupported snapshot scheme %q", u.Scheme)
	}
	if err != nil {
		return nil, err
	}
	defer body.Close()

	return Decode(io.LimitReader(body, maxSnapshotBytes))
}

// Decode parses a JSON array of records.
func Decode(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return records, nil
}

func (f *Fetcher) fetchHTTP(ctx context.Context, target string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("build snapshot request: %w", err)
	}

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download snapshot: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("download snapshot: unexpected status %d", resp.StatusCode)
	}

	return resp.Body, nil
}

func (f *Fetcher) fetchS3(ctx context.Context, bucket, key string) (io.ReadCloser, error) {
	client, err := f.s3Client(ctx)
	if err != nil {
		return nil, err
	}

	if timeout := f.httpClient.Timeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("get s3://%s/%s: %w", bucket, key, err)
	}

	raw, err := io.ReadAll(io.LimitReader(out.Body, maxSnapshotBytes))
	out.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read s3://%s/%s: %w", bucket, key, err)
	}

	return io.NopCloser(bytes.NewReader(raw)), nil
}

func (f *Fetcher) s3Client(ctx context.Context) (ObjectGetter, error) {
	f.s3Once.Do(func() {
		loadCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		var opts []func(*awsconfig.LoadOptions) error
		if f.region != "" {
			opts = append(opts, awsconfig.WithRegion(f.region))
		}

		cfg, err := awsconfig.LoadDefaultConfig(loadCtx, opts...)
		if err != nil {
			f.s3Err = fmt.Errorf("load AWS config: %w", err)
			return
		}
		f.s3 = s3.NewFromConfig(cfg)
	})
	return f.s3, f.s3Err
}
