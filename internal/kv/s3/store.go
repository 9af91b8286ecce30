// Package s3 implements the key-value Store on an S3-compatible bucket
// (AWS S3 or MinIO). Each key maps to one object.
package s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"path"
	"time"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awshttp "github.com/aws/aws-sdk-go-v2/aws/transport/http"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/sony/gobreaker"

	"github.com/thenoetrevino/huddle/internal/kv/core"
)

// Config holds explicit construction parameters.
type Config struct {
	Bucket    string
	Region    string
	Endpoint  string // optional; enables a custom endpoint such as MinIO
	Prefix    string
	PathStyle bool

	// HTTPClient overrides the transport, mostly for tests.
	HTTPClient *http.Client
	// LoadOptions are passed through to config.LoadDefaultConfig.
	LoadOptions []func(*config.LoadOptions) error
}

// Store implements core.Store on S3. Every call goes through a circuit breaker
// so a dead endpoint fails fast instead of stalling each save.
type Store struct {
	client  *s3.Client
	bucket  string
	prefix  string
	breaker *gobreaker.CircuitBreaker
}

// New creates an S3-backed store from cfg.
func New(ctx context.Context, cfg Config) (*Store, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 bucket required")
	}
	region := cfg.Region
	if region == "" {
		region = "us-east-1"
	}

	loadOpts := append([]func(*config.LoadOptions) error{config.WithRegion(region)}, cfg.LoadOptions...)
	awsCfg, err := config.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.PathStyle
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		if cfg.HTTPClient != nil {
			o.HTTPClient = cfg.HTTPClient
		}
	})

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "kv-s3",
		MaxRequests: 1,
		Timeout:     5 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures > 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("circuit breaker state changed", "breaker", name, "from", from.String(), "to", to.String())
		},
	})

	return &Store{client: client, bucket: cfg.Bucket, prefix: cfg.Prefix, breaker: breaker}, nil
}

func (s *Store) Driver() core.Driver { return core.DriverS3 }

func (s *Store) objectKey(key string) string {
	if s.prefix == "" {
		return key + ".json"
	}
	return path.Join(s.prefix, key+".json")
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := core.ValidateKey(key); err != nil {
		return nil, err
	}
	objKey := s.objectKey(key)

	// a missing object is a normal answer and must not trip the breaker
	missing := false
	res, err := s.breaker.Execute(func() (interface{}, error) {
		out, err := s.client.GetObject(ctx, &s3.GetObjectInput{Bucket: &s.bucket, Key: &objKey})
		if err != nil {
			if isNotFound(err) {
				missing = true
				return nil, nil
			}
			return nil, err
		}
		defer func() { _ = out.Body.Close() }()
		return io.ReadAll(out.Body)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get %s: %w", objKey, err)
	}
	if missing {
		return nil, core.ErrNotFound
	}
	return res.([]byte), nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if err := core.ValidateKey(key); err != nil {
		return err
	}
	objKey := s.objectKey(key)
	_, err := s.breaker.Execute(func() (interface{}, error) {
		return s.client.PutObject(ctx, &s3.PutObjectInput{
			Bucket:      &s.bucket,
			Key:         &objKey,
			Body:        bytes.NewReader(value),
			ContentType: aws.String("application/json"),
		})
	})
	if err != nil {
		return fmt.Errorf("failed to put %s: %w", objKey, err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	if err := core.ValidateKey(key); err != nil {
		return err
	}
	objKey := s.objectKey(key)
	_, err := s.breaker.Execute(func() (interface{}, error) {
		return s.client.DeleteObject(ctx, &s3.DeleteObjectInput{Bucket: &s.bucket, Key: &objKey})
	})
	if err != nil {
		return fmt.Errorf("failed to delete %s: %w", objKey, err)
	}
	return nil
}

func (s *Store) Close() error { return nil }

func isNotFound(err error) bool {
	var nsk *types.NoSuchKey
	if errors.As(err, &nsk) {
		return true
	}
	var respErr *awshttp.ResponseError
	return errors.As(err, &respErr) && respErr.HTTPStatusCode() == http.StatusNotFound
}
