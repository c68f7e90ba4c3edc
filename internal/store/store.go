// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package store

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dustin/go-humanize"

	awsx "github.com/factsctl/factsctl/internal/aws"
	"github.com/factsctl/factsctl/internal/log"
	"github.com/factsctl/factsctl/internal/snapshot"
	"github.com/factsctl/factsctl/internal/util"
	"github.com/factsctl/factsctl/internal/workdir"
)

const s3Scheme = "s3://"

// Ref is a parsed s3:// snapshot location.
type Ref struct {
	Bucket string
	Prefix string
}

func (r Ref) String() string {
	return s3Scheme + path.Join(r.Bucket, r.Prefix)
}

// ParseRef splits an s3://bucket/prefix reference. ok is false for
// anything that is not an s3:// URL.
func ParseRef(ref string) (Ref, bool) {
	if !strings.HasPrefix(ref, s3Scheme) {
		return Ref{}, false
	}
	rest := strings.TrimPrefix(ref, s3Scheme)
	bucket, prefix, _ := strings.Cut(rest, "/")
	return Ref{Bucket: bucket, Prefix: strings.Trim(prefix, "/")}, bucket != ""
}

// S3API is the slice of the S3 client the store uses.
type S3API interface {
	ListObjectsV2(ctx context.Context, params *s3v2.ListObjectsV2Input, optFns ...func(*s3v2.Options)) (*s3v2.ListObjectsV2Output, error)
	GetObject(ctx context.Context, params *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3v2.PutObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error)
}

type options struct {
	suffixes []string
}

// Option customizes a Store.
type Option func(*options)

// WithSuffixes overrides which file suffixes are transferred.
func WithSuffixes(suffixes []string) Option {
	return func(o *options) { o.suffixes = suffixes }
}

// Store moves snapshot files between S3 and local directories.
type Store struct {
	client   S3API
	suffixes []string
}

func New(client S3API, opts ...Option) *Store {
	o := options{suffixes: snapshot.DefaultSuffixes}
	for _, opt := range opts {
		opt(&o)
	}
	return &Store{client: client, suffixes: o.suffixes}
}

// Pull downloads every suffix-matching object under the prefix into
// destDir and returns how many files were written. Keys nested below
// the prefix are skipped; a snapshot is a flat directory.
func (s *Store) Pull(ctx context.Context, ref Ref, destDir string) (int, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return 0, err
	}

	prefix := ref.Prefix
	if prefix != "" {
		prefix += "/"
	}

	var pulled int
	paginator := s3v2.NewListObjectsV2Paginator(s.client, &s3v2.ListObjectsV2Input{
		Bucket: awsv2.String(ref.Bucket),
		Prefix: awsv2.String(prefix),
	})
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return pulled, fmt.Errorf("failed to list %s: %w", ref, err)
		}
		for _, obj := range page.Contents {
			key := awsv2.ToString(obj.Key)
			name := strings.TrimPrefix(key, prefix)
			if name == "" || strings.Contains(name, "/") || !s.wanted(name) {
				continue
			}
			if err := s.pullObject(ctx, ref.Bucket, key, filepath.Join(destDir, name)); err != nil {
				return pulled, err
			}
			pulled++
		}
	}
	log.Debugf("pulled %d files from %s", pulled, ref)
	return pulled, nil
}

func (s *Store) pullObject(ctx context.Context, bucket, key, dest string) error {
	out, err := s.client.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(bucket),
		Key:    awsv2.String(key),
	})
	if err != nil {
		return fmt.Errorf("failed to get s3://%s/%s: %w", bucket, key, err)
	}
	defer out.Body.Close()

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer f.Close()

	n, err := io.Copy(f, out.Body)
	if err != nil {
		return err
	}
	log.Tracef("pulled %s (%s)", key, humanize.Bytes(uint64(n)))
	return nil
}

// Push uploads every suffix-matching file in srcDir under the prefix
// and returns how many objects were written.
func (s *Store) Push(ctx context.Context, ref Ref, srcDir string) (int, error) {
	entries, err := os.ReadDir(srcDir)
	if err != nil {
		return 0, err
	}

	var pushed int
	for _, entry := range entries {
		if entry.IsDir() || !s.wanted(entry.Name()) {
			continue
		}
		f, err := os.Open(filepath.Join(srcDir, entry.Name()))
		if err != nil {
			return pushed, err
		}
		key := path.Join(ref.Prefix, entry.Name())
		_, err = s.client.PutObject(ctx, &s3v2.PutObjectInput{
			Bucket: awsv2.String(ref.Bucket),
			Key:    awsv2.String(key),
			Body:   f,
		})
		f.Close()
		if err != nil {
			return pushed, fmt.Errorf("failed to put s3://%s/%s: %w", ref.Bucket, key, err)
		}
		log.Tracef("pushed %s", key)
		pushed++
	}
	log.Debugf("pushed %d files to %s", pushed, ref)
	return pushed, nil
}

func (s *Store) wanted(name string) bool {
	for _, suffix := range s.suffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

// Resolve turns a snapshot reference into a local directory. Local
// references are validated and returned as-is; s3:// references are
// staged into a work-dir subdirectory keyed by the reference.
func Resolve(ctx context.Context, ref string, opts ...awsx.Option) (string, error) {
	s3ref, ok := ParseRef(ref)
	if !ok {
		return util.ParseFactsDir(ref)
	}

	cfg, err := awsx.LoadConfig(ctx, opts...)
	if err != nil {
		return "", fmt.Errorf("failed to load AWS config: %w", err)
	}

	dir, err := workdir.For(ref)
	if err != nil {
		return "", err
	}
	if _, err := New(awsx.NewS3(cfg)).Pull(ctx, s3ref, dir); err != nil {
		return "", err
	}
	return dir, nil
}
