// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// no-cloc

package store

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeS3 serves objects from an in-memory map keyed by object key.
type fakeS3 struct {
	objects map[string]string
	puts    map[string]string
}

func (f *fakeS3) ListObjectsV2(_ context.Context, params *s3v2.ListObjectsV2Input, _ ...func(*s3v2.Options)) (*s3v2.ListObjectsV2Output, error) {
	out := &s3v2.ListObjectsV2Output{}
	for key := range f.objects {
		if strings.HasPrefix(key, awsv2.ToString(params.Prefix)) {
			out.Contents = append(out.Contents, types.Object{Key: awsv2.String(key)})
		}
	}
	return out, nil
}

func (f *fakeS3) GetObject(_ context.Context, params *s3v2.GetObjectInput, _ ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error) {
	body, ok := f.objects[awsv2.ToString(params.Key)]
	if !ok {
		return nil, &types.NoSuchKey{}
	}
	return &s3v2.GetObjectOutput{Body: io.NopCloser(strings.NewReader(body))}, nil
}

func (f *fakeS3) PutObject(_ context.Context, params *s3v2.PutObjectInput, _ ...func(*s3v2.Options)) (*s3v2.PutObjectOutput, error) {
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	if f.puts == nil {
		f.puts = map[string]string{}
	}
	f.puts[awsv2.ToString(params.Key)] = string(data)
	return &s3v2.PutObjectOutput{}, nil
}

func TestParseRef(t *testing.T) {
	tests := []struct {
		name   string
		ref    string
		ok     bool
		bucket string
		prefix string
	}{
		{"bucket and prefix", "s3://facts/snapshots/v1", true, "facts", "snapshots/v1"},
		{"bucket only", "s3://facts", true, "facts", ""},
		{"trailing slash", "s3://facts/snap/", true, "facts", "snap"},
		{"local dir", "/tmp/facts", false, "", ""},
		{"empty bucket", "s3:///prefix", false, "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ref, ok := ParseRef(tc.ref)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.bucket, ref.Bucket)
				assert.Equal(t, tc.prefix, ref.Prefix)
			}
		})
	}
}

func TestPull(t *testing.T) {
	fake := &fakeS3{objects: map[string]string{
		"snap/edge.facts":        "1\t2\n",
		"snap/decls.txt":         ".input edge(IO=file)\n",
		"snap/notes.md":          "ignored suffix",
		"snap/nested/deep.facts": "ignored nesting",
		"othersnap/x.facts":      "other prefix",
	}}

	dest := t.TempDir()
	n, err := New(fake).Pull(context.Background(), Ref{Bucket: "b", Prefix: "snap"}, dest)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	data, err := os.ReadFile(filepath.Join(dest, "edge.facts"))
	require.NoError(t, err)
	assert.Equal(t, "1\t2\n", string(data))

	_, err = os.Stat(filepath.Join(dest, "notes.md"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(dest, "deep.facts"))
	assert.True(t, os.IsNotExist(err))
}

func TestPush(t *testing.T) {
	src := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(src, "edge.facts"), []byte("1\t2\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(src, "readme.md"), []byte("skip"), 0o644))

	fake := &fakeS3{}
	n, err := New(fake).Push(context.Background(), Ref{Bucket: "b", Prefix: "snap"}, src)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, "1\t2\n", fake.puts["snap/edge.facts"])
}

func TestPullCustomSuffixes(t *testing.T) {
	fake := &fakeS3{objects: map[string]string{
		"snap/edge.csv":   "1,2\n",
		"snap/edge.facts": "1\t2\n",
	}}

	dest := t.TempDir()
	n, err := New(fake, WithSuffixes([]string{".csv"})).Pull(context.Background(), Ref{Bucket: "b", Prefix: "snap"}, dest)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
