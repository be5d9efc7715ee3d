package contigcov

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/carbocation/pfx"
	"google.golang.org/api/iterator"
)

const gsScheme = "gs://"

// IsGoogleStoragePath reports whether path names a Google Storage object or
// prefix.
func IsGoogleStoragePath(path string) bool {
	return strings.HasPrefix(path, gsScheme)
}

// SplitGoogleStoragePath splits gs://bucket/object into bucket and object.
// The object may be empty for a bare bucket.
func SplitGoogleStoragePath(path string) (bucket, object string, err error) {
	if !IsGoogleStoragePath(path) {
		return "", "", fmt.Errorf("%s is not a gs:// path", path)
	}

	pathParts := strings.SplitN(strings.TrimPrefix(path, gsScheme), "/", 2)
	if pathParts[0] == "" {
		return "", "", fmt.Errorf("%s has no bucket", path)
	}
	if len(pathParts) == 1 {
		return pathParts[0], "", nil
	}

	return pathParts[0], pathParts[1], nil
}

// MaybeOpenFromGoogleStorage opens gs:// paths with client and everything else
// from the local filesystem.
func MaybeOpenFromGoogleStorage(ctx context.Context, path string, client *storage.Client) (io.ReadCloser, error) {
	if !IsGoogleStoragePath(path) {
		f, err := os.Open(path)
		return f, pfx.Err(err)
	}

	if client == nil {
		return nil, fmt.Errorf("%s: no Google Storage client", path)
	}

	bucketName, pathName, err := SplitGoogleStoragePath(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	rdr, err := client.Bucket(bucketName).Object(pathName).NewReader(ctx)
	if err != nil {
		return nil, pfx.Err(fmt.Errorf("%s: %s", path, err))
	}

	return rdr, nil
}

// ListGoogleStorage returns the gs:// paths of every object under prefix, in
// the lexicographic order the service lists them.
func ListGoogleStorage(ctx context.Context, prefix string, client *storage.Client) ([]string, error) {
	if client == nil {
		return nil, fmt.Errorf("%s: no Google Storage client", prefix)
	}

	bucketName, pathName, err := SplitGoogleStoragePath(prefix)
	if err != nil {
		return nil, pfx.Err(err)
	}

	out := make([]string, 0)

	itr := client.Bucket(bucketName).Objects(ctx, &storage.Query{Prefix: pathName})
	for {
		attrs, err := itr.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, pfx.Err(err)
		}
		if strings.HasSuffix(attrs.Name, "/") {
			continue
		}

		out = append(out, gsScheme+bucketName+"/"+attrs.Name)
	}

	return out, nil
}
