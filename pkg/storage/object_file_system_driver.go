package storage

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	smithyhttp "github.com/aws/smithy-go/transport/http"
	"github.com/klauspost/compress/s2"

	internalStorage "github.com/litebase/pager/internal/storage"
	"github.com/litebase/pager/pkg/config"
)

// Object metadata key holding the uncompressed size of an object.
const objectSizeMetadataKey = "size"

// ObjectFileSystemDriver stores files as s2 compressed objects in an S3
// compatible bucket.
type ObjectFileSystemDriver struct {
	bucket   string
	buffers  sync.Pool
	context  context.Context
	S3Client *s3.Client
}

func NewObjectFileSystemDriver(c *config.Config) (*ObjectFileSystemDriver, error) {
	ctx := context.Background()

	sdkConfig, err := awsConfig.LoadDefaultConfig(ctx,
		awsConfig.WithRegion(c.StorageRegion),
		awsConfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(
				c.StorageAccessKeyId,
				c.StorageSecretAccessKey,
				"",
			),
		),
	)

	if err != nil {
		log.Println("Error loading object storage configuration", err)
		return nil, err
	}

	s3Client := s3.NewFromConfig(sdkConfig, func(o *s3.Options) {
		if c.StorageEndpoint != "" {
			o.BaseEndpoint = aws.String(c.StorageEndpoint)
		}

		if c.FakeObjectStorage {
			o.UsePathStyle = true
		}
	})

	return &ObjectFileSystemDriver{
		bucket: c.StorageBucket,
		buffers: sync.Pool{
			New: func() any {
				return bytes.NewBuffer(make([]byte, 0, 1024))
			},
		},
		context:  ctx,
		S3Client: s3Client,
	}, nil
}

// Objects have no directories, so this is a no-op.
func (fs *ObjectFileSystemDriver) MkdirAll(path string, perm fs.FileMode) error {
	return nil
}

func (fs *ObjectFileSystemDriver) OpenFile(path string, flag int, perm fs.FileMode) (internalStorage.File, error) {
	file, err := NewObjectFile(fs, fs.Path(path), flag)

	if err != nil {
		return nil, err
	}

	return file, nil
}

// Object keys never start with a slash.
func (fs *ObjectFileSystemDriver) Path(path string) string {
	return strings.TrimPrefix(path, "/")
}

func (fs *ObjectFileSystemDriver) ReadFile(path string) ([]byte, error) {
	return fs.getObject(fs.Path(path))
}

func (fs *ObjectFileSystemDriver) Remove(path string) error {
	_, err := fs.S3Client.DeleteObject(fs.context, &s3.DeleteObjectInput{
		Bucket: aws.String(fs.bucket),
		Key:    aws.String(fs.Path(path)),
	})

	if err != nil {
		if isObjectNotFound(err) {
			return os.ErrNotExist
		}

		return err
	}

	return nil
}

func (fs *ObjectFileSystemDriver) RemoveAll(path string) error {
	paginator := s3.NewListObjectsV2Paginator(fs.S3Client, &s3.ListObjectsV2Input{
		Bucket:  aws.String(fs.bucket),
		MaxKeys: aws.Int32(1000),
		Prefix:  aws.String(fs.Path(path)),
	})

	for paginator.HasMorePages() {
		response, err := paginator.NextPage(fs.context)

		if err != nil {
			return err
		}

		for _, object := range response.Contents {
			_, err = fs.S3Client.DeleteObject(fs.context, &s3.DeleteObjectInput{
				Bucket: aws.String(fs.bucket),
				Key:    object.Key,
			})

			if err != nil && !isObjectNotFound(err) {
				return err
			}
		}

		if len(response.Contents) == 0 {
			break
		}
	}

	return nil
}

func (fs *ObjectFileSystemDriver) Stat(path string) (internalStorage.FileInfo, error) {
	key := fs.Path(path)

	output, err := fs.S3Client.HeadObject(fs.context, &s3.HeadObjectInput{
		Bucket: aws.String(fs.bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		if isObjectNotFound(err) {
			return nil, os.ErrNotExist
		}

		return nil, err
	}

	size := aws.ToInt64(output.ContentLength)

	if value, ok := output.Metadata[objectSizeMetadataKey]; ok {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			size = parsed
		}
	}

	modTime := time.Now().UTC()

	if output.LastModified != nil {
		modTime = *output.LastModified
	}

	return NewStaticFileInfo(key, size, modTime), nil
}

func (fs *ObjectFileSystemDriver) WriteFile(path string, data []byte, perm fs.FileMode) error {
	return fs.putObject(fs.Path(path), data)
}

func (fs *ObjectFileSystemDriver) getObject(key string) ([]byte, error) {
	output, err := fs.S3Client.GetObject(fs.context, &s3.GetObjectInput{
		Bucket: aws.String(fs.bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		if isObjectNotFound(err) {
			return nil, os.ErrNotExist
		}

		log.Println("Error reading object", key, err)

		return nil, err
	}

	defer output.Body.Close()

	body, err := io.ReadAll(output.Body)

	if err != nil {
		log.Println("Error reading object body", key, err)
		return nil, err
	}

	if len(body) == 0 {
		return []byte{}, nil
	}

	data, err := s2.Decode(nil, body)

	if err != nil {
		log.Println("Error decoding object", key, err)
		return nil, fmt.Errorf("decode object %s: %w", key, err)
	}

	return data, nil
}

func (fs *ObjectFileSystemDriver) putObject(key string, data []byte) error {
	compressionBuffer := fs.buffers.Get().(*bytes.Buffer)
	defer fs.buffers.Put(compressionBuffer)

	compressionBuffer.Reset()

	if maxEncodedLen := s2.MaxEncodedLen(len(data)); compressionBuffer.Cap() < maxEncodedLen {
		compressionBuffer.Grow(maxEncodedLen)
	}

	compressed := s2.Encode(compressionBuffer.Bytes()[:compressionBuffer.Cap()], data)

	_, err := fs.S3Client.PutObject(fs.context, &s3.PutObjectInput{
		Body:        bytes.NewReader(compressed),
		Bucket:      aws.String(fs.bucket),
		ContentType: aws.String("application/octet-stream"),
		Key:         aws.String(key),
		Metadata: map[string]string{
			objectSizeMetadataKey: strconv.Itoa(len(data)),
		},
	})

	if err != nil {
		log.Println("Error writing object", key, err)
		return err
	}

	return nil
}

func isObjectNotFound(err error) bool {
	var noKey *s3types.NoSuchKey
	var notFound *s3types.NotFound
	var responseError *smithyhttp.ResponseError

	if errors.As(err, &noKey) || errors.As(err, &notFound) {
		return true
	}

	return errors.As(err, &responseError) && responseError.HTTPStatusCode() == 404
}
