package filestore

import (
	"context"
	"strings"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/filebox/filebox_api/internal/config"
	"github.com/filebox/filebox_api/internal/models"
)

const (
	fileStoreInitBucketTimeout = 10 * time.Second
	fileListTimeout            = 10 * time.Second
)

type minioStore struct {
	client *minio.Client
	bucket string
}

func NewMinioStore(cfg config.Config) (FileStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), fileStoreInitBucketTimeout)
	defer cancel()

	client, err := minio.New(cfg.Store.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.Store.AccessKey, cfg.Store.SecretKey, ""),
		Secure: cfg.Store.UseSSL,
	})
	if err != nil {
		return nil, err
	}

	store := &minioStore{client: client, bucket: cfg.Store.Bucket}
	err = client.MakeBucket(ctx, cfg.Store.Bucket, minio.MakeBucketOptions{})
	if err != nil {
		exists, errBucketExists := client.BucketExists(ctx, cfg.Store.Bucket)
		if errBucketExists == nil && exists {
			return store, nil
		}

		return nil, err
	}

	return store, nil
}

func (m *minioStore) Save(ctx context.Context, file *models.File) error {
	defer file.Entry.Close()

	opts := minio.PutObjectOptions{}
	if file.Size < 0 {
		// Unknown length streams in 16MiB parts.
		opts.PartSize = 16 << 20
	}

	_, err := m.client.PutObject(ctx, m.bucket, file.Name, file.Entry, file.Size, opts)

	return err
}

func (m *minioStore) Open(ctx context.Context, name string) (*models.File, error) {
	obj, err := m.client.GetObject(ctx, m.bucket, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}

	info, err := obj.Stat()
	if err != nil {
		obj.Close()
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return nil, ErrFileNotFound
		}

		return nil, err
	}

	return &models.File{
		Name:  name,
		Size:  info.Size,
		Entry: obj,
	}, nil
}

func (m *minioStore) List(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, fileListTimeout)
	defer cancel()

	names := make([]string, 0)
	for object := range m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{}) {
		if object.Err != nil {
			return nil, object.Err
		}
		// Common prefixes stand in for directories and are skipped.
		if strings.HasSuffix(object.Key, "/") {
			continue
		}
		names = append(names, object.Key)
	}

	return names, nil
}
