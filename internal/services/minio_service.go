package services

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"go.uber.org/zap"

	"liveTrading/configs"
	"liveTrading/internal/enums"
)

type MinioService struct {
	minioClient *minio.Client
	config      *configs.Config
}

var (
	minioService *MinioService
	minioOnce    sync.Once
)

func NewMinioService(config *configs.Config) *MinioService {
	minioOnce.Do(func() {
		endpoint := config.Viper.GetString("minio.endpoint")
		accessKeyID := config.Viper.GetString("minio.access_key_id")
		secretAccessKey := config.Viper.GetString("minio.secret_access_key")
		useSSL := config.Viper.GetBool("minio.use_ssl")

		minioClient, err := minio.New(endpoint, &minio.Options{
			Creds:  credentials.NewStaticV4(accessKeyID, secretAccessKey, ""),
			Secure: useSSL,
		})
		if err != nil {
			zap.L().Fatal("failed to initialize minio client", zap.Error(err))
		}

		for _, bucketName := range []string{enums.FILE_BUCKET_USER_AVATAR, enums.FILE_BUCKET_ROOM_THUMBNAIL} {
			err = minioClient.MakeBucket(context.Background(), bucketName, minio.MakeBucketOptions{})
			if err != nil {
				exists, errBucketExists := minioClient.BucketExists(context.Background(), bucketName)
				if errBucketExists == nil && exists {
					zap.L().Info("bucket already exists", zap.String("bucket", bucketName))
				} else {
					zap.L().Fatal("failed to create bucket", zap.String("bucket", bucketName), zap.Error(err))
				}
			} else {
				zap.L().Info("bucket created", zap.String("bucket", bucketName))
			}
		}

		minioService = &MinioService{
			minioClient: minioClient,
			config:      config,
		}
	})

	if minioService == nil {
		zap.L().Fatal("minio service is not initialized")
	}
	return minioService
}

func (ms *MinioService) UploadFile(fileName string, file io.Reader, fileSize int64, contentType string, bucketName string) (string, error) {
	info, err := ms.minioClient.PutObject(context.Background(), bucketName, fileName, file, fileSize, minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		zap.L().Warn("failed to upload file", zap.String("bucket", bucketName), zap.Error(err))
		return "", err
	}

	publicUrl, err := ms.GetPublicFileUrl(bucketName, info.Key)
	if err != nil {
		zap.L().Warn("failed to build public file url", zap.String("bucket", bucketName), zap.Error(err))
		return "", err
	}
	return publicUrl, nil
}

func (ms *MinioService) GetPublicFileUrl(bucketName, fileKey string) (string, error) {
	externalEndpoint := ms.config.Viper.GetString("minio.external_endpoint")
	path := fmt.Sprintf("http://%s/%s/%s", externalEndpoint, bucketName, fileKey)
	return path, nil
}
