package oss

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/vidloom/vidloom/config"
)

var minioClient *minio.Client

const (
	videoBucket   = "videos"
	pictureBucket = "pictures"
	location      = "us-east-1"
)

func Init() {
	var err error
	minioClient, err = minio.New(config.ConfigInfo.Minio.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.ConfigInfo.Minio.AccessKey, config.ConfigInfo.Minio.SecretKey, ""),
		Secure: config.ConfigInfo.Minio.UseSSL,
	})
	if err != nil {
		panic(err)
	}
}

func ensureBucket(ctx context.Context, bucketName string) error {
	exists, err := minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return fmt.Errorf("check bucket error: %w", err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location}); err != nil {
			return fmt.Errorf("create bucket error: %w", err)
		}
	}
	return nil
}

// UploadVideo streams the raw upload into object storage and returns the
// object key plus the public locator.
func UploadVideo(ctx context.Context, vid string, reader io.Reader, size int64, contentType string) (string, string, error) {
	if err := ensureBucket(ctx, videoBucket); err != nil {
		return "", "", err
	}
	if contentType == "" {
		contentType = "video/mp4"
	}

	objectName := "video/" + vid + "/video.mp4"
	_, err := minioClient.PutObject(ctx, videoBucket, objectName, reader, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		hlog.CtxErrorf(ctx, "failed to upload video object %s: %v", objectName, err)
		return "", "", err
	}

	url := fmt.Sprintf("%s/%s/%s", config.ConfigInfo.Minio.PublicURL, videoBucket, objectName)
	return objectName, url, nil
}

// UploadThumbnail stores a cover image for the video.
func UploadThumbnail(ctx context.Context, vid string, reader io.Reader, size int64) (string, error) {
	if err := ensureBucket(ctx, pictureBucket); err != nil {
		return "", err
	}

	objectName := "thumbnail/" + vid + "/cover.jpg"
	_, err := minioClient.PutObject(ctx, pictureBucket, objectName, reader, size,
		minio.PutObjectOptions{ContentType: "image/jpeg"})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s/%s/%s", config.ConfigInfo.Minio.PublicURL, pictureBucket, objectName), nil
}

// RemoveVideo deletes the stored media for a video. Best effort: callers
// treat failures as orphaned objects, not operation failures.
func RemoveVideo(ctx context.Context, vid string) {
	objectName := "video/" + vid + "/video.mp4"
	if err := minioClient.RemoveObject(ctx, videoBucket, objectName, minio.RemoveObjectOptions{}); err != nil {
		hlog.Warnf("failed to delete video object %s: %v", objectName, err)
	}
	coverName := "thumbnail/" + vid + "/cover.jpg"
	if err := minioClient.RemoveObject(ctx, pictureBucket, coverName, minio.RemoveObjectOptions{}); err != nil {
		hlog.Warnf("failed to delete thumbnail object %s: %v", coverName, err)
	}
}
