package s3

//go:generate go run go.uber.org/mock/mockgen -source=./s3.go -destination=./mocks/s3_mock.go -package=mocks

import (
	"context"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsConfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog/log"

	"salon/config"
	"salon/infras/otel"
	"salon/shared/constant"
)

const (
	otelAttrObjectKey = "object_key"
	otelAttrBucket    = "bucket"
	defaultRegion     = "auto"
)

type S3 interface {
	Download(ctx context.Context, bucketName, objectKey string) (data []byte, err error)
}

type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type s3Impl struct {
	Client objectGetter
	otel   otel.Otel
}

func (svc *s3Impl) Download(ctx context.Context, bucketName, objectKey string) (data []byte, err error) {
	ctx, scope := svc.otel.NewScope(ctx, constant.OtelS3ScopeName, constant.OtelS3ScopeName+".Download")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttributes(map[string]any{
		otelAttrObjectKey: objectKey,
		otelAttrBucket:    bucketName,
	})

	out, err := svc.Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(objectKey),
	})
	if err != nil {
		log.Error().Err(err).Str("bucket", bucketName).Str("key", objectKey).Msg("failed to get object from S3")

		return nil, fmt.Errorf("failed to get object from S3: %w", err)
	}
	defer out.Body.Close()

	data, err = io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read object body: %w", err)
	}

	return data, nil
}

// NewWithClient wraps an existing client; used by tests and by New.
func NewWithClient(client objectGetter, otel otel.Otel) S3 {
	return &s3Impl{
		Client: client,
		otel:   otel,
	}
}

func New(config *config.Config, otel otel.Otel) S3 {
	endpoint := config.External.S3.APIEndpoint
	accessKeyID := config.External.S3.AccessKeyID
	secretAccessKey := config.External.S3.SecretAccessKey

	region := config.External.S3.Region
	if region == "" {
		region = defaultRegion
	}

	staticProvider := credentials.NewStaticCredentialsProvider(
		accessKeyID,
		secretAccessKey,
		"",
	)

	cfg, err := awsConfig.LoadDefaultConfig(
		context.TODO(),
		awsConfig.WithCredentialsProvider(staticProvider),
	)
	if err != nil {
		log.Err(err).Msg("Error loading AWS configuration")
	}

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
		o.UsePathStyle = true
		o.Region = region
	})

	return NewWithClient(s3Client, otel)
}
