package aws

import (
	"context"
	"fmt"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/diillson/segment-report-go/internal/domain/entity"
	"github.com/diillson/segment-report-go/internal/domain/repository"
	"github.com/diillson/segment-report-go/internal/shared/types"
)

// AWSRepositoryImpl implementa o PublisherRepository com cache de configs e clientes.
type AWSRepositoryImpl struct {
	cfgCache    map[string]aws.Config
	clientCache map[string]interface{}
	mu          sync.Mutex
}

// NewAWSRepository cria uma nova implementação do PublisherRepository.
func NewAWSRepository() repository.PublisherRepository {
	return &AWSRepositoryImpl{
		cfgCache:    make(map[string]aws.Config),
		clientCache: make(map[string]interface{}),
	}
}

func (r *AWSRepositoryImpl) getAWSConfig(ctx context.Context, profile string) (aws.Config, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cfg, ok := r.cfgCache[profile]; ok {
		return cfg, nil
	}

	var opts []func(*config.LoadOptions) error
	if profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(profile))
	}

	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config for profile %s: %w", profile, err)
	}

	r.cfgCache[profile] = cfg
	return cfg, nil
}

func (r *AWSRepositoryImpl) getServiceClient(ctx context.Context, profile, region, service string) (interface{}, error) {
	cacheKey := fmt.Sprintf("%s-%s-%s", profile, region, service)

	r.mu.Lock()
	if client, ok := r.clientCache[cacheKey]; ok {
		r.mu.Unlock()
		return client, nil
	}
	r.mu.Unlock()

	cfg, err := r.getAWSConfig(ctx, profile)
	if err != nil {
		return nil, err
	}

	regionalCfg := cfg.Copy()
	if region != "" {
		regionalCfg.Region = region
	}

	var client interface{}
	switch service {
	case "sts":
		client = sts.NewFromConfig(regionalCfg)
	case "s3":
		client = s3.NewFromConfig(regionalCfg)
	default:
		return nil, fmt.Errorf("unsupported service: %s", service)
	}

	r.mu.Lock()
	r.clientCache[cacheKey] = client
	r.mu.Unlock()

	return client, nil
}

// GetAccountID devolve a conta AWS associada ao perfil.
func (r *AWSRepositoryImpl) GetAccountID(ctx context.Context, profile string) (string, error) {
	client, err := r.getServiceClient(ctx, profile, "us-east-1", "sts")
	if err != nil {
		return "", err
	}
	stsClient := client.(*sts.Client)

	result, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{})
	if err != nil {
		return "", fmt.Errorf("error getting account ID for profile %s: %w", profile, err)
	}
	return aws.ToString(result.Account), nil
}

// Publish envia cada arquivo para s3://<bucket>/<prefix>/<nome>. Devolve as URIs
// enviadas; em caso de falha, as já enviadas acompanham o erro.
func (r *AWSRepositoryImpl) Publish(ctx context.Context, target entity.PublishTarget, paths []string) ([]string, error) {
	if !target.Enabled() {
		return nil, types.ErrPublisherDisabled
	}

	client, err := r.getServiceClient(ctx, target.Profile, target.Region, "s3")
	if err != nil {
		return nil, err
	}
	s3Client := client.(*s3.Client)

	uploaded := make([]string, 0, len(paths))
	for _, p := range paths {
		key := ObjectKey(target.Prefix, p)
		if err := putFile(ctx, s3Client, target.Bucket, key, p); err != nil {
			return uploaded, err
		}
		uploaded = append(uploaded, fmt.Sprintf("s3://%s/%s", target.Bucket, key))
	}
	return uploaded, nil
}

func putFile(ctx context.Context, client *s3.Client, bucket, key, filePath string) error {
	file, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("error opening artifact %s: %w", filePath, err)
	}
	defer file.Close()

	input := &s3.PutObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
		Body:   file,
	}
	if ct := mime.TypeByExtension(filepath.Ext(filePath)); ct != "" {
		input.ContentType = aws.String(ct)
	}

	if _, err := client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("error uploading %s to s3://%s/%s: %w", filepath.Base(filePath), bucket, key, err)
	}
	return nil
}

// ObjectKey junta o prefixo configurado ao nome base do arquivo.
func ObjectKey(prefix, filePath string) string {
	prefix = strings.Trim(prefix, "/")
	name := filepath.Base(filePath)
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}
