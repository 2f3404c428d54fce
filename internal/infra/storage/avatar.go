package storage

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/BelezaStudio/salon-agenda-api/internal/config"
)

// AvatarSigner assina URLs de leitura para os avatares dos profissionais.
// O upload acontece no painel administrativo; aqui a coluna avatar guarda
// só a chave do objeto.
type AvatarSigner struct {
	presign *s3.PresignClient
	bucket  string
	ttl     time.Duration
}

// NewAvatarSigner devolve nil quando não há bucket configurado; o catálogo
// então devolve a referência crua.
func NewAvatarSigner(cfg *config.Config) *AvatarSigner {
	if cfg.AvatarBucket == "" {
		return nil
	}

	awsCfg := aws.Config{
		Region: cfg.AWSRegion,
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		),
	}

	client := s3.NewFromConfig(awsCfg)

	return &AvatarSigner{
		presign: s3.NewPresignClient(client),
		bucket:  cfg.AvatarBucket,
		ttl:     15 * time.Minute,
	}
}

// URL troca a chave do objeto por uma URL presignada de GET. Referências
// que já são URLs passam direto; falha de assinatura devolve a chave crua.
func (s *AvatarSigner) URL(ctx context.Context, key string) string {
	if s == nil || key == "" || strings.HasPrefix(key, "http") {
		return key
	}

	req, err := s.presign.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		log.Println("avatar presign error:", err)
		return key
	}

	return req.URL
}
