package media

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/barbershop-booking/backend/internal/config"
)

const maxAvatarEdge = 512

// AvatarStore converts uploaded barber photos to webp and stores them in an
// S3-compatible bucket.
type AvatarStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

// NewAvatarStore returns nil when object storage is not configured; the
// upload endpoint then reports the feature unavailable.
func NewAvatarStore(cfg *config.Config) *AvatarStore {
	if cfg.S3Bucket == "" || cfg.S3AccessKey == "" || cfg.S3SecretKey == "" {
		return nil
	}

	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
		BaseEndpoint: optionalEndpoint(cfg.S3Endpoint),
		UsePathStyle: cfg.S3Endpoint != "",
	})

	publicURL := cfg.S3PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &AvatarStore{
		client:    client,
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

func optionalEndpoint(endpoint string) *string {
	if endpoint == "" {
		return nil
	}
	return &endpoint
}

// Put decodes the uploaded image, scales it down to at most 512px on the
// longest edge, re-encodes as webp and uploads it. Returns the public URL.
func (s *AvatarStore) Put(ctx context.Context, barberID uint, r io.Reader) (string, error) {
	src, _, err := image.Decode(r)
	if err != nil {
		return "", fmt.Errorf("decode avatar: %w", err)
	}

	scaled := scaleDown(src, maxAvatarEdge)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, scaled, &webp.Options{Quality: 85}); err != nil {
		return "", fmt.Errorf("encode webp: %w", err)
	}

	key := fmt.Sprintf("avatars/%d/%s.webp", barberID, uuid.NewString())
	contentType := "image/webp"

	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucket,
		Key:         &key,
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: &contentType,
	}); err != nil {
		return "", fmt.Errorf("upload avatar: %w", err)
	}

	return s.publicURL + "/" + key, nil
}

func scaleDown(src image.Image, maxEdge int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxEdge && h <= maxEdge {
		return src
	}

	if w >= h {
		h = h * maxEdge / w
		w = maxEdge
	} else {
		w = w * maxEdge / h
		h = maxEdge
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
