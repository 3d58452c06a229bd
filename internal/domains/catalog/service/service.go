package service

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"salon/config"
	"salon/infras/otel"
	"salon/infras/s3"
	"salon/internal/domains/catalog/model"
	"salon/internal/domains/catalog/model/dto"
	"salon/internal/domains/catalog/repository"
	"salon/internal/domains/catalog/seed"
	"salon/shared/constant"
	"salon/shared/validator"

	"github.com/rs/zerolog/log"
)

const versionLength = 12

type Loader interface {
	Load(ctx context.Context) (repository.Catalog, error)
}

type loaderImpl struct {
	cfg  *config.Config
	s3   s3.S3
	otel otel.Otel
}

func New(cfg *config.Config, s3 s3.S3, otel otel.Otel) Loader {
	return &loaderImpl{
		cfg:  cfg,
		s3:   s3,
		otel: otel,
	}
}

// Load reads the dataset from S3, a local file, or the embedded seed, in that order of preference.
func (l *loaderImpl) Load(ctx context.Context) (res repository.Catalog, err error) {
	ctx, scope := l.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Load")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	raw, source, err := l.read(ctx)
	if err != nil {
		return nil, err
	}

	opts := dto.ConvertOptions{TruncateSlotMinutes: l.cfg.Dataset.TruncateSlotMinutes}

	data, err := Parse(raw, opts)
	if err != nil {
		log.Error().Err(err).Str("source", source).Msg("failed to parse dataset")

		return nil, fmt.Errorf("failed to parse dataset from %s: %w", source, err)
	}

	version := Version(raw, opts)

	scope.SetAttributes(map[string]any{
		"dataset.source":  source,
		"dataset.version": version,
	})

	log.Info().
		Str("source", source).
		Str("version", version).
		Int("stores", len(data.Stores)).
		Int("clients", len(data.Clients)).
		Int("users", len(data.Users)).
		Int("slots", len(data.Slots)).
		Int("reservations", len(data.Reservations)).
		Msg("dataset loaded")

	return repository.New(data, version), nil
}

func (l *loaderImpl) read(ctx context.Context) ([]byte, string, error) {
	switch {
	case l.cfg.S3Enabled():
		bucket, key := l.cfg.Dataset.S3.Bucket, l.cfg.Dataset.S3.Key

		data, err := l.s3.Download(ctx, bucket, key)
		if err != nil {
			return nil, constant.Empty, fmt.Errorf("failed to download dataset: %w", err)
		}

		return data, fmt.Sprintf("s3://%s/%s", bucket, key), nil
	case l.cfg.Dataset.Path != constant.Empty:
		data, err := os.ReadFile(l.cfg.Dataset.Path)
		if err != nil {
			return nil, constant.Empty, fmt.Errorf("failed to read dataset file: %w", err)
		}

		return data, l.cfg.Dataset.Path, nil
	default:
		return seed.Data, seed.Name, nil
	}
}

// Parse decodes and validates a dataset document. Any malformed timestamp or record aborts the parse,
// and so does a slot that truncation collapses to zero length.
func Parse(raw []byte, opts dto.ConvertOptions) (model.Dataset, error) {
	var doc dto.RawDataset

	decoder := json.NewDecoder(bytes.NewReader(raw))
	if err := decoder.Decode(&doc); err != nil {
		return model.Dataset{}, fmt.Errorf("failed to decode dataset: %w", err)
	}

	if err := validator.ValidateStruct(&doc); err != nil {
		return model.Dataset{}, fmt.Errorf("invalid dataset: %w", err)
	}

	data := doc.ToModel(opts)

	for _, slot := range data.Slots {
		if slot.EndAt <= slot.StartAt {
			return model.Dataset{}, fmt.Errorf("invalid dataset: slot %q ends at or before its start after minute truncation", slot.ID)
		}
	}

	return data, nil
}

// Version fingerprints the dataset content together with the options that shape it.
func Version(raw []byte, opts dto.ConvertOptions) string {
	h := sha256.New()
	h.Write(raw)

	if opts.TruncateSlotMinutes {
		h.Write([]byte{1})
	}

	return hex.EncodeToString(h.Sum(nil))[:versionLength]
}

// MustLoad loads the catalog at startup; a dataset that cannot be loaded stops the process.
func MustLoad(loader Loader) repository.Catalog {
	catalog, err := loader.Load(context.Background())
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load dataset")
	}

	return catalog
}
