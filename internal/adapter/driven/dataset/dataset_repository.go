package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/sts"
	"github.com/diillson/billing-dashboard-go/internal/domain/entity"
	"github.com/diillson/billing-dashboard-go/internal/domain/repository"
	"github.com/diillson/billing-dashboard-go/internal/shared/types"
)

// objectGetter is the subset of the S3 client used to fetch the dataset.
type objectGetter interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// identityGetter is the subset of the STS client used to resolve the caller.
type identityGetter interface {
	GetCallerIdentity(ctx context.Context, params *sts.GetCallerIdentityInput, optFns ...func(*sts.Options)) (*sts.GetCallerIdentityOutput, error)
}

// DatasetRepositoryImpl implementa o DatasetRepository para arquivos CSV locais e no S3.
type DatasetRepositoryImpl struct {
	profile string
	region  string

	mu       sync.Mutex
	s3Client objectGetter
	sts      identityGetter
}

// NewDatasetRepository cria uma nova implementação do DatasetRepository.
// profile and region only apply to s3:// sources and may be empty.
func NewDatasetRepository(profile, region string) repository.DatasetRepository {
	return &DatasetRepositoryImpl{profile: profile, region: region}
}

// Load reads every row of source and returns the normalized table.
func (r *DatasetRepositoryImpl) Load(ctx context.Context, source string) (entity.Table, entity.LoadStats, error) {
	stats := entity.LoadStats{Source: source}
	if strings.TrimSpace(source) == "" {
		return entity.Table{}, stats, &types.DataSourceError{Source: "<empty>", Reason: "no source", Err: types.ErrMissingSource}
	}

	var (
		body io.ReadCloser
		err  error
	)
	if strings.HasPrefix(source, "s3://") {
		body, stats.Identity, err = r.openS3(ctx, source)
	} else {
		body, err = openFile(source)
	}
	if err != nil {
		return entity.Table{}, stats, err
	}
	defer body.Close()

	table, err := readCSV(body, source, &stats)
	if err != nil {
		return entity.Table{}, stats, err
	}
	return table, stats, nil
}

func openFile(path string) (io.ReadCloser, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &types.DataSourceError{Source: path, Reason: "cannot access file", Err: err}
	}
	if info.IsDir() {
		return nil, &types.DataSourceError{Source: path, Reason: "is a directory, not a file"}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, &types.DataSourceError{Source: path, Reason: "cannot open file", Err: err}
	}
	return f, nil
}

// parseS3URL splits s3://bucket/key.
func parseS3URL(source string) (bucket, key string, err error) {
	u, err := url.Parse(source)
	if err != nil {
		return "", "", err
	}
	bucket = u.Host
	key = strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return "", "", fmt.Errorf("expected s3://bucket/key, got %q", source)
	}
	return bucket, key, nil
}

func (r *DatasetRepositoryImpl) clients(ctx context.Context) (objectGetter, identityGetter, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.s3Client != nil {
		return r.s3Client, r.sts, nil
	}

	var opts []func(*config.LoadOptions) error
	if r.profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(r.profile))
	}
	if r.region != "" {
		opts = append(opts, config.WithRegion(r.region))
	}
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load AWS config for profile %q: %w", r.profile, err)
	}

	r.s3Client = s3.NewFromConfig(cfg)
	r.sts = sts.NewFromConfig(cfg)
	return r.s3Client, r.sts, nil
}

func (r *DatasetRepositoryImpl) openS3(ctx context.Context, source string) (io.ReadCloser, string, error) {
	bucket, key, err := parseS3URL(source)
	if err != nil {
		return nil, "", &types.DataSourceError{Source: source, Reason: "invalid S3 location", Err: err}
	}

	s3Client, stsClient, err := r.clients(ctx)
	if err != nil {
		return nil, "", &types.DataSourceError{Source: source, Reason: "cannot configure AWS credentials", Err: err}
	}

	// A identidade é apenas informativa; falhas aqui não bloqueiam a leitura.
	identity := ""
	if stsClient != nil {
		if out, err := stsClient.GetCallerIdentity(ctx, &sts.GetCallerIdentityInput{}); err == nil && out.Arn != nil {
			identity = aws.ToString(out.Arn)
		}
	}

	out, err := s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, identity, &types.DataSourceError{Source: source, Reason: "cannot fetch object", Err: err}
	}
	return out.Body, identity, nil
}

// readCSV parses the line item CSV. Rows without a usable created_at are
// dropped and counted in stats.
func readCSV(in io.Reader, source string, stats *entity.LoadStats) (entity.Table, error) {
	reader := csv.NewReader(in)
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return entity.Table{}, &types.DataSourceError{Source: source, Reason: "file is empty"}
		}
		return entity.Table{}, &types.DataSourceError{Source: source, Reason: "cannot read header", Err: err}
	}

	builder, missing := newRecordBuilder(header)
	if len(missing) > 0 {
		return entity.Table{}, &types.DataSourceError{
			Source: source,
			Reason: fmt.Sprintf("missing required columns: %s", strings.Join(missing, ", ")),
		}
	}

	var rows []entity.LineItemRecord
	record := 0
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		record++
		if err != nil {
			return entity.Table{}, &types.DataSourceError{Source: source, Reason: fmt.Sprintf("malformed CSV at record %d", record), Err: err}
		}
		stats.RowsRead++

		rec, ok, err := builder.build(row)
		if err != nil {
			return entity.Table{}, &types.DataSourceError{Source: source, Reason: fmt.Sprintf("invalid value at record %d", record), Err: err}
		}
		if !ok {
			stats.RowsDropped++
			continue
		}
		rows = append(rows, rec)
	}

	stats.RowsKept = len(rows)
	return entity.NewTable(rows), nil
}
