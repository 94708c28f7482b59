package dataset

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gocarina/gocsv"

	"ecommerce-dashboard/internal/logger"
	"ecommerce-dashboard/internal/models"
)

const s3Scheme = "s3://"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Loader lee el CSV desde disco o desde S3 (rutas s3://bucket/key)
type Loader struct {
	AWSRegion string
	Timeout   time.Duration
}

// Load carga el dataset completo de la ruta indicada
func (l *Loader) Load(ctx context.Context, path string) (*Dataset, error) {
	start := time.Now()
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(path, s3Scheme) {
		data, err = l.readS3(ctx, path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	ds, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	logger.Debugf("loaded %d rows from %s in %s", ds.Len(), path, time.Since(start))
	return ds, nil
}

// LoadFile carga un CSV local
func LoadFile(path string) (*Dataset, error) {
	l := &Loader{}
	return l.Load(context.Background(), path)
}

// Decode interpreta un CSV con header
func Decode(r io.Reader) (*Dataset, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	header, err := csv.NewReader(bytes.NewReader(data)).Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("empty csv: no header row")
		}
		return nil, fmt.Errorf("reading header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	var rows []*models.Product
	if err := gocsv.UnmarshalBytes(data, &rows); err != nil {
		return nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	return New(header, rows), nil
}

func (l *Loader) readS3(ctx context.Context, path string) ([]byte, error) {
	bucket, key, err := splitS3Path(path)
	if err != nil {
		return nil, err
	}

	timeout := l.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	sess, err := session.NewSession(aws.NewConfig().WithRegion(l.AWSRegion))
	if err != nil {
		return nil, fmt.Errorf("creating aws session: %w", err)
	}
	svc := s3.New(sess)

	result, err := svc.GetObjectWithContext(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get object %s from bucket %s: %w", key, bucket, err)
	}
	defer result.Body.Close()

	return io.ReadAll(result.Body)
}

// splitS3Path separa "s3://bucket/dir/file.csv" en bucket y key
func splitS3Path(path string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(path, s3Scheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("invalid s3 path %q", path)
	}
	return bucket, key, nil
}
