// Package export writes point-in-time snapshots of all employees to object storage.
package export

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"employeeapi/internal/repository"
	"employeeapi/internal/storage"
)

const keyPrefix = "exports/"

// Result describes an uploaded snapshot.
type Result struct {
	Key       string    `json:"key"`
	Size      int64     `json:"size"`
	Count     int       `json:"count"`
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Exporter uploads JSON snapshots of the employee table.
type Exporter struct {
	repo   repository.EmployeeRepository
	store  storage.Storage
	expiry time.Duration
	log    zerolog.Logger
	now    func() time.Time
}

// NewExporter constructs an Exporter whose download links stay valid for expiry.
func NewExporter(repo repository.EmployeeRepository, store storage.Storage, expiry time.Duration, log zerolog.Logger) *Exporter {
	return &Exporter{
		repo:   repo,
		store:  store,
		expiry: expiry,
		log:    log.With().Str("component", "export").Logger(),
		now:    time.Now,
	}
}

// Snapshot uploads every employee as a JSON array and returns a presigned download link.
// The object is removed again if the link cannot be created.
func (x *Exporter) Snapshot(ctx context.Context) (*Result, error) {
	items, err := x.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}

	body, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}

	now := x.now().UTC()
	key := keyPrefix + "employees-" + now.Format("20060102T150405.000000000Z") + ".json"

	info, err := x.store.Put(ctx, key, bytes.NewReader(body), storage.PutObjectOptions{
		Size:        int64(len(body)),
		ContentType: "application/json",
		Metadata: map[string]string{
			"employee-count": fmt.Sprint(len(items)),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("upload to storage: %w", err)
	}

	url, err := x.store.PresignGet(ctx, info.Key, x.expiry)
	if err != nil {
		if delErr := x.store.Delete(ctx, info.Key); delErr != nil {
			return nil, fmt.Errorf("presign failed: %v; rollback delete failed: %v", err, delErr)
		}
		return nil, fmt.Errorf("presign failed: %w", err)
	}

	x.log.Info().
		Str("event", "employee_export").
		Str("key", info.Key).
		Int("count", len(items)).
		Int64("size", info.Size).
		Send()

	return &Result{
		Key:       info.Key,
		Size:      info.Size,
		Count:     len(items),
		URL:       url,
		ExpiresAt: now.Add(x.expiry),
	}, nil
}
