package attendance

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	core "attendance-manager/core/attendance"
	"attendance-manager/core/ledger"
	"attendance-manager/core/storage"

	"github.com/minio/minio-go/v7"
)

// exportHeader is the explicit header row of every CSV export.
var exportHeader = []string{
	"id", "employee_code", "employee_name", "date",
	"check_in", "check_out", "status", "work_hours", "source",
}

// ExportCSV serializes ledger records to CSV with a header row. An empty
// date exports the full ledger; otherwise only the given date.
func (s *Service) ExportCSV(ctx context.Context, date string, w io.Writer) error {
	var (
		records []core.Record
		err     error
	)
	if date == "" {
		records, err = s.store.All(ctx)
	} else {
		records, err = s.Query(ctx, date, ledger.Filter{})
	}
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			rec.ID,
			rec.EmployeeCode,
			rec.EmployeeName,
			rec.Date,
			rec.CheckIn,
			rec.CheckOut,
			string(rec.Status),
			strconv.FormatFloat(rec.WorkHours, 'f', 1, 64),
			string(rec.Source),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ExportToStorage writes a CSV snapshot into the object storage bucket and
// returns the object name.
func (s *Service) ExportToStorage(ctx context.Context, client storage.Client, bucket, date string) (string, error) {
	var buf bytes.Buffer
	if err := s.ExportCSV(ctx, date, &buf); err != nil {
		return "", err
	}

	objectName := "exports/attendance-full.csv"
	if date != "" {
		objectName = fmt.Sprintf("exports/attendance-%s.csv", date)
	}

	_, err := client.PutObject(ctx, bucket, objectName,
		bytes.NewReader(buf.Bytes()), int64(buf.Len()),
		minio.PutObjectOptions{ContentType: "text/csv"},
	)
	if err != nil {
		return "", fmt.Errorf("failed to upload export: %w", err)
	}
	return objectName, nil
}
