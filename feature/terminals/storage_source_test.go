package terminals

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"attendance-manager/core/storage/mocks"
	"attendance-manager/core/syncer"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// errReader mimics minio's lazy error delivery: GetObject succeeds and the
// failure only surfaces on the first read.
type errReader struct {
	err error
}

func (r errReader) Read(p []byte) (int, error) {
	return 0, r.err
}

func (r errReader) Close() error {
	return nil
}

func TestStorageSource_ObjectName(t *testing.T) {
	src := NewStorageSource("dock", nil, "attendance")
	assert.Equal(t, "dock", src.ID())
	assert.Equal(t, "punches/dock/2023-10-25.json", src.ObjectName("2023-10-25"))
}

func TestStorageSource_Fetch(t *testing.T) {
	client := new(mocks.Client)
	body := `[{"employeeCode":"E001","date":"2023-10-25","timestamp":"08:10"}]`
	client.On("GetObject", mock.Anything, "attendance", "punches/dock/2023-10-25.json", mock.Anything).
		Return(io.NopCloser(strings.NewReader(body)), nil)

	src := NewStorageSource("dock", client, "attendance")
	events, err := src.Fetch(context.Background(), "2023-10-25")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "E001", events[0].EmployeeCode)
	client.AssertExpectations(t)
}

func TestStorageSource_MissingDumpIsEmptyBatch(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "attendance", "punches/dock/2023-10-25.json", mock.Anything).
		Return(errReader{err: minio.ErrorResponse{Code: "NoSuchKey"}}, nil)

	src := NewStorageSource("dock", client, "attendance")
	events, err := src.Fetch(context.Background(), "2023-10-25")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestStorage_UnreadableDumpFails(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "attendance", "punches/dock/2023-10-25.json", mock.Anything).
		Return(errReader{err: errors.New("connection reset")}, nil)

	src := NewStorageSource("dock", client, "attendance")
	_, err := src.Fetch(context.Background(), "2023-10-25")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed punch dump")
}

func TestStorageSource_OpenFailure(t *testing.T) {
	client := new(mocks.Client)
	client.On("GetObject", mock.Anything, "attendance", "punches/dock/2023-10-25.json", mock.Anything).
		Return(nil, errors.New("access denied"))

	src := NewStorageSource("dock", client, "attendance")
	_, err := src.Fetch(context.Background(), "2023-10-25")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open punch dump")
}

func TestBuildRegistry(t *testing.T) {
	l := zap.NewNop()

	t.Run("Order Is HTTP Then Storage", func(t *testing.T) {
		client := new(mocks.Client)
		cfg := syncer.SourceConfig{
			HTTP:    "lobby=http://10.0.0.5:8081,annex=http://10.0.0.6:8081",
			Storage: "dock",
		}
		registry, err := BuildRegistry(cfg, client, "attendance", l)
		require.NoError(t, err)

		sources := registry.ListAvailable()
		require.Len(t, sources, 3)
		assert.Equal(t, "lobby", sources[0].ID())
		assert.Equal(t, "annex", sources[1].ID())
		assert.Equal(t, "dock", sources[2].ID())
	})

	t.Run("Storage Terminal Without Client", func(t *testing.T) {
		_, err := BuildRegistry(syncer.SourceConfig{Storage: "dock"}, nil, "attendance", l)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no storage client")
	})

	t.Run("Invalid HTTP Entry", func(t *testing.T) {
		_, err := BuildRegistry(syncer.SourceConfig{HTTP: "broken"}, nil, "attendance", l)
		assert.Error(t, err)
	})
}
