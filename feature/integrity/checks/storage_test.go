package checks

import (
	"context"
	"testing"

	"menu-manager/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func notFound(code string) error {
	return minio.ErrorResponse{Code: code, StatusCode: 404}
}

func TestCheckStorage(t *testing.T) {
	objects := []string{"menu-data.json"}

	t.Run("Bucket Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "menu").Return(false, nil)

		report, err := CheckStorage(context.Background(), mockClient, "menu", objects)
		require.NoError(t, err)
		assert.False(t, report.BucketExists)
		assert.Equal(t, objects, report.Missing)
		mockClient.AssertNotCalled(t, "StatObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Object Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "menu").Return(true, nil)
		mockClient.On("StatObject", mock.Anything, "menu", "menu-data.json", mock.Anything).
			Return(nil, notFound("NoSuchKey"))

		report, err := CheckStorage(context.Background(), mockClient, "menu", objects)
		require.NoError(t, err)
		assert.True(t, report.BucketExists)
		assert.Equal(t, []string{"menu-data.json"}, report.Missing)
	})

	t.Run("All Present", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "menu").Return(true, nil)
		mockClient.On("StatObject", mock.Anything, "menu", "menu-data.json", mock.Anything).
			Return(minio.ObjectInfo{Key: "menu-data.json"}, nil)

		report, err := CheckStorage(context.Background(), mockClient, "menu", objects)
		require.NoError(t, err)
		assert.Empty(t, report.Missing)
	})

	t.Run("Stat Error", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "menu").Return(true, nil)
		mockClient.On("StatObject", mock.Anything, "menu", "menu-data.json", mock.Anything).
			Return(nil, assert.AnError)

		_, err := CheckStorage(context.Background(), mockClient, "menu", objects)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestFixStorage(t *testing.T) {
	logger := zap.NewNop()
	mockClient := new(mocks.Client)

	mockClient.On("MakeBucket", mock.Anything, "menu", mock.Anything).Return(nil)
	mockClient.On("PutObject", mock.Anything, "menu", "menu-data.json", mock.Anything, mock.Anything, mock.Anything).Return(minio.UploadInfo{}, nil)

	report := &StorageReport{Bucket: "menu", BucketExists: false, Missing: []string{"menu-data.json"}}
	err := FixStorage(context.Background(), mockClient, "menu", logger, report)
	assert.NoError(t, err)
	mockClient.AssertNumberOfCalls(t, "MakeBucket", 1)
	mockClient.AssertNumberOfCalls(t, "PutObject", 1)
}
