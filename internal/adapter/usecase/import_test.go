package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"campaign-roi/internal/core/domain"
	"campaign-roi/internal/core/port/mocks"
)

func TestImportDataset(t *testing.T) {
	sales, campaigns := fixture()
	data := &domain.Dataset{Sales: sales, Campaigns: campaigns}

	src := mocks.NewMockDatasetSource(t)
	src.EXPECT().Load(mock.Anything).Return(data, nil)
	dst := mocks.NewMockDatasetWriter(t)
	dst.EXPECT().Replace(mock.Anything, data).Return(nil)

	got, err := ImportDataset(context.Background(), src, dst)
	require.NoError(t, err)
	assert.Same(t, data, got)
}

func TestImportDatasetWriteError(t *testing.T) {
	data := &domain.Dataset{}
	boom := errors.New("boom")

	src := mocks.NewMockDatasetSource(t)
	src.EXPECT().Load(mock.Anything).Return(data, nil)
	dst := mocks.NewMockDatasetWriter(t)
	dst.EXPECT().Replace(mock.Anything, data).Return(boom)

	_, err := ImportDataset(context.Background(), src, dst)
	assert.ErrorIs(t, err, boom)
}

func TestImportDatasetLoadErrorSkipsWrite(t *testing.T) {
	boom := errors.New("boom")
	src := mocks.NewMockDatasetSource(t)
	src.EXPECT().Load(mock.Anything).Return(nil, boom)
	dst := mocks.NewMockDatasetWriter(t)

	_, err := ImportDataset(context.Background(), src, dst)
	assert.ErrorIs(t, err, boom)
}
