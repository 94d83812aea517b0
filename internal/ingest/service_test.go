package ingest

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"bookcatalog/internal/book"
	"bookcatalog/internal/catalog"
	"bookcatalog/internal/platform/logging"
)

type mockInserter struct {
	mock.Mock
}

func (m *mockInserter) Insert(item book.Item) (int, error) {
	args := m.Called(item)
	return args.Int(0), args.Error(1)
}

func sampleRows() []Row {
	return []Row{
		{"kind": "digital", "title": "1984", "author": "George Orwell", "year": "1949", "genre": "Dystopia",
			"file_format": "PDF", "file_size_mb": "1.5", "drm_protected": "true"},
		{"kind": "paper", "title": "Broken", "author": "Nobody", "year": "2000", "genre": "Novel", "pages": "-3"},
		{"kind": "paper", "title": "To Kill a Mockingbird", "author": "Harper Lee", "year": "1960", "genre": "Novel",
			"pages": "281", "cover_type": "hardcover", "is_signed": "false"},
	}
}

func TestService_Run(t *testing.T) {
	t.Run("inserts valid rows and rejects the rest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		src := NewMockSource(ctrl)
		src.EXPECT().Name().Return("books.csv").AnyTimes()
		src.EXPECT().Rows(gomock.Any()).Return(sampleRows(), nil)

		c, err := catalog.New("city library")
		require.NoError(t, err)

		buf := &bytes.Buffer{}
		log := logging.New(logging.Config{Level: "debug", Output: buf})
		ctx := logging.WithLogger(context.Background(), &log)

		run, err := NewService(src, c).Run(ctx)
		require.NoError(t, err)

		assert.Equal(t, StatusCompleted, run.Status)
		assert.Equal(t, "books.csv", run.Source)
		assert.NotNil(t, run.FinishedAt)
		_, parseErr := uuid.Parse(run.ID)
		assert.NoError(t, parseErr)

		assert.Equal(t, 3, run.RowsRead)
		assert.Equal(t, []int{1, 2}, run.Inserted)
		require.Len(t, run.Rejected, 1)
		assert.Equal(t, 2, run.Rejected[0].Row)
		assert.ErrorIs(t, run.Rejected[0], book.ErrInvalid)

		assert.Equal(t, 2, c.Len())
		got := c.FindByAuthor("Harper Lee")
		require.Len(t, got, 1)
		assert.Equal(t, book.KindPaper, got[0].Item.Kind())

		assert.Contains(t, buf.String(), "row rejected")
		assert.Contains(t, buf.String(), "import completed")
	})

	t.Run("source failure fails the run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		src := NewMockSource(ctrl)
		src.EXPECT().Name().Return("missing.csv").AnyTimes()
		src.EXPECT().Rows(gomock.Any()).Return(nil, errors.New("file not found"))

		target := new(mockInserter)
		run, err := NewService(src, target).Run(context.Background())

		assert.Error(t, err)
		require.NotNil(t, run)
		assert.Equal(t, StatusFailed, run.Status)
		assert.Equal(t, "file not found", run.Error)
		target.AssertNotCalled(t, "Insert", mock.Anything)
	})

	t.Run("canceled context stops before inserting", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		src := NewMockSource(ctrl)
		src.EXPECT().Name().Return("books.csv").AnyTimes()
		src.EXPECT().Rows(gomock.Any()).Return(sampleRows(), nil)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		target := new(mockInserter)
		run, err := NewService(src, target).Run(ctx)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, StatusFailed, run.Status)
		assert.Equal(t, 0, run.RowsRead)
		target.AssertNotCalled(t, "Insert", mock.Anything)
	})

	t.Run("insert failure rejects the row", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rows := sampleRows()
		src := NewMockSource(ctrl)
		src.EXPECT().Name().Return("books.csv").AnyTimes()
		src.EXPECT().Rows(gomock.Any()).Return([]Row{rows[0], rows[2]}, nil)

		target := new(mockInserter)
		target.On("Insert", mock.MatchedBy(func(item book.Item) bool {
			return item.Kind() == book.KindDigital
		})).Return(0, catalog.ErrAlreadyExists)
		target.On("Insert", mock.MatchedBy(func(item book.Item) bool {
			return item.Kind() == book.KindPaper
		})).Return(7, nil)

		run, err := NewService(src, target).Run(context.Background())
		require.NoError(t, err)

		assert.Equal(t, []int{7}, run.Inserted)
		require.Len(t, run.Rejected, 1)
		assert.Equal(t, 1, run.Rejected[0].Row)
		assert.ErrorIs(t, run.Rejected[0], catalog.ErrAlreadyExists)
		target.AssertExpectations(t)
	})
}
