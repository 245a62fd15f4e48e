package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockPutter struct {
	mock.Mock
}

func (m *mockPutter) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.PutObjectOutput), args.Error(1)
}

func TestS3StoreSave(t *testing.T) {
	putter := new(mockPutter)
	store := &S3Store{client: putter, bucket: "resumes"}

	putter.On("PutObject", mock.Anything, mock.AnythingOfType("*s3.PutObjectInput")).
		Return(&s3.PutObjectOutput{}, nil).
		Run(func(args mock.Arguments) {
			in := args.Get(1).(*s3.PutObjectInput)
			assert.Equal(t, "resumes", *in.Bucket)
			assert.Equal(t, "resumes/42.pdf", *in.Key)
			assert.Equal(t, "application/pdf", *in.ContentType)
			body, err := io.ReadAll(in.Body)
			require.NoError(t, err)
			assert.Equal(t, []byte("%PDF-1.4"), body)
		})

	err := store.Save(context.Background(), "resumes/42.pdf", "application/pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)
	putter.AssertExpectations(t)
}

func TestS3StoreSaveError(t *testing.T) {
	putter := new(mockPutter)
	store := &S3Store{client: putter, bucket: "resumes"}
	putter.On("PutObject", mock.Anything, mock.Anything).Return(nil, errors.New("access denied"))

	err := store.Save(context.Background(), "resumes/1.pdf", "application/pdf", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "access denied")
}

func TestMemoryStoreCopiesData(t *testing.T) {
	store := NewMemoryStore()
	data := []byte("resume")

	require.NoError(t, store.Save(context.Background(), "resumes/1.txt", "text/plain", data))
	data[0] = 'X'

	obj, ok := store.Get("resumes/1.txt")
	require.True(t, ok)
	assert.Equal(t, "resume", string(obj.Data))
	assert.Equal(t, "text/plain", obj.ContentType)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestNewS3ClientRequiresEndpointForMinio(t *testing.T) {
	_, err := NewS3Client(context.Background(), S3Config{Provider: S3ProviderMinio, Region: "us-east-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "S3_ENDPOINT")
}
