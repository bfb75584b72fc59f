package s3

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutObject struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakePutObject) PutObject(_ context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.input = params
	data, _ := io.ReadAll(params.Body)
	f.body = string(data)
	return &s3.PutObjectOutput{}, f.err
}

func TestPutFile(t *testing.T) {
	fake := &fakePutObject{}
	client := NewClientWithAPI(fake)

	err := client.PutFile(context.Background(), strings.NewReader("a,b\n"), "exports", "lookups/1.csv", "text/csv")
	require.NoError(t, err)
	assert.Equal(t, "exports", aws.ToString(fake.input.Bucket))
	assert.Equal(t, "lookups/1.csv", aws.ToString(fake.input.Key))
	assert.Equal(t, "text/csv", aws.ToString(fake.input.ContentType))
	assert.Equal(t, "a,b\n", fake.body)
}

func TestPutFile_Error(t *testing.T) {
	client := NewClientWithAPI(&fakePutObject{err: errors.New("access denied")})
	err := client.PutFile(context.Background(), strings.NewReader(""), "exports", "k", "text/csv")
	assert.EqualError(t, err, "access denied")
}
