package s3

import (
	"context"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type PutObjectAPI interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

type Client struct {
	client PutObjectAPI
}

func NewClient(cfg aws.Config) *Client {
	return &Client{
		client: s3.NewFromConfig(cfg),
	}
}

func NewClientWithAPI(api PutObjectAPI) *Client {
	return &Client{client: api}
}

func (c *Client) PutFile(ctx context.Context, reader io.Reader, bucket, key, contentType string) error {
	_, err := c.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        reader,
		ContentType: aws.String(contentType),
	})
	return err
}
