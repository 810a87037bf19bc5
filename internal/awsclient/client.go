package awsclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/vpclattice"

	"github.com/nandemo-ya/latticectl/internal/logging"
)

// ServiceName is the endpoint prefix of VPC Lattice
const ServiceName = "vpc-lattice"

// Credentials holds static AWS credentials
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	SessionToken    string
}

// Config holds configuration for the VPC Lattice client
type Config struct {
	// Region is the AWS region; the SDK default chain applies when empty
	Region string

	// Profile selects a shared config profile (optional)
	Profile string

	// Endpoint overrides the service endpoint (optional, for emulators)
	Endpoint string

	// Credentials are used instead of the default chain when set
	Credentials Credentials

	// MaxAttempts caps SDK retry attempts; the SDK default applies when zero
	MaxAttempts int
}

// Client wraps the SDK client with the endpoint it talks to
type Client struct {
	*vpclattice.Client

	endpoint string
}

// New loads the shared AWS configuration and creates a VPC Lattice client.
func New(ctx context.Context, cfg Config) (*Client, error) {
	var opts []func(*config.LoadOptions) error
	if cfg.Region != "" {
		opts = append(opts, config.WithRegion(cfg.Region))
	}
	if cfg.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(cfg.Profile))
	}
	if cfg.Credentials.AccessKeyID != "" && cfg.Credentials.SecretAccessKey != "" {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Credentials.AccessKeyID,
			cfg.Credentials.SecretAccessKey,
			cfg.Credentials.SessionToken,
		)))
	}
	if cfg.MaxAttempts > 0 {
		opts = append(opts, config.WithRetryMaxAttempts(cfg.MaxAttempts))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}

	endpoint := NormalizeEndpoint(cfg.Endpoint)
	client := vpclattice.NewFromConfig(awsCfg, func(o *vpclattice.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	})

	if endpoint == "" {
		endpoint = BuildEndpoint(awsCfg.Region)
	}
	logging.Component("awsclient").Debug("Created VPC Lattice client", "region", awsCfg.Region, "endpoint", endpoint)

	return &Client{Client: client, endpoint: endpoint}, nil
}

// Endpoint returns the endpoint the client sends requests to.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// NormalizeEndpoint adds a scheme to a bare host and trims trailing slashes.
func NormalizeEndpoint(endpoint string) string {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return ""
	}
	if !strings.HasPrefix(endpoint, "http://") && !strings.HasPrefix(endpoint, "https://") {
		endpoint = "https://" + endpoint
	}
	return strings.TrimSuffix(endpoint, "/")
}

// BuildEndpoint returns the standard regional endpoint.
func BuildEndpoint(region string) string {
	if region == "" {
		return ""
	}
	suffix := "amazonaws.com"
	if strings.HasPrefix(region, "cn-") {
		suffix = "amazonaws.com.cn"
	}
	return fmt.Sprintf("https://%s.%s.%s", ServiceName, region, suffix)
}
