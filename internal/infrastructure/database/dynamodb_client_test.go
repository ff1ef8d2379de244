package database

import (
	"context"
	"testing"

	"mecanica_quotes/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
)

func TestNewAWSConfig(t *testing.T) {
	cfg, err := NewAWSConfig(context.Background(), config.AWSConfig{
		Region:          "sa-east-1",
		AccessKeyID:     "local",
		SecretAccessKey: "secret",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Region != "sa-east-1" {
		t.Fatalf("expected sa-east-1, got %q", cfg.Region)
	}
	creds, err := cfg.Credentials.Retrieve(context.Background())
	if err != nil {
		t.Fatalf("unexpected credentials error: %v", err)
	}
	if creds.AccessKeyID != "local" || creds.SecretAccessKey != "secret" {
		t.Fatalf("expected static credentials, got %+v", creds)
	}
}

func TestNewDynamoDBClient(t *testing.T) {
	awsCfg := aws.Config{Region: "us-east-1"}

	if got := NewDynamoDBClient(awsCfg, "").Options().BaseEndpoint; got != nil {
		t.Fatalf("expected default endpoint, got %q", *got)
	}
	got := NewDynamoDBClient(awsCfg, "http://dynamodb:8000").Options().BaseEndpoint
	if got == nil || *got != "http://dynamodb:8000" {
		t.Fatalf("expected custom endpoint, got %v", got)
	}
}
