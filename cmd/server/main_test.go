package main

import (
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestRunReturnsStartupErrors(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "memory")
	t.Setenv("HTTP_PORT", "127.0.0.1:0")
	t.Setenv("GRPC_PORT", "127.0.0.1:not-a-port")
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	err := run(logger)
	assert.ErrorContains(t, err, "failed to listen on port 127.0.0.1:not-a-port")
}
