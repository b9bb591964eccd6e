package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tallyhq/tally/internal/common"
)

func TestRenderError(t *testing.T) {
	err := common.NewUserError("could not fetch products", errors.New("connection refused"))

	rendered := renderError(err)
	assert.Contains(t, rendered, "could not fetch products")
	assert.Contains(t, rendered, "connection refused")
	assert.NotContains(t, rendered, "transient")
}

func TestRenderErrorRetryableHint(t *testing.T) {
	err := common.NewUserError("could not fetch products", common.ErrRateLimit)

	rendered := renderError(err)
	assert.Contains(t, rendered, "could not fetch products")
	assert.Contains(t, rendered, "retrying may help")
}
