package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/szentjozsefhackathon/cantores/internal/shared/constants"
	"github.com/szentjozsefhackathon/cantores/internal/shared/errors"
	"github.com/szentjozsefhackathon/cantores/internal/shared/query"
)

// ParseUintParam parses a positive numeric ID from a URL path parameter.
// paramName is the Gin route parameter name (e.g., "id", "occurrence_id").
// entityName is used in error messages (e.g., "plan", "slot occurrence").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid %s ID", entityName))
	}

	return uint(value), nil
}

// ParseOptionalUintQuery parses an optional positive numeric query parameter.
// A missing parameter yields nil.
func ParseOptionalUintQuery(c *gin.Context, key string) (*uint, error) {
	raw := c.Query(key)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return nil, errors.NewValidationError(fmt.Sprintf("invalid %s", key))
	}

	result := uint(value)
	return &result, nil
}

// ParseBoolQuery parses a boolean query parameter with a default value.
func ParseBoolQuery(c *gin.Context, key string, defaultVal bool) bool {
	raw := c.Query(key)
	if raw == "" {
		return defaultVal
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultVal
	}
	return value
}

// ParsePagination reads page and page_size. Malformed or non-positive
// values fall back to the defaults and page_size is capped.
func ParsePagination(c *gin.Context) query.PageFilter {
	filter := query.PageFilter{
		Page:     positiveQueryInt(c, "page", constants.DefaultPage),
		PageSize: positiveQueryInt(c, "page_size", constants.DefaultPageSize),
	}
	filter.PageSize = filter.Limit()
	return filter
}

func positiveQueryInt(c *gin.Context, key string, defaultVal int) int {
	n, err := strconv.Atoi(c.Query(key))
	if err != nil || n < 1 {
		return defaultVal
	}
	return n
}
