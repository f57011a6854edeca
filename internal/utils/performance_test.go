package utils

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestOperationTimer_LogsCompletion(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	done := OperationTimer("analyze-expenses", log)
	done()

	assert.Contains(t, buf.String(), `"operation":"analyze-expenses"`)
	assert.Contains(t, buf.String(), "Operation completed")
	assert.NotContains(t, buf.String(), "Slow operation detected")
}

func TestMeasureDBQuery_LogsRows(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)

	MeasureDBQuery("profiles.get_all", log)(3)

	assert.Contains(t, buf.String(), `"query":"profiles.get_all"`)
	assert.Contains(t, buf.String(), `"rows":3`)
}
