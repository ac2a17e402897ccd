package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSteps_NumbersByPosition(t *testing.T) {
	steps := buildSteps("proc-1", []StepInput{
		{Title: "Шаг C"},
		{Title: "Шаг A", RelatedContentIDs: []string{"x", "y"}},
		{Title: "Шаг B"},
	})

	assert.Len(t, steps, 3)
	for i, s := range steps {
		assert.Equal(t, i+1, s.StepNumber)
		assert.Equal(t, "proc-1", s.ProcessID)
	}
	assert.Equal(t, "Шаг C", steps[0].Title)
	assert.Equal(t, "Шаг A", steps[1].Title)
	assert.Equal(t, []string{"x", "y"}, []string(steps[1].RelatedContentIDs))

	// nil превращается в пустой список, а не в null в колонке
	assert.NotNil(t, []string(steps[0].RelatedContentIDs))
	assert.Empty(t, steps[0].RelatedContentIDs)
}

func TestBuildSteps_Empty(t *testing.T) {
	assert.Empty(t, buildSteps("proc-1", nil))
}
