package workers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingWorker struct {
	order *[]int
	id    int
}

func (w *recordingWorker) Run() {
	*w.order = append(*w.order, w.id)
}

func TestWorkers_RunAllInOrder(t *testing.T) {
	var order []int
	aggregate := NewWorkers(
		&recordingWorker{order: &order, id: 1},
		&recordingWorker{order: &order, id: 2},
		&recordingWorker{order: &order, id: 3},
	)

	aggregate.Run()

	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestWorkers_Empty(t *testing.T) {
	assert.NotPanics(t, func() { NewWorkers().Run() })
}
