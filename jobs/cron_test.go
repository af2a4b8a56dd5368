package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbooking/services/logger"
)

type countingCompleter struct {
	calls int
	err   error
}

func (c *countingCompleter) CompleteFinished(ctx context.Context) (int64, error) {
	c.calls++
	if _, ok := ctx.Deadline(); !ok {
		return 0, errors.New("missing deadline")
	}
	return 2, c.err
}

func TestCompletionJob(t *testing.T) {
	completer := &countingCompleter{}
	CompletionJob(completer, logger.Nop{})()
	assert.Equal(t, 1, completer.calls)

	completer.err = errors.New("db down")
	CompletionJob(completer, logger.Nop{})()
	assert.Equal(t, 2, completer.calls)
}

func TestInitCronJobsSchedulesCompletion(t *testing.T) {
	c := cron.New()
	require.NoError(t, InitCronJobs(c, &countingCompleter{}, logger.Nop{}))
	defer c.Stop()

	assert.Len(t, c.Entries(), 1)
}
