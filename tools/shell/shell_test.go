package shell_test

import (
	"context"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptops/agentic/chatmodel"
	"github.com/promptops/agentic/tools/shell"
)

func Test_Tool(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	_, err := shell.New()
	assert.EqualError(t, err, "at least one allowed command is required")

	tool, err := shell.New("echo", "false")
	require.NoError(t, err)

	assert.Equal(t, shell.ToolName, tool.Name())
	assert.Contains(t, tool.Description(), "echo")
	assert.NotNil(t, tool.Parameters())

	res, err := tool.Run(ctx, &shell.ExecRequest{Command: "echo", Args: []string{"hello"}})
	require.NoError(t, err)
	assert.Equal(t, "hello\n", res.Stdout)
	assert.Equal(t, 0, res.ExitCode)

	res, err = tool.Run(ctx, &shell.ExecRequest{Command: "false"})
	require.NoError(t, err)
	assert.Equal(t, 1, res.ExitCode)

	_, err = tool.Run(ctx, &shell.ExecRequest{Command: "rm", Args: []string{"-rf", "/"}})
	require.Error(t, err)
	assert.EqualError(t, err, "invalid request: command not allowed: rm")

	_, err = tool.Run(ctx, &shell.ExecRequest{})
	assert.EqualError(t, err, "invalid request: empty command")

	_, err = tool.Call(ctx, "plain string")
	assert.True(t, errors.Is(err, chatmodel.ErrFailedUnmarshalInput))

	out, err := tool.Call(ctx, `{"Command": "echo", "Args": ["tool call"]}`)
	require.NoError(t, err)
	assert.Contains(t, out, "tool call")
}
