// Package shell provides a tool that runs allowlisted shell commands on the
// local host. Commands run without a shell, with a bounded timeout, and only
// binaries named in the allowlist may be executed.
package shell

import (
	"bytes"
	"context"
	"os/exec"
	"reflect"
	"strings"
	"time"

	"github.com/bububa/ljson"
	"github.com/cockroachdb/errors"

	"github.com/promptops/agentic/chatmodel"
	"github.com/promptops/agentic/pkg/llmutils"
	"github.com/promptops/agentic/pkg/schema"
	"github.com/promptops/agentic/tools"
)

const ToolName = "Shell"

const defaultTimeout = 30 * time.Second

// ExecRequest represents the tool input.
type ExecRequest struct {
	Command string   `json:"Command" yaml:"Command" jsonschema:"title=Command,description=The command to execute."`
	Args    []string `json:"Args,omitempty" yaml:"Args" jsonschema:"title=Args,description=The arguments to pass to the command."`
}

// ExecResult represents the command output.
type ExecResult struct {
	Stdout   string `json:"stdout" yaml:"Stdout" jsonschema:"title=stdout,description=The standard output of the command."`
	Stderr   string `json:"stderr,omitempty" yaml:"Stderr" jsonschema:"title=stderr,description=The standard error of the command."`
	ExitCode int    `json:"exit_code" yaml:"ExitCode" jsonschema:"title=exit_code,description=The exit code of the command."`
}

func (r *ExecResult) GetContent() string {
	return llmutils.ToJSON(r)
}

// Tool is a tool that executes allowlisted commands.
type Tool struct {
	name        string
	description string
	funcParams  any

	allowed map[string]bool
	timeout time.Duration
	workDir string
}

var _ tools.Tool[ExecRequest, ExecResult] = (*Tool)(nil)

// New creates a shell tool restricted to the given commands.
// At least one command must be allowed.
func New(allowedCommands ...string) (*Tool, error) {
	if len(allowedCommands) == 0 {
		return nil, errors.New("at least one allowed command is required")
	}

	sc, err := schema.New(reflect.TypeOf(ExecRequest{}))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create schema")
	}

	allowed := make(map[string]bool, len(allowedCommands))
	for _, cmd := range allowedCommands {
		allowed[cmd] = true
	}

	return &Tool{
		name:        ToolName,
		description: "A tool that executes a command on the local host. Allowed commands: " + strings.Join(allowedCommands, ", ") + ".",
		funcParams:  sc.Parameters,
		allowed:     allowed,
		timeout:     defaultTimeout,
	}, nil
}

func (t *Tool) WithTimeout(timeout time.Duration) *Tool {
	t.timeout = timeout
	return t
}

func (t *Tool) WithWorkDir(dir string) *Tool {
	t.workDir = dir
	return t
}

func (t *Tool) Name() string {
	return t.name
}

func (t *Tool) Description() string {
	return t.description
}

func (t *Tool) Parameters() any {
	return t.funcParams
}

func (t *Tool) Run(ctx context.Context, req *ExecRequest) (*ExecResult, error) {
	if req.Command == "" {
		return nil, errors.New("invalid request: empty command")
	}
	if !t.allowed[req.Command] {
		return nil, errors.Newf("invalid request: command not allowed: %s", req.Command)
	}

	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, req.Command, req.Args...)
	if t.workDir != "" {
		cmd.Dir = t.workDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		// A non-zero exit is a result, not a tool failure.
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, errors.Wrap(err, "failed to execute command")
		}
	}
	return &ExecResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}, nil
}

func (t *Tool) Call(ctx context.Context, input string) (string, error) {
	var req ExecRequest
	if err := ljson.Unmarshal(llmutils.CleanJSON([]byte(input)), &req); err != nil {
		return "", chatmodel.ErrFailedUnmarshalInput
	}
	out, err := t.Run(ctx, &req)
	if err != nil {
		return "", err
	}
	return out.GetContent(), nil
}
