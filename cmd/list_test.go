package cmd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"tp53.dev/pkg/mutcount/internal/domain"
)

func TestListCmd_UsesDirectory(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd := newTestRootCmd(t)
	cmd.AddCommand(newListCmd())

	mockWorkflow.On("List", mock.Anything, domain.ListArgs{Root: "/data/experiment"}).Return(nil).Once()

	cmd.SetArgs([]string{"-d", "/data/experiment", "list"})
	require.NoError(t, cmd.Execute())
}

func TestListCmd_RequiresDirectory(t *testing.T) {
	useMockWorkflow(t)

	cmd := newTestRootCmd(t)
	cmd.AddCommand(newListCmd())
	cmd.SetArgs([]string{"list"})

	require.ErrorIs(t, cmd.Execute(), errMissingDirectory)
}

func TestListCmd_PropagatesWorkflowError(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	cmd := newTestRootCmd(t)
	cmd.AddCommand(newListCmd())

	walkErr := errors.New("walk failed")
	mockWorkflow.On("List", mock.Anything, mock.Anything).Return(walkErr).Once()

	cmd.SetArgs([]string{"list", "--directory", "/data/experiment"})
	require.ErrorIs(t, cmd.Execute(), walkErr)
}
