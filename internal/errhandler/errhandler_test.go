package errhandler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/charmbracelet/huh"
	"github.com/stretchr/testify/assert"
)

func TestIsCancel(t *testing.T) {
	assert.True(t, IsCancel(huh.ErrUserAborted))
	assert.True(t, IsCancel(fmt.Errorf("split prompt: %w", huh.ErrUserAborted)))
	assert.True(t, IsCancel(terminal.InterruptErr))

	assert.False(t, IsCancel(errors.New("scenario file missing")))
	assert.False(t, IsCancel(errors.New("interrupted transfer")))
}
