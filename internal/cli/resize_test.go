package cli

import (
	"errors"
	"testing"

	"github.com/runoshun/imgresize/internal/domain"
	"github.com/runoshun/imgresize/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResizeCommand_Success(t *testing.T) {
	for _, name := range []string{"resize", "resizeImage"} {
		t.Run(name, func(t *testing.T) {
			c, d := newTestContainer(t, "/img/photo.jpg")
			d.ui.Picks = []testutil.Answer{testutil.Choose("1MB")}
			d.exec.OnResize = func(_ *domain.ExecCommand) { d.fs.Add("/img/photo_resized.jpg") }

			_, _, err := execute(NewRootCommand(c, "dev"), name, "/img/photo.jpg")

			require.NoError(t, err)
			runs := d.exec.ResizeRuns()
			require.Len(t, runs, 1)
			assert.Equal(t, []string{"/img/photo.jpg", "1MB"}, runs[0].Args)
			require.NotEmpty(t, d.ui.Notifications)
			assert.Equal(t, "Image resized successfully to 1MB", d.ui.Notifications[0].Message)
		})
	}
}

func TestResizeWithOptionsCommand_Success(t *testing.T) {
	for _, name := range []string{"resize-with-options", "resizeImageWithOptions"} {
		t.Run(name, func(t *testing.T) {
			c, d := newTestContainer(t, "/img/photo.jpg")
			d.ui.Picks = []testutil.Answer{testutil.Choose("2MB"), testutil.Choose("png"), testutil.Choose("yes")}
			d.ui.Texts = []testutil.Answer{testutil.Choose("/out/photo.png"), testutil.Choose("0")}
			d.exec.OnResize = func(_ *domain.ExecCommand) { d.fs.Add("/out/photo.png") }

			_, _, err := execute(NewRootCommand(c, "dev"), name, "/img/photo.jpg")

			require.NoError(t, err)
			runs := d.exec.ResizeRuns()
			require.Len(t, runs, 1)
			assert.Equal(t, []string{"/img/photo.jpg", "2MB", "-o", "/out/photo.png", "-f", "png"}, runs[0].Args)
			assert.Equal(t, []string{"/out"}, d.fs.Created)
		})
	}
}

func TestResizeCommand_UsesActiveFile(t *testing.T) {
	c, d := newTestContainer(t, "/work/hero.png")
	d.active.Path = "/work/hero.png"
	d.ui.Picks = []testutil.Answer{testutil.Choose("200KB")}
	d.exec.OnResize = func(_ *domain.ExecCommand) { d.fs.Add("/work/hero_resized.png") }

	_, _, err := execute(NewRootCommand(c, "dev"), "resize")

	require.NoError(t, err)
	assert.Equal(t, "/work/hero.png", d.exec.ResizeRuns()[0].Args[0])
}

func TestResizeCommand_CancelExitsZero(t *testing.T) {
	c, d := newTestContainer(t, "/img/photo.jpg")

	_, _, err := execute(NewRootCommand(c, "dev"), "resize", "/img/photo.jpg")

	require.NoError(t, err)
	assert.Empty(t, d.ui.Notifications)
}

func TestResizeCommand_FailureExitsOne(t *testing.T) {
	c, d := newTestContainer(t, "/img/photo.jpg")
	d.ui.Picks = []testutil.Answer{testutil.Choose("1MB")}
	d.exec.ResizeResult = &domain.ExecResult{ExitCode: 3, Stderr: "bad input"}

	_, _, err := execute(NewRootCommand(c, "dev"), "resize", "/img/photo.jpg")

	var exitErr *ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, 1, exitErr.Code)
	assert.Equal(t, "Command failed with status 3. Error: bad input", d.ui.Notifications[0].Message)
}

func TestResizeCommand_UnsupportedFileExitsOne(t *testing.T) {
	c, d := newTestContainer(t)

	_, _, err := execute(NewRootCommand(c, "dev"), "resize", "/docs/notes.txt")

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Empty(t, d.exec.Runs)
}

func TestResizeCommand_TooManyArgs(t *testing.T) {
	c, _ := newTestContainer(t)

	_, _, err := execute(NewRootCommand(c, "dev"), "resize", "/a.jpg", "/b.jpg")

	require.Error(t, err)
	var exitErr *ExitError
	assert.False(t, errors.As(err, &exitErr))
}
