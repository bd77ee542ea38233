package hilite

import (
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/hilite/pkg/errors"
)

// readInput reads the document named by args, or stdin when there is none
// or it is "-".
func (a *app) readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", errors.Wrapf(err, errors.ErrFileRead, MsgErrReadInput, "stdin")
		}
		return string(data), nil
	}

	path := args[0]
	data, err := afero.ReadFile(a.fs, path)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileRead, MsgErrReadInput, path).
			WithDetail("path", path)
	}
	return string(data), nil
}

// openOutput returns the writer for command output: the named file, or the
// command's stdout when path is empty. The returned func closes the file.
func (a *app) openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	f, err := a.fs.Create(path)
	if err != nil {
		return nil, nil, errors.Wrapf(err, errors.ErrFileWrite, MsgErrWriteOutput, path).
			WithDetail("path", path)
	}
	return f, f.Close, nil
}
