package config

import (
	"io"

	gotoml "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/hilite/pkg/errors"
)

// Dump writes the effective configuration as TOML.
func (c *Config) Dump(w io.Writer) error {
	enc := gotoml.NewEncoder(w)
	enc.SetIndentTables(true)
	if err := enc.Encode(c); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "failed to encode configuration")
	}
	return nil
}
