package config

import (
	"fmt"

	"github.com/hay-kot/criterio"

	"github.com/hay-kot/draglist/internal/core/styles"
)

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		c.validateTheme(),
		c.validateRows(),
	)
}

func (c *Config) validateTheme() error {
	var errs criterio.FieldErrorsBuilder
	if _, ok := styles.GetPalette(c.Theme); !ok {
		errs = errs.Append("theme", fmt.Errorf("unknown theme %q (available: %v)", c.Theme, styles.ThemeNames()))
	}
	return errs.ToError()
}

func (c *Config) validateRows() error {
	var errs criterio.FieldErrorsBuilder
	if c.RowHeight < 1 {
		errs = errs.Append("row_height", fmt.Errorf("must be at least 1, got %d", c.RowHeight))
	}
	if c.RowSpacing < 0 {
		errs = errs.Append("row_spacing", fmt.Errorf("cannot be negative, got %d", c.RowSpacing))
	}
	return errs.ToError()
}
