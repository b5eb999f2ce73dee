package providers

import (
	"fmt"
	"pvc/internal/structures"

	"github.com/gookit/validate"
)

type CnfValidator struct {
	conf *structures.Config
}

func NewCnfValidator(conf *structures.Config) *CnfValidator {
	return &CnfValidator{conf: conf}
}

func (cv *CnfValidator) Validate() error {
	v := validate.Struct(cv.conf)
	if !v.Validate() {
		return fmt.Errorf("invalid config: %w", v.Errors)
	}
	if cv.conf.Jar.Type == "file" && cv.conf.Jar.FilePath == "" {
		return fmt.Errorf("invalid config: jar.filePath is required for the file jar")
	}
	return nil
}
