package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Input errors
	ErrFile   = fmt.Errorf("cannot read input file")
	ErrDecode = fmt.Errorf("input is not valid UTF-8")

	// Report errors
	ErrReportExists = fmt.Errorf("report file already exists")
	ErrRender       = fmt.Errorf("failed to render report")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
