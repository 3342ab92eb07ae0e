package schemas

import "github.com/thorn-jmh/errorst"

var (
	ErrEmptyInput       = errorst.NewError("input is empty")
	ErrInvalidInput     = errorst.NewError("input failed format validation")
	ErrNoTable          = errorst.NewError("no CREATE TABLE statement found")
	ErrNoColumns        = errorst.NewError("no column definitions found")
	ErrNoMessage        = errorst.NewError("no message definition found")
	ErrNoRootElement    = errorst.NewError("no root element found")
	ErrUnbalancedXML    = errorst.NewError("unbalanced XML tags")
	ErrTooFewCSVLines   = errorst.NewError("need a header line and at least one data line")
	ErrUnsupportedValue = errorst.NewError("unsupported top-level value")
)
