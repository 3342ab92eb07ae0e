package modelgen

import "github.com/thorn-jmh/errorst"

var (
	ErrNothingToRender = errorst.NewError("no struct definitions to render")
	ErrRenderFailed    = errorst.NewError("failed to render declarations")
)
